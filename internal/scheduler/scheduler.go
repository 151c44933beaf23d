package scheduler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"StockLens/internal/collector"
	"StockLens/internal/logx"
	"StockLens/internal/report"

	"github.com/robfig/cron/v3"
)

// Watch expressions take five standard fields with an optional leading seconds
// field, or a descriptor such as @daily.
var parser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ParseSpec reports whether expr is a valid watch schedule.
func ParseSpec(expr string) error {
	_, err := parser.Parse(expr)
	return err
}

// Scheduler re-runs the summary for one symbol on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Symbol    string
	Out       io.Writer
	Ctx       context.Context

	mu      sync.Mutex // serializes writes to Out
	running sync.Mutex // held for the duration of a run
}

// NewScheduler creates a new Scheduler. Overlapping ticks are skipped.
func NewScheduler(ctx context.Context, col *collector.Collector, symbol string, out io.Writer) *Scheduler {
	return &Scheduler{
		Cron: cron.New(
			cron.WithParser(parser),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		Collector: col,
		Symbol:    symbol,
		Out:       out,
		Ctx:       ctx,
	}
}

// Register adds the watch task for expr.
func (s *Scheduler) Register(expr string) error {
	if _, err := s.Cron.AddFunc(expr, s.watchTask); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	slog.Info("scheduler started", "symbol", s.Symbol)
}

// Stop stops the cron scheduler and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	slog.Info("scheduler stopped")
}

// RunNow executes the watch task immediately. Ticks that fire while it runs
// are skipped.
func (s *Scheduler) RunNow() error {
	s.running.Lock()
	defer s.running.Unlock()
	return s.run()
}

func (s *Scheduler) watchTask() {
	if !s.running.TryLock() {
		logx.From(s.Ctx).Debug("watch tick skipped, previous run still active", "symbol", s.Symbol)
		return
	}
	defer s.running.Unlock()
	if err := s.run(); err != nil {
		logx.From(s.Ctx).Error("watch task failed", "symbol", s.Symbol, "err", err)
	}
}

func (s *Scheduler) run() error {
	ctx := logx.WithRunID(s.Ctx)
	logx.From(ctx).Info("running watch task", "symbol", s.Symbol)

	a, err := s.Collector.Collect(ctx, s.Symbol)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := report.WriteSummary(s.Out, a); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
