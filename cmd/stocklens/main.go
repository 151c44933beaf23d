package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"StockLens/internal/chart"
	"StockLens/internal/collector"
	"StockLens/internal/config"
	"StockLens/internal/logx"
	"StockLens/internal/report"
	"StockLens/internal/scheduler"
)

// options are the command-line flags.
type options struct {
	configPath string
	period     string
	watch      string
	noShow     bool
	mock       bool
	ticker     string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, chart.SystemViewer{})
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, viewer chart.Viewer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if opts.period != "" {
		cfg.DataSource.Period = opts.period
	}
	if opts.watch != "" {
		cfg.Watch.Cron = opts.watch
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	slog.SetDefault(logx.New(stderr, cfg.Log.Level))

	in := bufio.NewReader(stdin)
	symbol := normalizeTicker(opts.ticker)
	if symbol == "" {
		symbol, err = promptTicker(in, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	var fetcher collector.Fetcher
	if opts.mock {
		fetcher = &collector.MockFetcher{Price: 100}
	} else {
		fetcher = collector.NewYahooFetcher(cfg.DataSource.BaseURL, cfg.Proxy, cfg.DataSource.Timeout)
	}
	slog.Debug("data source selected", "source", fetcher.Name())
	col := collector.NewCollector(fetcher, cfg.DataSource.Period)

	if cfg.Watch.Cron != "" {
		return watch(ctx, col, symbol, cfg.Watch.Cron, stdout, stderr)
	}

	ctx = logx.WithRunID(ctx)
	a, err := col.Collect(ctx, symbol)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := report.WriteSummary(stdout, a); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if opts.noShow {
		return 0
	}
	p, err := chart.Build(a)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := chart.Display(ctx, p, viewer, in, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("stocklens", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: stocklens [flags] [TICKER]")
		fmt.Fprintln(stderr, "Download daily prices and show 20/50-day moving averages.")
		fs.PrintDefaults()
	}

	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "config path (default $CONFIG_PATH or "+config.DefaultPath+")")
	fs.StringVar(&opts.period, "period", "", "lookback period, e.g. 6mo, 1y, 2y (overrides config)")
	fs.StringVar(&opts.watch, "watch", "", "cron expression; reprint the summary on this schedule")
	fs.BoolVar(&opts.noShow, "no-show", false, "do not display the chart")
	fs.BoolVar(&opts.mock, "mock", false, "use synthetic data instead of Yahoo Finance")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.configPath == "" {
		opts.configPath = os.Getenv("CONFIG_PATH")
	}
	if opts.configPath == "" {
		opts.configPath = config.DefaultPath
	}
	opts.ticker = fs.Arg(0)
	return opts, nil
}

func promptTicker(in *bufio.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter ticker symbol: ")
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read ticker: %w", err)
	}
	symbol := normalizeTicker(line)
	if symbol == "" {
		return "", errors.New("no ticker symbol given")
	}
	return symbol, nil
}

func normalizeTicker(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// watch prints the summary now and on every cron tick until ctx is done.
func watch(ctx context.Context, col *collector.Collector, symbol, expr string, stdout, stderr io.Writer) int {
	sched := scheduler.NewScheduler(ctx, col, symbol, stdout)
	if err := sched.Register(expr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := sched.RunNow(); err != nil {
		slog.Error("initial watch run failed", "symbol", symbol, "err", err)
	}
	sched.Start()
	slog.Info("watching, press Ctrl+C to stop", "symbol", symbol, "cron", expr)

	<-ctx.Done()
	slog.Info("shutdown signal received, stopping...")
	sched.Stop()
	return 0
}
