// Package report renders an Analysis as a plain-text console summary.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"StockLens/internal/model"

	"github.com/fatih/color"
)

const (
	dateLayout   = "2006-01-02"
	recentReturn = 5
)

var header = color.New(color.FgCyan, color.Bold)

// WriteSummary prints the summary of a to w.
func WriteSummary(w io.Writer, a *model.Analysis) error {
	ew := &errWriter{w: w}
	s := a.Series

	if s.Len() == 0 {
		header.Fprintf(ew, "\n=== %s SUMMARY (no data) ===\n", s.Symbol)
	} else {
		first, last := s.Bars[0].Time, s.Bars[s.Len()-1].Time
		header.Fprintf(ew, "\n=== %s SUMMARY (%s to %s) ===\n",
			s.Symbol, first.Format(dateLayout), last.Format(dateLayout))
	}
	fmt.Fprintf(ew, "Last Close: %s\n", fixed(a.LastClose, 2))
	fmt.Fprintf(ew, "20-day MA:  %s\n", fixed(a.MA20.Last(), 2))
	fmt.Fprintf(ew, "50-day MA:  %s\n", fixed(a.MA50.Last(), 2))

	header.Fprintln(ew, "\nBasic statistics:")
	if err := ew.err; err != nil {
		return err
	}
	if err := WriteDescribe(ew, a.Describe); err != nil {
		return err
	}

	header.Fprintf(ew, "\nDaily return (last %d):\n", recentReturn)
	writeRecentReturns(ew, s, a.Returns)

	fmt.Fprintf(ew, "\nAnnualized volatility (stddev * sqrt(252)): %s\n", fixed(a.AnnualizedVolatility, 4))
	fmt.Fprintf(ew, "RSI(14): %s\n", fixed(a.RSI14, 2))
	if !math.IsNaN(a.RangePosition) {
		fmt.Fprintf(ew, "Period range: %s - %s (last close at %.0f%%)\n",
			fixed(a.PeriodLow, 2), fixed(a.PeriodHigh, 2), a.RangePosition*100)
	}
	fmt.Fprintf(ew, "MA crossovers: %d bullish, %d bearish\n", len(a.Bullish()), len(a.Bearish()))
	return ew.err
}

// WriteDescribe prints d as a right-aligned table with one column per series
// and the rows count, mean, std, min, 25%, 50%, 75% and max.
func WriteDescribe(w io.Writer, d model.Describe) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(d.Columns, "\t"))
	rows := []struct {
		label string
		value func(model.ColumnStats) float64
	}{
		{"count", func(s model.ColumnStats) float64 { return float64(s.Count) }},
		{"mean", func(s model.ColumnStats) float64 { return s.Mean }},
		{"std", func(s model.ColumnStats) float64 { return s.Std }},
		{"min", func(s model.ColumnStats) float64 { return s.Min }},
		{"25%", func(s model.ColumnStats) float64 { return s.P25 }},
		{"50%", func(s model.ColumnStats) float64 { return s.P50 }},
		{"75%", func(s model.ColumnStats) float64 { return s.P75 }},
		{"max", func(s model.ColumnStats) float64 { return s.Max }},
	}
	for _, r := range rows {
		cells := make([]string, len(d.Stats))
		for i, st := range d.Stats {
			cells[i] = fixed(r.value(st), 6)
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", r.label, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func writeRecentReturns(w io.Writer, s *model.PriceSeries, returns model.Series) {
	var idx []int
	for i := len(returns) - 1; i >= 0 && len(idx) < recentReturn; i-- {
		if returns.Defined(i) {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}
	for j := len(idx) - 1; j >= 0; j-- {
		i := idx[j]
		fmt.Fprintf(w, "%s  %s\n", s.Bars[i].Time.Format(dateLayout), fixed(returns[i], 4))
	}
}

// fixed formats v with prec decimals, printing NaN for undefined values.
func fixed(v float64, prec int) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.*f", prec, v)
}

// errWriter keeps the first write error so callers check once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
