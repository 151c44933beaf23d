package collector

import (
	"context"
	"fmt"
	"math"

	"StockLens/internal/calculator"
	"StockLens/internal/logx"
	"StockLens/internal/model"
)

// Collector orchestrates data fetching and indicator computation.
type Collector struct {
	Fetcher Fetcher
	Period  string
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, period string) *Collector {
	return &Collector{Fetcher: fetcher, Period: period}
}

// Collect fetches the daily bars for symbol and computes all indicators.
func (c *Collector) Collect(ctx context.Context, symbol string) (*model.Analysis, error) {
	bars, err := c.Fetcher.FetchDailyBars(ctx, symbol, c.Period)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars for %s: %w", symbol, err)
	}
	logx.From(ctx).Info("fetched daily bars",
		"symbol", symbol, "source", c.Fetcher.Name(), "period", c.Period, "bars", len(bars))

	return Analyze(&model.PriceSeries{
		Symbol: symbol,
		Bars:   bars,
	}), nil
}

// Analyze computes every indicator for series. It does not modify series.
func Analyze(series *model.PriceSeries) *model.Analysis {
	closes := series.Closes()
	a := &model.Analysis{
		Series:   series,
		MA20:     calculator.MA20(closes),
		MA50:     calculator.MA50(closes),
		Returns:  calculator.DailyReturns(closes),
		Describe: calculator.DescribeBars(series.Bars),

		LastClose:     math.NaN(),
		PeriodHigh:    math.NaN(),
		PeriodLow:     math.NaN(),
		RangePosition: math.NaN(),
	}
	a.Crossovers = calculator.FindCrossovers(series.Bars, a.MA20, a.MA50)
	a.AnnualizedVolatility = calculator.AnnualizedVolatility(a.Returns)
	// RSI only errors on a non-positive period
	a.RSI14, _ = calculator.CalculateRSI(closes, calculator.RSIPeriod)

	if len(closes) > 0 {
		a.LastClose = closes[len(closes)-1]
	}
	if high, low, err := calculator.PeriodRange(series.Bars); err == nil {
		a.PeriodHigh, a.PeriodLow = high, low
		if pos, err := calculator.RangePosition(a.LastClose, high, low); err == nil {
			a.RangePosition = pos
		}
	}
	return a
}
