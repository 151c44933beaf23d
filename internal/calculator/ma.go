package calculator

import (
	"math"

	"StockLens/internal/model"

	"gonum.org/v1/gonum/floats"
)

// Moving average windows used throughout the report.
const (
	ShortWindow = 20
	LongWindow  = 50
)

// RollingMean computes the trailing arithmetic mean of values over window.
// The result has the same length as values; the first window-1 entries are NaN.
func RollingMean(values []float64, window int) model.Series {
	out := make(model.Series, len(values))
	for i := range out {
		out[i] = math.NaN()
	}
	if window <= 0 {
		return out
	}
	for i := window - 1; i < len(values); i++ {
		out[i] = floats.Sum(values[i-window+1:i+1]) / float64(window)
	}
	return out
}

// MA20 returns the 20-day moving average of closes.
func MA20(closes []float64) model.Series {
	return RollingMean(closes, ShortWindow)
}

// MA50 returns the 50-day moving average of closes.
func MA50(closes []float64) model.Series {
	return RollingMean(closes, LongWindow)
}
