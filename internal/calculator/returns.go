package calculator

import (
	"math"

	"StockLens/internal/model"

	"gonum.org/v1/gonum/stat"
)

// TradingDaysPerYear annualizes daily volatility.
const TradingDaysPerYear = 252

// DailyReturns computes the percent change between consecutive closes.
// Entry 0 is NaN.
func DailyReturns(closes []float64) model.Series {
	out := make(model.Series, len(closes))
	for i := range closes {
		if i == 0 || closes[i-1] == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = closes[i]/closes[i-1] - 1
	}
	return out
}

// AnnualizedVolatility is the sample std of the defined returns times sqrt(252).
// It is NaN with fewer than two returns.
func AnnualizedVolatility(returns model.Series) float64 {
	defined := make([]float64, 0, len(returns))
	for i := range returns {
		if returns.Defined(i) {
			defined = append(defined, returns[i])
		}
	}
	if len(defined) < 2 {
		return math.NaN()
	}
	return stat.StdDev(defined, nil) * math.Sqrt(TradingDaysPerYear)
}
