package calculator

import (
	"StockLens/internal/model"
)

// FindCrossovers returns the bars where short crosses long, oldest first.
// A bullish crossover moves the sign of short-long from -1 to +1, a bearish one
// from +1 to -1. Undefined or equal averages count as sign 0, so a crossover
// must flip sign between two consecutive bars.
func FindCrossovers(bars []model.OHLCV, short, long model.Series) []model.Crossover {
	var out []model.Crossover
	prev := 0
	for i := range bars {
		cur := 0
		if short.Defined(i) && long.Defined(i) {
			cur = sign(short[i] - long[i])
		}
		if i > 0 {
			switch cur - prev {
			case 2:
				out = append(out, model.Crossover{Time: bars[i].Time, Close: bars[i].Close, Bullish: true})
			case -2:
				out = append(out, model.Crossover{Time: bars[i].Time, Close: bars[i].Close, Bullish: false})
			}
		}
		prev = cur
	}
	return out
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
