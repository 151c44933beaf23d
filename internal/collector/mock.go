package collector

import (
	"context"
	"time"

	"StockLens/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Bars  []model.OHLCV
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ context.Context, _ string, period string) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		out := make([]model.OHLCV, len(m.Bars))
		copy(out, m.Bars)
		return out, nil
	}
	price := m.Price
	if price == 0 {
		price = 100
	}
	return generateMockBars(price, tradingDays(period)), nil
}

// tradingDays approximates the number of daily bars in a Yahoo range.
func tradingDays(period string) int {
	switch period {
	case "1mo":
		return 21
	case "3mo":
		return 63
	case "6mo":
		return 126
	case "2y":
		return 504
	case "5y":
		return 1260
	case "10y", "max":
		return 2520
	default:
		return 252
	}
}

func generateMockBars(basePrice float64, count int) []model.OHLCV {
	end := time.Now().UTC().Truncate(24 * time.Hour)
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		// gentle wave around a slow drift so both averages cross now and then
		wave := float64((i%40)-20) * 0.002
		p := basePrice * (1 + float64(i-count/2)*0.001 + wave)
		bars[i] = model.OHLCV{
			Time:   end.AddDate(0, 0, -(count - 1 - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
