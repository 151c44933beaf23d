package collector

import (
	"context"
	"errors"

	"StockLens/internal/model"
)

var (
	// ErrNoData is returned when the provider has no bars for the request.
	ErrNoData = errors.New("no data returned")
	// ErrProviderError wraps an error object reported by the provider itself.
	ErrProviderError = errors.New("provider error")
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchDailyBars returns daily bars for the lookback period, oldest first.
	FetchDailyBars(ctx context.Context, symbol, period string) ([]model.OHLCV, error)
	Name() string
}
