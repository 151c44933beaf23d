package collector

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"StockLens/internal/logx"
	"StockLens/internal/model"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	// DefaultYahooBaseURL is the public Yahoo Finance host.
	DefaultYahooBaseURL = "https://query1.finance.yahoo.com"

	yahooUserAgent = "Mozilla/5.0"
	maxBodyInError = 512
)

// YahooFetcher implements Fetcher using the Yahoo Finance chart API.
type YahooFetcher struct {
	client    *resty.Client
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy support.
func NewYahooFetcher(baseURL, proxyURL string, timeout time.Duration) *YahooFetcher {
	if baseURL == "" {
		baseURL = DefaultYahooBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", yahooUserAgent).
		SetHeader("Accept", "application/json")
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &YahooFetcher{
		client: client,
		SymbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

func (f *YahooFetcher) FetchDailyBars(ctx context.Context, symbol, period string) ([]model.OHLCV, error) {
	log := logx.From(ctx)
	log.Debug("start yahoo chart request", "symbol", symbol, "period", period)

	resp, err := f.client.R().
		SetContext(ctx).
		SetPathParam("symbol", f.yahooSymbol(symbol)).
		SetQueryParams(map[string]string{
			"interval": "1d",
			"range":    period,
		}).
		Get("/v8/finance/chart/{symbol}")
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}

	body := resp.Body()
	// Unknown symbols come back as 404 with an error object in the body.
	if desc := gjson.GetBytes(body, "chart.error.description"); desc.Exists() {
		return nil, fmt.Errorf("yahoo: %w: %s", ErrProviderError, desc.String())
	}
	if resp.StatusCode() != http.StatusOK {
		if len(body) > maxBodyInError {
			body = body[:maxBodyInError]
		}
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode(), string(body))
	}

	bars, err := parseChart(body)
	if err != nil {
		return nil, err
	}
	log.Debug("yahoo chart request complete", "symbol", symbol, "bars", len(bars))
	return bars, nil
}

// parseChart converts a chart API response into bars sorted by time.
// Bars whose close is null (holidays, halts) are skipped.
func parseChart(body []byte) ([]model.OHLCV, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("yahoo decode: invalid json")
	}
	result := gjson.GetBytes(body, "chart.result.0")
	timestamps := result.Get("timestamp").Array()
	if len(timestamps) == 0 {
		return nil, fmt.Errorf("yahoo: %w", ErrNoData)
	}

	loc := time.UTC
	if off := result.Get("meta.gmtoffset"); off.Exists() {
		loc = time.FixedZone(result.Get("meta.exchangeTimezoneName").String(), int(off.Int()))
	}

	quote := result.Get("indicators.quote.0")
	opens := quote.Get("open").Array()
	highs := quote.Get("high").Array()
	lows := quote.Get("low").Array()
	closes := quote.Get("close").Array()
	volumes := quote.Get("volume").Array()

	bars := make([]model.OHLCV, 0, len(timestamps))
	for i, ts := range timestamps {
		c, ok := numberAt(closes, i)
		if !ok {
			continue
		}
		o, _ := numberAt(opens, i)
		h, _ := numberAt(highs, i)
		l, _ := numberAt(lows, i)
		v, _ := numberAt(volumes, i)
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(ts.Int(), 0).In(loc),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: v,
		})
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo: %w", ErrNoData)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

func numberAt(arr []gjson.Result, i int) (float64, bool) {
	if i >= len(arr) || arr[i].Type != gjson.Number {
		return 0, false
	}
	return arr[i].Float(), true
}
