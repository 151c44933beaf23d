package calculator

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"StockLens/internal/model"
)

func TestDailyReturns(t *testing.T) {
	r := DailyReturns([]float64{100, 110, 99})
	if len(r) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(r))
	}
	if r.Defined(0) {
		t.Error("first return should be undefined")
	}
	if !approxEqual(r[1], 0.1) || !approxEqual(r[2], -0.1) {
		t.Errorf("unexpected returns: %v", r)
	}
}

func TestDailyReturns_ZeroPreviousClose(t *testing.T) {
	r := DailyReturns([]float64{0, 5, 10})
	if r.Defined(1) {
		t.Errorf("return after a zero close should be undefined, got %f", r[1])
	}
	if !approxEqual(r[2], 1) {
		t.Errorf("expected 1, got %f", r[2])
	}
}

func TestAnnualizedVolatility(t *testing.T) {
	r := model.Series{math.NaN(), 0.01, -0.01}
	// sample std of {0.01, -0.01} is sqrt(0.0002)
	want := math.Sqrt(0.0002) * math.Sqrt(252)
	if got := AnnualizedVolatility(r); !approxEqual(got, want) {
		t.Errorf("expected %f, got %f", want, got)
	}
	if got := AnnualizedVolatility(model.Series{math.NaN(), 0.01}); !math.IsNaN(got) {
		t.Errorf("expected NaN for a single return, got %f", got)
	}
}

func TestFindCrossovers(t *testing.T) {
	bars := makeBars([]float64{1, 2, 3, 4, 5, 6})
	nan := math.NaN()
	short := model.Series{nan, 1, 3, 3, 1, 4}
	long := model.Series{nan, 2, 2, 3, 2, 2}
	// signs: 0, -1, +1, 0, -1, +1
	got := FindCrossovers(bars, short, long)
	if len(got) != 2 {
		t.Fatalf("expected 2 crossovers, got %d: %+v", len(got), got)
	}
	if !got[0].Bullish || !got[0].Time.Equal(bars[2].Time) || got[0].Close != 3 {
		t.Errorf("unexpected first crossover: %+v", got[0])
	}
	if !got[1].Bullish || !got[1].Time.Equal(bars[5].Time) {
		t.Errorf("unexpected second crossover: %+v", got[1])
	}
}

func TestFindCrossovers_Bearish(t *testing.T) {
	bars := makeBars([]float64{1, 2, 3})
	got := FindCrossovers(bars, model.Series{3, 1, 1}, model.Series{2, 2, 2})
	if len(got) != 1 || got[0].Bullish {
		t.Fatalf("expected one bearish crossover, got %+v", got)
	}
}

func TestFindCrossovers_UndefinedBreaksTransition(t *testing.T) {
	bars := makeBars([]float64{1, 2, 3})
	nan := math.NaN()
	got := FindCrossovers(bars, model.Series{1, nan, 3}, model.Series{2, 2, 2})
	if len(got) != 0 {
		t.Errorf("expected no crossovers across undefined entry, got %+v", got)
	}
}

func TestCalculateRSI(t *testing.T) {
	rising := linspace(20)
	if rsi, _ := CalculateRSI(rising, 14); rsi != 100 {
		t.Errorf("expected 100 for monotonic rise, got %f", rsi)
	}
	if rsi, _ := CalculateRSI(rising[:5], 14); rsi != 50 {
		t.Errorf("expected 50 for insufficient data, got %f", rsi)
	}
	if _, err := CalculateRSI(rising, 0); err == nil {
		t.Error("expected error for zero period")
	}
	falling := make([]float64, 20)
	for i := range falling {
		falling[i] = float64(100 - i)
	}
	if rsi, _ := CalculateRSI(falling, 14); !approxEqual(rsi, 0) {
		t.Errorf("expected 0 for monotonic fall, got %f", rsi)
	}
}

func TestPeriodRangeAndPosition(t *testing.T) {
	bars := makeBars([]float64{10, 20, 15})
	high, low, err := PeriodRange(bars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high != 21 || low != 9 {
		t.Errorf("expected 21/9, got %f/%f", high, low)
	}
	pos, err := RangePosition(15, high, low)
	if err != nil || !approxEqual(pos, 0.5) {
		t.Errorf("expected 0.5, got %f (%v)", pos, err)
	}
	if pos, _ := RangePosition(100, high, low); pos != 1 {
		t.Errorf("expected clamp to 1, got %f", pos)
	}
	if pos, _ := RangePosition(5, 5, 5); pos != 0.5 {
		t.Errorf("expected 0.5 for flat range, got %f", pos)
	}
	if _, err := RangePosition(1, 1, 2); err == nil {
		t.Error("expected error for inverted range")
	}
	if _, _, err := PeriodRange(nil); err == nil {
		t.Error("expected error for empty bars")
	}
}

func TestComputationIsDeterministic(t *testing.T) {
	closes := []float64{5, 3, 8, 1, 9, 2, 7, 4, 6, 10, 11, 3}
	bars := makeBars(closes)
	first := []interface{}{MA20(closes), MA50(closes), DescribeBars(bars), DailyReturns(closes)}
	second := []interface{}{MA20(closes), MA50(closes), DescribeBars(bars), DailyReturns(closes)}
	// NaN != NaN, so compare the formatted form
	for i := range first {
		if a, b := fmtValue(first[i]), fmtValue(second[i]); a != b {
			t.Errorf("run %d differs:\n%s\n%s", i, a, b)
		}
	}
	if !reflect.DeepEqual(DescribeBars(bars).Columns, DescribeBars(bars).Columns) {
		t.Error("columns differ between runs")
	}
}

func fmtValue(v interface{}) string {
	return fmt.Sprintf("%v", v)
}
