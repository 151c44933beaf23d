package calculator

import (
	"math"
	"testing"
)

func TestDescribeValues_KnownSeries(t *testing.T) {
	st := DescribeValues([]float64{10, 20, 30})
	if st.Count != 3 {
		t.Errorf("expected count 3, got %d", st.Count)
	}
	checks := []struct {
		name      string
		got, want float64
	}{
		{"mean", st.Mean, 20},
		{"std", st.Std, 10},
		{"min", st.Min, 10},
		{"25%", st.P25, 15},
		{"50%", st.P50, 20},
		{"75%", st.P75, 25},
		{"max", st.Max, 30},
	}
	for _, c := range checks {
		if !approxEqual(c.got, c.want) {
			t.Errorf("%s: expected %f, got %f", c.name, c.want, c.got)
		}
	}
}

func TestDescribeValues_Empty(t *testing.T) {
	st := DescribeValues(nil)
	if st.Count != 0 {
		t.Errorf("expected count 0, got %d", st.Count)
	}
	for name, v := range map[string]float64{
		"mean": st.Mean, "std": st.Std, "min": st.Min, "max": st.Max, "50%": st.P50,
	} {
		if !math.IsNaN(v) {
			t.Errorf("%s: expected NaN, got %f", name, v)
		}
	}
}

func TestDescribeValues_SingleValue(t *testing.T) {
	st := DescribeValues([]float64{7})
	if st.Count != 1 || st.Mean != 7 || st.Min != 7 || st.Max != 7 || st.P75 != 7 {
		t.Errorf("unexpected stats for single value: %+v", st)
	}
	if !math.IsNaN(st.Std) {
		t.Errorf("expected NaN std for one value, got %f", st.Std)
	}
}

func TestDescribeValues_SkipsNaN(t *testing.T) {
	st := DescribeValues([]float64{math.NaN(), 1, 3, math.NaN()})
	if st.Count != 2 {
		t.Errorf("expected count 2, got %d", st.Count)
	}
	if !approxEqual(st.Mean, 2) {
		t.Errorf("expected mean 2, got %f", st.Mean)
	}
}

func TestDescribeValues_UnsortedInput(t *testing.T) {
	input := []float64{4, 1, 3, 2}
	st := DescribeValues(input)
	if !approxEqual(st.P25, 1.75) || !approxEqual(st.P50, 2.5) || !approxEqual(st.P75, 3.25) {
		t.Errorf("unexpected quartiles: %f %f %f", st.P25, st.P50, st.P75)
	}
	if input[0] != 4 {
		t.Error("input slice must not be reordered")
	}
}

func TestDescribeBars_Columns(t *testing.T) {
	bars := makeBars([]float64{10, 20, 30})
	d := DescribeBars(bars)
	want := []string{"Open", "High", "Low", "Close", "Volume"}
	if len(d.Columns) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(d.Columns))
	}
	for i, c := range want {
		if d.Columns[i] != c {
			t.Errorf("column %d: expected %s, got %s", i, c, d.Columns[i])
		}
	}
	high, ok := d.Column("High")
	if !ok {
		t.Fatal("expected High column")
	}
	if !approxEqual(high.Mean, 21) || !approxEqual(high.Max, 31) {
		t.Errorf("unexpected High stats: %+v", high)
	}
	vol, _ := d.Column("Volume")
	if !approxEqual(vol.Std, 0) {
		t.Errorf("expected zero volume std, got %f", vol.Std)
	}
}

func TestDescribeBars_Empty(t *testing.T) {
	d := DescribeBars(nil)
	for i, st := range d.Stats {
		if st.Count != 0 {
			t.Errorf("column %s: expected count 0, got %d", d.Columns[i], st.Count)
		}
	}
}
