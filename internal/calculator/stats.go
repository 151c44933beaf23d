package calculator

import (
	"math"
	"sort"

	"StockLens/internal/model"

	"gonum.org/v1/gonum/stat"
)

// Numeric columns of a bar table, in display order.
var barColumns = []string{"Open", "High", "Low", "Close", "Volume"}

// DescribeBars summarizes every numeric column of the bar table.
func DescribeBars(bars []model.OHLCV) model.Describe {
	cols := make([][]float64, len(barColumns))
	for i := range cols {
		cols[i] = make([]float64, len(bars))
	}
	for j, b := range bars {
		cols[0][j] = b.Open
		cols[1][j] = b.High
		cols[2][j] = b.Low
		cols[3][j] = b.Close
		cols[4][j] = b.Volume
	}

	d := model.Describe{
		Columns: append([]string(nil), barColumns...),
		Stats:   make([]model.ColumnStats, len(barColumns)),
	}
	for i, c := range cols {
		d.Stats[i] = DescribeValues(c)
	}
	return d
}

// DescribeValues computes count, mean, sample std, min, quartiles and max,
// skipping NaN entries. Fields other than Count are NaN when nothing is left,
// and Std is NaN with fewer than two values.
func DescribeValues(values []float64) model.ColumnStats {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}

	nan := math.NaN()
	st := model.ColumnStats{
		Count: len(clean),
		Mean:  nan, Std: nan, Min: nan, P25: nan, P50: nan, P75: nan, Max: nan,
	}
	if len(clean) == 0 {
		return st
	}

	sort.Float64s(clean)
	if len(clean) > 1 {
		st.Mean, st.Std = stat.MeanStdDev(clean, nil)
	} else {
		st.Mean = clean[0]
	}
	st.Min = clean[0]
	st.Max = clean[len(clean)-1]
	st.P25 = quantile(clean, 0.25)
	st.P50 = quantile(clean, 0.50)
	st.P75 = quantile(clean, 0.75)
	return st
}

// quantile interpolates linearly between the order statistics around (n-1)*q.
// sorted must be ascending and non-empty.
func quantile(sorted []float64, q float64) float64 {
	h := float64(len(sorted)-1) * q
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[i]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}
