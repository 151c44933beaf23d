package model

// ColumnStats is the descriptive summary of one numeric column.
type ColumnStats struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	P25   float64
	P50   float64
	P75   float64
	Max   float64
}

// Describe holds ColumnStats for each numeric column, in column order.
type Describe struct {
	Columns []string
	Stats   []ColumnStats
}

// Column looks up the stats of a column by name.
func (d Describe) Column(name string) (ColumnStats, bool) {
	for i, c := range d.Columns {
		if c == name {
			return d.Stats[i], true
		}
	}
	return ColumnStats{}, false
}

// Analysis is everything computed from one PriceSeries.
type Analysis struct {
	Series     *PriceSeries
	MA20       Series
	MA50       Series
	Returns    Series
	Describe   Describe
	Crossovers []Crossover

	LastClose            float64
	AnnualizedVolatility float64
	RSI14                float64
	PeriodHigh           float64
	PeriodLow            float64
	RangePosition        float64 // 0.0 ~ 1.0
}

// Bullish returns the bullish crossovers, oldest first.
func (a *Analysis) Bullish() []Crossover { return a.filterCrossovers(true) }

// Bearish returns the bearish crossovers, oldest first.
func (a *Analysis) Bearish() []Crossover { return a.filterCrossovers(false) }

func (a *Analysis) filterCrossovers(bullish bool) []Crossover {
	var out []Crossover
	for _, c := range a.Crossovers {
		if c.Bullish == bullish {
			out = append(out, c)
		}
	}
	return out
}
