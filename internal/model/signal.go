package model

import "time"

// Crossover marks a bar where the short moving average crossed the long one.
type Crossover struct {
	Time    time.Time
	Close   float64
	Bullish bool // short crossed above long
}
