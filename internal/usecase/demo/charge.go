package demo

import (
	"math"
	"time"
)

const (
	DefaultPerHourRate = 20.0
	DefaultMinimumFare = 10.0
)

// Charge bills every started hour at perHourRate, never less than
// minimumFare. Elapsed time counts in whole minutes and is clamped at zero.
func Charge(elapsed time.Duration, perHourRate, minimumFare float64) float64 {
	minutes := math.Floor(elapsed.Minutes())
	if minutes < 0 {
		minutes = 0
	}

	return math.Max(minimumFare, math.Ceil(minutes/60)*perHourRate)
}
