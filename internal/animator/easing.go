package animator

import "time"

// EaseOutQuart maps linear progress in [0,1] to 1-(1-p)^4.
func EaseOutQuart(progress float64) float64 {
	q := 1 - progress
	q2 := q * q
	return 1 - q2*q2
}

// Progress returns elapsed/duration clamped to [0,1].
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(duration)
}
