package srs

import "math"

// Ease factor bounds. Every value read from or written to storage passes through ClampEaseFactor.
const (
	MinEaseFactor     = 1.3
	MaxEaseFactor     = 4.0
	DefaultEaseFactor = 2.5

	easeScale = 100
)

// ClampEaseFactor bounds f to [MinEaseFactor, MaxEaseFactor]. NaN maps to DefaultEaseFactor.
func ClampEaseFactor(f float64) float64 {
	if math.IsNaN(f) {
		return DefaultEaseFactor
	}
	return min(max(f, MinEaseFactor), MaxEaseFactor)
}

// EaseToStored converts a real ease factor to its fixed-point form (x100, rounded).
func EaseToStored(f float64) int {
	return int(math.Round(ClampEaseFactor(f) * easeScale))
}

// EaseFromStored converts a fixed-point ease factor back, clamping legacy or malformed values.
func EaseFromStored(v int) float64 {
	return ClampEaseFactor(float64(v) / easeScale)
}
