// Package easing provides monotonic easing curves for scroll animation.
//
// A Function maps normalized elapsed time in [0, 1] to normalized progress in
// [0, 1] with f(0) = 0 and f(1) = 1. The scroll compositor shifts its canvas
// in place, so curves must be monotonic: a curve that backtracks would shift
// pixels the wrong way mid-animation, not merely look odd.
package easing

import "math"

// Function maps normalized time to normalized progress.
type Function func(t float64) float64

// Linear is constant-velocity motion.
func Linear(t float64) float64 { return t }

// QuadInOut accelerates through the first half and decelerates through the
// second, following a quadratic curve.
func QuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// CubicOut decelerates from full speed, easing into the final position.
func CubicOut(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

// ExpoInOut accelerates and decelerates exponentially. This is the default
// curve: it holds the text nearly still at both ends of the move, which reads
// well on small displays.
func ExpoInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	default:
		return (2 - math.Pow(2, -20*t+10)) / 2
	}
}
