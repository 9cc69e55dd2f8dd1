package main

import "math"

// ColorOf maps an iteration count to the polynomial palette. Points that
// used the whole budget are black. budget must be positive.
func ColorOf(iterations, budget int) RGB {
	if iterations == budget {
		return Black
	}
	t := float64(iterations) / float64(budget)
	u := 1 - t
	return RGB{
		R: channel(9 * u * t * t * t),
		G: channel(15 * u * u * t * t),
		B: channel(8.5 * u * u * u * t),
	}
}

func channel(v float64) uint8 {
	v = math.Round(v * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
