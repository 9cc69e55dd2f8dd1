package main

import "testing"

func TestColorOfInsideIsBlack(t *testing.T) {
	for _, budget := range []int{1, 2, 50, 100, 1000} {
		if got := ColorOf(budget, budget); got != Black {
			t.Errorf("ColorOf(%d, %d) = %v, want black", budget, budget, got)
		}
	}
}

func TestColorOfZeroIterations(t *testing.T) {
	for _, budget := range []int{1, 50, 1000} {
		if got := ColorOf(0, budget); got != (RGB{}) {
			t.Errorf("ColorOf(0, %d) = %v, want (0,0,0)", budget, got)
		}
	}
}

func TestColorOfPalette(t *testing.T) {
	tests := []struct {
		name       string
		iterations int
		budget     int
		want       RGB
	}{
		{"Half budget", 1, 2, RGB{R: 143, G: 239, B: 135}},
		{"Quarter budget", 1, 4, RGB{R: 27, G: 134, B: 229}},
		{"Three quarters", 3, 4, RGB{R: 242, G: 134, B: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorOf(tt.iterations, tt.budget); got != tt.want {
				t.Errorf("ColorOf(%d, %d) = %+v, want %+v", tt.iterations, tt.budget, got, tt.want)
			}
		})
	}
}

func TestChannelClamps(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{1.5, 255},
	}
	for _, tt := range tests {
		if got := channel(tt.in); got != tt.want {
			t.Errorf("channel(%g) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
