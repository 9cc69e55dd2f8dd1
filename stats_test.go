package main

import (
	"strings"
	"testing"
)

func TestIterationHistogram(t *testing.T) {
	frame := &Frame{Iterations: []int{0, 1, 2, 3, 4, 4, 1}, Budget: 4}

	counts, inside := iterationHistogram(frame, histogramBuckets)
	if len(counts) != 4 {
		t.Fatalf("got %d buckets, want budget-limited 4", len(counts))
	}
	want := []float64{1, 2, 1, 1}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("bucket %d = %g, want %g", i, counts[i], want[i])
		}
	}
	if inside != 2 {
		t.Errorf("inside = %d, want 2", inside)
	}
}

func TestIterationHistogramWideBuckets(t *testing.T) {
	frame := &Frame{Iterations: []int{0, 49, 50, 99, 100}, Budget: 100}

	counts, inside := iterationHistogram(frame, 2)
	if counts[0] != 2 || counts[1] != 2 || inside != 1 {
		t.Errorf("counts %v inside %d", counts, inside)
	}
}

func TestStatsView(t *testing.T) {
	if got := statsView(nil, 80, 24); !strings.Contains(got, "No frame rendered yet") {
		t.Errorf("nil frame view = %q", got)
	}

	frame, err := Renderer{Workers: 2}.Render(unitView, 30, 20, FractalParams{Kind: Mandelbrot}, 40)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := statsView(frame, 100, 20)
	if !strings.Contains(got, "Mandelbrot, budget 40") {
		t.Errorf("caption missing from:\n%s", got)
	}
}
