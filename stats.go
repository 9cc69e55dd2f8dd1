package main

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// iterationHistogram buckets the escaped pixels of a frame by iteration
// count. Pixels that used the whole budget are returned separately.
func iterationHistogram(frame *Frame, buckets int) ([]float64, int) {
	if buckets > frame.Budget {
		buckets = frame.Budget
	}
	counts := make([]float64, buckets)
	inside := 0
	for _, n := range frame.Iterations {
		if n >= frame.Budget {
			inside++
			continue
		}
		counts[n*buckets/frame.Budget]++
	}
	return counts, inside
}

func statsView(frame *Frame, width, height int) string {
	if frame == nil {
		return "No frame rendered yet. Press ENTER to start the visualization."
	}

	counts, inside := iterationHistogram(frame, histogramBuckets)
	total := len(frame.Iterations)
	caption := fmt.Sprintf("escape iterations, %s, budget %d: %d/%d pixels inside (%.1f%%), rendered in %s",
		frame.Params.Kind, frame.Budget, inside, total, 100*float64(inside)/float64(total), frame.Elapsed)

	plotHeight := height - 4
	if plotHeight < 3 {
		plotHeight = 3
	}
	plotWidth := width - 12
	if plotWidth < len(counts) {
		plotWidth = len(counts)
	}
	return asciigraph.Plot(counts,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}
