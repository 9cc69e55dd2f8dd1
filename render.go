package main

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// bandsPerWorker oversplits the rows so slow bands (deep inside the set)
// don't leave the other workers idle.
const bandsPerWorker = 4

// Renderer computes whole frames on a bounded pool of goroutines.
type Renderer struct {
	Workers int // 0 means runtime.NumCPU()
}

type rowBand struct {
	y0, y1 int
}

func (r Renderer) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.NumCPU()
}

// Render evaluates every pixel of a width x height canvas over v. Each band
// of rows writes a disjoint slice of the buffers, so the only
// synchronisation is the final Wait.
func (r Renderer) Render(v Viewport, width, height int, params FractalParams, budget int) (*Frame, error) {
	if width < minCanvasSide || height < minCanvasSide {
		return nil, fmt.Errorf("render %dx%d: %w", width, height, ErrCanvasTooSmall)
	}
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if budget <= 0 {
		return nil, fmt.Errorf("render with budget %d: %w", budget, ErrInvalidBudget)
	}

	start := time.Now()
	frame := &Frame{
		Pixels:     NewPixelBuffer(width, height),
		Iterations: make([]int, width*height),
		Params:     params,
		Budget:     budget,
	}

	workers := r.workers()
	var g errgroup.Group
	g.SetLimit(workers)
	for _, band := range splitRows(height, workers*bandsPerWorker) {
		band := band
		g.Go(func() error {
			renderBand(frame, v, params, budget, band)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	frame.Elapsed = time.Since(start)
	log.Printf("render %s %dx%d budget=%d workers=%d took %s", params.Kind, width, height, budget, workers, frame.Elapsed)
	return frame, nil
}

func renderBand(frame *Frame, v Viewport, params FractalParams, budget int, band rowBand) {
	w, h := frame.Pixels.Width, frame.Pixels.Height
	for y := band.y0; y < band.y1; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			n := evaluatePixel(params, budget, pixelToComplex(v, w, h, x, y))
			frame.Iterations[row+x] = n
			frame.Pixels.Pix[row+x] = ColorOf(n, budget)
		}
	}
}

// pixelToComplex maps a pixel to the plane. Row 0 is the top edge, i.e.
// the maximum imaginary part.
func pixelToComplex(v Viewport, width, height, x, y int) ComplexPoint {
	return ComplexPoint{
		Re: v.MinRe + (float64(x)/float64(width-1))*(v.MaxRe-v.MinRe),
		Im: v.MaxIm - (float64(y)/float64(height-1))*(v.MaxIm-v.MinIm),
	}
}

// splitRows cuts [0, height) into at most n contiguous bands. The last
// bands are one row shorter when height is not divisible by n.
func splitRows(height, n int) []rowBand {
	if n <= 0 {
		panic("band count must be positive")
	}
	if height <= 0 {
		return nil
	}
	if n > height {
		n = height
	}

	bands := make([]rowBand, 0, n)
	size, extra := height/n, height%n
	y := 0
	for i := 0; i < n; i++ {
		rows := size
		if i < extra {
			rows++
		}
		bands = append(bands, rowBand{y0: y, y1: y + rows})
		y += rows
	}
	return bands
}
