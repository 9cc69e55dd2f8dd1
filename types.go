package main

import (
	"fmt"
	"time"
)

type ComplexPoint struct {
	Re, Im float64
}

func (p ComplexPoint) String() string {
	return fmt.Sprintf("(%g, %g)", p.Re, p.Im)
}

// Viewport is the rectangle of the complex plane mapped onto the canvas.
type Viewport struct {
	MinRe, MaxRe float64
	MinIm, MaxIm float64
}

func (v Viewport) Width() float64 {
	return v.MaxRe - v.MinRe
}

func (v Viewport) Height() float64 {
	return v.MaxIm - v.MinIm
}

func (v Viewport) Center() ComplexPoint {
	return ComplexPoint{Re: (v.MinRe + v.MaxRe) / 2, Im: (v.MinIm + v.MaxIm) / 2}
}

// Validate rejects degenerate or inverted rectangles.
func (v Viewport) Validate() error {
	if !(v.MaxRe > v.MinRe) || !(v.MaxIm > v.MinIm) {
		return fmt.Errorf("%w: re [%g, %g] im [%g, %g]", ErrDegenerateViewport, v.MinRe, v.MaxRe, v.MinIm, v.MaxIm)
	}
	return nil
}

type FractalParams struct {
	Kind FractalKind
	// C is the Julia constant. Mandelbrot ignores it but it is kept so
	// toggling back to Julia restores the last entered value.
	C ComplexPoint
}

type IterationBudget struct {
	Current int
	Initial int
	Cap     int
}

type RGB struct {
	R, G, B uint8
}

var Black = RGB{}

// PixelBuffer is a row-major width x height grid of colors.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []RGB
}

func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
}

func (b *PixelBuffer) At(x, y int) RGB {
	return b.Pix[y*b.Width+x]
}

func (b *PixelBuffer) Set(x, y int, c RGB) {
	b.Pix[y*b.Width+x] = c
}

// Frame is one completed render.
type Frame struct {
	Pixels     *PixelBuffer
	Iterations []int // raw evaluator result per pixel, same layout as Pixels.Pix
	Params     FractalParams
	Budget     int
	Elapsed    time.Duration
}
