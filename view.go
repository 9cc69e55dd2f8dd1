package main

import (
	"fmt"
	"math"
)

// ViewState is the single owned navigation state. Commands mutate it in
// place and return the Effect the shell must apply.
type ViewState struct {
	Viewport Viewport
	Params   FractalParams
	Budget   IterationBudget

	Active       bool    // fractal shown instead of the instruction screen
	InitialScale float64 // viewport width at startup
	Dragging     bool

	renderOnToggle bool
	home           viewSnapshot
}

// viewSnapshot is the part of ViewState that navigation history restores.
type viewSnapshot struct {
	Viewport Viewport
	Params   FractalParams
	Budget   IterationBudget
}

func NewViewState(cfg *Config) (*ViewState, error) {
	if err := cfg.Viewport.Validate(); err != nil {
		return nil, fmt.Errorf("initial view: %w", err)
	}
	if cfg.Iterations <= 0 {
		return nil, fmt.Errorf("initial view: %w", ErrInvalidBudget)
	}
	limit := cfg.IterationCap
	if limit < cfg.Iterations {
		limit = cfg.Iterations
	}

	vs := &ViewState{
		Viewport: cfg.Viewport,
		Params:   FractalParams{Kind: cfg.Kind, C: cfg.C},
		Budget: IterationBudget{
			Current: cfg.Iterations,
			Initial: cfg.Iterations,
			Cap:     limit,
		},
		Active:         cfg.StartActive,
		InitialScale:   cfg.Viewport.Width(),
		renderOnToggle: cfg.RenderOnToggle,
	}
	vs.home = vs.snapshot()
	return vs, nil
}

func (vs *ViewState) snapshot() viewSnapshot {
	return viewSnapshot{Viewport: vs.Viewport, Params: vs.Params, Budget: vs.Budget}
}

func (vs *ViewState) restore(s viewSnapshot) Effect {
	vs.Viewport = s.Viewport
	vs.Params = s.Params
	vs.Budget = s.Budget
	return vs.renderIfActive()
}

func (vs *ViewState) renderIfActive() Effect {
	if vs.Active {
		return EffectRender
	}
	return EffectNone
}

func (vs *ViewState) ToggleVisualization() Effect {
	vs.Active = !vs.Active
	if vs.Active {
		return EffectRender
	}
	return EffectInstructions
}

// Zoom scales both axes around the current center. factor < 1 zooms in.
func (vs *ViewState) Zoom(factor float64) (Effect, error) {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return EffectNone, fmt.Errorf("zoom by %g: %w", factor, ErrInvalidZoomFactor)
	}

	v := vs.Viewport
	center := v.Center()
	halfW := v.Width() * factor / 2
	halfH := v.Height() * factor / 2
	next := Viewport{
		MinRe: center.Re - halfW,
		MaxRe: center.Re + halfW,
		MinIm: center.Im - halfH,
		MaxIm: center.Im + halfH,
	}
	if err := next.Validate(); err != nil {
		// Zoomed past float64 resolution; keep the last usable view.
		return EffectNone, fmt.Errorf("zoom by %g: %w", factor, err)
	}

	vs.Viewport = next
	vs.Budget.Current = budgetForScale(vs.Budget, vs.InitialScale, next.Width())
	return vs.renderIfActive(), nil
}

// budgetForScale grows the budget with the log of the zoom depth.
func budgetForScale(b IterationBudget, initialScale, currentScale float64) int {
	n := b.Initial + int(math.Floor(math.Log(initialScale/currentScale)*budgetLogMultiplier))
	if n < b.Initial {
		n = b.Initial
	}
	if n > b.Cap {
		n = b.Cap
	}
	return n
}

// Pan moves the view by a cursor motion of (dx, dy) pixels on a
// width x height canvas so that the content follows the cursor. Only a
// drag on the visible fractal asks for a render.
func (vs *ViewState) Pan(dx, dy, width, height int) (Effect, error) {
	if width < minCanvasSide || height < minCanvasSide {
		return EffectNone, fmt.Errorf("pan on %dx%d: %w", width, height, ErrCanvasTooSmall)
	}
	if dx == 0 && dy == 0 {
		return EffectNone, nil
	}

	v := &vs.Viewport
	dRe := float64(dx) / float64(width-1) * v.Width()
	dIm := float64(dy) / float64(height-1) * v.Height()
	v.MinRe -= dRe
	v.MaxRe -= dRe
	v.MinIm += dIm
	v.MaxIm += dIm

	if vs.Dragging && vs.Active {
		return EffectRender, nil
	}
	return EffectNone, nil
}

// Step pans by a discrete keyboard move. Unlike a drag it re-renders
// whenever the fractal is visible.
func (vs *ViewState) Step(dx, dy, width, height int) (Effect, error) {
	if _, err := vs.Pan(dx, dy, width, height); err != nil {
		return EffectNone, err
	}
	if dx == 0 && dy == 0 {
		return EffectNone, nil
	}
	return vs.renderIfActive(), nil
}

func (vs *ViewState) BeginDrag() {
	vs.Dragging = true
}

func (vs *ViewState) EndDrag() {
	vs.Dragging = false
}

// SetParameter replaces the Julia constant verbatim.
func (vs *ViewState) SetParameter(c ComplexPoint) Effect {
	vs.Params.C = c
	return vs.renderIfActive()
}

func (vs *ViewState) ToggleKind() Effect {
	if vs.Params.Kind == Julia {
		vs.Params.Kind = Mandelbrot
	} else {
		vs.Params.Kind = Julia
	}
	if vs.renderOnToggle {
		return vs.renderIfActive()
	}
	return EffectNone
}

// Reset returns to the startup viewport, parameters and budget.
func (vs *ViewState) Reset() Effect {
	return vs.restore(vs.home)
}

// ZoomDepth is how many times narrower the view is than at startup.
func (vs *ViewState) ZoomDepth() float64 {
	return vs.InitialScale / vs.Viewport.Width()
}
