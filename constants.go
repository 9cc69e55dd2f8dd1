package main

import "errors"

type Mode int

const (
	ModeNormal Mode = iota
	ModeParamInput
	ModeConfirm
)

type FractalKind int

const (
	Julia FractalKind = iota
	Mandelbrot
)

func (k FractalKind) String() string {
	switch k {
	case Mandelbrot:
		return "Mandelbrot"
	case Julia:
		return "Julia"
	default:
		return "unknown"
	}
}

// Effect tells the shell what a view command requires on screen.
type Effect int

const (
	EffectNone Effect = iota
	EffectRender
	EffectInstructions
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmReset
)

type ActionType int

const (
	ActionZoom ActionType = iota
	ActionPan
	ActionSetParameter
	ActionToggleKind
	ActionReset
)

func (a ActionType) String() string {
	switch a {
	case ActionZoom:
		return "zoom"
	case ActionPan:
		return "pan"
	case ActionSetParameter:
		return "parameter"
	case ActionToggleKind:
		return "kind"
	case ActionReset:
		return "reset"
	default:
		return "action"
	}
}

const (
	defaultCRe            = -0.7
	defaultCIm            = 0.27015
	defaultIterations     = 100
	defaultIterationCap   = 1000
	defaultZoomIn         = 0.9
	defaultZoomOut        = 1.1
	defaultPanStep        = 8
	defaultBound          = 2.0
	budgetLogMultiplier   = 20
	minCanvasSide         = 2
	historyLimit          = 256
	histogramBuckets      = 64
	debugLogFile          = "fracterm.log"
	debugEnv              = "FRACTERM_DEBUG"
	instructionBannerText = "Fractals!!"
)

var (
	ErrCanvasTooSmall     = errors.New("canvas must be at least 2x2 pixels")
	ErrDegenerateViewport = errors.New("degenerate viewport")
	ErrInvalidZoomFactor  = errors.New("zoom factor must be positive and finite")
	ErrInvalidBudget      = errors.New("iteration budget must be positive")
)
