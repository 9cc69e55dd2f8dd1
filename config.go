package main

import (
	"bufio"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	Kind           FractalKind
	C              ComplexPoint
	Viewport       Viewport
	Iterations     int
	IterationCap   int
	ZoomIn         float64
	ZoomOut        float64
	PanStep        int
	Workers        int
	FontPath       string
	StartActive    bool
	RenderOnToggle bool
	Confirmations  bool
}

func defaultConfig() *Config {
	return &Config{
		Kind: Julia,
		C:    ComplexPoint{Re: defaultCRe, Im: defaultCIm},
		Viewport: Viewport{
			MinRe: -defaultBound,
			MaxRe: defaultBound,
			MinIm: -defaultBound,
			MaxIm: defaultBound,
		},
		Iterations:     defaultIterations,
		IterationCap:   defaultIterationCap,
		ZoomIn:         defaultZoomIn,
		ZoomOut:        defaultZoomOut,
		PanStep:        defaultPanStep,
		RenderOnToggle: true,
		Confirmations:  true,
	}
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}

	configPath := filepath.Join(homeDir, ".fractrc")
	file, err := os.Open(configPath)
	if err != nil {
		return defaultConfig()
	}
	defer file.Close()

	config := parseConfig(file, homeDir)
	log.Printf("loaded config from %s", configPath)
	return config
}

// parseConfig reads key = value lines. Unknown keys and unparsable values
// are skipped so a bad line never prevents startup.
func parseConfig(r io.Reader, homeDir string) *Config {
	config := defaultConfig()
	bounds := config.Viewport

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "kind", "fractal":
			switch strings.ToLower(value) {
			case "julia":
				config.Kind = Julia
			case "mandelbrot", "mandel":
				config.Kind = Mandelbrot
			}
		case "c_re", "cre":
			setFloat(&config.C.Re, value)
		case "c_im", "cim":
			setFloat(&config.C.Im, value)
		case "min_re":
			setFloat(&bounds.MinRe, value)
		case "max_re":
			setFloat(&bounds.MaxRe, value)
		case "min_im":
			setFloat(&bounds.MinIm, value)
		case "max_im":
			setFloat(&bounds.MaxIm, value)
		case "iterations", "initial_iterations":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.Iterations = n
			}
		case "max_iterations", "iteration_cap":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.IterationCap = n
			}
		case "zoom_in":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
				config.ZoomIn = f
			}
		case "zoom_out":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
				config.ZoomOut = f
			}
		case "pan_step":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.PanStep = n
			}
		case "workers":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				config.Workers = n
			}
		case "font":
			if strings.HasPrefix(value, "~") {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			config.FontPath = value
		case "start_active", "autostart":
			config.StartActive = strings.ToLower(value) == "true"
		case "render_on_toggle":
			config.RenderOnToggle = strings.ToLower(value) == "true"
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		}
	}

	if bounds.Validate() == nil {
		config.Viewport = bounds
	}
	if config.IterationCap < config.Iterations {
		config.IterationCap = config.Iterations
	}
	return config
}

func setFloat(dst *float64, value string) {
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		*dst = f
	}
}
