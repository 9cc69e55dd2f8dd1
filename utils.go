package main

import (
	"fmt"
	"math"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func writeClipboardText(text string) error {
	return clipboard.WriteAll(text)
}

// cleanClipboardText keeps the first non-empty line and drops control
// characters that terminals sometimes leave in pasted text.
func cleanClipboardText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, line := range strings.Split(text, "\n") {
		line = strings.Map(func(r rune) rune {
			if r < 0x20 && r != '\t' {
				return -1
			}
			return r
		}, line)
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// parseComplex accepts "re, im", "re im", "c = (re, im)" and Go complex
// literals such as "-0.7+0.27015i".
func parseComplex(text string) (ComplexPoint, error) {
	s := strings.TrimSpace(text)
	if i := strings.Index(s, "="); i >= 0 {
		s = strings.TrimSpace(s[i+1:])
	}
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(s, "("), ")"))
	if s == "" {
		return ComplexPoint{}, fmt.Errorf("empty value")
	}

	var parts []string
	if strings.Contains(s, ",") {
		parts = strings.SplitN(s, ",", 2)
	} else {
		parts = strings.Fields(s)
	}
	if len(parts) == 2 {
		re, err := parseNumber(parts[0])
		if err != nil {
			return ComplexPoint{}, err
		}
		im, err := parseNumber(strings.TrimSuffix(strings.TrimSpace(parts[1]), "i"))
		if err != nil {
			return ComplexPoint{}, err
		}
		return ComplexPoint{Re: re, Im: im}, nil
	}

	c, err := strconv.ParseComplex(s, 128)
	if err != nil || math.IsNaN(real(c)) || math.IsNaN(imag(c)) || math.IsInf(real(c), 0) || math.IsInf(imag(c), 0) {
		return ComplexPoint{}, fmt.Errorf("%q is not a complex number", text)
	}
	return ComplexPoint{Re: real(c), Im: imag(c)}, nil
}

// parseNumber parses one finite float.
func parseNumber(text string) (float64, error) {
	s := strings.TrimSpace(text)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return f, nil
}

// describeView renders the view as text for the clipboard.
func describeView(vs *ViewState) string {
	v := vs.Viewport
	return fmt.Sprintf("kind = %s\nc = (%.17g, %.17g)\nre = [%.17g, %.17g]\nim = [%.17g, %.17g]\niterations = %d\n",
		strings.ToLower(vs.Params.Kind.String()),
		vs.Params.C.Re, vs.Params.C.Im,
		v.MinRe, v.MaxRe, v.MinIm, v.MaxIm,
		vs.Budget.Current)
}
