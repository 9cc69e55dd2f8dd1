package main

import (
	"strings"
	"testing"
)

func TestParseComplex(t *testing.T) {
	tests := []struct {
		input   string
		want    ComplexPoint
		wantErr bool
	}{
		{"-0.7, 0.27015", ComplexPoint{Re: -0.7, Im: 0.27015}, false},
		{"-0.7 0.27015", ComplexPoint{Re: -0.7, Im: 0.27015}, false},
		{"(0.285, 0.01)", ComplexPoint{Re: 0.285, Im: 0.01}, false},
		{"c = (-0.8, 0.156)", ComplexPoint{Re: -0.8, Im: 0.156}, false},
		{"0.3, 0.5i", ComplexPoint{Re: 0.3, Im: 0.5}, false},
		{"-0.7+0.27015i", ComplexPoint{Re: -0.7, Im: 0.27015}, false},
		{"1e3, -2E-2", ComplexPoint{Re: 1000, Im: -0.02}, false},
		{"", ComplexPoint{}, true},
		{"abc", ComplexPoint{}, true},
		{"1, x", ComplexPoint{}, true},
		{"NaN, 1", ComplexPoint{}, true},
		{"1, Inf", ComplexPoint{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseComplex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseComplex(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseComplex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	good := map[string]float64{"0": 0, " -1.5 ": -1.5, "2e-3": 0.002, "+4": 4}
	for in, want := range good {
		if got, err := parseNumber(in); err != nil || got != want {
			t.Errorf("parseNumber(%q) = %g, %v", in, got, err)
		}
	}
	for _, in := range []string{"", "abc", "1.2.3", "NaN", "-Inf", "1,5"} {
		if _, err := parseNumber(in); err == nil {
			t.Errorf("parseNumber(%q) should fail", in)
		}
	}
}

func TestCleanClipboardText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0.5\n", "0.5"},
		{"\r\n\n  -0.7, 0.2\r\nnext", "-0.7, 0.2"},
		{"1\x1b2", "12"},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := cleanClipboardText(tt.in); got != tt.want {
			t.Errorf("cleanClipboardText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDescribeViewRoundTripsParameter(t *testing.T) {
	vs := newTestView(t)
	vs.SetParameter(ComplexPoint{Re: -0.123456789012345, Im: 0.987654321})

	text := describeView(vs)
	if !strings.HasPrefix(text, "kind = julia\n") {
		t.Errorf("unexpected description:\n%s", text)
	}

	var cLine string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "c = ") {
			cLine = line
		}
	}
	c, err := parseComplex(cLine)
	if err != nil {
		t.Fatalf("parseComplex(%q): %v", cLine, err)
	}
	if c != vs.Params.C {
		t.Errorf("round trip gave %v, want %v", c, vs.Params.C)
	}
}
