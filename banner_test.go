package main

import (
	"path/filepath"
	"testing"
)

func TestLoadBannerFont(t *testing.T) {
	if _, err := loadBannerFont(""); err != nil {
		t.Fatalf("embedded font: %v", err)
	}
	if _, err := loadBannerFont(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Errorf("missing font file should fail")
	}
}

func TestRenderBanner(t *testing.T) {
	ttfFont, err := loadBannerFont("")
	if err != nil {
		t.Fatalf("loadBannerFont: %v", err)
	}

	tests := []struct {
		name          string
		width, height int
	}{
		{"Wide", 120, 20},
		{"Narrow", 30, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := renderBanner(ttfFont, instructionBannerText, tt.width, tt.height, bannerColor)
			if buf.Width != tt.width || buf.Height != tt.height {
				t.Fatalf("banner is %dx%d, want %dx%d", buf.Width, buf.Height, tt.width, tt.height)
			}

			lit := 0
			for _, p := range buf.Pix {
				if p.R != 0 || p.B != 0 {
					t.Fatalf("banner pixel %v is not a shade of green", p)
				}
				if p.G > 0 {
					lit++
				}
			}
			if lit == 0 {
				t.Errorf("banner has no visible text")
			}
		})
	}
}

func TestRenderBannerEmptyCanvas(t *testing.T) {
	ttfFont, err := loadBannerFont("")
	if err != nil {
		t.Fatalf("loadBannerFont: %v", err)
	}
	if buf := renderBanner(ttfFont, "x", 0, 10, bannerColor); len(buf.Pix) != 0 {
		t.Errorf("zero-width banner has %d pixels", len(buf.Pix))
	}
}
