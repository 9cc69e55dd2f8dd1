package main

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var bannerColor = RGB{G: 255}

// loadBannerFont parses the TTF at path, or the embedded Go Mono when path
// is empty.
func loadBannerFont(path string) (*truetype.Font, error) {
	fontData := gomono.TTF
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("can't load font: %w", err)
		}
		fontData = data
	}

	ttfFont, err := truetype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	return ttfFont, nil
}

// renderBanner rasterises text centred on a black width x height buffer,
// shrinking the face until the text fits horizontally.
func renderBanner(ttfFont *truetype.Font, text string, width, height int, fg RGB) *PixelBuffer {
	if width < 1 || height < 1 {
		return NewPixelBuffer(0, 0)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.Black)
	dc.Clear()

	fontSize := float64(height) * 0.8
	dc.SetFontFace(bannerFace(ttfFont, fontSize))
	if textWidth, _ := dc.MeasureString(text); textWidth > float64(width) {
		fontSize *= float64(width) / textWidth
		dc.SetFontFace(bannerFace(ttfFont, fontSize))
	}

	dc.SetRGB255(int(fg.R), int(fg.G), int(fg.B))
	dc.DrawStringAnchored(text, float64(width)/2, float64(height)/2, 0.5, 0.5)

	return pixelBufferFromImage(dc.Image())
}

func bannerFace(ttfFont *truetype.Font, size float64) font.Face {
	return truetype.NewFace(ttfFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func pixelBufferFromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	buf := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
			buf.Set(x, y, RGB{R: c.R, G: c.G, B: c.B})
		}
	}
	return buf
}
