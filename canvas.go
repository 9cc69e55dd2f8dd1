package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Each terminal cell shows two vertically stacked pixels: the glyph's
// foreground is the upper pixel and the background the lower one.
const upperHalfBlock = "▀"

const instructionText = "Press ENTER to start and end the visualization.\n" +
	"To change the c-values, press SPACE and type them below.\n" +
	"Use '+' and '-' to zoom in and out, drag with the mouse to pan.\n" +
	"Press 'm' to switch between Julia and Mandelbrot, '?' for help."

var instructionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")).Bold(true)

func hexColor(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// renderCells turns buf into terminal lines. Runs of identical cells on a
// line share one styled span to keep the escape-sequence volume down.
func renderCells(buf *PixelBuffer) []string {
	lines := make([]string, 0, (buf.Height+1)/2)
	var line strings.Builder
	for y := 0; y < buf.Height; y += 2 {
		line.Reset()
		cell := func(x int) (RGB, RGB) {
			bottom := Black
			if y+1 < buf.Height {
				bottom = buf.At(x, y+1)
			}
			return buf.At(x, y), bottom
		}

		for x := 0; x < buf.Width; {
			top, bottom := cell(x)
			run := 1
			for x+run < buf.Width {
				t, b := cell(x + run)
				if t != top || b != bottom {
					break
				}
				run++
			}
			style := lipgloss.NewStyle().Foreground(hexColor(top)).Background(hexColor(bottom))
			line.WriteString(style.Render(strings.Repeat(upperHalfBlock, run)))
			x += run
		}
		lines = append(lines, line.String())
	}
	return lines
}

// bannerPixelHeight picks an even banner height that leaves room for the
// instruction text, or 0 when the canvas is too short for one.
func bannerPixelHeight(canvasHeight int) int {
	h := canvasHeight / 3
	if h > 20 {
		h = 20
	}
	h -= h % 2
	if h < 6 {
		return 0
	}
	return h
}

// instructionScreen is the Idle canvas: the rasterised banner above the
// key instructions, centred in a width x rows block of cells.
func instructionScreen(banner *PixelBuffer, width, rows int) string {
	var parts []string
	if banner != nil && banner.Height > 0 {
		parts = append(parts, strings.Join(renderCells(banner), "\n"), "")
	}
	parts = append(parts, instructionStyle.Render(instructionText))

	block := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(width, rows, lipgloss.Center, lipgloss.Center, block)
}
