package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/golang/freetype/truetype"
)

func main() {
	config := loadConfig()

	bannerFont, err := loadBannerFont(config.FontPath)
	if err != nil {
		log.Fatal(err)
	}

	m, err := newModel(config, bannerFont)
	if err != nil {
		log.Fatal(err)
	}

	if os.Getenv(debugEnv) != "" {
		f, err := tea.LogToFile(debugLogFile, "debug")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
)

type model struct {
	width  int
	height int

	config   *Config
	view     *ViewState
	history  *History
	renderer Renderer

	bannerFont *truetype.Font
	banner     *PixelBuffer
	frame      *Frame

	mode          Mode
	prompt        *paramPrompt
	confirmAction ConfirmAction
	help          bool
	helpScroll    int
	stats         bool

	dragX, dragY int
	dragBefore   viewSnapshot

	errorMessage   string
	successMessage string
}

func newModel(config *Config, bannerFont *truetype.Font) (model, error) {
	view, err := NewViewState(config)
	if err != nil {
		return model{}, err
	}
	return model{
		config:     config,
		view:       view,
		history:    &History{},
		renderer:   Renderer{Workers: config.Workers},
		bannerFont: bannerFont,
		mode:       ModeNormal,
	}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

// canvasSize is the pixel size of the area above the status line.
func (m model) canvasSize() (int, int) {
	rows := m.height - 1
	if rows < 0 {
		rows = 0
	}
	return m.width, rows * 2
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refreshBanner()
		if m.view.Active {
			m.renderFrame()
		}
		return m, nil

	case tea.MouseMsg:
		if m.mode != ModeNormal || m.help || m.stats {
			return m, nil
		}
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.help {
			m.handleHelpKey(msg.String())
			return m, nil
		}
		if m.stats {
			m.stats = false
			return m, nil
		}

		switch m.mode {
		case ModeParamInput:
			return m, m.handlePromptKey(msg)
		case ModeConfirm:
			return m, m.handleConfirmKey(msg.String())
		default:
			return m, m.handleNormalKey(msg)
		}
	}
	return m, nil
}

// apply carries out what a view command asked for. A render runs to
// completion before the next message is read.
func (m *model) apply(effect Effect) {
	switch effect {
	case EffectRender:
		m.renderFrame()
	case EffectInstructions:
		m.refreshBanner()
	}
}

func (m *model) renderFrame() {
	w, h := m.canvasSize()
	frame, err := m.renderer.Render(m.view.Viewport, w, h, m.view.Params, m.view.Budget.Current)
	if err != nil {
		log.Printf("render rejected: %v", err)
		m.errorMessage = err.Error()
		return
	}
	m.frame = frame
	m.errorMessage = ""
}

// refreshBanner re-rasterises the instruction banner when the canvas size
// changed since it was last drawn.
func (m *model) refreshBanner() {
	width, height := m.canvasSize()
	bh := bannerPixelHeight(height)
	if bh == 0 || width < 1 || m.bannerFont == nil {
		m.banner = nil
		return
	}
	if m.banner == nil || m.banner.Width != width || m.banner.Height != bh {
		m.banner = renderBanner(m.bannerFont, instructionBannerText, width, bh, bannerColor)
	}
}

func (m model) View() string {
	if m.width < 1 || m.height < 1 {
		return ""
	}
	if m.help {
		return m.helpView()
	}
	if m.stats {
		return m.statsScreen()
	}

	w, h := m.canvasSize()
	var canvas string
	if m.view.Active && m.frame != nil && m.frame.Pixels.Width == w && m.frame.Pixels.Height == h {
		canvas = strings.Join(renderCells(m.frame.Pixels), "\n")
	} else if m.view.Active {
		canvas = lipgloss.Place(w, h/2, lipgloss.Center, lipgloss.Center,
			errorStyle.Render("Terminal too small to render"))
	} else {
		canvas = instructionScreen(m.banner, w, h/2)
	}

	return canvas + "\n" + m.statusLine()
}

func (m model) statusLine() string {
	line := lipgloss.NewStyle().MaxWidth(m.width)

	switch m.mode {
	case ModeParamInput:
		text := promptStyle.Render(m.prompt.label()) + m.prompt.text[:m.prompt.cursorPos] + "█" + m.prompt.text[m.prompt.cursorPos:]
		if m.prompt.err != "" {
			text = errorStyle.Render(m.prompt.err) + " " + text
		}
		return line.Render(text)
	case ModeConfirm:
		question := "Quit? (y/n)"
		if m.confirmAction == ConfirmReset {
			question = "Reset the view to its starting state? (y/n)"
		}
		return line.Render(promptStyle.Render(question))
	}

	vs := m.view
	status := fmt.Sprintf("%s | c = %s | iter %d/%d | span %.4g | zoom %.2fx",
		vs.Params.Kind, vs.Params.C, vs.Budget.Current, vs.Budget.Cap, vs.Viewport.Width(), vs.ZoomDepth())
	if m.frame != nil && vs.Active {
		status += fmt.Sprintf(" | %s", m.frame.Elapsed.Round(time.Microsecond))
	}
	status = statusStyle.Render(status)

	switch {
	case m.errorMessage != "":
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	case m.successMessage != "":
		status += " | " + successStyle.Render(m.successMessage)
	default:
		status += dimStyle.Render(" | ? for help | q to quit")
	}
	return line.Render(status)
}

func (m model) statsScreen() string {
	return statsView(m.frame, m.width, m.height-1) + "\n" + dimStyle.Render("Iteration histogram | any key to close")
}

var helpLines = []string{
	"Fracterm Help",
	"=============",
	"",
	"View:",
	"-----",
	"  Enter            Start/stop the visualization",
	"  m/Tab            Switch between Julia and Mandelbrot",
	"  Space            Enter a new c (real part, then imaginary part)",
	"                   - Enter confirms each part, Esc cancels",
	"                   - Ctrl+V pastes a number or a whole 're, im' pair",
	"  p                Set c from the clipboard",
	"  y                Copy the current view to the clipboard",
	"  i                Show the iteration histogram of the last frame",
	"",
	"Navigation:",
	"-----------",
	"  +/w/wheel up     Zoom in",
	"  -/s/wheel down   Zoom out",
	"  mouse drag       Pan, the image follows the cursor",
	"  h/←/j/↓/k/↑/l/→  Pan by a few pixels",
	"  Shift+h/j/k/l    Pan 2x faster",
	"  r                Reset to the starting view",
	"",
	"General:",
	"  u                Undo last view change",
	"  U                Redo last undone view change",
	"  Esc              Clear messages",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
	"",
	"Settings are read from ~/.fractrc (key = value).",
}

func (m *model) handleHelpKey(key string) {
	switch key {
	case "j", "down":
		maxScroll := len(helpLines) - m.helpVisibleHeight()
		if maxScroll < 0 {
			maxScroll = 0
		}
		if m.helpScroll < maxScroll {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.help = false
		m.helpScroll = 0
	}
}

func (m model) helpVisibleHeight() int {
	visibleHeight := m.height - 1 // Leave room for status line
	if visibleHeight < 1 {
		visibleHeight = 1
	}
	return visibleHeight
}

func (m model) helpView() string {
	visibleHeight := m.helpVisibleHeight()

	startLine := m.helpScroll
	if startLine > len(helpLines)-visibleHeight {
		startLine = len(helpLines) - visibleHeight
	}
	if startLine < 0 {
		startLine = 0
	}
	endLine := startLine + visibleHeight
	if endLine > len(helpLines) {
		endLine = len(helpLines)
	}

	result := strings.Join(helpLines[startLine:endLine], "\n")
	statusLine := fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return result + "\n" + dimStyle.Render(statusLine)
}
