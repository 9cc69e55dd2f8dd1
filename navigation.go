package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEscape {
		m.errorMessage = ""
		m.successMessage = ""
		return nil
	}

	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		if !m.config.Confirmations {
			return tea.Quit
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmQuit
	case "+", "=", "w":
		m.zoom(m.config.ZoomIn)
	case "-", "_", "s":
		m.zoom(m.config.ZoomOut)
	case "enter":
		m.apply(m.view.ToggleVisualization())
	case " ":
		m.openPrompt()
	case "m", "tab":
		m.record(ActionToggleKind, func() Effect { return m.view.ToggleKind() })
		m.successMessage = fmt.Sprintf("%s mode", m.view.Params.Kind)
	case "h", "left", "H", "shift+left",
		"l", "right", "L", "shift+right",
		"k", "up", "K", "shift+up",
		"j", "down", "J", "shift+down":
		m.handlePan(key, m.getMoveSpeed(key))
	case "r":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmReset
			return nil
		}
		m.record(ActionReset, m.view.Reset)
	case "u":
		if action, effect, ok := m.history.undo(m.view); ok {
			m.successMessage = fmt.Sprintf("Undid %s", action.Type)
			m.apply(effect)
		}
	case "U":
		if action, effect, ok := m.history.redo(m.view); ok {
			m.successMessage = fmt.Sprintf("Redid %s", action.Type)
			m.apply(effect)
		}
	case "y":
		if err := writeClipboardText(describeView(m.view)); err != nil {
			m.errorMessage = fmt.Sprintf("clipboard: %v", err)
		} else {
			m.successMessage = "View copied to clipboard"
		}
	case "p":
		m.pasteParameter()
	case "i":
		m.stats = true
	case "?":
		m.help = !m.help
	}
	return nil
}

// record runs a view command and stores the change in the history.
func (m *model) record(actionType ActionType, command func() Effect) {
	before := m.view.snapshot()
	effect := command()
	m.history.record(actionType, before, m.view.snapshot())
	m.apply(effect)
}

func (m *model) zoom(factor float64) {
	before := m.view.snapshot()
	effect, err := m.view.Zoom(factor)
	if err != nil {
		log.Printf("zoom: %v", err)
		m.errorMessage = err.Error()
		return
	}
	m.history.record(ActionZoom, before, m.view.snapshot())
	m.apply(effect)
}

func (m *model) handlePan(key string, speed int) {
	step := m.config.PanStep * speed
	dx, dy := 0, 0
	switch key {
	case "h", "left", "H", "shift+left":
		dx = step
	case "l", "right", "L", "shift+right":
		dx = -step
	case "k", "up", "K", "shift+up":
		dy = step
	case "j", "down", "J", "shift+down":
		dy = -step
	}

	w, h := m.canvasSize()
	before := m.view.snapshot()
	effect, err := m.view.Step(dx, dy, w, h)
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.history.record(ActionPan, before, m.view.snapshot())
	m.apply(effect)
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

// handleMouse dispatches on the action and button. A drag reports the held
// button together with a motion action.
func (m *model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.view.BeginDrag()
			m.dragX, m.dragY = msg.X, msg.Y
			m.dragBefore = m.view.snapshot()
		case tea.MouseButtonWheelUp:
			m.zoom(m.config.ZoomIn)
		case tea.MouseButtonWheelDown:
			m.zoom(m.config.ZoomOut)
		}
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft || !m.view.Dragging || !m.view.Active {
			return
		}
		// A cell is one pixel wide and two pixels tall.
		dx, dy := msg.X-m.dragX, (msg.Y-m.dragY)*2
		m.dragX, m.dragY = msg.X, msg.Y
		w, h := m.canvasSize()
		effect, err := m.view.Pan(dx, dy, w, h)
		if err != nil {
			m.errorMessage = err.Error()
			return
		}
		m.apply(effect)
	case tea.MouseActionRelease:
		if m.view.Dragging {
			m.view.EndDrag()
			m.history.record(ActionPan, m.dragBefore, m.view.snapshot())
		}
	}
}

func (m *model) openPrompt() {
	m.mode = ModeParamInput
	m.prompt = newParamPrompt()
	m.successMessage = ""
}

func (m *model) closePrompt() {
	m.mode = ModeNormal
	m.prompt = nil
}

func (m *model) setParameter(c ComplexPoint) {
	m.closePrompt()
	m.record(ActionSetParameter, func() Effect { return m.view.SetParameter(c) })
	m.successMessage = fmt.Sprintf("c = %s", c)
}

func (m *model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEscape:
		m.closePrompt()
		m.successMessage = "c unchanged"
	case tea.KeyEnter:
		if c, done := m.prompt.submit(); done {
			m.setParameter(c)
		}
	case tea.KeyBackspace:
		m.prompt.backspace()
	case tea.KeyDelete:
		m.prompt.deleteForward()
	case tea.KeyLeft:
		m.prompt.left()
	case tea.KeyRight:
		m.prompt.right()
	case tea.KeyCtrlV:
		text, err := readClipboardText()
		if err != nil {
			m.prompt.err = fmt.Sprintf("clipboard: %v", err)
			return nil
		}
		if c, done := m.prompt.paste(text); done {
			m.setParameter(c)
		}
	case tea.KeyRunes:
		m.prompt.insert(string(msg.Runes))
	}
	return nil
}

// pasteParameter sets c straight from the clipboard.
func (m *model) pasteParameter() {
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = fmt.Sprintf("clipboard: %v", err)
		return
	}
	c, err := parseComplex(cleanClipboardText(text))
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.setParameter(c)
}

func (m *model) handleConfirmKey(key string) tea.Cmd {
	switch key {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmQuit:
			return tea.Quit
		case ConfirmReset:
			m.record(ActionReset, m.view.Reset)
			m.successMessage = "View reset"
		}
	case "ctrl+c":
		return tea.Quit
	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return nil
}
