package main

import "unicode/utf8"

const invalidNumberMessage = "Invalid input. Please enter a numeric value."

type promptStage int

const (
	stageReal promptStage = iota
	stageImag
)

// paramPrompt collects the two parts of c. Navigation is suspended while
// it is open; it resumes once both parts parse or the prompt is cancelled.
type paramPrompt struct {
	stage     promptStage
	text      string
	cursorPos int // byte offset, always on a rune boundary
	re        float64
	err       string
}

func newParamPrompt() *paramPrompt {
	return &paramPrompt{}
}

func (p *paramPrompt) label() string {
	if p.stage == stageReal {
		return "Enter a new value for the real part of c: "
	}
	return "Enter a new value for the imaginary part of c: "
}

// submit parses the current input. Bad input keeps the stage and clears
// the line so the user is asked again.
func (p *paramPrompt) submit() (ComplexPoint, bool) {
	f, err := parseNumber(p.text)
	p.text = ""
	p.cursorPos = 0
	if err != nil {
		p.err = invalidNumberMessage
		return ComplexPoint{}, false
	}

	p.err = ""
	if p.stage == stageReal {
		p.re = f
		p.stage = stageImag
		return ComplexPoint{}, false
	}
	return ComplexPoint{Re: p.re, Im: f}, true
}

// paste accepts a whole complex value at either stage, or a single number
// inserted at the cursor.
func (p *paramPrompt) paste(text string) (ComplexPoint, bool) {
	text = cleanClipboardText(text)
	if _, err := parseNumber(text); err == nil {
		p.err = ""
		p.insert(text)
		return ComplexPoint{}, false
	}
	if c, err := parseComplex(text); err == nil && p.stage == stageReal {
		p.err = ""
		return c, true
	}
	p.err = invalidNumberMessage
	return ComplexPoint{}, false
}

func (p *paramPrompt) insert(s string) {
	p.text = p.text[:p.cursorPos] + s + p.text[p.cursorPos:]
	p.cursorPos += len(s)
}

func (p *paramPrompt) backspace() {
	if p.cursorPos > 0 {
		_, size := utf8.DecodeLastRuneInString(p.text[:p.cursorPos])
		p.text = p.text[:p.cursorPos-size] + p.text[p.cursorPos:]
		p.cursorPos -= size
	}
}

func (p *paramPrompt) deleteForward() {
	if p.cursorPos < len(p.text) {
		_, size := utf8.DecodeRuneInString(p.text[p.cursorPos:])
		p.text = p.text[:p.cursorPos] + p.text[p.cursorPos+size:]
	}
}

func (p *paramPrompt) left() {
	if p.cursorPos > 0 {
		_, size := utf8.DecodeLastRuneInString(p.text[:p.cursorPos])
		p.cursorPos -= size
	}
}

func (p *paramPrompt) right() {
	if p.cursorPos < len(p.text) {
		_, size := utf8.DecodeRuneInString(p.text[p.cursorPos:])
		p.cursorPos += size
	}
}
