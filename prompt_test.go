package main

import (
	"testing"
	"unicode/utf8"
)

func TestParamPromptTwoStages(t *testing.T) {
	p := newParamPrompt()
	if p.label() != "Enter a new value for the real part of c: " {
		t.Errorf("label = %q", p.label())
	}

	p.insert("0.3")
	if _, done := p.submit(); done {
		t.Fatalf("prompt finished after the real part")
	}
	if p.stage != stageImag || p.text != "" {
		t.Fatalf("stage %v text %q after real part", p.stage, p.text)
	}
	if p.label() != "Enter a new value for the imaginary part of c: " {
		t.Errorf("label = %q", p.label())
	}

	p.insert("0.5")
	c, done := p.submit()
	if !done {
		t.Fatalf("prompt did not finish after the imaginary part")
	}
	if c != (ComplexPoint{Re: 0.3, Im: 0.5}) {
		t.Errorf("c = %v", c)
	}
}

func TestParamPromptRepromptsOnBadInput(t *testing.T) {
	tests := []struct {
		name  string
		stage promptStage
	}{
		{"Real part", stageReal},
		{"Imaginary part", stageImag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newParamPrompt()
			p.stage = tt.stage

			p.insert("abc")
			if _, done := p.submit(); done {
				t.Fatalf("bad input finished the prompt")
			}
			if p.err != invalidNumberMessage {
				t.Errorf("err = %q", p.err)
			}
			if p.stage != tt.stage || p.text != "" || p.cursorPos != 0 {
				t.Errorf("prompt state after bad input: %+v", p)
			}

			p.insert("1")
			p.submit()
			if p.err != "" {
				t.Errorf("error not cleared after valid input")
			}
		})
	}
}

func TestParamPromptEditing(t *testing.T) {
	p := newParamPrompt()
	p.insert("0.35")
	p.left()
	p.left()
	p.backspace() // removes "."
	if p.text != "035" || p.cursorPos != 1 {
		t.Fatalf("after backspace: %q at %d", p.text, p.cursorPos)
	}
	p.insert(".")
	p.deleteForward()
	if p.text != "0.5" {
		t.Fatalf("after delete: %q", p.text)
	}
	p.right()
	p.right()
	p.right()
	if p.cursorPos != 3 {
		t.Errorf("cursor moved past the end: %d", p.cursorPos)
	}
	p.insert("1")
	if p.text != "0.51" {
		t.Errorf("text = %q", p.text)
	}
}

func TestParamPromptPaste(t *testing.T) {
	p := newParamPrompt()
	if _, done := p.paste("0.25\n"); done || p.text != "0.25" {
		t.Errorf("single number paste: text %q done %v", p.text, done)
	}

	p = newParamPrompt()
	c, done := p.paste("-0.8, 0.156")
	if !done || c != (ComplexPoint{Re: -0.8, Im: 0.156}) {
		t.Errorf("pair paste = %v %v", c, done)
	}

	p = newParamPrompt()
	p.stage = stageImag
	if _, done := p.paste("-0.8, 0.156"); done || p.err != invalidNumberMessage {
		t.Errorf("pair pasted into the imaginary stage: done %v err %q", done, p.err)
	}

	p = newParamPrompt()
	if _, done := p.paste("hello"); done || p.err != invalidNumberMessage {
		t.Errorf("text paste: done %v err %q", done, p.err)
	}
}

func TestParamPromptEditingMultiByteRunes(t *testing.T) {
	p := newParamPrompt()
	p.insert("−0.5")

	p.left()
	p.left()
	p.left()
	if p.cursorPos != len("−") {
		t.Fatalf("cursor at byte %d, want after the minus sign", p.cursorPos)
	}
	p.left()
	if p.cursorPos != 0 {
		t.Fatalf("cursor at byte %d, want 0", p.cursorPos)
	}
	p.right()
	if p.cursorPos != len("−") {
		t.Fatalf("right stepped into the minus sign: byte %d", p.cursorPos)
	}

	p.backspace()
	if p.text != "0.5" || p.cursorPos != 0 {
		t.Errorf("after backspace: %q at %d", p.text, p.cursorPos)
	}

	p.insert("−")
	p.left()
	p.deleteForward()
	if p.text != "0.5" {
		t.Errorf("after delete: %q", p.text)
	}
	if !utf8.ValidString(p.text) {
		t.Errorf("text is no longer valid UTF-8: %q", p.text)
	}
}
