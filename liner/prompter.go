// Package liner provides a terminal ficread.Prompter backed by
// github.com/peterh/liner.
package liner

import (
	"errors"
	"io"

	"github.com/fwojciec/ficread"
	"github.com/peterh/liner"
)

// Ensure Prompter implements ficread.Prompter at compile time.
var _ ficread.Prompter = (*Prompter)(nil)

// Prompter reads lines with editing support. Ctrl-C and end of input are
// reported as ficread.ErrAborted.
type Prompter struct {
	state *liner.State
}

// NewPrompter takes over the terminal for line input.
// Close must be called to restore the terminal.
func NewPrompter() *Prompter {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &Prompter{state: state}
}

// Prompt displays prompt and reads one line.
func (p *Prompter) Prompt(prompt string) (string, error) {
	line, err := p.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return "", ficread.ErrAborted
	}
	if err != nil {
		return "", err
	}
	if line != "" {
		p.state.AppendHistory(line)
	}
	return line, nil
}

// Close restores the terminal.
func (p *Prompter) Close() error {
	return p.state.Close()
}
