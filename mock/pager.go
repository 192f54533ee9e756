package mock

import (
	"context"

	"github.com/fwojciec/ficread"
)

var (
	_ ficread.Pager    = (*Pager)(nil)
	_ ficread.Prompter = (*Prompter)(nil)
)

// Pager is a mock implementation of ficread.Pager.
type Pager struct {
	PageFn func(ctx context.Context, text string) error
}

func (p *Pager) Page(ctx context.Context, text string) error {
	return p.PageFn(ctx, text)
}

// Prompter is a mock implementation of ficread.Prompter.
type Prompter struct {
	PromptFn func(prompt string) (string, error)
}

func (p *Prompter) Prompt(prompt string) (string, error) {
	return p.PromptFn(prompt)
}

// ScriptedPrompter returns a Prompter that answers with inputs in order and
// reports ficread.ErrAborted once they run out. Prompts shown are appended
// to *seen when seen is not nil.
func ScriptedPrompter(seen *[]string, inputs ...string) *Prompter {
	return &Prompter{
		PromptFn: func(prompt string) (string, error) {
			if seen != nil {
				*seen = append(*seen, prompt)
			}
			if len(inputs) == 0 {
				return "", ficread.ErrAborted
			}
			next := inputs[0]
			inputs = inputs[1:]
			return next, nil
		},
	}
}
