package ficread

import "context"

// Pager presents a block of text to the user.
type Pager interface {
	// Page blocks until the user has finished reading text.
	Page(ctx context.Context, text string) error
}

// Prompter reads one line of user input.
type Prompter interface {
	// Prompt displays prompt and returns the line typed, without the
	// trailing newline. Returns ErrAborted on interrupt or end of input.
	Prompt(prompt string) (string, error)
}
