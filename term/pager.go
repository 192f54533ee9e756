package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/ficread"
)

// PageMargin is the number of terminal rows kept free for the prompt.
const PageMargin = 2

// Ensure Pager implements ficread.Pager at compile time.
var _ ficread.Pager = (*Pager)(nil)

// Pager shows text a page at a time, reading navigation commands from a
// Prompter: ENTER advances, "b" goes back and "q" quits. It is the fallback
// when no external pager program is available.
type Pager struct {
	prompter ficread.Prompter
	out      io.Writer
	pageSize int
}

// NewPager creates a Pager for a terminal of the given height.
func NewPager(prompter ficread.Prompter, out io.Writer, height int) *Pager {
	if height <= 0 {
		height = DefaultHeight
	}
	return &Pager{
		prompter: prompter,
		out:      out,
		pageSize: max(height-PageMargin, 1),
	}
}

// Page presents text until the user reaches the end or quits.
// An interrupted prompt counts as quitting.
func (p *Pager) Page(ctx context.Context, text string) error {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	pg := ficread.NewPaginator(lines, p.pageSize)

	view := pg.Advance()
	for {
		for _, line := range view.Lines {
			fmt.Fprintln(p.out, line)
		}
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprintln(p.out)
		if pg.Status() == ficread.Ended {
			_, err := p.prompter.Prompt("[End of content - press ENTER to return]")
			return ignoreAbort(err)
		}

		input, err := p.prompter.Prompt(fmt.Sprintf(
			"[Line %d-%d of %d - ENTER next page, 'b' back, 'q' quit]: ",
			view.Start, view.End, view.Total,
		))
		if err != nil {
			return ignoreAbort(err)
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "q":
			pg.Quit()
			return nil
		case "b":
			view = pg.Back()
		default:
			view = pg.Advance()
		}
	}
}

func ignoreAbort(err error) error {
	if errors.Is(err, ficread.ErrAborted) {
		return nil
	}
	return err
}
