package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/ficread"
)

// SearchCmd lists search results and lets the user pick works to read.
type SearchCmd struct {
	Query *ficread.SearchQuery

	// Read selects a result to read without prompting; 0 prompts.
	Read    int
	Chapter int
}

// Run performs the search. A failed first search is returned; later
// failures are reported and the session continues.
func (c *SearchCmd) Run(deps *Dependencies) error {
	page, err := deps.Archive.Search(deps.Ctx, c.Query)
	if err != nil {
		return err
	}
	if err := deps.Present(deps.Formatter.FormatWorks(page.Works)); err != nil {
		return err
	}

	if c.Read > 0 {
		if c.Read > len(page.Works) {
			return ficread.Errorf(ficread.EINVALID, "result %d requested but the page has %d", c.Read, len(page.Works))
		}
		return c.read(deps, page.Works[c.Read-1])
	}
	if len(page.Works) == 0 {
		return nil
	}

	for deps.Ctx.Err() == nil {
		input, err := deps.Prompter.Prompt(fmt.Sprintf(
			"Enter a number to read (1-%d), 'n' for the next page, 'q' to quit: ", len(page.Works)))
		if errors.Is(err, ficread.ErrAborted) {
			return nil
		} else if err != nil {
			return err
		}

		switch input = strings.ToLower(strings.TrimSpace(input)); input {
		case "q":
			return nil
		case "n":
			if next := c.next(deps, page); next != nil {
				page = next
			}
		default:
			n, err := strconv.Atoi(input)
			if err != nil || n < 1 || n > len(page.Works) {
				fmt.Fprintf(deps.Stdout, "Invalid choice %q: enter a number from 1 to %d, 'n' or 'q'.\n", input, len(page.Works))
				continue
			}
			if err := c.read(deps, page.Works[n-1]); err != nil {
				report(deps, err)
			}
		}
	}
	return nil
}

// next fetches and presents the following results page. It returns nil,
// leaving the cursor unchanged, when there is no usable next page.
func (c *SearchCmd) next(deps *Dependencies, page *ficread.SearchPage) *ficread.SearchPage {
	if !page.HasNext {
		fmt.Fprintln(deps.Stdout, "No more results.")
		return nil
	}

	c.Query.Page++
	next, err := deps.Archive.Search(deps.Ctx, c.Query)
	if err == nil && len(next.Works) == 0 {
		fmt.Fprintln(deps.Stdout, "No more results.")
		next = nil
	} else if err == nil {
		err = deps.Present(deps.Formatter.FormatWorks(next.Works))
	}
	if err != nil {
		report(deps, err)
		next = nil
	}
	if next == nil {
		c.Query.Page--
	}
	return next
}

func (c *SearchCmd) read(deps *Dependencies, w *ficread.Work) error {
	deps.Logger.Debug("read", "title", w.Title, "url", w.URL, "chapter", c.Chapter)
	chapter, err := deps.Archive.Read(deps.Ctx, w.URL, c.Chapter)
	if err != nil {
		return err
	}
	return deps.Present(deps.Formatter.FormatChapter(chapter))
}

// report prints an error that ends the current operation only.
func report(deps *Dependencies, err error) {
	if deps.Ctx.Err() != nil {
		return
	}
	fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
}
