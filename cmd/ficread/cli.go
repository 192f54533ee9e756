package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/ficread"
	"github.com/fwojciec/ficread/archive"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Archive   *archive.Service
	Formatter *ficread.Formatter
	Prompter  ficread.Prompter

	// Pager presents formatted output; nil writes it to Stdout.
	// Fallback takes over when Pager fails.
	Pager    ficread.Pager
	Fallback ficread.Pager
}

// Present shows formatted text through the configured pager, switching to
// Fallback when Pager fails unless the context is done.
func (d *Dependencies) Present(text string) error {
	if d.Pager == nil {
		_, err := io.WriteString(d.Stdout, text)
		return err
	}

	err := d.Pager.Page(d.Ctx, text)
	if err == nil || d.Fallback == nil || d.Ctx.Err() != nil {
		return err
	}
	d.Logger.Warn("pager failed, using built-in pager", "err", err)
	return d.Fallback.Page(d.Ctx, text)
}
