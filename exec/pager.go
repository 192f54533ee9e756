// Package exec hands text to an external pager program such as less.
package exec

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/fwojciec/ficread"
)

// Ensure Pager implements ficread.Pager at compile time.
var _ ficread.Pager = (*Pager)(nil)

// candidates are tried in order by Find.
var candidates = [][]string{
	{"less", "-R", "-S", "-F", "-X"},
	{"more"},
}

// Pager runs an external program on a temporary file holding the text.
// The file is removed when the program exits, fails or cannot start.
type Pager struct {
	command []string
	tempDir string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// Option configures a Pager.
type Option func(*Pager)

// WithTempDir sets the directory for the temporary file.
// Defaults to os.TempDir().
func WithTempDir(dir string) Option {
	return func(p *Pager) {
		p.tempDir = dir
	}
}

// WithStdio connects the pager program to the given streams.
// Defaults to the process's standard streams.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(p *Pager) {
		p.stdin, p.stdout, p.stderr = stdin, stdout, stderr
	}
}

// NewPager creates a Pager running command with the file path appended.
func NewPager(command []string, opts ...Option) *Pager {
	p := &Pager{
		command: command,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Find returns the preferred command line for an external pager. A
// non-empty override (such as $PAGER) wins if its program exists;
// otherwise less and then more are looked up on PATH.
func Find(override string) ([]string, bool) {
	if fields := strings.Fields(override); len(fields) > 0 {
		if _, err := exec.LookPath(fields[0]); err == nil {
			return fields, true
		}
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c[0]); err == nil {
			return c, true
		}
	}
	return nil, false
}

// Page writes text to a temporary file and blocks until the pager exits.
func (p *Pager) Page(ctx context.Context, text string) error {
	if len(p.command) == 0 {
		return ficread.Errorf(ficread.EINVALID, "no pager command")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.CreateTemp(p.tempDir, "ficread-*.txt")
	if err != nil {
		return fmt.Errorf("creating pager file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return fmt.Errorf("writing pager file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing pager file: %w", err)
	}

	args := append(append([]string{}, p.command[1:]...), f.Name())
	cmd := exec.Command(p.command[0], args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = p.stdin, p.stdout, p.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", p.command[0], err)
	}
	return nil
}
