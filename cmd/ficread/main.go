package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ficread"
	"github.com/fwojciec/ficread/archive"
	ficexec "github.com/fwojciec/ficread/exec"
	ficgoquery "github.com/fwojciec/ficread/goquery"
	fichttp "github.com/fwojciec/ficread/http"
	ficliner "github.com/fwojciec/ficread/liner"
	ficslog "github.com/fwojciec/ficread/slog"
	ficterm "github.com/fwojciec/ficread/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Prompter reads interactive input. Nil opens a line editor on the
	// terminal when one is needed.
	Prompter ficread.Prompter

	// Pager presents output unless --no-pager is given. Nil selects an
	// external pager or the built-in one when stdout is a terminal.
	Pager ficread.Pager
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ficread"),
		kong.Description("Search and read works from the archive in the terminal"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"base_url": fichttp.DefaultBaseURL},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Query == "" && cli.URL == "" {
		return fmt.Errorf("a search query or --url is required")
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Terminal geometry is resolved once.
	width, height := ficread.DefaultWidth, ficterm.DefaultHeight
	tty := false
	if f, ok := stdout.(ficterm.File); ok {
		tty = ficterm.IsTerminal(f)
		width, height = ficterm.Size(f)
	}
	if cli.Columns > 0 {
		width = cli.Columns
	}

	httpFetcher, err := fichttp.NewFetcher(cli.BaseURL,
		fichttp.WithTimeout(cli.Timeout),
		fichttp.WithRateLimit(cli.Rate),
	)
	if err != nil {
		return err
	}
	fetcher := ficslog.NewLoggingFetcher(httpFetcher, logger)
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Archive: &archive.Service{
			BaseURL:  cli.BaseURL,
			Fetcher:  fetcher,
			Works:    ficslog.NewLoggingWorkParser(ficgoquery.NewWorkParser(cli.BaseURL), logger),
			Chapters: ficslog.NewLoggingChapterParser(ficgoquery.NewChapterParser(cli.BaseURL), logger),
		},
		Formatter: ficread.NewFormatter(width),
		Prompter:  m.Prompter,
	}

	interactive := cli.URL == "" && cli.Read == 0
	paged := !cli.NoPager && (m.Pager != nil || tty)
	builtin := paged && m.Pager == nil
	if deps.Prompter == nil && (interactive || builtin) {
		p := ficliner.NewPrompter()
		defer p.Close()
		deps.Prompter = p
	}

	// Pick the pager
	switch {
	case !paged:
	case m.Pager != nil:
		deps.Pager = m.Pager
	default:
		internal := ficterm.NewPager(deps.Prompter, stdout, height)
		if command, ok := ficexec.Find(cli.Pager); ok {
			deps.Pager = ficexec.NewPager(command, ficexec.WithStdio(os.Stdin, stdout, stderr))
			deps.Fallback = internal
		} else {
			deps.Pager = internal
		}
	}

	if cli.URL != "" {
		cmd := &ReadCmd{
			URL:     cli.URL,
			Chapter: cli.Chapter,
		}
		return cmd.Run(deps)
	}

	cmd := &SearchCmd{
		Query: &ficread.SearchQuery{
			Query:  cli.Query,
			Sort:   ficread.SortKey(cli.Sort),
			Page:   cli.Page,
			Rating: ratings[cli.Rating],
		},
		Read:    cli.Read,
		Chapter: cli.Chapter,
	}
	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Query   string        `arg:"" optional:"" help:"Search query"`
	Sort    string        `short:"s" enum:"kudos,hits,bookmarks,comments,word_count,created_at,revised_at" default:"kudos" help:"Sort order (${enum})"`
	Page    int           `short:"p" default:"1" help:"Results page to show"`
	Read    int           `short:"r" help:"Read result number N from the page immediately"`
	URL     string        `short:"u" name:"url" help:"Read the work at this URL instead of searching"`
	Chapter int           `short:"c" default:"1" help:"Chapter to read"`
	Rating  string        `enum:"any,general,teen,mature,explicit" default:"any" help:"Rating filter (${enum})"`
	Columns int           `env:"FICREAD_COLUMNS" help:"Output width in columns (default: terminal width)"`
	NoPager bool          `name:"no-pager" help:"Write output directly instead of paging it"`
	Pager   string        `env:"FICREAD_PAGER" help:"External pager command (default: less, then more)"`
	BaseURL string        `name:"base-url" env:"FICREAD_BASE_URL" default:"${base_url}" help:"Archive base URL"`
	Rate    float64       `default:"1" help:"Maximum requests per second, 0 for no limit"`
	Timeout time.Duration `short:"t" default:"30s" help:"HTTP request timeout"`
	Verbose bool          `short:"v" help:"Log requests to stderr"`
}

// ratings maps --rating values to archive ratings.
var ratings = map[string]ficread.Rating{
	"any":      "",
	"general":  ficread.RatingGeneral,
	"teen":     ficread.RatingTeen,
	"mature":   ficread.RatingMature,
	"explicit": ficread.RatingExplicit,
}
