package ficread_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/ficread"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormatter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, ficread.NewFormatter(100).Width)
	assert.Equal(t, ficread.DefaultWidth, ficread.NewFormatter(0).Width)
	assert.Equal(t, ficread.DefaultWidth, ficread.NewFormatter(-5).Width)
	assert.Equal(t, ficread.MinWidth, ficread.NewFormatter(3).Width)
}

func sampleWork() *ficread.Work {
	return &ficread.Work{
		Title:    "Coffee and Consequences",
		Authors:  []string{"alice", "bob"},
		Fandoms:  []string{"Sherlock (TV)", "Doctor Who", "Good Omens", "Merlin"},
		Rating:   "Teen And Up Audiences",
		Warnings: []string{"No Archive Warnings Apply"},
		Kudos:    "1,234",
		Words:    "5,000",
		Chapters: "3/3",
		Hits:     "9,876",
		Summary:  "John opens a coffee shop. Sherlock is a regular.",
		Tags:     []string{"Fluff", "Coffee Shop AU"},
		URL:      "https://archiveofourown.org/works/1",
	}
}

func TestFormatter_FormatWorks(t *testing.T) {
	t.Parallel()

	t.Run("reports empty result", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "No works found.\n", ficread.NewFormatter(80).FormatWorks(nil))
	})

	t.Run("renders every field of a work", func(t *testing.T) {
		t.Parallel()

		out := ficread.NewFormatter(80).FormatWorks([]*ficread.Work{sampleWork()})

		assert.Contains(t, out, "Found 1 works:")
		assert.Contains(t, out, "1. Coffee and Consequences\n")
		assert.Contains(t, out, "   By: alice, bob\n")
		assert.Contains(t, out, "   Fandom: Sherlock (TV), Doctor Who (+2 more)\n")
		assert.Contains(t, out, "   Rating: Teen And Up Audiences\n")
		assert.Contains(t, out, "   Warnings: No Archive Warnings Apply\n")
		assert.Contains(t, out, "   Stats: 1,234 kudos | 5,000 words | 3/3 chapters | 9,876 hits\n")
		assert.Contains(t, out, "   Tags: Fluff, Coffee Shop AU\n")
		assert.Contains(t, out, "   > John opens a coffee shop. Sherlock is a regular.\n")
		assert.Contains(t, out, "   Link: https://archiveofourown.org/works/1\n")
		assert.Contains(t, out, strings.Repeat("-", 80)+"\n")
	})

	t.Run("omits fandom overflow counter for two fandoms", func(t *testing.T) {
		t.Parallel()

		w := sampleWork()
		w.Fandoms = w.Fandoms[:2]
		out := ficread.NewFormatter(80).FormatWorks([]*ficread.Work{w})

		assert.Contains(t, out, "   Fandom: Sherlock (TV), Doctor Who\n")
		assert.NotContains(t, out, "more)")
	})

	t.Run("omits optional lines when empty", func(t *testing.T) {
		t.Parallel()

		w := sampleWork()
		w.Fandoms = nil
		w.Warnings = nil
		w.Tags = nil
		w.Summary = ""
		out := ficread.NewFormatter(80).FormatWorks([]*ficread.Work{w})

		assert.NotContains(t, out, "Fandom:")
		assert.NotContains(t, out, "Warnings:")
		assert.NotContains(t, out, "Tags:")
		assert.NotContains(t, out, "   > ")
	})

	t.Run("wraps summary with distinct continuation indent", func(t *testing.T) {
		t.Parallel()

		w := sampleWork()
		w.Summary = strings.Repeat("word ", 30)
		out := ficread.NewFormatter(40).FormatWorks([]*ficread.Work{w})

		var summary []string
		for _, line := range strings.Split(out, "\n") {
			if strings.HasPrefix(line, "   > ") || strings.HasPrefix(line, "     word") {
				summary = append(summary, line)
			}
		}
		require.Greater(t, len(summary), 1)
		assert.True(t, strings.HasPrefix(summary[0], "   > "))
		for _, line := range summary[1:] {
			assert.True(t, strings.HasPrefix(line, "     "))
		}
		for _, line := range summary {
			assert.LessOrEqual(t, utf8.RuneCountInString(line), 34)
		}
	})

	t.Run("numbers works in order", func(t *testing.T) {
		t.Parallel()

		a, b := sampleWork(), sampleWork()
		a.Title, b.Title = "First", "Second"
		out := ficread.NewFormatter(80).FormatWorks([]*ficread.Work{a, b})

		assert.Less(t, strings.Index(out, "1. First"), strings.Index(out, "2. Second"))
	})
}

func TestFormatter_FormatChapter(t *testing.T) {
	t.Parallel()

	t.Run("separates paragraphs with one blank line", func(t *testing.T) {
		t.Parallel()

		c := &ficread.Chapter{Title: "T", Author: "a", Number: 1, Total: 1, Text: "A\n\nB\n\n"}
		out := ficread.NewFormatter(80).FormatChapter(c)

		assert.Contains(t, out, "\nA\n\nB\n\n")
		assert.NotContains(t, out, "A\n\n\nB")
	})

	t.Run("renders header without chapter line for one-shots", func(t *testing.T) {
		t.Parallel()

		c := &ficread.Chapter{Title: "One Shot", Author: "alice", Number: 1, Total: 1, Text: "Body."}
		out := ficread.NewFormatter(80).FormatChapter(c)

		rule := strings.Repeat("=", 80)
		assert.True(t, strings.HasPrefix(out, rule+"\nOne Shot\nBy alice\n"+rule+"\n\n"))
		assert.NotContains(t, out, "Chapter 1 of")
		assert.NotContains(t, out, "--chapter")
	})

	t.Run("joins soft line breaks inside a paragraph", func(t *testing.T) {
		t.Parallel()

		c := &ficread.Chapter{Title: "T", Author: "a", Total: 1, Text: "one\ntwo\nthree"}
		out := ficread.NewFormatter(80).FormatChapter(c)

		assert.Contains(t, out, "one two three\n")
	})

	t.Run("offers navigation hints by position", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			number   int
			wantNext bool
			wantPrev bool
		}{
			{1, true, false},
			{2, true, true},
			{3, false, true},
		}

		for _, tt := range tests {
			c := &ficread.Chapter{Title: "T", Author: "a", Number: tt.number, Total: 3, Text: "x"}
			out := ficread.NewFormatter(80).FormatChapter(c)

			assert.Contains(t, out, "Chapter "+string(rune('0'+tt.number))+" of 3\n")
			assert.Equal(t, tt.wantNext, strings.Contains(out, "Next: use --chapter"), "chapter %d", tt.number)
			assert.Equal(t, tt.wantPrev, strings.Contains(out, "Previous: use --chapter"), "chapter %d", tt.number)
		}
	})

	t.Run("never wraps lines beyond width", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("It was a dark and stormy night; the rain fell in torrents. ", 15) +
			"\n\n" + strings.Repeat("supercalifragilisticexpialidocious ", 10)
		c := &ficread.Chapter{Title: "Storm", Author: "a", Number: 2, Total: 3, Text: text}

		for width := ficread.MinWidth; width <= 120; width += 7 {
			out := ficread.NewFormatter(width).FormatChapter(c)
			for _, line := range strings.Split(out, "\n") {
				assert.LessOrEqual(t, utf8.RuneCountInString(line), width, "width %d: %q", width, line)
			}
		}
	})
}
