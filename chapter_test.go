package ficread_test

import (
	"testing"

	"github.com/fwojciec/ficread"
	"github.com/stretchr/testify/assert"
)

func TestSplitParagraphs(t *testing.T) {
	t.Parallel()

	t.Run("splits on blank lines", func(t *testing.T) {
		t.Parallel()

		got := ficread.SplitParagraphs("First.\n\nSecond.")
		assert.Equal(t, []string{"First.", "Second."}, got)
	})

	t.Run("joins lines inside a paragraph with spaces", func(t *testing.T) {
		t.Parallel()

		got := ficread.SplitParagraphs("one\n  two  \nthree")
		assert.Equal(t, []string{"one two three"}, got)
	})

	t.Run("treats whitespace-only lines as blank", func(t *testing.T) {
		t.Parallel()

		got := ficread.SplitParagraphs("A\n \t \nB\n\n\n\nC")
		assert.Equal(t, []string{"A", "B", "C"}, got)
	})

	t.Run("returns nil for blank text", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, ficread.SplitParagraphs("\n\n  \n"))
	})
}

func TestChapter_Paragraphs(t *testing.T) {
	t.Parallel()

	c := &ficread.Chapter{Text: "\n\nHello\nworld\n\n\nBye\n\n"}
	assert.Equal(t, []string{"Hello world", "Bye"}, c.Paragraphs())
}
