package archive_test

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/fwojciec/ficread"
	"github.com/fwojciec/ficread/archive"
	ficgoquery "github.com/fwojciec/ficread/goquery"
	"github.com/fwojciec/ficread/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "https://archiveofourown.org"

// pages returns a fetcher serving fixed bodies by URL and recording requests.
func pages(requested *[]string, bodies map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, u string) (string, error) {
			*requested = append(*requested, u)
			body, ok := bodies[u]
			if !ok {
				return "", ficread.Errorf(ficread.EUNAVAILABLE, "HTTP 404 for %s", u)
			}
			return body, nil
		},
		CloseFn: func() error { return nil },
	}
}

func newService(f ficread.Fetcher) *archive.Service {
	return &archive.Service{
		BaseURL:  base,
		Fetcher:  f,
		Works:    ficgoquery.NewWorkParser(base),
		Chapters: ficgoquery.NewChapterParser(base),
	}
}

func TestService_Search(t *testing.T) {
	t.Parallel()

	t.Run("fetches search URL and parses works", func(t *testing.T) {
		t.Parallel()

		var got string
		f := &mock.Fetcher{FetchFn: func(ctx context.Context, u string) (string, error) {
			got = u
			return `<ol><li class="work"><h4 class="heading"><a href="/works/5">Five</a></h4></li></ol>`, nil
		}}

		page, err := newService(f).Search(context.Background(), &ficread.SearchQuery{
			Query:  "coffee shop",
			Sort:   ficread.SortWordCount,
			Page:   2,
			Rating: ficread.RatingGeneral,
		})

		require.NoError(t, err)
		require.Len(t, page.Works, 1)
		assert.Equal(t, "https://archiveofourown.org/works/5", page.Works[0].URL)

		u, err := url.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, "/works/search", u.Path)
		assert.Equal(t, "coffee shop", u.Query().Get("work_search[query]"))
		assert.Equal(t, "word_count", u.Query().Get("work_search[sort_column]"))
		assert.Equal(t, "2", u.Query().Get("page"))
		assert.Equal(t, "10", u.Query().Get("work_search[rating_ids][]"))
	})

	t.Run("rejects invalid query without fetching", func(t *testing.T) {
		t.Parallel()

		f := &mock.Fetcher{FetchFn: func(ctx context.Context, u string) (string, error) {
			t.Fatal("unexpected fetch")
			return "", nil
		}}

		_, err := newService(f).Search(context.Background(), &ficread.SearchQuery{Page: 1})

		assert.Equal(t, ficread.EINVALID, ficread.ErrorCode(err))
	})

	t.Run("propagates transport errors", func(t *testing.T) {
		t.Parallel()

		f := &mock.Fetcher{FetchFn: func(ctx context.Context, u string) (string, error) {
			return "", ficread.Errorf(ficread.EUNAVAILABLE, "connection refused")
		}}

		_, err := newService(f).Search(context.Background(), &ficread.SearchQuery{Query: "x", Page: 1})

		require.Error(t, err)
		assert.Equal(t, ficread.EUNAVAILABLE, ficread.ErrorCode(err))
	})
}

const chapterPage = `<html><body>
<h2 class="title">Storm</h2><a rel="author" href="/users/a">alice</a>
<ul id="chapter_index"><li><select><option>1</option><option>2</option><option>3</option></select></li></ul>
<div id="chapters"><div class="userstuff" role="article"><p>%s</p></div></div>
</body></html>`

const navigatePage = `<html><body><ol class="chapter index">
<li><a href="/works/1/chapters/11">1. One</a></li>
<li><a href="/works/1/chapters/12">2. Two</a></li>
<li><a href="/works/1/chapters/13">3. Three</a></li>
</ol></body></html>`

func TestService_Read(t *testing.T) {
	t.Parallel()

	t.Run("reads first chapter from the work page", func(t *testing.T) {
		t.Parallel()

		var requested []string
		f := pages(&requested, map[string]string{
			base + "/works/1": fmt.Sprintf(chapterPage, "Opening."),
		})

		c, err := newService(f).Read(context.Background(), base+"/works/1?view_adult=true", 1)

		require.NoError(t, err)
		assert.Equal(t, []string{base + "/works/1"}, requested)
		assert.Equal(t, "Storm", c.Title)
		assert.Equal(t, 1, c.Number)
		assert.Equal(t, 3, c.Total)
		assert.Equal(t, []string{"Opening."}, c.Paragraphs())
	})

	t.Run("follows the chapter index for later chapters", func(t *testing.T) {
		t.Parallel()

		var requested []string
		f := pages(&requested, map[string]string{
			base + "/works/1/navigate":    navigatePage,
			base + "/works/1/chapters/12": fmt.Sprintf(chapterPage, "Middle."),
		})

		c, err := newService(f).Read(context.Background(), base+"/works/1/chapters/11", 2)

		require.NoError(t, err)
		assert.Equal(t, []string{base + "/works/1/navigate", base + "/works/1/chapters/12"}, requested)
		assert.Equal(t, 2, c.Number)
		assert.Equal(t, 3, c.Total)
		assert.Equal(t, []string{"Middle."}, c.Paragraphs())
	})

	t.Run("rejects chapter beyond the index", func(t *testing.T) {
		t.Parallel()

		var requested []string
		f := pages(&requested, map[string]string{base + "/works/1/navigate": navigatePage})

		_, err := newService(f).Read(context.Background(), base+"/works/1", 4)

		assert.Equal(t, ficread.EINVALID, ficread.ErrorCode(err))
		assert.Len(t, requested, 1)
	})

	t.Run("rejects chapter below one", func(t *testing.T) {
		t.Parallel()

		_, err := newService(&mock.Fetcher{}).Read(context.Background(), base+"/works/1", 0)

		assert.Equal(t, ficread.EINVALID, ficread.ErrorCode(err))
	})

	t.Run("propagates chapter index parse errors", func(t *testing.T) {
		t.Parallel()

		var requested []string
		f := pages(&requested, map[string]string{base + "/works/1/navigate": "<html></html>"})
		s := newService(f)
		s.Chapters = &mock.ChapterParser{
			ParseChapterIndexFn: func(html string) ([]string, error) {
				return nil, ficread.Errorf(ficread.EINVALID, "failed to parse HTML")
			},
		}

		_, err := s.Read(context.Background(), base+"/works/1", 2)

		assert.Equal(t, "failed to parse HTML", ficread.ErrorMessage(err))
	})

	t.Run("wraps transport errors", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("reset by peer")
		f := &mock.Fetcher{FetchFn: func(ctx context.Context, u string) (string, error) { return "", boom }}

		_, err := newService(f).Read(context.Background(), base+"/works/1", 1)

		assert.ErrorIs(t, err, boom)
	})
}

func TestWorkURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{base + "/works/1", base + "/works/1"},
		{base + "/works/1/", base + "/works/1"},
		{base + "/works/1/chapters/22#workskin", base + "/works/1"},
		{base + "/collections/x/works/7?view_adult=true", base + "/works/7"},
		{base + "/series/3", base + "/series/3"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := archive.WorkURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects URL without host", func(t *testing.T) {
		t.Parallel()

		_, err := archive.WorkURL("/works/1")
		assert.Equal(t, ficread.EINVALID, ficread.ErrorCode(err))
	})
}
