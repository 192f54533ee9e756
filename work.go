package ficread

import (
	"net/url"
	"strconv"
)

// Defaults for work fields whose markup is missing.
const (
	UnknownAuthor = "Unknown Author"
	UnknownTitle  = "Unknown Title"
	NotRated      = "Not Rated"
	NotAvailable  = "N/A"
)

// Listing limits applied while extracting works.
const (
	MaxSummaryLength = 150
	MaxTags          = 5
)

// Work is one entry on a search results page.
//
// Stats are kept as display strings because the archive may render
// placeholders instead of numbers.
type Work struct {
	Title    string
	Authors  []string
	Fandoms  []string
	Rating   string
	Warnings []string
	Kudos    string
	Words    string
	Chapters string
	Hits     string
	Summary  string
	Tags     []string
	URL      string
}

// SearchPage is the parsed result of one search results page.
type SearchPage struct {
	Works   []*Work
	HasNext bool

	// Skipped counts list items that could not be extracted.
	Skipped int
}

// WorkParser extracts works from a search results page.
type WorkParser interface {
	// ParseSearch returns the works on the page in document order.
	// Items that cannot be extracted are skipped; a page without items
	// yields an empty SearchPage, not an error.
	ParseSearch(html string) (*SearchPage, error)
}

// SortKey selects the order of search results.
type SortKey string

// Sort keys accepted on the command line.
const (
	SortKudos     SortKey = "kudos"
	SortHits      SortKey = "hits"
	SortBookmarks SortKey = "bookmarks"
	SortComments  SortKey = "comments"
	SortWordCount SortKey = "word_count"
	SortCreatedAt SortKey = "created_at"
	SortRevisedAt SortKey = "revised_at"
)

var sortColumns = map[SortKey]string{
	SortKudos:     "kudos_count",
	SortHits:      "hits",
	SortBookmarks: "bookmarks_count",
	SortComments:  "comments_count",
	SortWordCount: "word_count",
	SortCreatedAt: "created_at",
	SortRevisedAt: "revised_at",
}

// Column returns the archive's sort column for the key.
// Unknown keys are passed through unchanged.
func (k SortKey) Column() string {
	if c, ok := sortColumns[k]; ok {
		return c
	}
	return string(k)
}

// Rating is a content rating filter.
type Rating string

// Ratings accepted on the command line.
const (
	RatingGeneral  Rating = "General Audiences"
	RatingTeen     Rating = "Teen And Up Audiences"
	RatingMature   Rating = "Mature"
	RatingExplicit Rating = "Explicit"
)

var ratingIDs = map[Rating]string{
	RatingGeneral:  "10",
	RatingTeen:     "11",
	RatingMature:   "12",
	RatingExplicit: "13",
}

// ID returns the archive's identifier for the rating, or "" if unknown.
func (r Rating) ID() string {
	return ratingIDs[r]
}

// SearchQuery describes one search request.
type SearchQuery struct {
	Query  string
	Sort   SortKey
	Page   int
	Rating Rating
}

// Validate returns an error if the query cannot be sent.
func (q *SearchQuery) Validate() error {
	if q.Query == "" {
		return Errorf(EINVALID, "search query required")
	}
	if q.Page < 1 {
		return Errorf(EINVALID, "page must be at least 1, got %d", q.Page)
	}
	if q.Rating != "" && q.Rating.ID() == "" {
		return Errorf(EINVALID, "unknown rating %q", q.Rating)
	}
	return nil
}

// Values encodes the query as search form parameters.
func (q *SearchQuery) Values() url.Values {
	sort := q.Sort
	if sort == "" {
		sort = SortKudos
	}
	v := url.Values{}
	v.Set("work_search[query]", q.Query)
	v.Set("work_search[sort_column]", sort.Column())
	v.Set("work_search[complete]", "")
	v.Set("page", strconv.Itoa(q.Page))
	if id := q.Rating.ID(); id != "" {
		v.Set("work_search[rating_ids][]", id)
	}
	return v
}
