package ficread

import "context"

// ConsentMarker is the phrase identifying the archive's adult content
// interstitial page.
const ConsentMarker = "This work could have adult content"

// Fetcher retrieves markup from the archive.
// Implementations handle the consent interstitial so callers always get
// the requested page.
type Fetcher interface {
	// Fetch requests the URL and returns the response body.
	// Transport failures and non-200 responses return EUNAVAILABLE.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	Close() error
}
