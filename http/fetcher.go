// Package http provides an HTTP implementation of ficread.Fetcher that
// keeps a cookie session with the archive and passes its adult content
// interstitial.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ficread"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the archive the fetcher talks to by default.
const DefaultBaseURL = "https://archiveofourown.org"

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent identifies requests as coming from a desktop browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Ensure Fetcher implements ficread.Fetcher at compile time.
var _ ficread.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves archive pages over HTTP.
//
// Every request carries a view_adult cookie. If a response is still the
// consent interstitial, the fetcher submits the consent form and requests
// the original URL once more.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRateLimit spaces requests to at most rps per second.
// Zero or negative values disable limiting, which is the default.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewFetcher creates a Fetcher whose session is scoped to baseURL.
func NewFetcher(baseURL string, opts ...Option) (*Fetcher, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, ficread.Errorf(ficread.EINVALID, "invalid base URL %q", baseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}
	jar.SetCookies(base, []*http.Cookie{{Name: "view_adult", Value: "true", Path: "/"}})

	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		Jar:     jar,
	}

	return f, nil
}

// Fetch retrieves the page at rawURL, passing the consent interstitial if
// the archive shows it.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	body, err := f.do(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	if !strings.Contains(body, ficread.ConsentMarker) {
		return body, nil
	}

	if err := f.consent(ctx, rawURL, body); err != nil {
		return "", err
	}
	return f.do(ctx, http.MethodGet, rawURL, nil)
}

// consent acknowledges the interstitial served for pageURL. It submits the
// form carrying a view_adult field, else the first form on the page, else
// requests the page again with view_adult=true in the query.
func (f *Fetcher) consent(ctx context.Context, pageURL, body string) error {
	page, err := url.Parse(pageURL)
	if err != nil {
		return ficread.Errorf(ficread.EINVALID, "invalid URL %q: %v", pageURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return ficread.Errorf(ficread.EINVALID, "failed to parse consent page: %v", err)
	}

	form := doc.Find("form:has(input[name='view_adult'])").First()
	if form.Length() == 0 {
		form = doc.Find("form").First()
	}
	if form.Length() == 0 {
		u := *page
		q := u.Query()
		q.Set("view_adult", "true")
		u.RawQuery = q.Encode()
		_, err := f.do(ctx, http.MethodGet, u.String(), nil)
		return err
	}

	action := page
	if ref, err := url.Parse(strings.TrimSpace(form.AttrOr("action", ""))); err == nil {
		action = page.ResolveReference(ref)
	}

	values := url.Values{}
	form.Find("input[name]").Each(func(_ int, in *goquery.Selection) {
		values.Set(in.AttrOr("name", ""), in.AttrOr("value", ""))
	})
	values.Set("view_adult", "true")

	if strings.EqualFold(form.AttrOr("method", "post"), http.MethodGet) {
		u := *action
		u.RawQuery = values.Encode()
		_, err = f.do(ctx, http.MethodGet, u.String(), nil)
		return err
	}
	_, err = f.do(ctx, http.MethodPost, action.String(), values)
	return err
}

func (f *Fetcher) do(ctx context.Context, method, rawURL string, form url.Values) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return "", ficread.Errorf(ficread.EINVALID, "invalid request for %s: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", ficread.Errorf(ficread.EUNAVAILABLE, "%s %s: %v", method, rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ficread.Errorf(ficread.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", ficread.Errorf(ficread.EUNAVAILABLE, "reading %s: %v", rawURL, err)
	}

	return string(data), nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
