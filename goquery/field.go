package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Field extraction helpers. Archive markup is uncontrolled, so every lookup
// treats absence as a normal outcome and resolves it to a default here
// rather than at each call site.

// first returns the first element under sel matching selector.
func first(sel *goquery.Selection, selector string) (*goquery.Selection, bool) {
	m := sel.Find(selector).First()
	return m, m.Length() > 0
}

// text returns the trimmed text of the first match, or def when there is
// no match or the match has no text.
func text(sel *goquery.Selection, selector, def string) string {
	m, ok := first(sel, selector)
	if !ok {
		return def
	}
	if t := strings.TrimSpace(m.Text()); t != "" {
		return t
	}
	return def
}

// texts returns the trimmed, non-empty text of every match.
// The result is never nil.
func texts(sel *goquery.Selection, selector string) []string {
	out := []string{}
	sel.Find(selector).Each(func(_ int, m *goquery.Selection) {
		if t := strings.TrimSpace(m.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}

// attr returns the named attribute of the first match, or "" when either
// the element or the attribute is missing.
func attr(sel *goquery.Selection, selector, name string) string {
	m, ok := first(sel, selector)
	if !ok {
		return ""
	}
	return strings.TrimSpace(m.AttrOr(name, ""))
}

// attrs returns the non-empty named attribute of every match.
// The result is never nil.
func attrs(sel *goquery.Selection, selector, name string) []string {
	out := []string{}
	sel.Find(selector).Each(func(_ int, m *goquery.Selection) {
		if v := strings.TrimSpace(m.AttrOr(name, "")); v != "" {
			out = append(out, v)
		}
	})
	return out
}
