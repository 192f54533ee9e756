package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ficread"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// RuleWidth is the number of dashes a horizontal rule becomes.
const RuleWidth = 40

// rewrite is one step of chapter text reconstruction. Steps run in order on
// a private copy of the content and must all finish before the tree is
// flattened, because flattening discards structure.
type rewrite func(content *goquery.Selection)

var reconstruction = []rewrite{
	removeNonContent,
	markParagraphs,
	replaceBreaks,
	replaceRules,
}

// Reconstruct converts chapter body markup into plain text. Paragraphs end
// with a blank line, <br> becomes a newline and <hr> a dashed separator.
// The input selection is not modified.
func Reconstruct(content *goquery.Selection) string {
	doc := content.Clone()
	for _, step := range reconstruction {
		step(doc)
	}
	return norm.NFC.String(doc.Text())
}

// ReconstructHTML parses an HTML fragment and reconstructs its text.
func ReconstructHTML(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", ficread.Errorf(ficread.EINVALID, "failed to parse HTML: %v", err)
	}
	return Reconstruct(doc.Find("body")), nil
}

func removeNonContent(content *goquery.Selection) {
	content.Find("script, style, noscript, .landmark").Remove()
}

func markParagraphs(content *goquery.Selection) {
	content.Find("p").Each(func(_ int, p *goquery.Selection) {
		p.AfterNodes(textNode("\n\n"))
	})
}

func replaceBreaks(content *goquery.Selection) {
	content.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithNodes(textNode("\n"))
	})
}

func replaceRules(content *goquery.Selection) {
	content.Find("hr").Each(func(_ int, hr *goquery.Selection) {
		hr.ReplaceWithNodes(textNode("\n" + strings.Repeat("-", RuleWidth) + "\n"))
	})
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
