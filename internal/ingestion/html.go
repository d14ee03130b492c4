package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LooksLikeHTML reports whether s appears to contain markup
func LooksLikeHTML(s string) bool {
	lower := strings.ToLower(s)
	for _, tag := range []string{"<p", "<div", "<br", "<li", "<ul", "<html", "<body", "<span", "<h1", "<h2", "<h3", "<strong"} {
		if strings.Contains(lower, tag) {
			return true
		}
	}
	return false
}

// StripHTML returns the visible text of an HTML fragment. Block elements end a line.
func StripHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, div, li, tr, h1, h2, h3, h4, h5, h6").AppendHtml("\n")

	return CleanText(doc.Text()), nil
}
