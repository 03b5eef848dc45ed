package utils

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SelectionText returns the collapsed text of the first matched node.
func SelectionText(sel *goquery.Selection) string {
	return CollapseSpace(sel.First().Text())
}

// AttrOrText returns the first non-empty attribute among attrs on the first matched
// node, falling back to its collapsed text.
func AttrOrText(sel *goquery.Selection, attrs ...string) string {
	first := sel.First()
	for _, a := range attrs {
		if v, ok := first.Attr(a); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return CollapseSpace(first.Text())
}

// MetaContent returns the content of <meta property=name> or <meta name=name>.
func MetaContent(doc *goquery.Document, name string) string {
	sel := doc.Find(`meta[property="` + name + `"], meta[name="` + name + `"]`)
	v, _ := sel.First().Attr("content")
	return strings.TrimSpace(v)
}
