package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Metadata bundles the document's embedded metadata surfaces.
type Metadata struct {
	JSONLD    *JSONLD
	OpenGraph *OpenGraph
}

// extractMetadata reads both metadata surfaces in one go.
func extractMetadata(d *Document) *Metadata {
	return &Metadata{
		JSONLD:    extractJSONLD(d),
		OpenGraph: extractOpenGraph(d),
	}
}

// metaContent returns the content of the first matching meta tag.
func metaContent(d *Document, selector string) string {
	var out string
	d.doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		out = strings.TrimSpace(sel.AttrOr("content", ""))
		return out == ""
	})
	return out
}

// linkHref returns the href of the first matching link tag.
func linkHref(d *Document, selector string) string {
	var out string
	d.doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		out = strings.TrimSpace(sel.AttrOr("href", ""))
		return out == ""
	})
	return out
}
