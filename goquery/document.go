// Package goquery implements the newsprint extraction engine on top of
// github.com/PuerkitoBio/goquery: document statistics, metadata and
// signal extraction, content block location, and the Parser assembler.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/fwojciec/newsprint"
)

// Document wraps a parsed HTML tree together with per-node statistics
// computed in a single pass. The tree is never mutated; all derived
// data lives in side tables keyed by node pointer.
type Document struct {
	doc  *goquery.Document
	base *url.URL

	stats map[*html.Node]*nodeStats
}

// nodeStats holds the subtree statistics used by the locator.
type nodeStats struct {
	// textChars counts visible text runes in the subtree after
	// whitespace collapsing.
	textChars int

	// linkChars counts the subset of textChars sitting inside anchors.
	linkChars int

	// blocks counts text-bearing block descendants (p, li, pre,
	// blockquote, dt, dd).
	blocks int

	depth int
}

// ParseDocument parses raw HTML and computes node statistics. It
// returns EINVALID for empty or unparseable input.
func ParseDocument(rawHTML string) (*Document, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, newsprint.Errorf(newsprint.EINVALID, "Empty HTML input.")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, newsprint.Errorf(newsprint.EINVALID, "Failed to parse HTML: %s.", err)
	}

	d := &Document{
		doc:   doc,
		stats: make(map[*html.Node]*nodeStats),
	}
	for _, root := range doc.Nodes {
		d.annotate(root, 0, false)
	}
	return d, nil
}

// SetBase sets the URL relative references are resolved against.
// A nil base leaves relative references unresolved.
func (d *Document) SetBase(u *url.URL) { d.base = u }

// Base returns the resolution base, which may be nil.
func (d *Document) Base() *url.URL { return d.base }

// ResolveRef resolves href against the document base and returns the
// absolute URL, or "" when the reference cannot be made absolute or
// uses a non-HTTP scheme.
func (d *Document) ResolveRef(href string) string {
	return resolveRef(d.base, href)
}

// annotate walks the subtree rooted at n, filling the stats side table
// bottom-up. Hidden subtrees and non-content elements contribute
// nothing.
func (d *Document) annotate(n *html.Node, depth int, inLink bool) *nodeStats {
	if n.Type == html.ElementNode && (skippedTags[n.Data] || isHidden(n)) {
		return nil
	}

	st := &nodeStats{depth: depth}

	if n.Type == html.ElementNode && n.Data == "a" {
		inLink = true
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			chars := len([]rune(strings.Join(strings.Fields(c.Data), " ")))
			st.textChars += chars
			if inLink {
				st.linkChars += chars
			}
		case html.ElementNode:
			child := d.annotate(c, depth+1, inLink)
			if child == nil {
				continue
			}
			st.textChars += child.textChars
			st.linkChars += child.linkChars
			st.blocks += child.blocks
			if blockTags[c.Data] && child.textChars > 0 {
				st.blocks++
			}
		}
	}

	if n.Type == html.ElementNode {
		d.stats[n] = st
	}
	return st
}

// textChars returns the visible text length of n's subtree.
func (d *Document) textChars(n *html.Node) int {
	if st, ok := d.stats[n]; ok {
		return st.textChars
	}
	return 0
}

// linkDensity returns the share of n's visible text that sits inside
// anchors, in [0, 1].
func (d *Document) linkDensity(n *html.Node) float64 {
	st, ok := d.stats[n]
	if !ok || st.textChars == 0 {
		return 0
	}
	return float64(st.linkChars) / float64(st.textChars)
}

// visibleText returns n's subtree text with whitespace collapsed,
// skipping hidden subtrees and non-content elements.
func (d *Document) visibleText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			if skippedTags[n.Data] || isHidden(n) {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// isHidden reports whether the element is hidden via HTML or inline
// CSS attributes.
func isHidden(n *html.Node) bool {
	for _, attr := range n.Attr {
		switch attr.Key {
		case "hidden":
			return true
		case "aria-hidden":
			if attr.Val == "true" {
				return true
			}
		case "style":
			style := strings.ToLower(strings.ReplaceAll(attr.Val, " ", ""))
			if strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden") {
				return true
			}
		}
	}
	return false
}

func attrVal(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
