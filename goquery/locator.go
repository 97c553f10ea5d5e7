package goquery

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/fwojciec/newsprint"
)

// ContentBlock is the subtree judged to contain the article body,
// together with the text segments and inline links collected from it.
type ContentBlock struct {
	Root      *html.Node
	Selection *goquery.Selection

	// Segments are the whitespace-collapsed text blocks in document
	// order.
	Segments []string

	// InlineLinks are the absolutized anchors found inside collected
	// segments.
	InlineLinks []newsprint.LinkRef

	// HTML is the outer markup of the block root.
	HTML string

	// LowConfidence marks blocks chosen by the largest-text fallback.
	LowConfidence bool
}

// locator scores candidate containers and collects text segments.
// It is immutable after construction and safe for concurrent use.
type locator struct {
	cfg      newsprint.Config
	patterns []string
	phrases  []string
}

func newLocator(cfg newsprint.Config) *locator {
	l := &locator{cfg: cfg}
	for _, p := range cfg.BoilerplatePatterns {
		l.patterns = append(l.patterns, strings.ToLower(p))
	}
	for _, p := range cfg.BoilerplatePhrases {
		l.phrases = append(l.phrases, strings.ToLower(p))
	}
	return l
}

// locate picks the best-scoring candidate container, falling back to
// the largest text-bearing node when nothing clears the minimum score.
// On a document with any visible text the result is never empty.
func (l *locator) locate(d *Document) *ContentBlock {
	body := d.doc.Find("body")
	if body.Length() == 0 {
		body = d.doc.Selection
	}
	root := body.Get(0)

	best, bestScore := l.bestCandidate(d, root)
	low := false
	if best == nil || bestScore < l.cfg.MinBlockScore {
		best = largestTextNode(d, root)
		low = true
	}
	if best == nil {
		best = root
		low = true
	}

	block := &ContentBlock{
		Root:          best,
		Selection:     selectionFor(d, best),
		LowConfidence: low,
	}
	block.Segments, block.InlineLinks = l.collectSegments(d, best)
	if out, err := goquery.OuterHtml(block.Selection); err == nil {
		block.HTML = out
	}
	return block
}

// bestCandidate scores every element with enough text-bearing block
// descendants. Ties go to the shallowest node, then document order.
func (l *locator) bestCandidate(d *Document, root *html.Node) (*html.Node, float64) {
	var best *html.Node
	var bestScore float64

	walkElements(root, func(n *html.Node) {
		st, ok := d.stats[n]
		if !ok || n.Data == "a" || n.Data == "body" || n.Data == "html" {
			return
		}
		if st.blocks < l.cfg.MinTextBlocks || st.textChars < l.cfg.MinTextLength {
			return
		}
		score := l.score(d, n, st)
		if best == nil || score > bestScore ||
			(score == bestScore && st.depth < d.stats[best].depth) {
			best = n
			bestScore = score
		}
	})
	return best, bestScore
}

func (l *locator) score(d *Document, n *html.Node, st *nodeStats) float64 {
	tc := float64(st.textChars)
	score := tc
	score -= l.cfg.LinkDensityPenalty * d.linkDensity(n) * tc
	if l.matchesBoilerplate(n) {
		score -= l.cfg.BoilerplatePenalty * tc
	}
	if isSemantic(n) {
		score += l.cfg.SemanticBonus * tc
	}
	return score
}

func (l *locator) matchesBoilerplate(n *html.Node) bool {
	hint := strings.ToLower(attrVal(n, "class") + " " + attrVal(n, "id") + " " + attrVal(n, "role"))
	if strings.TrimSpace(hint) == "" {
		return false
	}
	for _, p := range l.patterns {
		if strings.Contains(hint, p) {
			return true
		}
	}
	return false
}

func isSemantic(n *html.Node) bool {
	if semanticTags[n.Data] || semanticRoles[attrVal(n, "role")] {
		return true
	}
	return strings.Contains(attrVal(n, "itemtype"), "Article")
}

// largestTextNode returns the deepest node carrying the document's
// largest text subtree.
func largestTextNode(d *Document, root *html.Node) *html.Node {
	var best *html.Node
	walkElements(root, func(n *html.Node) {
		st, ok := d.stats[n]
		if !ok || st.textChars == 0 {
			return
		}
		if best == nil || st.textChars > d.stats[best].textChars ||
			(st.textChars == d.stats[best].textChars && st.depth > d.stats[best].depth) {
			best = n
		}
	})
	return best
}

// collectSegments walks widening tag ladders until the collected text
// covers enough of the block, then returns the segments and the inline
// links found inside them.
func (l *locator) collectSegments(d *Document, root *html.Node) ([]string, []newsprint.LinkRef) {
	total := d.textChars(root)
	if total == 0 {
		return nil, nil
	}

	var segments []string
	var links []newsprint.LinkRef

	for _, ladder := range segmentLadders {
		tagSet := make(map[string]bool, len(ladder))
		for _, t := range ladder {
			tagSet[t] = true
		}

		segments = segments[:0]
		links = links[:0]
		collected := 0
		skip := make(map[*html.Node]bool)

		walkElements(root, func(n *html.Node) {
			if skip[n] || !tagSet[n.Data] {
				return
			}
			if _, ok := d.stats[n]; !ok {
				return
			}
			// Let nested tags speak for themselves when this one adds
			// no direct text of its own.
			if !hasDirectText(n) && allChildrenInSet(n, tagSet) {
				return
			}
			if l.inNavSection(d, n, root) {
				return
			}
			markDescendants(n, skip)

			text := d.visibleText(n)
			if text == "" || !hasLetterOrDigit(text) || l.isBoilerplatePhrase(text) {
				return
			}
			segments = append(segments, text)
			collected += len([]rune(text))
			links = append(links, inlineLinks(d, n)...)
		})

		if float64(collected) >= l.cfg.BlockCoverageRatio*float64(total) {
			break
		}
	}

	// Last resort: the block as one segment.
	if len(segments) == 0 {
		if text := d.visibleText(root); text != "" && hasLetterOrDigit(text) {
			segments = append(segments, text)
			links = append(links, inlineLinks(d, root)...)
		}
	}
	return segments, links
}

// inNavSection reports whether a grouping ancestor between n and root
// is link-dense enough to be navigation.
func (l *locator) inNavSection(d *Document, n, root *html.Node) bool {
	for p := n.Parent; p != nil && p != root; p = p.Parent {
		if p.Type != html.ElementNode || !navSectionTags[p.Data] {
			continue
		}
		if d.linkDensity(p) > l.cfg.LinkDensityUpperBound {
			return true
		}
	}
	return false
}

func (l *locator) isBoilerplatePhrase(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range l.phrases {
		if lower == p {
			return true
		}
		if l.cfg.FilterPromotionalTrailers && len(lower) < 200 && strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func inlineLinks(d *Document, n *html.Node) []newsprint.LinkRef {
	var out []newsprint.LinkRef
	walkElements(n, func(a *html.Node) {
		if a.Data != "a" {
			return
		}
		u := d.ResolveRef(attrVal(a, "href"))
		if u == "" {
			return
		}
		ref := newsprint.LinkRef{URL: u}
		if text := d.visibleText(a); text != "" {
			ref.Text = &text
		}
		out = append(out, ref)
	})
	return out
}

func walkElements(root *html.Node, fn func(*html.Node)) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			fn(n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
}

func hasDirectText(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
			return true
		}
	}
	return false
}

func allChildrenInSet(n *html.Node, tags map[string]bool) bool {
	any := false
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if !tags[c.Data] {
			return false
		}
		any = true
	}
	return any
}

func markDescendants(n *html.Node, skip map[*html.Node]bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			skip[c] = true
			markDescendants(c, skip)
		}
	}
}

func hasLetterOrDigit(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}

// selectionFor wraps a node of d's tree in a goquery selection.
func selectionFor(d *Document, n *html.Node) *goquery.Selection {
	if sel := d.doc.FindNodes(n); sel.Length() > 0 {
		return sel
	}
	return d.doc.Selection
}
