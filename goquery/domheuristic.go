package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/newsprint"
)

// domHeuristicExtractor proposes values inferred from visible markup:
// headings, time elements, byline links, tag links, and the media
// found inside the located content block.
type domHeuristicExtractor struct {
	block  *ContentBlock
	assets *Assets
}

func (e *domHeuristicExtractor) Name() string { return "dom-heuristic" }

// titleSplitRE splits multi-part document titles such as
// "Headline - Site Name" or "Headline | Site Name".
var titleSplitRE = regexp.MustCompile(`\s+[-–—|]\s+`)

// bylineSelectors is the byline ladder, most specific first.
var bylineSelectors = []string{
	`a[rel~="author"]`,
	`a[href*="/author/"]`,
	`a[href*="/profile/"]`,
	`[itemprop~="author"] [itemprop~="name"]`,
	`[class*="byline"] a`,
	`[class*="author-name"]`,
}

func (e *domHeuristicExtractor) Extract(d *Document, _ *Metadata, field newsprint.Field) []newsprint.Candidate {
	c := func(confidence float64, value any) newsprint.Candidate {
		return newsprint.Candidate{
			Field:      field,
			Source:     newsprint.SourceDOMHeuristic,
			Confidence: confidence,
			Value:      value,
		}
	}

	var out []newsprint.Candidate
	switch field {
	case newsprint.FieldTitle:
		if v := strings.TrimSpace(d.doc.Find(`[itemprop~="headline"]`).First().Text()); v != "" {
			out = append(out, c(1.0, collapse(v)))
		}
		if h1 := d.doc.Find("h1"); h1.Length() == 1 {
			if v := collapse(h1.Text()); v != "" {
				out = append(out, c(0.9, v))
			}
		} else {
			h1.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
				hint := strings.ToLower(sel.AttrOr("id", "") + " " + sel.AttrOr("class", ""))
				if !strings.Contains(hint, "title") && !strings.Contains(hint, "headline") {
					return true
				}
				if v := collapse(sel.Text()); v != "" {
					out = append(out, c(0.8, v))
					return false
				}
				return true
			})
		}
		if v := cleanDocumentTitle(d.doc.Find("head title").First().Text()); v != "" {
			out = append(out, c(0.7, v))
		}
	case newsprint.FieldAuthors:
		// Bylines inside the located block are trusted more than
		// matches anywhere in the document.
		if e.block != nil {
			if authors := bylineAuthors(d, e.block.Selection); len(authors) > 0 {
				out = append(out, c(1.0, authors))
			}
		}
		if authors := bylineAuthors(d, d.doc.Find("body")); len(authors) > 0 {
			out = append(out, c(0.6, authors))
		}
	case newsprint.FieldPublished:
		out = append(out, e.timeCandidates(d, "datePublished", c)...)
	case newsprint.FieldModified:
		out = append(out, e.timeCandidates(d, "dateModified", c)...)
	case newsprint.FieldKeywords:
		if tags := anchorTexts(d.doc.Find(`a[rel~="tag"]`)); len(tags) > 0 {
			out = append(out, c(1.0, tags))
		}
		if tags := anchorTexts(d.doc.Find(`a[href*="/tag/"]`)); len(tags) > 0 {
			out = append(out, c(0.8, tags))
		}
	case newsprint.FieldImages:
		if e.assets != nil && len(e.assets.Images) > 0 {
			out = append(out, c(1.0, e.assets.Images))
		}
	}
	return out
}

func (e *domHeuristicExtractor) timeCandidates(d *Document, itemprop string, c func(float64, any) newsprint.Candidate) []newsprint.Candidate {
	var out []newsprint.Candidate
	if v := d.doc.Find(`time[itemprop~="`+itemprop+`"]`).First().AttrOr("datetime", ""); v != "" {
		out = append(out, c(1.0, strings.TrimSpace(v)))
	}
	if v := metaContent(d, `meta[itemprop~="`+itemprop+`"]`); v != "" {
		out = append(out, c(0.9, v))
	}
	return out
}

// bylineAuthors walks the byline ladder within scope and returns the
// matches of the first selector that yields any.
func bylineAuthors(d *Document, scope *goquery.Selection) []newsprint.Author {
	for _, selector := range bylineSelectors {
		var authors []newsprint.Author
		scope.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			name := collapse(sel.Text())
			if name == "" || len(name) > 100 {
				return
			}
			a := newsprint.Author{Name: name}
			if href, ok := sel.Attr("href"); ok {
				if u := d.ResolveRef(href); u != "" {
					a.URL = &u
				}
			}
			authors = append(authors, a)
		})
		if len(authors) > 0 {
			return authors
		}
	}
	return nil
}

func anchorTexts(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if v := collapse(s.Text()); v != "" {
			out = append(out, v)
		}
	})
	return out
}

// cleanDocumentTitle strips site-name decorations from a <title> by
// splitting on common separators and keeping the longest part.
func cleanDocumentTitle(title string) string {
	title = collapse(title)
	if title == "" {
		return ""
	}
	best := ""
	for _, part := range titleSplitRE.Split(title, -1) {
		if len(part) > len(best) {
			best = part
		}
	}
	return best
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
