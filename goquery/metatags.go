package goquery

import (
	"strings"
	"unicode"

	"github.com/fwojciec/newsprint"
)

// metaTagExtractor proposes values from explicit document metadata:
// OpenGraph properties, article:* properties, plain meta tags, and
// canonical/alternate links.
type metaTagExtractor struct{}

func (e *metaTagExtractor) Name() string { return "meta-tag" }

func (e *metaTagExtractor) Extract(d *Document, meta *Metadata, field newsprint.Field) []newsprint.Candidate {
	og := meta.OpenGraph

	c := func(confidence float64, value any) newsprint.Candidate {
		return newsprint.Candidate{
			Field:      field,
			Source:     newsprint.SourceMetaTag,
			Confidence: confidence,
			Value:      value,
		}
	}

	var out []newsprint.Candidate
	switch field {
	case newsprint.FieldTitle:
		if og.Title != "" {
			out = append(out, c(1.0, og.Title))
		}
		if v := metaContent(d, `meta[name="twitter:title"]`); v != "" {
			out = append(out, c(0.9, v))
		}
	case newsprint.FieldDescription:
		if v := metaContent(d, `meta[name="description"]`); v != "" {
			out = append(out, c(1.0, v))
		}
		if og.Description != "" {
			out = append(out, c(0.9, og.Description))
		}
		if v := metaContent(d, `meta[name="twitter:description"]`); v != "" {
			out = append(out, c(0.8, v))
		}
	case newsprint.FieldURL:
		if v := linkHref(d, `link[rel="canonical"]`); v != "" {
			out = append(out, c(1.0, v))
		}
		if og.URL != "" {
			out = append(out, c(0.9, og.URL))
		}
		if v := linkHref(d, `link[rel="alternate"][hreflang]`); v != "" {
			out = append(out, c(0.8, v))
		}
	case newsprint.FieldLanguage:
		if og.Locale != "" {
			out = append(out, c(1.0, og.Locale))
		}
		if v := metaContent(d, `meta[http-equiv="content-language"]`); v != "" {
			out = append(out, c(0.9, v))
		}
	case newsprint.FieldPublished:
		if og.PublishedTime != "" {
			out = append(out, c(1.0, og.PublishedTime))
		}
	case newsprint.FieldModified:
		if og.ModifiedTime != "" {
			out = append(out, c(1.0, og.ModifiedTime))
		}
	case newsprint.FieldAuthors:
		if v := metaContent(d, `meta[name="author"]`); v != "" {
			out = append(out, c(1.0, []newsprint.Author{{Name: v}}))
		}
		if authors := metaAuthors(og.Authors); len(authors) > 0 {
			out = append(out, c(0.9, authors))
		}
	case newsprint.FieldKeywords:
		if len(og.Tags) > 0 {
			out = append(out, c(1.0, og.Tags))
		}
		if v := metaContent(d, `meta[name="keywords"]`); v != "" {
			out = append(out, c(0.9, splitCommaList(v)))
		}
		if v := metaContent(d, `meta[name="news_keywords"]`); v != "" {
			out = append(out, c(0.8, splitCommaList(v)))
		}
	case newsprint.FieldCategories:
		if og.Section != "" {
			out = append(out, c(1.0, og.Section))
		}
	case newsprint.FieldSite:
		if og.SiteName != "" {
			name := og.SiteName
			out = append(out, c(1.0, []newsprint.SiteRef{{Name: &name}}))
		}
	case newsprint.FieldImages:
		refs := make([]newsprint.MediaRef, 0, len(og.Images))
		for _, img := range og.Images {
			u, ok := parseValidURL(img.BestURL())
			if !ok {
				continue
			}
			ref := newsprint.MediaRef{URL: u.String()}
			if img.Alt != "" {
				alt := img.Alt
				ref.AltText = &alt
			}
			refs = append(refs, ref)
		}
		if len(refs) > 0 {
			out = append(out, c(1.0, refs))
		}
	}
	return out
}

// metaAuthors turns article:author values into authors. The property
// carries either a plain name or a profile URL; for URLs the name is
// recovered from the last path segment.
func metaAuthors(values []string) []newsprint.Author {
	var out []newsprint.Author
	for _, v := range values {
		if u, ok := parseValidURL(v); ok {
			name := humanizeSlug(u.Path)
			if name == "" {
				continue
			}
			profile := u.String()
			out = append(out, newsprint.Author{Name: name, URL: &profile})
			continue
		}
		out = append(out, newsprint.Author{Name: v})
	}
	return out
}

// humanizeSlug turns the last path segment of a profile URL into a
// displayable name: "dominic-rushe" becomes "Dominic Rushe".
func humanizeSlug(path string) string {
	segments := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		return ""
	}
	slug := segments[len(segments)-1]
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' || r == '.' })
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func splitCommaList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
