package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/newsprint"
)

// JSONLD holds the article-bearing subset of the document's embedded
// JSON-LD. Date values are kept as raw strings; normalization happens
// in the assembler.
type JSONLD struct {
	Headline      string
	Name          string
	Description   string
	InLanguage    string
	URL           string
	DatePublished string
	DateModified  string
	DateCreated   string
	Sections      []string
	Keywords      []string
	Authors       []newsprint.Author
	Publishers    []newsprint.SiteRef
	Images        []string
}

// articleTypes is the schema.org type ladder. The first type with
// exactly one instance in the document wins; multiple instances of the
// same type are ambiguous and skipped.
var articleTypes = []string{
	"NewsArticle",
	"ReportageNewsArticle",
	"Article",
	"BlogPosting",
	"WebPage",
	"ItemPage",
}

// extractJSONLD collects every ld+json script in the document,
// flattens @graph containers, and reads the best article node.
func extractJSONLD(d *Document) *JSONLD {
	var nodes []map[string]any
	d.doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var raw any
		if err := json.Unmarshal([]byte(sel.Text()), &raw); err != nil {
			return
		}
		nodes = append(nodes, flattenLD(raw)...)
	})

	out := &JSONLD{}
	item := pickArticleNode(nodes)
	if item == nil {
		return out
	}

	out.Headline = ldString(item["headline"])
	out.Name = ldString(item["name"])
	out.Description = ldString(item["description"])
	out.InLanguage = ldLanguage(item["inLanguage"])
	out.DatePublished = ldString(item["datePublished"])
	out.DateModified = ldString(item["dateModified"])
	out.DateCreated = ldString(item["dateCreated"])
	out.Sections = ldStrings(item["articleSection"])
	out.Keywords = ldKeywords(item["keywords"])
	out.Authors = ldPersons(item["author"])
	out.Publishers = ldPublishers(item["publisher"])
	out.Images = ldImages(item["image"])

	if out.URL = ldURL(item["url"]); out.URL == "" {
		out.URL = ldURL(item["mainEntityOfPage"])
	}
	return out
}

// flattenLD unwraps arrays and @graph containers into a flat node list.
func flattenLD(raw any) []map[string]any {
	switch v := raw.(type) {
	case []any:
		var out []map[string]any
		for _, item := range v {
			out = append(out, flattenLD(item)...)
		}
		return out
	case map[string]any:
		if graph, ok := v["@graph"].([]any); ok {
			var out []map[string]any
			for _, item := range graph {
				out = append(out, flattenLD(item)...)
			}
			return out
		}
		return []map[string]any{v}
	default:
		return nil
	}
}

func pickArticleNode(nodes []map[string]any) map[string]any {
	for _, typ := range articleTypes {
		var matches []map[string]any
		for _, n := range nodes {
			if hasLDType(n, typ) {
				matches = append(matches, n)
			}
		}
		if len(matches) == 1 {
			return matches[0]
		}
	}
	return nil
}

func hasLDType(n map[string]any, typ string) bool {
	switch t := n["@type"].(type) {
	case string:
		return strings.EqualFold(t, typ)
	case []any:
		for _, v := range t {
			if s, ok := v.(string); ok && strings.EqualFold(s, typ) {
				return true
			}
		}
	}
	return false
}

func ldString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func ldStrings(v any) []string {
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
	case []any:
		var out []string
		for _, item := range t {
			if s := ldString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// ldKeywords handles both comma-separated strings and string arrays.
func ldKeywords(v any) []string {
	if s, ok := v.(string); ok {
		var out []string
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return ldStrings(v)
}

func ldLanguage(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		return ldString(t["name"])
	}
	return ""
}

func ldURL(v any) string {
	switch t := v.(type) {
	case string:
		if _, ok := parseValidURL(t); ok {
			return strings.TrimSpace(t)
		}
	case map[string]any:
		return ldURL(t["@id"])
	}
	return ""
}

func ldPersons(v any) []newsprint.Author {
	switch t := v.(type) {
	case map[string]any:
		if a, ok := ldPerson(t); ok {
			return []newsprint.Author{a}
		}
	case []any:
		var out []newsprint.Author
		for _, item := range t {
			if m, ok := item.(map[string]any); ok {
				if a, ok := ldPerson(m); ok {
					out = append(out, a)
				}
			}
		}
		return out
	}
	return nil
}

func ldPerson(m map[string]any) (newsprint.Author, bool) {
	a := newsprint.Author{Name: ldString(m["name"])}
	if a.Name == "" {
		return a, false
	}
	if u := ldURL(m["url"]); u != "" {
		a.URL = &u
	} else if sameAs := ldStrings(m["sameAs"]); len(sameAs) > 0 {
		if u := ldURL(sameAs[0]); u != "" {
			a.URL = &u
		}
	}
	if img := ldImages(m["image"]); len(img) > 0 {
		a.ImageURL = &img[0]
	}
	return a, true
}

func ldPublishers(v any) []newsprint.SiteRef {
	switch t := v.(type) {
	case map[string]any:
		if s, ok := ldPublisher(t); ok {
			return []newsprint.SiteRef{s}
		}
	case []any:
		var out []newsprint.SiteRef
		for _, item := range t {
			if m, ok := item.(map[string]any); ok {
				if s, ok := ldPublisher(m); ok {
					out = append(out, s)
				}
			}
		}
		return out
	}
	return nil
}

func ldPublisher(m map[string]any) (newsprint.SiteRef, bool) {
	name := ldString(m["name"])
	if name == "" {
		return newsprint.SiteRef{}, false
	}
	ref := newsprint.SiteRef{Name: &name}
	if u := ldURL(m["url"]); u != "" {
		ref.URL = &u
	}
	return ref, true
}

// ldImages accepts a bare URL string, an ImageObject, or a list of
// either.
func ldImages(v any) []string {
	switch t := v.(type) {
	case string:
		if u := ldURL(t); u != "" {
			return []string{u}
		}
	case map[string]any:
		if u := ldURL(t["url"]); u != "" {
			return []string{u}
		}
	case []any:
		var out []string
		for _, item := range t {
			out = append(out, ldImages(item)...)
		}
		return out
	}
	return nil
}
