package goquery

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/newsprint"
)

// urlPatternExtractor infers low-confidence values from the resolved
// page URL itself: publication dates and slug-derived titles. It only
// speaks when the document's own surfaces are silent, by virtue of its
// low source rank.
type urlPatternExtractor struct{}

func (e *urlPatternExtractor) Name() string { return "url-pattern" }

// datePathRE matches /2020/09/05/, /2020-09-05/ and /2020/sep/05/
// shapes inside a URL path.
var datePathRE = regexp.MustCompile(`(?i)(?:^|/)((?:19|20)\d{2})[/-](\d{1,2}|[a-z]{3})[/-](\d{1,2})(?:/|$)`)

var monthNames = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

func (e *urlPatternExtractor) Extract(d *Document, _ *Metadata, field newsprint.Field) []newsprint.Candidate {
	if d.base == nil {
		return nil
	}
	path := d.base.Path

	c := func(confidence float64, value any) newsprint.Candidate {
		return newsprint.Candidate{
			Field:      field,
			Source:     newsprint.SourceURLPattern,
			Confidence: confidence,
			Value:      value,
		}
	}

	var out []newsprint.Candidate
	switch field {
	case newsprint.FieldPublished:
		if v := pathDate(path); v != "" {
			out = append(out, c(0.5, v))
		}
	case newsprint.FieldTitle:
		if v := pathSlug(path); v != "" {
			out = append(out, c(0.3, v))
		}
	case newsprint.FieldCategories:
		if v := pathCategory(path); v != "" {
			out = append(out, c(0.3, v))
		}
	}
	return out
}

// pathDate returns an ISO date string for the first date-shaped path
// run, or "".
func pathDate(path string) string {
	m := datePathRE.FindStringSubmatch(path)
	if m == nil {
		return ""
	}
	year, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[3])

	var month int
	if n, err := strconv.Atoi(m[2]); err == nil {
		month = n
	} else {
		month = monthNames[strings.ToLower(m[2])]
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// pathSlug recovers a readable phrase from a hyphenated trailing path
// segment. Purely numeric or single-word segments are ignored.
func pathSlug(path string) string {
	segments := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		return ""
	}
	slug := segments[len(segments)-1]
	if i := strings.LastIndex(slug, "."); i > 0 {
		slug = slug[:i]
	}
	if !strings.Contains(slug, "-") {
		return ""
	}
	words := strings.Split(slug, "-")
	var kept []string
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, err := strconv.Atoi(w); err == nil {
			continue
		}
		kept = append(kept, w)
	}
	if len(kept) < 2 {
		return ""
	}
	return strings.Join(kept, " ")
}

// pathCategory treats a leading alphabetic path segment as a section
// name, e.g. /world/2020/sep/05/….
func pathCategory(path string) string {
	segments := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if len(segments) < 2 {
		return ""
	}
	first := segments[0]
	if len(first) < 3 || len(first) > 24 {
		return ""
	}
	for _, r := range first {
		if r < 'a' || r > 'z' {
			return ""
		}
	}
	return first
}
