package newsprint

import (
	"sort"
	"strings"
	"unicode"
)

// Resolution of competing candidates for a field. All functions here
// are pure: the same candidate slice always resolves to the same value,
// regardless of the order extractors ran in.

// RankCandidates returns the candidates ordered by source rank
// ascending, then confidence descending. The sort is stable so that
// insertion order breaks remaining ties.
func RankCandidates(cands []Candidate) []Candidate {
	out := make([]Candidate, len(cands))
	copy(out, cands)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Confidence > out[j].Confidence
	})
	return out
}

// bestRank returns the ranked candidates from the most authoritative
// source present.
func bestRank(cands []Candidate) []Candidate {
	ranked := RankCandidates(cands)
	if len(ranked) == 0 {
		return nil
	}
	best := ranked[0].Source
	n := 0
	for _, c := range ranked {
		if c.Source != best {
			break
		}
		n++
	}
	return ranked[:n]
}

// ResolveString selects the winning value for a singular string field.
// It reports false when no candidate carries a non-empty string.
func ResolveString(cands []Candidate) (string, bool) {
	for _, c := range RankCandidates(cands) {
		if s, ok := c.Value.(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// ResolveStrings unions all string candidates at the best available
// rank. Duplicates are detected case-insensitively after whitespace
// collapsing; the representative kept prefers Title Case over UPPER
// CASE over lower case, while the position of the first occurrence is
// preserved.
func ResolveStrings(cands []Candidate) []string {
	var out []string
	index := make(map[string]int)
	for _, c := range bestRank(cands) {
		for _, raw := range stringValues(c.Value) {
			s := strings.Join(strings.Fields(raw), " ")
			if s == "" {
				continue
			}
			key := strings.ToLower(s)
			if i, ok := index[key]; ok {
				if caseRank(s) < caseRank(out[i]) {
					out[i] = s
				}
				continue
			}
			index[key] = len(out)
			out = append(out, s)
		}
	}
	return out
}

// ResolveAuthors unions the author candidates at the best available
// rank. Authors are deduplicated by normalized name; the first
// non-empty URL and image URL seen for a name win.
func ResolveAuthors(cands []Candidate) []Author {
	var out []Author
	index := make(map[string]int)
	for _, c := range bestRank(cands) {
		authors, ok := c.Value.([]Author)
		if !ok {
			continue
		}
		for _, a := range authors {
			if strings.TrimSpace(a.Name) == "" {
				continue
			}
			a.Name = strings.Join(strings.Fields(a.Name), " ")
			key := a.NormalizedName()
			if i, ok := index[key]; ok {
				if out[i].URL == nil {
					out[i].URL = a.URL
				}
				if out[i].ImageURL == nil {
					out[i].ImageURL = a.ImageURL
				}
				continue
			}
			index[key] = len(out)
			out = append(out, a)
		}
	}
	return out
}

// ResolveSites unions the site candidates at the best available rank,
// deduplicated by normalized name.
func ResolveSites(cands []Candidate) []SiteRef {
	var out []SiteRef
	seen := make(map[string]bool)
	for _, c := range bestRank(cands) {
		sites, ok := c.Value.([]SiteRef)
		if !ok {
			continue
		}
		for _, s := range sites {
			key := ""
			if s.Name != nil {
				key = strings.ToLower(strings.Join(strings.Fields(*s.Name), " "))
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, s)
		}
	}
	return out
}

// ResolveMedia unions the media candidates at the best available rank,
// deduplicated by URL with the first occurrence winning.
func ResolveMedia(cands []Candidate) []MediaRef {
	var out []MediaRef
	seen := make(map[string]bool)
	for _, c := range bestRank(cands) {
		refs, ok := c.Value.([]MediaRef)
		if !ok {
			continue
		}
		for _, m := range refs {
			if m.URL == "" || seen[m.URL] {
				continue
			}
			seen[m.URL] = true
			out = append(out, m)
		}
	}
	return out
}

func stringValues(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []string:
		return t
	default:
		return nil
	}
}

// caseRank orders casing variants of the same keyword: Title Case
// before UPPER CASE before lower case before mixed.
func caseRank(s string) int {
	switch {
	case isTitleCase(s):
		return 0
	case s == strings.ToUpper(s):
		return 1
	case s == strings.ToLower(s):
		return 2
	default:
		return 3
	}
}

func isTitleCase(s string) bool {
	hasLetter := false
	for _, w := range strings.Fields(s) {
		first := true
		for _, r := range w {
			if !unicode.IsLetter(r) {
				continue
			}
			hasLetter = true
			if first {
				if !unicode.IsUpper(r) {
					return false
				}
				first = false
			} else if unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
