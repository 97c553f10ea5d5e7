// Package newsprint turns raw HTML of a web article into a canonical
// structured record: title, authors, timestamps, language, body text
// segments, media, links and keywords.
//
// The root package contains domain types and interfaces only.
// Implementations live in subpackages named after their primary
// dependency (goquery, dateparse, sqlite, etc.) and are wired together
// by callers such as cmd/newsprint.
package newsprint
