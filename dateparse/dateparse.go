// Package dateparse implements newsprint.DateParser on top of
// github.com/araddon/dateparse.
package dateparse

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/fwojciec/newsprint"
)

// Ensure Parser implements newsprint.DateParser at compile time.
var _ newsprint.DateParser = (*Parser)(nil)

// Parser parses free-form date strings. Strings without timezone
// information are interpreted as UTC so that results are deterministic
// across machines.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse converts value into a point in time with an explicit offset.
// It returns ENOTFOUND when the string cannot be interpreted as a date.
func (p *Parser) Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, newsprint.Errorf(newsprint.ENOTFOUND, "Empty date string.")
	}
	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, newsprint.Errorf(newsprint.ENOTFOUND, "Unparseable date %q.", value)
	}
	return t, nil
}
