// Package language implements newsprint.LanguageValidator on top of
// golang.org/x/text/language.
package language

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/fwojciec/newsprint"
)

// Ensure Validator implements newsprint.LanguageValidator at compile time.
var _ newsprint.LanguageValidator = (*Validator)(nil)

// Validator checks and canonicalizes BCP 47 language tags.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Normalize returns the canonical form of tag ("en_GB" and "EN-gb"
// both become "en-GB") or EINVALID when the tag is not well formed.
func (v *Validator) Normalize(tag string) (string, error) {
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if tag == "" {
		return "", newsprint.Errorf(newsprint.EINVALID, "Empty language tag.")
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return "", newsprint.Errorf(newsprint.EINVALID, "Invalid language tag %q.", tag)
	}
	return parsed.String(), nil
}
