package mock

import "github.com/fwojciec/newsprint"

var _ newsprint.LanguageValidator = (*LanguageValidator)(nil)

// LanguageValidator is a mock implementation of newsprint.LanguageValidator.
type LanguageValidator struct {
	NormalizeFn func(tag string) (string, error)
}

func (v *LanguageValidator) Normalize(tag string) (string, error) {
	return v.NormalizeFn(tag)
}
