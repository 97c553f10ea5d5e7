package mock

import "github.com/fwojciec/newsprint"

var _ newsprint.ContentFormatter = (*ContentFormatter)(nil)

// ContentFormatter is a mock implementation of newsprint.ContentFormatter.
type ContentFormatter struct {
	FormatFn func(contentHTML string) (string, error)
}

func (f *ContentFormatter) Format(contentHTML string) (string, error) {
	return f.FormatFn(contentHTML)
}
