package mock

import (
	"time"

	"github.com/fwojciec/newsprint"
)

var _ newsprint.DateParser = (*DateParser)(nil)

// DateParser is a mock implementation of newsprint.DateParser.
type DateParser struct {
	ParseFn func(value string) (time.Time, error)
}

func (p *DateParser) Parse(value string) (time.Time, error) {
	return p.ParseFn(value)
}
