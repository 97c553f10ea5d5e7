package mock

import (
	"context"

	"github.com/fwojciec/newsprint"
)

var _ newsprint.Parser = (*Parser)(nil)

// Parser is a mock implementation of newsprint.Parser.
type Parser struct {
	ParseFn func(ctx context.Context, rawHTML, pageURL string) (*newsprint.ArticleRecord, error)
}

func (p *Parser) Parse(ctx context.Context, rawHTML, pageURL string) (*newsprint.ArticleRecord, error) {
	return p.ParseFn(ctx, rawHTML, pageURL)
}
