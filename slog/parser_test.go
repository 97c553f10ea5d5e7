package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/newsprint"
	"github.com/fwojciec/newsprint/mock"
	nslog "github.com/fwojciec/newsprint/slog"
)

func TestLoggingParser_Parse(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

	parser := &mock.Parser{
		ParseFn: func(_ context.Context, _, pageURL string) (*newsprint.ArticleRecord, error) {
			rec := newsprint.NewArticleRecord()
			rec.URL = &pageURL
			rec.Content = []string{"one", "two"}
			return rec, nil
		},
	}

	p := nslog.NewLoggingParser(parser, logger)
	rec, err := p.Parse(context.Background(), "<p>x</p>", "https://x.com/a")
	require.NoError(t, err)
	require.NotNil(t, rec)

	out := buf.String()
	assert.Contains(t, out, "msg=parse")
	assert.Contains(t, out, "url=https://x.com/a")
	assert.Contains(t, out, "segments=2")
}
