package pipeline_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/newsprint"
	"github.com/fwojciec/newsprint/bloom"
	"github.com/fwojciec/newsprint/mock"
	"github.com/fwojciec/newsprint/pipeline"
)

func okParser() *mock.Parser {
	return &mock.Parser{
		ParseFn: func(_ context.Context, _, pageURL string) (*newsprint.ArticleRecord, error) {
			rec := newsprint.NewArticleRecord()
			rec.URL = &pageURL
			rec.Content = []string{"text"}
			return rec, nil
		},
	}
}

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	t.Run("parses every input", func(t *testing.T) {
		t.Parallel()
		p := &pipeline.Pipeline{Parser: okParser()}

		inputs := []pipeline.Input{
			{URL: "https://x.com/1", HTML: "<html><body><p>one</p></body></html>"},
			{URL: "https://x.com/2", HTML: "<html><body><p>two</p></body></html>"},
			{URL: "https://x.com/3", HTML: "<html><body><p>three</p></body></html>"},
		}

		res, err := p.Run(context.Background(), inputs, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, res.Parsed)
		assert.Equal(t, 0, res.Failed)
		assert.Equal(t, 0, res.Skipped)
	})

	t.Run("skips duplicate urls", func(t *testing.T) {
		t.Parallel()
		p := &pipeline.Pipeline{
			Parser:      okParser(),
			Seen:        bloom.NewFilter(100, 0.01),
			Concurrency: 1,
		}

		inputs := []pipeline.Input{
			{URL: "https://x.com/a", HTML: "<p>one</p>"},
			{URL: "https://x.com/a", HTML: "<p>one again</p>"},
			{URL: "https://x.com/b", HTML: "<p>two</p>"},
		}

		res, err := p.Run(context.Background(), inputs, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Parsed)
		assert.Equal(t, 1, res.Skipped)
	})

	t.Run("counts per-document failures without aborting", func(t *testing.T) {
		t.Parallel()
		p := &pipeline.Pipeline{
			Parser: &mock.Parser{
				ParseFn: func(_ context.Context, rawHTML, pageURL string) (*newsprint.ArticleRecord, error) {
					if rawHTML == "" {
						return nil, newsprint.Errorf(newsprint.EINVALID, "Empty HTML input.")
					}
					rec := newsprint.NewArticleRecord()
					rec.URL = &pageURL
					return rec, nil
				},
			},
		}

		inputs := []pipeline.Input{
			{URL: "https://x.com/ok", HTML: "<p>fine</p>"},
			{URL: "https://x.com/broken", HTML: ""},
		}

		res, err := p.Run(context.Background(), inputs, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Parsed)
		assert.Equal(t, 1, res.Failed)
	})

	t.Run("persists records through the store", func(t *testing.T) {
		t.Parallel()
		var mu sync.Mutex
		var savedURLs []string
		store := &mock.RecordStore{
			CreateRecordFn: func(_ context.Context, rec *newsprint.ArticleRecord) (*newsprint.StoredRecord, error) {
				mu.Lock()
				defer mu.Unlock()
				savedURLs = append(savedURLs, *rec.URL)
				return &newsprint.StoredRecord{ID: "id", Record: rec}, nil
			},
		}
		p := &pipeline.Pipeline{Parser: okParser(), Store: store}

		inputs := []pipeline.Input{
			{URL: "https://x.com/1", HTML: "<p>one</p>"},
			{URL: "https://x.com/2", HTML: "<p>two</p>"},
		}

		res, err := p.Run(context.Background(), inputs, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Saved)
		// Persistence happens in input order regardless of worker
		// scheduling.
		assert.Equal(t, []string{"https://x.com/1", "https://x.com/2"}, savedURLs)
	})

	t.Run("failed persistence counts the document as failed", func(t *testing.T) {
		t.Parallel()
		store := &mock.RecordStore{
			CreateRecordFn: func(_ context.Context, rec *newsprint.ArticleRecord) (*newsprint.StoredRecord, error) {
				if *rec.URL == "https://x.com/full" {
					return nil, newsprint.Errorf(newsprint.EINTERNAL, "Disk full.")
				}
				return &newsprint.StoredRecord{ID: "id", Record: rec}, nil
			},
		}
		p := &pipeline.Pipeline{Parser: okParser(), Store: store}

		inputs := []pipeline.Input{
			{URL: "https://x.com/ok", HTML: "<p>one</p>"},
			{URL: "https://x.com/full", HTML: "<p>two</p>"},
		}

		res, err := p.Run(context.Background(), inputs, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Parsed)
		assert.Equal(t, 1, res.Saved)
		assert.Equal(t, 1, res.Failed)
		// The counts partition the inputs.
		assert.Equal(t, len(inputs), res.Parsed+res.Skipped+res.Failed)
	})

	t.Run("respects the concurrency bound", func(t *testing.T) {
		t.Parallel()
		var active, peak atomic.Int64
		parser := &mock.Parser{
			ParseFn: func(_ context.Context, _, pageURL string) (*newsprint.ArticleRecord, error) {
				n := active.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				defer active.Add(-1)
				rec := newsprint.NewArticleRecord()
				rec.URL = &pageURL
				return rec, nil
			},
		}
		p := &pipeline.Pipeline{Parser: parser, Concurrency: 2}

		var inputs []pipeline.Input
		for i := 0; i < 20; i++ {
			inputs = append(inputs, pipeline.Input{URL: fmt.Sprintf("https://x.com/%d", i), HTML: "<p>x</p>"})
		}

		_, err := p.Run(context.Background(), inputs, nil)
		require.NoError(t, err)
		assert.LessOrEqual(t, peak.Load(), int64(2))
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()
		p := &pipeline.Pipeline{Parser: okParser(), Concurrency: 1}

		var events []pipeline.ProgressType
		_, err := p.Run(context.Background(), []pipeline.Input{
			{URL: "https://x.com/1", HTML: "<p>one</p>"},
		}, func(e pipeline.ProgressEvent) {
			events = append(events, e.Type)
		})
		require.NoError(t, err)
		assert.Equal(t, []pipeline.ProgressType{
			pipeline.ProgressStarted,
			pipeline.ProgressParsed,
			pipeline.ProgressFinished,
		}, events)
	})
}
