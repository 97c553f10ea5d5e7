// Package pipeline provides batch parsing orchestration. It fans a set
// of fetched documents out to parser workers, deduplicates by URL, and
// persists the resulting records.
package pipeline

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/newsprint"
)

// Input is one document to parse: its raw HTML and the URL it was
// fetched from.
type Input struct {
	URL  string
	HTML string
}

// SeenFilter deduplicates inputs by URL. *bloom.Filter satisfies it.
type SeenFilter interface {
	// TestAndAdd marks the URL as seen and reports whether it might
	// have been seen before.
	TestAndAdd(url string) bool
}

// Pipeline coordinates parsing of a document batch.
type Pipeline struct {
	Parser newsprint.Parser

	// Store, when set, persists every successfully parsed record.
	Store newsprint.RecordStore

	// Seen, when set, skips inputs whose URL was already processed.
	Seen SeenFilter

	// Concurrency bounds the number of parser workers. Defaults to 4.
	Concurrency int
}

// Result holds the outcome of a batch run. The counts partition the
// inputs: Parsed + Skipped + Failed equals the input count, and a
// record whose persistence fails counts as Failed, not Parsed.
type Result struct {
	Parsed  int
	Saved   int
	Skipped int
	Failed  int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Record    *newsprint.ArticleRecord
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressParsed
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// parseResult holds the outcome of processing a single input.
type parseResult struct {
	position int
	url      string
	record   *newsprint.ArticleRecord
	skipped  bool
	err      error
}

// Run parses every input and returns the aggregate counts. Each input
// is an independent task; workers share no mutable state, so results
// are deterministic per document regardless of scheduling. Run fails
// only when the context is canceled; per-document failures are counted
// and reported through progress events.
func (p *Pipeline) Run(ctx context.Context, inputs []Input, progress ProgressFunc) (*Result, error) {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(inputs)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan parseResult, total)

	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, input := range inputs {
			i, input := i, input
			g.Go(func() error {
				resultCh <- p.processInput(gctx, i, input)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect in input order so persistence is deterministic.
	results := make([]parseResult, total)
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			URL:       result.url,
			Record:    result.record,
			Error:     result.err,
		}
		switch {
		case result.err != nil:
			event.Type = ProgressFailed
		case result.skipped:
			event.Type = ProgressSkipped
		default:
			event.Type = ProgressParsed
		}
		progress(event)
	}

	res := &Result{}
	for _, result := range results {
		switch {
		case result.err != nil:
			res.Failed++
			continue
		case result.skipped:
			res.Skipped++
			continue
		}
		if p.Store != nil {
			if _, err := p.Store.CreateRecord(ctx, result.record); err != nil {
				res.Failed++
				continue
			}
			res.Saved++
		}
		res.Parsed++
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	return res, nil
}

// processInput parses a single document.
func (p *Pipeline) processInput(ctx context.Context, position int, input Input) parseResult {
	result := parseResult{position: position, url: input.URL}

	if p.Seen != nil && input.URL != "" && p.Seen.TestAndAdd(input.URL) {
		result.skipped = true
		return result
	}

	rec, err := p.Parser.Parse(ctx, input.HTML, input.URL)
	if err != nil {
		result.err = err
		return result
	}
	result.record = rec
	return result
}
