package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/newsprint/bloom"
	"github.com/fwojciec/newsprint/pipeline"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	inputs, err := readInputs(c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	if len(inputs) == 0 {
		fmt.Fprintf(deps.Stdout, "No HTML files found in %q.\n", c.Dir)
		return nil
	}

	p := &pipeline.Pipeline{
		Parser:      deps.Parser,
		Store:       deps.Records,
		Seen:        bloom.NewFilter(uint(len(inputs)), 0.001),
		Concurrency: c.Concurrency,
	}

	progress := func(event pipeline.ProgressEvent) {
		switch event.Type {
		case pipeline.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Parsing %d documents\n", event.Total)
		case pipeline.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case pipeline.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  dup  %s\n", event.URL)
		}
	}

	result, err := p.Run(deps.Ctx, inputs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Parsed %d, saved %d, skipped %d, failed %d\n",
		result.Parsed, result.Saved, result.Skipped, result.Failed)

	return nil
}

// readInputs loads every .html/.htm file in dir, in name order. The file
// path stands in as the input URL for deduplication; the record URL is
// resolved from the document itself.
func readInputs(dir string) ([]pipeline.Input, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var inputs []pipeline.Input
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".html" && ext != ".htm" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		html, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, pipeline.Input{URL: path, HTML: string(html)})
	}
	return inputs, nil
}
