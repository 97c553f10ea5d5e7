// Package slog provides logging decorators for newsprint services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsprint"
)

// Ensure LoggingParser implements newsprint.Parser.
var _ newsprint.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with structured logging.
type LoggingParser struct {
	next   newsprint.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next newsprint.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(ctx context.Context, rawHTML, pageURL string) (rec *newsprint.ArticleRecord, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", pageURL,
			"bytes", len(rawHTML),
			"duration", time.Since(begin),
			"err", err,
		}
		if rec != nil {
			attrs = append(attrs,
				"segments", len(rec.Content),
				"diagnostics", len(rec.Diagnostics),
				"low_confidence", rec.LowConfidence,
			)
		}
		p.logger.Info("parse", attrs...)
	}(time.Now())
	return p.next.Parse(ctx, rawHTML, pageURL)
}
