package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsprint"
)

// Ensure LoggingRecordStore implements newsprint.RecordStore.
var _ newsprint.RecordStore = (*LoggingRecordStore)(nil)

// LoggingRecordStore wraps a RecordStore with structured logging.
type LoggingRecordStore struct {
	next   newsprint.RecordStore
	logger *slog.Logger
}

// NewLoggingRecordStore creates a new LoggingRecordStore.
func NewLoggingRecordStore(next newsprint.RecordStore, logger *slog.Logger) *LoggingRecordStore {
	return &LoggingRecordStore{next: next, logger: logger}
}

// CreateRecord delegates to the wrapped store and logs the operation.
func (s *LoggingRecordStore) CreateRecord(ctx context.Context, rec *newsprint.ArticleRecord) (stored *newsprint.StoredRecord, err error) {
	defer func(begin time.Time) {
		attrs := []any{"duration", time.Since(begin), "err", err}
		if stored != nil {
			attrs = append(attrs, "id", stored.ID, "url", stored.URL)
		}
		s.logger.Info("create record", attrs...)
	}(time.Now())
	return s.next.CreateRecord(ctx, rec)
}

// FindRecordByID delegates to the wrapped store and logs the operation.
func (s *LoggingRecordStore) FindRecordByID(ctx context.Context, id string) (stored *newsprint.StoredRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find record",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecordByID(ctx, id)
}

// FindRecords delegates to the wrapped store and logs the operation.
func (s *LoggingRecordStore) FindRecords(ctx context.Context, filter newsprint.RecordFilter) (records []*newsprint.StoredRecord, total int, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find records",
			"count", len(records),
			"total", total,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecords(ctx, filter)
}

// DeleteRecord delegates to the wrapped store and logs the operation.
func (s *LoggingRecordStore) DeleteRecord(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete record",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRecord(ctx, id)
}
