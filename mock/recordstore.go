package mock

import (
	"context"

	"github.com/fwojciec/newsprint"
)

var _ newsprint.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of newsprint.RecordStore.
type RecordStore struct {
	CreateRecordFn   func(ctx context.Context, rec *newsprint.ArticleRecord) (*newsprint.StoredRecord, error)
	FindRecordByIDFn func(ctx context.Context, id string) (*newsprint.StoredRecord, error)
	FindRecordsFn    func(ctx context.Context, filter newsprint.RecordFilter) ([]*newsprint.StoredRecord, int, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
}

func (s *RecordStore) CreateRecord(ctx context.Context, rec *newsprint.ArticleRecord) (*newsprint.StoredRecord, error) {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordStore) FindRecordByID(ctx context.Context, id string) (*newsprint.StoredRecord, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordStore) FindRecords(ctx context.Context, filter newsprint.RecordFilter) ([]*newsprint.StoredRecord, int, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordStore) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}
