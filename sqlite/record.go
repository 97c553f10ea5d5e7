package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/fwojciec/newsprint"
)

// Compile-time interface verification.
var _ newsprint.RecordStore = (*RecordService)(nil)

// RecordService implements newsprint.RecordStore using SQLite. The full
// record is stored as a JSON payload next to the indexed columns.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// hashContent computes xxHash of the record's text segments and
// returns it as a hex string.
func hashContent(segments []string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(strings.Join(segments, "\n")))
	return hex.EncodeToString(b[:])
}

// CreateRecord stores a record and returns it wrapped with storage
// metadata.
func (s *RecordService) CreateRecord(ctx context.Context, rec *newsprint.ArticleRecord) (*newsprint.StoredRecord, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}

	stored := &newsprint.StoredRecord{
		ID:          uuid.New().String(),
		URL:         *rec.URL,
		ContentHash: hashContent(rec.Content),
		ParsedAt:    time.Now().UTC(),
		Record:      rec,
	}
	if rec.Title != nil {
		stored.Title = *rec.Title
	}
	if rec.Language != nil {
		stored.Language = *rec.Language
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (id, url, title, language, content_hash, parsed_at, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, stored.ID, stored.URL, stored.Title, stored.Language, stored.ContentHash,
		stored.ParsedAt.Format(time.RFC3339), string(payload))
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*newsprint.StoredRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, language, content_hash, parsed_at, payload
		FROM records
		WHERE id = ?
	`, id)

	stored, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, newsprint.Errorf(newsprint.ENOTFOUND, "Record not found.")
	}
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// FindRecords retrieves records matching the filter, newest first,
// together with the total match count before paging.
func (s *RecordService) FindRecords(ctx context.Context, filter newsprint.RecordFilter) ([]*newsprint.StoredRecord, int, error) {
	where := "WHERE 1=1"
	var args []any
	if filter.URL != nil {
		where += " AND url = ?"
		args = append(args, *filter.URL)
	}
	if filter.Language != nil {
		where += " AND language = ?"
		args = append(args, *filter.Language)
	}

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	var query strings.Builder
	query.WriteString("SELECT id, url, title, language, content_hash, parsed_at, payload FROM records ")
	query.WriteString(where)
	query.WriteString(" ORDER BY parsed_at DESC, id ASC")
	if filter.Limit > 0 || filter.Offset > 0 {
		// SQLite accepts OFFSET only after LIMIT; -1 means no limit.
		limit := filter.Limit
		if limit <= 0 {
			limit = -1
		}
		query.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []*newsprint.StoredRecord
	for rows.Next() {
		stored, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, stored)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// DeleteRecord removes a record by ID.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return newsprint.Errorf(newsprint.ENOTFOUND, "Record not found.")
	}
	return nil
}

// scanRecord reads one row into a StoredRecord, decoding the JSON
// payload.
func scanRecord(scan func(dest ...any) error) (*newsprint.StoredRecord, error) {
	var stored newsprint.StoredRecord
	var parsedAt, payload string

	if err := scan(&stored.ID, &stored.URL, &stored.Title, &stored.Language,
		&stored.ContentHash, &parsedAt, &payload); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339, parsedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse parsed_at: %w", err)
	}
	stored.ParsedAt = t

	var rec newsprint.ArticleRecord
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, fmt.Errorf("failed to decode record payload: %w", err)
	}
	stored.Record = &rec

	return &stored, nil
}
