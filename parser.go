package newsprint

import (
	"context"
	"time"
)

// Parser turns a raw HTML document and the URL it was retrieved from
// into a canonical ArticleRecord.
type Parser interface {
	// Parse extracts a record from rawHTML. pageURL is used as the
	// base for resolving relative links and as the last-resort value
	// for the record URL; it may be empty.
	//
	// Parse fails only on structural problems (empty or unparseable
	// input). Individual fields that cannot be resolved are left null
	// and explained in the record's diagnostics.
	Parse(ctx context.Context, rawHTML, pageURL string) (*ArticleRecord, error)
}

// DateParser converts a free-form date string into an absolute point
// in time with an explicit UTC offset.
type DateParser interface {
	// Parse returns ENOTFOUND-coded errors for strings it cannot
	// interpret as a date.
	Parse(value string) (time.Time, error)
}

// LanguageValidator checks and normalizes language tags.
type LanguageValidator interface {
	// Normalize returns the canonical form of a BCP 47 language tag,
	// or an EINVALID error when the tag is not well formed.
	Normalize(tag string) (string, error)
}

// RecordStore persists parsed records.
type RecordStore interface {
	// CreateRecord stores a record and returns it with storage
	// metadata (id, content hash, timestamps) attached.
	CreateRecord(ctx context.Context, rec *ArticleRecord) (*StoredRecord, error)

	// FindRecordByID returns ENOTFOUND when no record has the id.
	FindRecordByID(ctx context.Context, id string) (*StoredRecord, error)

	// FindRecords returns records matching the filter, newest first,
	// along with the total match count before paging.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*StoredRecord, int, error)

	// DeleteRecord removes a record by id.
	DeleteRecord(ctx context.Context, id string) error
}

// ContentFormatter renders the located content block in an alternate
// output format such as Markdown.
type ContentFormatter interface {
	Format(contentHTML string) (string, error)
}
