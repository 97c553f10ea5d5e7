package newsprint

import (
	"strings"
	"time"
)

// ArticleRecord is the canonical output of a parse. Every key is always
// present in the serialized form; scalar fields that could not be
// resolved are null, list fields are empty.
//
// The JSON field names form a stable contract with downstream
// consumers and must not change.
type ArticleRecord struct {
	Categories   []string   `json:"record_categories_list"`
	Authors      []Author   `json:"author_list"`
	Title        *string    `json:"record_title"`
	URL          *string    `json:"record_url"`
	Published    *string    `json:"record_published_isotimestamp"`
	Modified     *string    `json:"record_modified_isotimestamp"`
	Site         []SiteRef  `json:"site"`
	Language     *string    `json:"record_language"`
	Content      []string   `json:"record_content"`
	Description  *string    `json:"record_description"`
	Images       []MediaRef `json:"record_images_list"`
	Links        []LinkRef  `json:"record_links_list"`
	Videos       []MediaRef `json:"record_videos_list"`
	Documents    []MediaRef `json:"record_documents_list"`
	Keywords     []string   `json:"record_keywords_list"`
	CommentAreas []MediaRef `json:"record_comment_areas_list"`

	// Diagnostics records field-level degradations (missing required
	// fields, discarded timestamps, invalid language tags).
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`

	// LowConfidence is set when the content block was chosen by the
	// largest-text fallback rather than by scoring.
	LowConfidence bool `json:"low_confidence,omitempty"`

	// ContentHTML holds the markup of the located content block for
	// downstream formatters. Not part of the serialized contract.
	ContentHTML string `json:"-"`
}

// NewArticleRecord returns a record with all list fields initialized so
// that they serialize as [] rather than null.
func NewArticleRecord() *ArticleRecord {
	return &ArticleRecord{
		Categories:   []string{},
		Authors:      []Author{},
		Site:         []SiteRef{},
		Content:      []string{},
		Images:       []MediaRef{},
		Links:        []LinkRef{},
		Videos:       []MediaRef{},
		Documents:    []MediaRef{},
		Keywords:     []string{},
		CommentAreas: []MediaRef{},
	}
}

// Validate returns EINVALID if the record lacks the fields required for
// persistence.
func (r *ArticleRecord) Validate() error {
	if r.URL == nil || *r.URL == "" {
		return Errorf(EINVALID, "Record URL is required.")
	}
	if len(r.Content) == 0 {
		return Errorf(EINVALID, "Record content is required.")
	}
	return nil
}

// Author is a single byline entry.
type Author struct {
	Name     string  `json:"name"`
	URL      *string `json:"url"`
	ImageURL *string `json:"image_url"`
}

// NormalizedName returns the author name lowered and with internal
// whitespace collapsed. Two authors are the same person when their
// normalized names are equal.
func (a Author) NormalizedName() string {
	return strings.ToLower(strings.Join(strings.Fields(a.Name), " "))
}

// SiteRef identifies the publishing site.
type SiteRef struct {
	Name *string `json:"name"`
	URL  *string `json:"url"`
}

// MediaRef is a reference to an image, video, document or comment area.
type MediaRef struct {
	URL     string  `json:"url"`
	AltText *string `json:"alt_text"`
}

// LinkRef is a hyperlink found inside the article content.
type LinkRef struct {
	URL  string  `json:"url"`
	Text *string `json:"text"`
}

// Diagnostic explains why a field is absent or degraded.
type Diagnostic struct {
	Field  Field  `json:"field"`
	Reason string `json:"reason"`
}

// StoredRecord wraps an ArticleRecord with storage metadata.
type StoredRecord struct {
	ID          string
	URL         string
	Title       string
	Language    string
	ContentHash string
	ParsedAt    time.Time
	Record      *ArticleRecord
}

// RecordFilter narrows FindRecords results. Nil fields are ignored.
type RecordFilter struct {
	URL      *string
	Language *string

	Offset int
	Limit  int
}
