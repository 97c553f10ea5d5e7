package newsprint

// Field names an output field that signal extractors can produce
// candidates for. Values match the record's JSON keys.
type Field string

const (
	FieldTitle       Field = "record_title"
	FieldURL         Field = "record_url"
	FieldLanguage    Field = "record_language"
	FieldDescription Field = "record_description"
	FieldPublished   Field = "record_published_isotimestamp"
	FieldModified    Field = "record_modified_isotimestamp"
	FieldAuthors     Field = "author_list"
	FieldKeywords    Field = "record_keywords_list"
	FieldCategories  Field = "record_categories_list"
	FieldSite        Field = "site"
	FieldImages      Field = "record_images_list"
)

// Source identifies the metadata surface a candidate came from.
// Lower values are more authoritative.
type Source int

const (
	// SourceStructuredData is embedded structured data (JSON-LD).
	SourceStructuredData Source = iota

	// SourceMetaTag is explicit document metadata (OpenGraph,
	// article:* and plain meta tags, canonical links).
	SourceMetaTag

	// SourceDOMHeuristic is values inferred from visible markup
	// (headings, bylines, time elements, tag links).
	SourceDOMHeuristic

	// SourceURLPattern is values inferred from the page URL itself.
	SourceURLPattern

	// SourceDocumentAttr is document-level attributes such as
	// html[lang]. Used only as a last resort for the language field.
	SourceDocumentAttr
)

// String implements fmt.Stringer.
func (s Source) String() string {
	switch s {
	case SourceStructuredData:
		return "structured-data"
	case SourceMetaTag:
		return "meta-tag"
	case SourceDOMHeuristic:
		return "dom-heuristic"
	case SourceURLPattern:
		return "url-pattern"
	case SourceDocumentAttr:
		return "document-attr"
	default:
		return "unknown"
	}
}

// Candidate is a provisional value for one field proposed by a single
// extractor. The payload type depends on the field:
//
//   - string for scalar fields
//   - string or []string for keywords and categories
//   - []Author for the author list
//   - []SiteRef for the site
//   - []MediaRef for images
type Candidate struct {
	Field      Field
	Source     Source
	Confidence float64
	Value      any
}
