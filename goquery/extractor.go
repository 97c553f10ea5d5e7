package goquery

import (
	"github.com/fwojciec/newsprint"
)

// Extractor produces candidate values for record fields from one
// metadata surface. Extractors never fail: a surface that has nothing
// to say for a field returns no candidates.
type Extractor interface {
	// Name identifies the extractor in diagnostics and logs.
	Name() string

	// Extract returns the candidates the surface can propose for the
	// field, in the surface's own preference order.
	Extract(d *Document, meta *Metadata, field newsprint.Field) []newsprint.Candidate
}

// extractors returns the closed set of extractor variants consulted by
// the assembler, in precedence order. block may be nil when location
// failed; the DOM heuristics then search the whole body.
func extractors(block *ContentBlock, assets *Assets) []Extractor {
	return []Extractor{
		&structuredDataExtractor{},
		&metaTagExtractor{},
		&domHeuristicExtractor{block: block, assets: assets},
		&urlPatternExtractor{},
		&documentAttrExtractor{},
	}
}

// documentAttrExtractor proposes document-level attributes. It covers
// only the language field, as the last-resort html[lang] fallback.
type documentAttrExtractor struct{}

func (e *documentAttrExtractor) Name() string { return "document-attr" }

func (e *documentAttrExtractor) Extract(d *Document, _ *Metadata, field newsprint.Field) []newsprint.Candidate {
	if field != newsprint.FieldLanguage {
		return nil
	}
	lang := d.doc.Find("html").AttrOr("lang", "")
	if lang == "" {
		return nil
	}
	return []newsprint.Candidate{{
		Field:      field,
		Source:     newsprint.SourceDocumentAttr,
		Confidence: 1.0,
		Value:      lang,
	}}
}
