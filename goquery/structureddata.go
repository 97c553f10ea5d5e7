package goquery

import (
	"github.com/fwojciec/newsprint"
)

// structuredDataExtractor proposes values read from the document's
// JSON-LD. It is the most authoritative surface.
type structuredDataExtractor struct{}

func (e *structuredDataExtractor) Name() string { return "structured-data" }

func (e *structuredDataExtractor) Extract(_ *Document, meta *Metadata, field newsprint.Field) []newsprint.Candidate {
	ld := meta.JSONLD
	if ld == nil {
		return nil
	}

	c := func(confidence float64, value any) newsprint.Candidate {
		return newsprint.Candidate{
			Field:      field,
			Source:     newsprint.SourceStructuredData,
			Confidence: confidence,
			Value:      value,
		}
	}

	var out []newsprint.Candidate
	switch field {
	case newsprint.FieldTitle:
		if ld.Headline != "" {
			out = append(out, c(1.0, ld.Headline))
		}
		if ld.Name != "" {
			out = append(out, c(0.9, ld.Name))
		}
	case newsprint.FieldDescription:
		if ld.Description != "" {
			out = append(out, c(1.0, ld.Description))
		}
	case newsprint.FieldURL:
		if ld.URL != "" {
			out = append(out, c(1.0, ld.URL))
		}
	case newsprint.FieldLanguage:
		if ld.InLanguage != "" {
			out = append(out, c(1.0, ld.InLanguage))
		}
	case newsprint.FieldPublished:
		if ld.DatePublished != "" {
			out = append(out, c(1.0, ld.DatePublished))
		}
		if ld.DateCreated != "" {
			out = append(out, c(0.8, ld.DateCreated))
		}
	case newsprint.FieldModified:
		if ld.DateModified != "" {
			out = append(out, c(1.0, ld.DateModified))
		}
	case newsprint.FieldAuthors:
		if len(ld.Authors) > 0 {
			out = append(out, c(1.0, ld.Authors))
		}
	case newsprint.FieldKeywords:
		if len(ld.Keywords) > 0 {
			out = append(out, c(1.0, ld.Keywords))
		}
	case newsprint.FieldCategories:
		if len(ld.Sections) > 0 {
			out = append(out, c(1.0, ld.Sections))
		}
	case newsprint.FieldSite:
		if len(ld.Publishers) > 0 {
			out = append(out, c(1.0, ld.Publishers))
		}
	case newsprint.FieldImages:
		if len(ld.Images) > 0 {
			refs := make([]newsprint.MediaRef, 0, len(ld.Images))
			for _, u := range ld.Images {
				refs = append(refs, newsprint.MediaRef{URL: u})
			}
			out = append(out, c(1.0, refs))
		}
	}
	return out
}
