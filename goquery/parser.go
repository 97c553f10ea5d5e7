package goquery

import (
	"context"

	"github.com/fwojciec/newsprint"
)

// Ensure Parser implements newsprint.Parser at compile time.
var _ newsprint.Parser = (*Parser)(nil)

// Parser assembles canonical article records from raw HTML. It is
// immutable after construction and safe for concurrent use; every
// Parse call works on its own document and side tables.
type Parser struct {
	cfg     newsprint.Config
	dates   newsprint.DateParser
	langs   newsprint.LanguageValidator
	locator *locator
}

// NewParser creates a Parser with the given configuration and
// collaborators. dates and langs must not be nil.
func NewParser(cfg newsprint.Config, dates newsprint.DateParser, langs newsprint.LanguageValidator) (*Parser, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if dates == nil || langs == nil {
		return nil, newsprint.Errorf(newsprint.EINVALID, "Date parser and language validator are required.")
	}
	return &Parser{
		cfg:     cfg,
		dates:   dates,
		langs:   langs,
		locator: newLocator(cfg),
	}, nil
}

// resolvedFields is the set of fields routed through the resolver.
var resolvedFields = []newsprint.Field{
	newsprint.FieldTitle,
	newsprint.FieldURL,
	newsprint.FieldLanguage,
	newsprint.FieldDescription,
	newsprint.FieldPublished,
	newsprint.FieldModified,
	newsprint.FieldAuthors,
	newsprint.FieldKeywords,
	newsprint.FieldCategories,
	newsprint.FieldSite,
	newsprint.FieldImages,
}

// requiredFields get a diagnostic when they resolve to nothing.
var requiredFields = []newsprint.Field{
	newsprint.FieldTitle,
	newsprint.FieldURL,
	newsprint.FieldLanguage,
}

// Parse extracts a canonical record from rawHTML. Only structural
// failures return an error; everything else degrades per field.
func (p *Parser) Parse(ctx context.Context, rawHTML, pageURL string) (*newsprint.ArticleRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d, err := ParseDocument(rawHTML)
	if err != nil {
		return nil, err
	}

	meta := extractMetadata(d)

	// The record URL doubles as the base for relative references, so
	// it is resolved before anything that touches hrefs.
	recordURL := resolvePageURL(d, meta, pageURL)
	if u, ok := parseValidURL(recordURL); ok {
		d.SetBase(u)
	} else if u, ok := parseValidURL(pageURL); ok {
		d.SetBase(u)
	}

	block := p.locator.locate(d)
	assets := extractAssets(d, block.Selection)

	candidates := make(map[newsprint.Field][]newsprint.Candidate)
	for _, ext := range extractors(block, assets) {
		for _, field := range resolvedFields {
			candidates[field] = append(candidates[field], ext.Extract(d, meta, field)...)
		}
	}

	rec := newsprint.NewArticleRecord()
	rec.LowConfidence = block.LowConfidence
	rec.ContentHTML = block.HTML
	rec.Content = append(rec.Content, block.Segments...)

	diag := func(field newsprint.Field, reason string) {
		rec.Diagnostics = append(rec.Diagnostics, newsprint.Diagnostic{Field: field, Reason: reason})
	}

	if recordURL != "" {
		rec.URL = &recordURL
	}
	if v, ok := newsprint.ResolveString(candidates[newsprint.FieldTitle]); ok {
		title := collapse(v)
		rec.Title = &title
	}
	if v, ok := newsprint.ResolveString(candidates[newsprint.FieldDescription]); ok {
		desc := collapse(v)
		rec.Description = &desc
	}

	rec.Language = p.resolveLanguage(candidates[newsprint.FieldLanguage], diag)
	rec.Published = p.resolveTimestamp(newsprint.FieldPublished, candidates[newsprint.FieldPublished], diag)
	rec.Modified = p.resolveTimestamp(newsprint.FieldModified, candidates[newsprint.FieldModified], diag)

	rec.Authors = append(rec.Authors, newsprint.ResolveAuthors(candidates[newsprint.FieldAuthors])...)
	rec.Keywords = append(rec.Keywords, newsprint.ResolveStrings(candidates[newsprint.FieldKeywords])...)
	rec.Categories = append(rec.Categories, newsprint.ResolveStrings(candidates[newsprint.FieldCategories])...)
	rec.Site = append(rec.Site, newsprint.ResolveSites(candidates[newsprint.FieldSite])...)
	rec.Images = append(rec.Images, newsprint.ResolveMedia(candidates[newsprint.FieldImages])...)

	rec.Videos = append(rec.Videos, assets.Videos...)
	rec.Documents = append(rec.Documents, assets.Documents...)
	rec.CommentAreas = append(rec.CommentAreas, assets.CommentAreas...)
	rec.Links = mergeLinks(block.InlineLinks, assets.Links)

	for _, field := range requiredFields {
		if isFieldEmpty(rec, field) {
			diag(field, "no usable candidate")
		}
	}
	if len(rec.Content) == 0 {
		diag(newsprint.Field("record_content"), "no text segments collected")
	}

	return rec, nil
}

// resolvePageURL walks the page URL ladder: canonical link, og:url,
// alternate link, JSON-LD url, caller-supplied URL.
func resolvePageURL(d *Document, meta *Metadata, pageURL string) string {
	var cands []newsprint.Candidate
	for _, ext := range []Extractor{&structuredDataExtractor{}, &metaTagExtractor{}} {
		cands = append(cands, ext.Extract(d, meta, newsprint.FieldURL)...)
	}

	base, _ := parseValidURL(pageURL)
	for _, c := range newsprint.RankCandidates(cands) {
		raw, ok := c.Value.(string)
		if !ok || raw == "" {
			continue
		}
		// Canonical links are occasionally relative.
		if resolved := resolveRef(base, raw); resolved != "" {
			return resolved
		}
	}
	if base != nil {
		return base.String()
	}
	return ""
}

// resolveLanguage walks the candidates in rank order and returns the
// first that normalizes to a valid tag, recording a diagnostic for
// each invalid one tried on the way.
func (p *Parser) resolveLanguage(cands []newsprint.Candidate, diag func(newsprint.Field, string)) *string {
	for _, c := range newsprint.RankCandidates(cands) {
		raw, ok := c.Value.(string)
		if !ok || raw == "" {
			continue
		}
		tag, err := p.langs.Normalize(raw)
		if err != nil {
			diag(newsprint.FieldLanguage, "invalid language tag "+raw)
			continue
		}
		return &tag
	}
	return nil
}

// resolveTimestamp walks the candidates in rank order and returns the
// first that parses, formatted as ISO 8601 with a numeric UTC offset.
func (p *Parser) resolveTimestamp(field newsprint.Field, cands []newsprint.Candidate, diag func(newsprint.Field, string)) *string {
	for _, c := range newsprint.RankCandidates(cands) {
		raw, ok := c.Value.(string)
		if !ok || raw == "" {
			continue
		}
		t, err := p.dates.Parse(raw)
		if err != nil {
			diag(field, "unparseable date "+raw)
			continue
		}
		iso := t.Format("2006-01-02T15:04:05-07:00")
		return &iso
	}
	return nil
}

// mergeLinks joins inline and embedded links, deduplicated by URL with
// the first occurrence winning.
func mergeLinks(inline, embedded []newsprint.LinkRef) []newsprint.LinkRef {
	out := make([]newsprint.LinkRef, 0, len(inline)+len(embedded))
	seen := make(map[string]bool)
	for _, ref := range append(append([]newsprint.LinkRef{}, inline...), embedded...) {
		if ref.URL == "" || seen[ref.URL] {
			continue
		}
		seen[ref.URL] = true
		out = append(out, ref)
	}
	return out
}

func isFieldEmpty(rec *newsprint.ArticleRecord, field newsprint.Field) bool {
	switch field {
	case newsprint.FieldTitle:
		return rec.Title == nil
	case newsprint.FieldURL:
		return rec.URL == nil
	case newsprint.FieldLanguage:
		return rec.Language == nil
	default:
		return false
	}
}
