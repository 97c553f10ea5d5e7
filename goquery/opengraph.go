package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// OpenGraph holds the og:* and article:* metadata of a document.
// article:* properties are only honored when og:type is "article".
type OpenGraph struct {
	Title       string
	Type        string
	URL         string
	Description string
	SiteName    string
	Locale      string

	Images []OGMedia
	Videos []OGMedia

	// article:* namespace.
	PublishedTime string
	ModifiedTime  string
	Section       string
	Tags          []string
	Authors       []string
}

// OGMedia is one og:image or og:video structured item.
type OGMedia struct {
	URL       string
	SecureURL string
	Alt       string
	MIMEType  string
}

// extractOpenGraph reads og:* meta properties in document order so
// that structured items (og:image followed by og:image:alt) attach to
// the right entry.
func extractOpenGraph(d *Document) *OpenGraph {
	og := &OpenGraph{}

	d.doc.Find(`meta[property][content]`).Each(func(_ int, sel *goquery.Selection) {
		prop, _ := sel.Attr("property")
		content := strings.TrimSpace(sel.AttrOr("content", ""))
		if content == "" {
			return
		}
		switch prop {
		case "og:title":
			og.Title = content
		case "og:type":
			og.Type = content
		case "og:url":
			og.URL = content
		case "og:description":
			og.Description = content
		case "og:site_name":
			og.SiteName = content
		case "og:locale":
			// OpenGraph uses underscore locales (en_GB).
			og.Locale = strings.ReplaceAll(content, "_", "-")
		case "og:image", "og:image:url":
			og.Images = append(og.Images, OGMedia{URL: content})
		case "og:image:secure_url":
			if n := len(og.Images); n > 0 {
				og.Images[n-1].SecureURL = content
			}
		case "og:image:alt":
			if n := len(og.Images); n > 0 {
				og.Images[n-1].Alt = content
			}
		case "og:image:type":
			if n := len(og.Images); n > 0 {
				og.Images[n-1].MIMEType = content
			}
		case "og:video", "og:video:url":
			og.Videos = append(og.Videos, OGMedia{URL: content})
		case "og:video:secure_url":
			if n := len(og.Videos); n > 0 {
				og.Videos[n-1].SecureURL = content
			}
		case "og:video:type":
			if n := len(og.Videos); n > 0 {
				og.Videos[n-1].MIMEType = content
			}
		}
	})

	if !strings.EqualFold(og.Type, "article") {
		return og
	}

	d.doc.Find(`meta[property][content]`).Each(func(_ int, sel *goquery.Selection) {
		prop, _ := sel.Attr("property")
		content := strings.TrimSpace(sel.AttrOr("content", ""))
		if content == "" {
			return
		}
		switch prop {
		case "article:published_time":
			og.PublishedTime = content
		case "article:modified_time":
			og.ModifiedTime = content
		case "article:section":
			og.Section = content
		case "article:tag":
			og.Tags = append(og.Tags, content)
		case "article:author":
			og.Authors = append(og.Authors, content)
		}
	})

	return og
}

// BestURL returns the secure URL of a structured item when present.
func (m OGMedia) BestURL() string {
	if m.SecureURL != "" {
		return m.SecureURL
	}
	return m.URL
}
