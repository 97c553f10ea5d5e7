package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/newsprint"
)

// Assets are the media references found inside the content block.
type Assets struct {
	Images       []newsprint.MediaRef
	Videos       []newsprint.MediaRef
	Documents    []newsprint.MediaRef
	CommentAreas []newsprint.MediaRef

	// Links collects frames that embed external posts (tweets,
	// Instagram posts, Facebook pages) rather than playable media.
	Links []newsprint.LinkRef
}

// extractAssets walks the content block for figures, pictures, plain
// images, videos, embedded frames and document links. All URLs are
// absolutized; references that cannot be resolved are dropped.
func extractAssets(d *Document, scope *goquery.Selection) *Assets {
	a := &Assets{}
	seen := make(map[string]bool)

	addImage := func(url string, alt *string) {
		if url == "" || seen["img:"+url] {
			return
		}
		seen["img:"+url] = true
		a.Images = append(a.Images, newsprint.MediaRef{URL: url, AltText: alt})
	}

	// Figures first so captions win over bare alt attributes.
	scope.Find("figure").Each(func(_ int, fig *goquery.Selection) {
		caption := captionText(fig)
		fig.Find("picture").Each(func(_ int, pic *goquery.Selection) {
			addImage(pictureSource(d, pic), pickAlt(caption, pic.Find("img")))
		})
		fig.Find("img").Not("picture img").Each(func(_ int, img *goquery.Selection) {
			addImage(imageSource(d, img), pickAlt(caption, img))
		})
	})

	scope.Find("picture").Not("figure picture").Each(func(_ int, pic *goquery.Selection) {
		addImage(pictureSource(d, pic), pickAlt(nil, pic.Find("img")))
	})

	scope.Find("img").Not("figure img, picture img").Each(func(_ int, img *goquery.Selection) {
		addImage(imageSource(d, img), pickAlt(nil, img))
	})

	// Native video elements.
	scope.Find("video").Each(func(_ int, vid *goquery.Selection) {
		src := d.ResolveRef(vid.AttrOr("src", ""))
		if src == "" {
			vid.Find("source").EachWithBreak(func(_ int, s *goquery.Selection) bool {
				typ := s.AttrOr("type", "")
				if typ != "" && !strings.HasPrefix(typ, "video/") {
					return true
				}
				src = d.ResolveRef(s.AttrOr("src", ""))
				return src == ""
			})
		}
		if src != "" && !seen["vid:"+src] {
			seen["vid:"+src] = true
			a.Videos = append(a.Videos, newsprint.MediaRef{URL: src})
		}
	})

	// Plugin-era embeds.
	scope.Find("embed[src], object[data]").Each(func(_ int, obj *goquery.Selection) {
		typ := obj.AttrOr("type", "")
		if !strings.HasPrefix(typ, "video/") {
			return
		}
		src := obj.AttrOr("src", "")
		if src == "" {
			src = obj.AttrOr("data", "")
		}
		if u := d.ResolveRef(src); u != "" && !seen["vid:"+u] {
			seen["vid:"+u] = true
			a.Videos = append(a.Videos, newsprint.MediaRef{URL: u})
		}
	})

	// Embedded frames from known platforms.
	scope.Find("iframe[src]").Each(func(_ int, frame *goquery.Selection) {
		raw := d.ResolveRef(frame.AttrOr("src", ""))
		if raw == "" {
			return
		}
		u, ok := parseValidURL(raw)
		if !ok {
			return
		}
		title := collapse(frame.AttrOr("title", ""))
		var alt *string
		if title != "" {
			alt = &title
		}
		switch classifyFrame(u.Hostname(), u.Path) {
		case assetVideo:
			a.Videos = append(a.Videos, newsprint.MediaRef{URL: raw, AltText: alt})
		case assetComments:
			a.CommentAreas = append(a.CommentAreas, newsprint.MediaRef{URL: raw, AltText: alt})
		case assetLinks:
			a.Links = append(a.Links, newsprint.LinkRef{URL: raw, Text: alt})
		case assetDocument:
			a.Documents = append(a.Documents, newsprint.MediaRef{URL: raw, AltText: alt})
		}
	})

	// Linked documents.
	scope.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		raw := d.ResolveRef(link.AttrOr("href", ""))
		if raw == "" {
			return
		}
		u, ok := parseValidURL(raw)
		if !ok || !strings.HasSuffix(strings.ToLower(u.Path), ".pdf") {
			return
		}
		if seen["doc:"+raw] {
			return
		}
		seen["doc:"+raw] = true
		var alt *string
		if text := collapse(link.Text()); text != "" {
			alt = &text
		}
		a.Documents = append(a.Documents, newsprint.MediaRef{URL: raw, AltText: alt})
	})

	return a
}

// captionText returns the figure's figcaption text, or nil.
func captionText(fig *goquery.Selection) *string {
	text := collapse(fig.Find("figcaption").First().Text())
	if text == "" {
		return nil
	}
	return &text
}

// pickAlt prefers the figure caption over the image alt attribute.
func pickAlt(caption *string, img *goquery.Selection) *string {
	if caption != nil {
		return caption
	}
	if alt := collapse(img.AttrOr("alt", "")); alt != "" {
		return &alt
	}
	return nil
}

// pictureSource picks the best source of a picture element: the first
// image-typed source's srcset, then the inner img.
func pictureSource(d *Document, pic *goquery.Selection) string {
	var src string
	pic.Find("source").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		typ := s.AttrOr("type", "")
		if typ != "" && !strings.HasPrefix(typ, "image/") {
			return true
		}
		if best := bestSrcsetURL(s.AttrOr("srcset", "")); best != "" {
			src = d.ResolveRef(best)
		}
		return src == ""
	})
	if src != "" {
		return src
	}
	return imageSource(d, pic.Find("img").First())
}

// imageSource picks the best reference of an img element: srcset and
// data-srcset candidates first, then data-src, then src. Plain
// references must carry a known image suffix.
func imageSource(d *Document, img *goquery.Selection) string {
	if img.Length() == 0 {
		return ""
	}
	srcset := img.AttrOr("srcset", "")
	if dataSrcset := img.AttrOr("data-srcset", ""); dataSrcset != "" {
		if srcset != "" {
			srcset += ", "
		}
		srcset += dataSrcset
	}
	if best := bestSrcsetURL(srcset); best != "" {
		if u := d.ResolveRef(best); u != "" {
			return u
		}
	}
	for _, attr := range []string{"data-src", "src"} {
		raw := img.AttrOr(attr, "")
		if raw == "" || !hasImageSuffix(raw) {
			continue
		}
		if u := d.ResolveRef(raw); u != "" {
			return u
		}
	}
	return ""
}

func hasImageSuffix(raw string) bool {
	path := strings.ToLower(raw)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	for _, suffix := range imageSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// srcsetCandidate is one entry of a srcset attribute.
type srcsetCandidate struct {
	url     string
	width   int
	density float64
}

// bestSrcsetURL picks the candidate with the largest width descriptor,
// falling back to the largest density. Widths of one pixel or less are
// placeholder entries and are dropped.
func bestSrcsetURL(srcset string) string {
	var best *srcsetCandidate
	for _, cand := range parseSrcset(srcset) {
		cand := cand
		if cand.width == 1 {
			// 1w entries are lazy-loading placeholders.
			continue
		}
		if best == nil || cand.width > best.width ||
			(cand.width == best.width && cand.density > best.density) {
			best = &cand
		}
	}
	if best == nil {
		return ""
	}
	return best.url
}

// parseSrcset splits a srcset attribute into candidates with their
// width (w) or density (x) descriptors.
func parseSrcset(srcset string) []srcsetCandidate {
	var out []srcsetCandidate
	for _, entry := range strings.Split(srcset, ",") {
		fields := strings.Fields(entry)
		if len(fields) == 0 {
			continue
		}
		cand := srcsetCandidate{url: fields[0], density: 1}
		if len(fields) > 1 {
			desc := strings.ToLower(fields[1])
			switch {
			case strings.HasSuffix(desc, "w"):
				if w, err := strconv.Atoi(strings.TrimSuffix(desc, "w")); err == nil {
					cand.width = w
				}
			case strings.HasSuffix(desc, "x"):
				if x, err := strconv.ParseFloat(strings.TrimSuffix(desc, "x"), 64); err == nil {
					cand.density = x
				}
			}
		}
		out = append(out, cand)
	}
	return out
}
