package goquery

import "regexp"

// skippedTags never contribute text to node statistics or segments.
var skippedTags = map[string]bool{
	"head":     true,
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"svg":      true,
	"math":     true,
	"button":   true,
	"select":   true,
	"textarea": true,
	"input":    true,
}

// blockTags are the text-bearing block elements counted by the locator
// and collected first by the segment walk.
var blockTags = map[string]bool{
	"p":          true,
	"li":         true,
	"pre":        true,
	"blockquote": true,
	"dt":         true,
	"dd":         true,
}

// segmentLadders widen the set of tags segments are collected from
// until the collected text covers enough of the content block.
var segmentLadders = [][]string{
	{"p", "li", "pre", "blockquote", "dt", "dd"},
	{"p", "li", "pre", "blockquote", "dt", "dd", "h2", "h3", "h4", "h5", "h6", "figcaption", "span"},
	{"p", "li", "pre", "blockquote", "dt", "dd", "h2", "h3", "h4", "h5", "h6", "figcaption", "span", "td", "div", "section"},
}

// semanticTags and semanticRoles earn a candidate the semantic bonus.
var semanticTags = map[string]bool{
	"article": true,
	"main":    true,
}

var semanticRoles = map[string]bool{
	"article": true,
	"main":    true,
}

// navSectionTags are the grouping elements whose subtrees are dropped
// from segment collection when their link density is too high.
var navSectionTags = map[string]bool{
	"div":     true,
	"section": true,
	"ol":      true,
	"ul":      true,
	"nav":     true,
}

// imageSuffixes validates plain src and data-src references.
var imageSuffixes = []string{
	".avif", ".bmp", ".gif", ".ico", ".jpeg", ".jpg",
	".png", ".svg", ".tif", ".tiff", ".webp",
}

// assetKind classifies what an embedded frame or object points at.
type assetKind int

const (
	assetIgnore assetKind = iota
	assetVideo
	assetComments
	assetLinks
	assetDocument
)

// platformRule maps an iframe src to an asset kind by host and path.
type platformRule struct {
	host *regexp.Regexp
	path *regexp.Regexp
	kind assetKind
}

// platformRules classify iframes from known embed platforms. Frames
// from unknown hosts are ignored.
var platformRules = []platformRule{
	{regexp.MustCompile(`(?:^|\.)youtube(?:-nocookie)?\.com$`), regexp.MustCompile(`^/embed/`), assetVideo},
	{regexp.MustCompile(`(?:^|\.)vimeo\.com$`), regexp.MustCompile(`^/video/`), assetVideo},
	{regexp.MustCompile(`(?:^|\.)dailymotion\.com$`), regexp.MustCompile(`^/embed/`), assetVideo},
	{regexp.MustCompile(`(?:^|\.)facebook\.com$`), regexp.MustCompile(`^/plugins/video`), assetVideo},
	{regexp.MustCompile(`(?:^|\.)facebook\.com$`), regexp.MustCompile(`^/plugins/comments`), assetComments},
	{regexp.MustCompile(`(?:^|\.)facebook\.com$`), regexp.MustCompile(`^/plugins/(post|page|like)`), assetLinks},
	{regexp.MustCompile(`(?:^|\.)disqus\.com$`), regexp.MustCompile(`^/embed/comments`), assetComments},
	{regexp.MustCompile(`^platform\.twitter\.com$`), regexp.MustCompile(`^/embed/`), assetLinks},
	{regexp.MustCompile(`(?:^|\.)twitframe\.com$`), regexp.MustCompile(`^/show`), assetLinks},
	{regexp.MustCompile(`^open\.spotify\.com$`), regexp.MustCompile(`^/embed`), assetLinks},
	{regexp.MustCompile(`(?:^|\.)instagram\.com$`), regexp.MustCompile(`^/(p|reel)/`), assetLinks},
	{regexp.MustCompile(`(?:^|\.)instagram\.com$`), regexp.MustCompile(`^/tv/`), assetVideo},
	{regexp.MustCompile(`(?:^|\.)giphy\.com$`), regexp.MustCompile(`^/embed/`), assetVideo},
	{regexp.MustCompile(`^players\.brightcove\.net$`), regexp.MustCompile(`/index\.html`), assetVideo},
	{regexp.MustCompile(`^cdn\.embedly\.com$`), regexp.MustCompile(`^/widgets/media\.html`), assetVideo},
	{regexp.MustCompile(`(?:^|\.)tiktok\.com$`), regexp.MustCompile(`^/embed`), assetVideo},
	{regexp.MustCompile(`(?:^|\.)scribd\.com$`), regexp.MustCompile(`^/embeds/`), assetDocument},
}

// classifyFrame returns the asset kind for an iframe src host and path.
func classifyFrame(host, path string) assetKind {
	for _, rule := range platformRules {
		if rule.host.MatchString(host) && rule.path.MatchString(path) {
			return rule.kind
		}
	}
	return assetIgnore
}
