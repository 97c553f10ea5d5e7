package goquery

import (
	"net/url"
	"strings"
)

// resolveRef resolves href against base and returns the absolute URL,
// or "" when the result is not an absolute http(s) URL. Bare fragment
// references resolve to "".
func resolveRef(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	switch ref.Scheme {
	case "http", "https", "":
	default:
		return ""
	}
	if base != nil {
		ref = base.ResolveReference(ref)
	}
	if !isValidURL(ref) {
		return ""
	}
	return ref.String()
}

// isValidURL reports whether u is an absolute http(s) URL with a host.
func isValidURL(u *url.URL) bool {
	if u == nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// parseValidURL parses raw and returns it only when absolute http(s).
func parseValidURL(raw string) (*url.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || !isValidURL(u) {
		return nil, false
	}
	return u, true
}
