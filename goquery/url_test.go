package goquery

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRef(t *testing.T) {
	t.Parallel()

	base, err := url.Parse("https://x.com/y/")
	require.NoError(t, err)

	tests := []struct {
		name string
		base *url.URL
		href string
		want string
	}{
		{"root relative", base, "/a/b", "https://x.com/a/b"},
		{"path relative", base, "a/b", "https://x.com/y/a/b"},
		{"already absolute", base, "https://other.com/z", "https://other.com/z"},
		{"protocol relative", base, "//cdn.x.com/a.jpg", "https://cdn.x.com/a.jpg"},
		{"bare fragment", base, "#comments", ""},
		{"whitespace only", base, "   ", ""},
		{"javascript scheme", base, "javascript:void(0)", ""},
		{"mailto scheme", base, "mailto:tips@x.com", ""},
		{"relative without base", nil, "/a/b", ""},
		{"absolute without base", nil, "https://x.com/a", "https://x.com/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, resolveRef(tt.base, tt.href))
		})
	}
}

func TestParseValidURL(t *testing.T) {
	t.Parallel()

	u, ok := parseValidURL(" https://x.com/a ")
	require.True(t, ok)
	assert.Equal(t, "https://x.com/a", u.String())

	for _, raw := range []string{"", "/relative/only", "ftp://x.com/a", "https://"} {
		_, ok := parseValidURL(raw)
		assert.False(t, ok, raw)
	}
}
