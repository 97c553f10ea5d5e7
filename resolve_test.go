package newsprint_test

import (
	"testing"

	"github.com/fwojciec/newsprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveString(t *testing.T) {
	t.Parallel()

	t.Run("lower source rank wins over higher confidence", func(t *testing.T) {
		t.Parallel()
		got, ok := newsprint.ResolveString([]newsprint.Candidate{
			{Field: newsprint.FieldTitle, Source: newsprint.SourceDOMHeuristic, Confidence: 1.0, Value: "From Heading"},
			{Field: newsprint.FieldTitle, Source: newsprint.SourceStructuredData, Confidence: 0.5, Value: "From JSON-LD"},
		})
		require.True(t, ok)
		assert.Equal(t, "From JSON-LD", got)
	})

	t.Run("confidence breaks ties within a source", func(t *testing.T) {
		t.Parallel()
		got, ok := newsprint.ResolveString([]newsprint.Candidate{
			{Source: newsprint.SourceMetaTag, Confidence: 0.8, Value: "og title"},
			{Source: newsprint.SourceMetaTag, Confidence: 0.9, Value: "twitter title"},
		})
		require.True(t, ok)
		assert.Equal(t, "twitter title", got)
	})

	t.Run("insertion order breaks full ties", func(t *testing.T) {
		t.Parallel()
		got, ok := newsprint.ResolveString([]newsprint.Candidate{
			{Source: newsprint.SourceMetaTag, Confidence: 0.9, Value: "first"},
			{Source: newsprint.SourceMetaTag, Confidence: 0.9, Value: "second"},
		})
		require.True(t, ok)
		assert.Equal(t, "first", got)
	})

	t.Run("empty values are skipped", func(t *testing.T) {
		t.Parallel()
		got, ok := newsprint.ResolveString([]newsprint.Candidate{
			{Source: newsprint.SourceStructuredData, Value: ""},
			{Source: newsprint.SourceMetaTag, Value: "fallback"},
		})
		require.True(t, ok)
		assert.Equal(t, "fallback", got)
	})

	t.Run("no candidates", func(t *testing.T) {
		t.Parallel()
		_, ok := newsprint.ResolveString(nil)
		assert.False(t, ok)
	})
}

func TestResolveStrings(t *testing.T) {
	t.Parallel()

	t.Run("unions only the best rank", func(t *testing.T) {
		t.Parallel()
		got := newsprint.ResolveStrings([]newsprint.Candidate{
			{Source: newsprint.SourceMetaTag, Value: []string{"politics", "economy"}},
			{Source: newsprint.SourceMetaTag, Value: "health"},
			{Source: newsprint.SourceDOMHeuristic, Value: []string{"from-tags"}},
		})
		assert.Equal(t, []string{"politics", "economy", "health"}, got)
	})

	t.Run("case-insensitive dedup prefers title case", func(t *testing.T) {
		t.Parallel()
		got := newsprint.ResolveStrings([]newsprint.Candidate{
			{Source: newsprint.SourceMetaTag, Value: []string{"covid", "Economy", "COVID", "Covid"}},
		})
		assert.Equal(t, []string{"Covid", "Economy"}, got)
	})

	t.Run("whitespace collapsed before comparison", func(t *testing.T) {
		t.Parallel()
		got := newsprint.ResolveStrings([]newsprint.Candidate{
			{Source: newsprint.SourceMetaTag, Value: []string{"  US   news ", "us news"}},
		})
		assert.Equal(t, []string{"US news"}, got)
	})
}

func TestResolveAuthors(t *testing.T) {
	t.Parallel()

	url1 := "https://x.com/profile/jane-doe"
	got := newsprint.ResolveAuthors([]newsprint.Candidate{
		{Source: newsprint.SourceDOMHeuristic, Value: []newsprint.Author{
			{Name: "Jane  Doe"},
			{Name: "John Smith"},
		}},
		{Source: newsprint.SourceDOMHeuristic, Value: []newsprint.Author{
			{Name: "jane doe", URL: &url1},
		}},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "Jane Doe", got[0].Name)
	require.NotNil(t, got[0].URL)
	assert.Equal(t, url1, *got[0].URL)
	assert.Equal(t, "John Smith", got[1].Name)
	assert.Nil(t, got[1].URL)
}

func TestResolveMedia(t *testing.T) {
	t.Parallel()

	alt := "caption"
	got := newsprint.ResolveMedia([]newsprint.Candidate{
		{Source: newsprint.SourceDOMHeuristic, Value: []newsprint.MediaRef{
			{URL: "https://x.com/a.jpg", AltText: &alt},
			{URL: "https://x.com/b.jpg"},
			{URL: "https://x.com/a.jpg"},
		}},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "https://x.com/a.jpg", got[0].URL)
	require.NotNil(t, got[0].AltText)
	assert.Equal(t, "caption", *got[0].AltText)
}
