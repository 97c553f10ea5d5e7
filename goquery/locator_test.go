package goquery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/newsprint"
)

func locate(t *testing.T, cfg newsprint.Config, html string) *ContentBlock {
	t.Helper()
	d := mustParse(t, html)
	return newLocator(cfg).locate(d)
}

func TestLocator_Locate(t *testing.T) {
	t.Parallel()

	cfg := newsprint.DefaultConfig()

	t.Run("prefers semantic container over link-heavy body", func(t *testing.T) {
		t.Parallel()
		block := locate(t, cfg, `<html><body>
		<nav><ul>
			<li><a href="/one">Section one</a></li>
			<li><a href="/two">Section two</a></li>
			<li><a href="/three">Section three</a></li>
		</ul></nav>
		<article>
			<p>The first paragraph carries a good amount of running text about the story.</p>
			<p>The second paragraph continues with even more running text about the story.</p>
		</article>
		</body></html>`)

		assert.Equal(t, "article", block.Root.Data)
		assert.False(t, block.LowConfidence)
		require.Len(t, block.Segments, 2)
		assert.Contains(t, block.Segments[0], "first paragraph")
	})

	t.Run("boilerplate classes are penalized", func(t *testing.T) {
		t.Parallel()
		block := locate(t, cfg, `<html><body>
		<div class="sidebar-promo">
			<p>Promotional sidebar text that goes on about subscriptions and offers at length.</p>
			<p>More promotional sidebar text that goes on about subscriptions and offers.</p>
		</div>
		<div class="story-body">
			<p>Actual story text that recounts what happened in reasonable detail today.</p>
			<p>More of the actual story text with additional context and quotations too.</p>
		</div>
		</body></html>`)

		assert.Equal(t, "story-body", attrVal(block.Root, "class"))
	})

	t.Run("link-dense list inside the block is dropped from segments", func(t *testing.T) {
		t.Parallel()
		block := locate(t, cfg, `<html><body><article>
		<p>The story text itself is long enough to anchor the block scoring here.</p>
		<p>A second story paragraph keeps the running text share comfortably high.</p>
		<p>A third story paragraph keeps the running text share comfortably high.</p>
		<ul>
			<li><a href="/related-1">Related story one</a></li>
			<li><a href="/related-2">Related story two</a></li>
		</ul>
		</article></body></html>`)

		for _, seg := range block.Segments {
			assert.NotContains(t, seg, "Related story")
		}
		require.Len(t, block.Segments, 3)
	})

	t.Run("boilerplate phrases are filtered", func(t *testing.T) {
		t.Parallel()
		block := locate(t, cfg, `<html><body><article>
		<p>The story text itself is long enough to anchor the block scoring here.</p>
		<p>Advertisement</p>
		<p>A second story paragraph keeps the running text share comfortably high.</p>
		</article></body></html>`)

		require.Len(t, block.Segments, 2)
		for _, seg := range block.Segments {
			assert.NotEqual(t, "Advertisement", seg)
		}
	})

	t.Run("punctuation-only segments are dropped", func(t *testing.T) {
		t.Parallel()
		block := locate(t, cfg, `<html><body><article>
		<p>The story text itself is long enough to anchor the block scoring here.</p>
		<p>***</p>
		</article></body></html>`)

		require.Len(t, block.Segments, 1)
	})

	t.Run("falls back to largest text node below minimum score", func(t *testing.T) {
		t.Parallel()
		block := locate(t, cfg, `<html><body><div><p>Short but real text.</p></div></body></html>`)

		assert.True(t, block.LowConfidence)
		require.NotEmpty(t, block.Segments)
		assert.Equal(t, "Short but real text.", block.Segments[0])
	})

	t.Run("never empty on a document with text", func(t *testing.T) {
		t.Parallel()
		block := locate(t, cfg, `<html><body><span>tiny</span></body></html>`)
		require.NotEmpty(t, block.Segments)
		assert.Equal(t, "tiny", block.Segments[0])
	})

	t.Run("hidden subtrees contribute nothing", func(t *testing.T) {
		t.Parallel()
		block := locate(t, cfg, `<html><body><article>
		<p>The visible story text is long enough to anchor the block scoring here.</p>
		<p style="display:none">Hidden text that should never appear in the segments at all.</p>
		<p>A closing visible paragraph keeps the running text share comfortably high.</p>
		</article></body></html>`)

		require.Len(t, block.Segments, 2)
		for _, seg := range block.Segments {
			assert.NotContains(t, seg, "Hidden text")
		}
	})

	t.Run("block html is captured for formatting", func(t *testing.T) {
		t.Parallel()
		block := locate(t, cfg, `<html><body><article>
		<p>The story text itself is long enough to anchor the block scoring here.</p>
		<p>A second story paragraph keeps the running text share comfortably high.</p>
		</article></body></html>`)

		assert.True(t, strings.HasPrefix(strings.TrimSpace(block.HTML), "<article>"))
		assert.Contains(t, block.HTML, "second story paragraph")
	})

	t.Run("promotional trailer filtering is a config choice", func(t *testing.T) {
		t.Parallel()
		html := `<html><body><article>
		<p>The story text itself is long enough to anchor the block scoring here.</p>
		<p>Sign up and read more from our newsletter today.</p>
		</article></body></html>`

		keep := locate(t, cfg, html)
		assert.Len(t, keep.Segments, 2)

		strict := cfg
		strict.FilterPromotionalTrailers = true
		filtered := locate(t, strict, html)
		assert.Len(t, filtered.Segments, 1)
	})
}

func TestDocumentStats(t *testing.T) {
	t.Parallel()

	d := mustParse(t, `<html><body><div id="wrap">
	<p>four char text</p>
	<p><a href="/x">link text</a></p>
	</div></body></html>`)

	div := d.doc.Find("#wrap").Get(0)
	st := d.stats[div]
	require.NotNil(t, st)
	assert.Equal(t, 2, st.blocks)
	assert.Greater(t, st.textChars, 0)
	assert.Greater(t, st.linkChars, 0)
	assert.Less(t, st.linkChars, st.textChars)
}
