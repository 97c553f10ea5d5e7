package htmltomarkdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/newsprint"
	"github.com/fwojciec/newsprint/htmltomarkdown"
)

func TestFormatter_Format(t *testing.T) {
	t.Parallel()

	f := htmltomarkdown.NewFormatter()

	t.Run("paragraphs and emphasis", func(t *testing.T) {
		t.Parallel()
		got, err := f.Format("<article><p>Hello <strong>world</strong>.</p></article>")
		require.NoError(t, err)
		assert.Contains(t, got, "Hello **world**.")
	})

	t.Run("links", func(t *testing.T) {
		t.Parallel()
		got, err := f.Format(`<p>See <a href="https://x.com/a">this</a>.</p>`)
		require.NoError(t, err)
		assert.Contains(t, got, "[this](https://x.com/a)")
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		_, err := f.Format("   ")
		require.Error(t, err)
		assert.Equal(t, newsprint.EINVALID, newsprint.ErrorCode(err))
	})
}
