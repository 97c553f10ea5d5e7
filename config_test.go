package newsprint_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/newsprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := newsprint.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.75, cfg.LinkDensityUpperBound)
	assert.False(t, cfg.FilterPromotionalTrailers)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("overlays file values on defaults", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("min_text_length: 50\nlink_density_upper_bound: 0.5\n"), 0o644))

		cfg, err := newsprint.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.MinTextLength)
		assert.Equal(t, 0.5, cfg.LinkDensityUpperBound)
		// Untouched keys keep their defaults.
		assert.Equal(t, newsprint.DefaultConfig().BoilerplatePatterns, cfg.BoilerplatePatterns)
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("link_density_upper_bound: 2.0\n"), 0o644))

		_, err := newsprint.LoadConfig(path)
		require.Error(t, err)
		assert.Equal(t, newsprint.EINVALID, newsprint.ErrorCode(err))
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(":\n\t-"), 0o644))

		_, err := newsprint.LoadConfig(path)
		require.Error(t, err)
		assert.Equal(t, newsprint.EINVALID, newsprint.ErrorCode(err))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := newsprint.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
