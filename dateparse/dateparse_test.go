package dateparse_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/newsprint"
	"github.com/fwojciec/newsprint/dateparse"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	p := dateparse.NewParser()

	t.Run("iso 8601 with offset", func(t *testing.T) {
		t.Parallel()
		got, err := p.Parse("2020-09-05T09:00:03+00:00")
		require.NoError(t, err)
		assert.Equal(t, "2020-09-05T09:00:03+00:00", got.Format("2006-01-02T15:04:05-07:00"))
	})

	t.Run("offset is preserved", func(t *testing.T) {
		t.Parallel()
		got, err := p.Parse("2021-03-01T12:30:00+02:00")
		require.NoError(t, err)
		_, offset := got.Zone()
		assert.Equal(t, 2*60*60, offset)
	})

	t.Run("bare date defaults to utc midnight", func(t *testing.T) {
		t.Parallel()
		got, err := p.Parse("2020-09-05")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2020, 9, 5, 0, 0, 0, 0, time.UTC), got.UTC())
	})

	t.Run("human readable date", func(t *testing.T) {
		t.Parallel()
		got, err := p.Parse("September 5, 2020")
		require.NoError(t, err)
		assert.Equal(t, 2020, got.Year())
		assert.Equal(t, time.September, got.Month())
	})

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()
		_, err := p.Parse("not a date")
		require.Error(t, err)
		assert.Equal(t, newsprint.ENOTFOUND, newsprint.ErrorCode(err))
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		_, err := p.Parse("  ")
		require.Error(t, err)
		assert.Equal(t, newsprint.ENOTFOUND, newsprint.ErrorCode(err))
	})
}
