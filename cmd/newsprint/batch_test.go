package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/newsprint"
	main "github.com/fwojciec/newsprint/cmd/newsprint"
	"github.com/fwojciec/newsprint/mock"
)

func TestBatchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("parses and stores every html file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.html"), []byte("<p>a</p>"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.htm"), []byte("<p>b</p>"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0644))

		parser := &mock.Parser{
			ParseFn: func(_ context.Context, _, pageURL string) (*newsprint.ArticleRecord, error) {
				rec := newsprint.NewArticleRecord()
				rec.URL = strptr("https://x.com/" + filepath.Base(pageURL))
				rec.Content = []string{"text"}
				return rec, nil
			},
		}

		var saved []string
		records := &mock.RecordStore{
			CreateRecordFn: func(_ context.Context, rec *newsprint.ArticleRecord) (*newsprint.StoredRecord, error) {
				saved = append(saved, *rec.URL)
				return &newsprint.StoredRecord{ID: "id", Record: rec}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Parser:  parser,
			Records: records,
		}

		cmd := &main.BatchCmd{Dir: dir, Concurrency: 2}
		require.NoError(t, cmd.Run(deps))

		// Directory entries are read in name order, so persistence order
		// is stable.
		assert.Equal(t, []string{"https://x.com/a.html", "https://x.com/b.htm"}, saved)
		assert.Contains(t, stdout.String(), "Parsing 2 documents")
		assert.Contains(t, stdout.String(), "Parsed 2, saved 2, skipped 0, failed 0")
	})

	t.Run("counts per-document failures", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.html"), []byte(""), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "good.html"), []byte("<p>ok</p>"), 0644))

		parser := &mock.Parser{
			ParseFn: func(_ context.Context, rawHTML, _ string) (*newsprint.ArticleRecord, error) {
				if rawHTML == "" {
					return nil, newsprint.Errorf(newsprint.EINVALID, "Document is empty.")
				}
				rec := newsprint.NewArticleRecord()
				rec.URL = strptr("https://x.com/good")
				rec.Content = []string{"ok"}
				return rec, nil
			},
		}
		records := &mock.RecordStore{
			CreateRecordFn: func(_ context.Context, rec *newsprint.ArticleRecord) (*newsprint.StoredRecord, error) {
				return &newsprint.StoredRecord{ID: "id", Record: rec}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Parser:  parser,
			Records: records,
		}

		cmd := &main.BatchCmd{Dir: dir, Concurrency: 2}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Parsed 1, saved 1, skipped 0, failed 1")
		assert.Contains(t, stderr.String(), "skip")
	})

	t.Run("reports empty directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.BatchCmd{Dir: dir}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No HTML files")
	})

	t.Run("returns error for missing directory", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.BatchCmd{Dir: filepath.Join(t.TempDir(), "missing")}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "error:")
	})
}
