package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/flexcms/flexcms"
	main "github.com/flexcms/flexcms/cmd/flexcms"
	"github.com/flexcms/flexcms/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDocument returns a minimal valid flexible document.
func testDocument(slug string) *flexcms.FlexibleDocument {
	return &flexcms.FlexibleDocument{
		Title:       "云数据库定价",
		Slug:        slug,
		PageConfig:  flexcms.PageConfig{PageType: flexcms.PageSimple},
		BaseContent: "<p>按量计费</p>",
	}
}

// testDeps returns Dependencies wired with buffers and a discard logger.
func testDeps(t *testing.T) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Rules:  flexcms.NewRuleTable(nil),
	}, stdout, stderr
}

func TestCmdExtract(t *testing.T) {
	t.Parallel()

	t.Run("prints document to stdout", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		page := filepath.Join(dir, "mysql.html")
		require.NoError(t, os.WriteFile(page, []byte("<html><body>pricing</body></html>"), 0644))

		deps, stdout, stderr := testDeps(t)
		deps.Extractor = &mock.DocumentExtractor{
			ExtractDocumentFn: func(html string, product *flexcms.Product) (*flexcms.FlexibleDocument, error) {
				assert.Contains(t, html, "pricing")
				assert.Nil(t, product)
				return testDocument("mysql"), nil
			},
		}

		cmd := &main.ExtractCmd{Page: page}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), `"slug": "mysql"`)
		assert.Contains(t, stdout.String(), `"pageType": "Simple"`)
		assert.Empty(t, stderr.String())
	})

	t.Run("writes document to output directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		page := filepath.Join(dir, "mysql.html")
		require.NoError(t, os.WriteFile(page, []byte("<html></html>"), 0644))
		out := filepath.Join(dir, "out")

		deps, stdout, _ := testDeps(t)
		deps.Extractor = &mock.DocumentExtractor{
			ExtractDocumentFn: func(html string, product *flexcms.Product) (*flexcms.FlexibleDocument, error) {
				return testDocument("mysql"), nil
			},
		}

		cmd := &main.ExtractCmd{Page: page, Out: out}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "wrote")
		written, err := os.ReadFile(filepath.Join(out, "mysql.json"))
		require.NoError(t, err)
		assert.Contains(t, string(written), `"slug": "mysql"`)
	})

	t.Run("reports warnings on stderr", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		page := filepath.Join(dir, "redis.html")
		require.NoError(t, os.WriteFile(page, []byte("<html></html>"), 0644))

		deps, _, stderr := testDeps(t)
		deps.Extractor = &mock.DocumentExtractor{
			ExtractDocumentFn: func(html string, product *flexcms.Product) (*flexcms.FlexibleDocument, error) {
				doc := testDocument("redis")
				doc.Warnings = []flexcms.Warning{
					{Code: flexcms.WarnConfigLookupMiss, Message: "no rule for (linux, 华北)"},
				}
				return doc, nil
			},
		}

		cmd := &main.ExtractCmd{Page: page}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stderr.String(), "warning:")
		assert.Contains(t, stderr.String(), "no rule for (linux, 华北)")
	})

	t.Run("returns error for missing page file", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(t)
		cmd := &main.ExtractCmd{Page: filepath.Join(t.TempDir(), "nope.html")}
		require.Error(t, cmd.Run(deps))
	})

	t.Run("returns extraction error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		page := filepath.Join(dir, "broken.html")
		require.NoError(t, os.WriteFile(page, []byte(""), 0644))

		deps, _, stderr := testDeps(t)
		deps.Extractor = &mock.DocumentExtractor{
			ExtractDocumentFn: func(html string, product *flexcms.Product) (*flexcms.FlexibleDocument, error) {
				return nil, flexcms.Errorf(flexcms.EINVALID, "empty document")
			},
		}

		cmd := &main.ExtractCmd{Page: page}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, flexcms.EINVALID, flexcms.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}
