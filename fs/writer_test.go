package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/flexcms/flexcms"
	"github.com/flexcms/flexcms/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *flexcms.FlexibleDocument {
	return &flexcms.FlexibleDocument{
		Title: "API 管理定价",
		Slug:  "api-management",
		PageConfig: flexcms.PageConfig{
			PageType:      flexcms.PageRegionFilter,
			EnableFilters: true,
		},
		CommonSections: []flexcms.CommonSection{},
		ContentGroups: []flexcms.ContentGroup{
			{GroupName: "华北", Content: "<p>华北价格</p>", SortOrder: 1, IsActive: true},
		},
	}
}

func TestWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	t.Run("writes the document as slug.json", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		require.NoError(t, w.WriteDocument(context.Background(), sampleDocument()))

		data, err := os.ReadFile(filepath.Join(dir, "api-management.json"))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"slug": "api-management"`)
		assert.Contains(t, string(data), `"华北"`)
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		t.Parallel()

		doc := sampleDocument()
		doc.Slug = ""

		w := fs.NewWriter(t.TempDir())
		err := w.WriteDocument(context.Background(), doc)

		require.Error(t, err)
		assert.Equal(t, flexcms.EINVALID, flexcms.ErrorCode(err))
	})

	t.Run("output bytes are deterministic", func(t *testing.T) {
		t.Parallel()

		a, err := fs.MarshalDocument(sampleDocument())
		require.NoError(t, err)
		b, err := fs.MarshalDocument(sampleDocument())
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})

	t.Run("warnings never reach the output file", func(t *testing.T) {
		t.Parallel()

		doc := sampleDocument()
		doc.Warnings = []flexcms.Warning{{Code: flexcms.WarnConfigLookupMiss, Message: "x"}}

		data, err := fs.MarshalDocument(doc)
		require.NoError(t, err)
		assert.NotContains(t, string(data), flexcms.WarnConfigLookupMiss)
	})
}
