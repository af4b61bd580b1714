package main_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flexcms/flexcms"
	main "github.com/flexcms/flexcms/cmd/flexcms"
	"github.com/flexcms/flexcms/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDocument saves a document as the JSON file the batch command
// would have produced.
func writeDocument(t *testing.T, doc *flexcms.FlexibleDocument) string {
	t.Helper()
	data, err := fs.MarshalDocument(doc)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), doc.Slug+".json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestCmdExport(t *testing.T) {
	t.Parallel()

	t.Run("renders base content as Markdown", func(t *testing.T) {
		t.Parallel()

		doc := testDocument("mysql")
		doc.CommonSections = []flexcms.CommonSection{
			{SectionType: flexcms.SectionBanner, Content: "<p>云数据库</p>", SortOrder: 1, IsActive: true},
		}
		path := writeDocument(t, doc)

		deps, stdout, _ := testDeps(t)
		cmd := &main.ExportCmd{Document: path}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "# 云数据库定价")
		assert.Contains(t, out, "## Banner")
		assert.Contains(t, out, "按量计费")
	})

	t.Run("renders content groups under their own headings", func(t *testing.T) {
		t.Parallel()

		doc := testDocument("redis")
		doc.BaseContent = ""
		doc.PageConfig.PageType = flexcms.PageRegionFilter
		doc.ContentGroups = []flexcms.ContentGroup{
			{GroupName: "华北", Content: "<table><tr><td>区域定价</td></tr></table>", SortOrder: 1, IsActive: true},
			{GroupName: "国际", Content: "<p>国际定价</p>", SortOrder: 2, IsActive: true},
		}
		path := writeDocument(t, doc)

		deps, stdout, _ := testDeps(t)
		cmd := &main.ExportCmd{Document: path}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "## 华北")
		assert.Contains(t, out, "## 国际")
		assert.Contains(t, out, "区域定价")
	})

	t.Run("writes to output file", func(t *testing.T) {
		t.Parallel()

		path := writeDocument(t, testDocument("mysql"))
		out := filepath.Join(t.TempDir(), "mysql.md")

		deps, stdout, _ := testDeps(t)
		cmd := &main.ExportCmd{Document: path, Out: out}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "wrote")
		written, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(written), "# 云数据库定价")
	})

	t.Run("returns ENOTFOUND for missing document", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(t)
		cmd := &main.ExportCmd{Document: filepath.Join(t.TempDir(), "nope.json")}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, flexcms.ENOTFOUND, flexcms.ErrorCode(err))
	})

	t.Run("returns EINVALID for malformed document", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		deps, _, _ := testDeps(t)
		cmd := &main.ExportCmd{Document: path}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, flexcms.EINVALID, flexcms.ErrorCode(err))
	})
}
