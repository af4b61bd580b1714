package htmltomarkdown_test

import (
	"testing"

	"github.com/flexcms/flexcms"
	"github.com/flexcms/flexcms/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements flexcms.Converter at compile time.
var _ flexcms.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>按实际用量付费。</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "按实际用量付费。")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h1>定价</h1><h2>常规用途</h2><h3>内存优化</h3>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# 定价")
		assert.Contains(t, md, "## 常规用途")
		assert.Contains(t, md, "### 内存优化")
	})

	t.Run("converts pricing tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>实例</th><th>价格</th></tr></thead>
<tbody><tr><td>D2 v3</td><td>¥0.69/小时</td></tr><tr><td>D4 v3</td><td>¥1.38/小时</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "实例")
		assert.Contains(t, md, "D2 v3")
		assert.Contains(t, md, "¥0.69/小时")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("converts links and emphasis", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>参阅 <a href="https://example.com/docs">文档</a>，价格<strong>含税</strong>。</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[文档](https://example.com/docs)")
		assert.Contains(t, md, "**含税**")
	})

	t.Run("converts unordered lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ul><li>标准层</li><li>高级层</li></ul>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- 标准层")
		assert.Contains(t, md, "- 高级层")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("")

		require.Error(t, err)
		assert.Equal(t, flexcms.EINVALID, flexcms.ErrorCode(err))
	})
}

func TestConverter_RenderDocument(t *testing.T) {
	t.Parallel()

	t.Run("renders base content after common sections", func(t *testing.T) {
		t.Parallel()

		doc := &flexcms.FlexibleDocument{
			Title: "静态服务定价",
			Slug:  "static-service",
			PageConfig: flexcms.PageConfig{
				PageType: flexcms.PageSimple,
			},
			CommonSections: []flexcms.CommonSection{
				{SectionType: flexcms.SectionBanner, Content: "<h1>静态服务</h1>", SortOrder: 1, IsActive: true},
			},
			BaseContent: `<p>固定价格 ¥1.00。</p>`,
		}

		conv := htmltomarkdown.NewConverter()
		md, err := conv.RenderDocument(doc)

		require.NoError(t, err)
		assert.Contains(t, md, "# 静态服务定价")
		assert.Contains(t, md, "## Banner")
		assert.Contains(t, md, "固定价格 ¥1.00。")
	})

	t.Run("renders one heading per content group", func(t *testing.T) {
		t.Parallel()

		doc := &flexcms.FlexibleDocument{
			Title: "API 管理定价",
			Slug:  "api-management",
			PageConfig: flexcms.PageConfig{
				PageType:      flexcms.PageRegionFilter,
				EnableFilters: true,
			},
			ContentGroups: []flexcms.ContentGroup{
				{GroupName: "华北", Content: "<p>华北价格</p>", SortOrder: 1, IsActive: true},
				{GroupName: "华东", Content: "", SortOrder: 2, IsActive: true},
			},
		}

		conv := htmltomarkdown.NewConverter()
		md, err := conv.RenderDocument(doc)

		require.NoError(t, err)
		assert.Contains(t, md, "## 华北")
		assert.Contains(t, md, "华北价格")
		// Empty groups keep their heading so gaps are visible in review.
		assert.Contains(t, md, "## 华东")
	})

	t.Run("returns error for nil document", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.RenderDocument(nil)

		require.Error(t, err)
		assert.Equal(t, flexcms.EINVALID, flexcms.ErrorCode(err))
	})
}
