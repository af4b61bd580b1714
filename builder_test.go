package flexcms_test

import (
	"testing"

	"github.com/flexcms/flexcms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleBuilder_Build(t *testing.T) {
	t.Parallel()

	meta := flexcms.PageMeta{
		Title:           "API 管理定价",
		Slug:            "api-management",
		MetaDescription: "API 管理定价详情",
	}
	classification := flexcms.PageClassification{PageType: flexcms.PageRegionFilter}

	t.Run("assigns sort order and active flag to groups", func(t *testing.T) {
		t.Parallel()

		res := flexcms.StrategyResult{
			EnableFilters: true,
			ContentGroups: []flexcms.ContentGroup{
				{GroupName: "中国北部", FilterCriteriaJson: "[]", Content: "<p>north</p>"},
				{GroupName: "中国东部", FilterCriteriaJson: "[]", Content: "<p>east</p>"},
			},
		}

		doc, err := flexcms.NewFlexibleBuilder().Build(meta, nil, nil, classification, res)
		require.NoError(t, err)

		require.Len(t, doc.ContentGroups, 2)
		assert.Equal(t, 1, doc.ContentGroups[0].SortOrder)
		assert.Equal(t, 2, doc.ContentGroups[1].SortOrder)
		assert.True(t, doc.ContentGroups[0].IsActive)
		assert.Empty(t, doc.BaseContent)
	})

	t.Run("encodes filter definitions into page config", func(t *testing.T) {
		t.Parallel()

		res := flexcms.StrategyResult{
			EnableFilters: true,
			ContentGroups: []flexcms.ContentGroup{{GroupName: "中国北部", Content: "<p>x</p>"}},
			FilterDefinitions: []flexcms.FilterDefinition{
				{FilterKey: "region", FilterName: "地区", FilterType: flexcms.FilterTypeDropdown},
			},
		}

		doc, err := flexcms.NewFlexibleBuilder().Build(meta, nil, nil, classification, res)
		require.NoError(t, err)

		defs, err := flexcms.DecodeFiltersConfig(doc.PageConfig.FiltersJsonConfig)
		require.NoError(t, err)
		require.Len(t, defs, 1)
		assert.Equal(t, "region", defs[0].FilterKey)
	})

	t.Run("product supplies fallback slug and title override", func(t *testing.T) {
		t.Parallel()

		product := &flexcms.Product{Key: "API Management", Slug: "api-management", Title: "API 管理"}
		res := flexcms.StrategyResult{BaseContent: "<div>pricing</div>"}
		simple := flexcms.PageClassification{PageType: flexcms.PageSimple}

		doc, err := flexcms.NewFlexibleBuilder().Build(flexcms.PageMeta{Title: "raw"}, product, nil, simple, res)
		require.NoError(t, err)

		assert.Equal(t, "api-management", doc.Slug)
		assert.Equal(t, "API 管理", doc.Title)
	})

	t.Run("carries detector and strategy warnings", func(t *testing.T) {
		t.Parallel()

		c := classification
		c.Warnings = []flexcms.Warning{{Code: flexcms.WarnStructuralAmbiguity, Message: "duplicate region container"}}
		res := flexcms.StrategyResult{
			ContentGroups: []flexcms.ContentGroup{{GroupName: "中国北部", Content: "<p>x</p>"}},
			Warnings:      []flexcms.Warning{{Code: flexcms.WarnMissingContent, Message: "no fragment for tabContent9"}},
		}

		doc, err := flexcms.NewFlexibleBuilder().Build(meta, nil, nil, c, res)
		require.NoError(t, err)

		require.Len(t, doc.Warnings, 2)
		assert.Equal(t, flexcms.WarnStructuralAmbiguity, doc.Warnings[0].Code)
		assert.Equal(t, flexcms.WarnMissingContent, doc.Warnings[1].Code)
	})

	t.Run("rejects strategy result violating exclusivity", func(t *testing.T) {
		t.Parallel()

		res := flexcms.StrategyResult{
			BaseContent:   "<div>x</div>",
			ContentGroups: []flexcms.ContentGroup{{GroupName: "中国北部", Content: "<p>x</p>"}},
		}

		_, err := flexcms.NewFlexibleBuilder().Build(meta, nil, nil, classification, res)

		assert.Equal(t, flexcms.EINVALID, flexcms.ErrorCode(err))
	})
}

func TestSlugFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"trailing slash", "https://example.com/pricing/details/api-management/", "api-management"},
		{"no trailing slash", "https://example.com/pricing/details/mysql", "mysql"},
		{"index file", "https://example.com/pricing/details/cloud-services/index.html", "cloud-services"},
		{"html suffix", "https://example.com/pricing/details/ssis.html", "ssis"},
		{"root", "https://example.com/", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, flexcms.SlugFromURL(tt.url))
		})
	}
}
