package goquery_test

import (
	"testing"

	"github.com/flexcms/flexcms"
	"github.com/flexcms/flexcms/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// regionPage mirrors the legacy region-filter page shape: visible region
// selector, hidden software selector carrying the os value, one grouping
// panel with the pricing tables.
const regionPage = `<!DOCTYPE html>
<html>
<body>
<div class="technical-azure-selector pricing-detail-tab">
	<div class="region-container">
		<select class="region-selector">
			<option value="north-china" data-href="#panel">华北</option>
			<option value="east-china" data-href="#panel">华东</option>
		</select>
	</div>
	<div class="software-kind" style="display:none">
		<select class="software-box">
			<option value="API Management" data-href="#panel">API 管理</option>
		</select>
	</div>
	<div class="tab-content">
		<div class="tab-panel" id="panel">
			<table id="t1"><tbody><tr><td>表一</td></tr></tbody></table>
			<table id="t2"><tbody><tr><td>表二</td></tr></tbody></table>
		</div>
	</div>
</div>
</body>
</html>`

func regionClassification(t *testing.T, html string) flexcms.PageClassification {
	t.Helper()
	c, err := newAnalyzer().Analyze(html)
	require.NoError(t, err)
	require.Equal(t, flexcms.PageRegionFilter, c.PageType)
	return c
}

func TestRegionFilterStrategy_Extract(t *testing.T) {
	t.Parallel()

	t.Run("emits one group per region with the hidden os applied", func(t *testing.T) {
		t.Parallel()

		rules := flexcms.NewRuleTable([]flexcms.RuleEntry{
			{OS: "API Management", Region: "north-china", Rule: flexcms.RegionRule{ExcludeTableIDs: []string{"t2"}}},
			{OS: "API Management", Region: "east-china", Rule: flexcms.RegionRule{ExcludeTableIDs: []string{"t1"}}},
		})

		s := goquery.NewRegionFilterStrategy(goquery.NewRegionProcessor(rules), goquery.NewCleaner())
		res, err := s.Extract(regionPage, regionClassification(t, regionPage), nil)

		require.NoError(t, err)
		assert.True(t, res.EnableFilters)
		require.Len(t, res.ContentGroups, 2)

		north := res.ContentGroups[0]
		east := res.ContentGroups[1]

		assert.Equal(t, "华北", north.GroupName)
		assert.Contains(t, north.Content, "表一")
		assert.NotContains(t, north.Content, "表二")

		assert.Equal(t, "华东", east.GroupName)
		assert.Contains(t, east.Content, "表二")
		assert.NotContains(t, east.Content, "表一")

		// Regions with different rules must not share content.
		assert.NotEqual(t, north.Content, east.Content)
		assert.Empty(t, res.Warnings)
	})

	t.Run("encodes one region criterion per group", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewRegionFilterStrategy(goquery.NewRegionProcessor(flexcms.NewRuleTable(nil)), goquery.NewCleaner())
		res, err := s.Extract(regionPage, regionClassification(t, regionPage), nil)

		require.NoError(t, err)
		require.Len(t, res.ContentGroups, 2)

		criteria, err := flexcms.DecodeFilterCriteria(res.ContentGroups[0].FilterCriteriaJson)
		require.NoError(t, err)
		require.Len(t, criteria, 1)
		assert.Equal(t, "region", criteria[0].FilterKey)
		assert.Equal(t, []string{"north-china"}, criteria[0].MatchValues)
	})

	t.Run("warns and passes through when no rule is configured", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewRegionFilterStrategy(goquery.NewRegionProcessor(flexcms.NewRuleTable(nil)), goquery.NewCleaner())
		res, err := s.Extract(regionPage, regionClassification(t, regionPage), nil)

		require.NoError(t, err)
		require.Len(t, res.ContentGroups, 2)
		assert.Contains(t, res.ContentGroups[0].Content, "表一")
		assert.Contains(t, res.ContentGroups[0].Content, "表二")

		require.Len(t, res.Warnings, 2)
		for _, w := range res.Warnings {
			assert.Equal(t, flexcms.WarnConfigLookupMiss, w.Code)
		}
	})

	t.Run("uses the product key when no software filter exists", func(t *testing.T) {
		t.Parallel()

		html := `<div class="technical-azure-selector pricing-detail-tab">
	<div class="region-container">
		<select class="region-selector">
			<option value="north-china" data-href="#x">华北</option>
		</select>
	</div>
	<div class="tab-content"><table id="t1"><tbody><tr><td>表一</td></tr></tbody></table></div>
</div>`

		c, err := newAnalyzer().Analyze(html)
		require.NoError(t, err)
		require.Equal(t, flexcms.PageRegionFilter, c.PageType)

		rules := flexcms.NewRuleTable([]flexcms.RuleEntry{
			{OS: "Azure Database for MySQL", Region: "north-china", Rule: flexcms.RegionRule{ExcludeTableIDs: []string{"t1"}}},
		})
		product := &flexcms.Product{Key: "Azure Database for MySQL", Slug: "mysql"}

		s := goquery.NewRegionFilterStrategy(goquery.NewRegionProcessor(rules), goquery.NewCleaner())
		res, err := s.Extract(html, c, product)

		require.NoError(t, err)
		require.Len(t, res.ContentGroups, 1)
		assert.NotContains(t, res.ContentGroups[0].Content, "表一")
		assert.Empty(t, res.Warnings)
	})

	t.Run("only the region definition is emitted for hidden software", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewRegionFilterStrategy(goquery.NewRegionProcessor(flexcms.NewRuleTable(nil)), goquery.NewCleaner())
		res, err := s.Extract(regionPage, regionClassification(t, regionPage), nil)

		require.NoError(t, err)
		require.Len(t, res.FilterDefinitions, 1)
		def := res.FilterDefinitions[0]
		assert.Equal(t, "region", def.FilterKey)
		assert.Equal(t, flexcms.FilterTypeDropdown, def.FilterType)
		require.Len(t, def.Options, 2)
		assert.True(t, def.Options[0].IsDefault)
		assert.False(t, def.Options[1].IsDefault)
		assert.Equal(t, 1, def.Options[0].Order)
		assert.Equal(t, 2, def.Options[1].Order)
	})
}
