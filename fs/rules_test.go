package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flexcms/flexcms"
	"github.com/flexcms/flexcms/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRuleTable(t *testing.T) {
	t.Parallel()

	t.Run("parses exclusion rules", func(t *testing.T) {
		t.Parallel()

		data := []byte(`[
	{"os": "API Management", "region": "north-china", "tableIDs": ["#t2", "t3"]},
	{"os": "API Management", "region": "east-china", "tableIDs": []}
]`)

		table, err := fs.ParseRuleTable(data)

		require.NoError(t, err)
		assert.Equal(t, 2, table.Len())

		rule := table.Rule("API Management", "north-china")
		require.NotNil(t, rule)
		assert.True(t, rule.Excludes("t2"))
		assert.True(t, rule.Excludes("#t3"))
		assert.False(t, rule.Excludes("t1"))

		empty := table.Rule("API Management", "east-china")
		require.NotNil(t, empty)
		assert.True(t, empty.Empty())

		assert.Nil(t, table.Rule("API Management", "north-china-2"))
	})

	t.Run("parses include rules", func(t *testing.T) {
		t.Parallel()

		data := []byte(`[
	{"os": "windows", "region": "north-china", "includeTableIDs": ["t1"]}
]`)

		table, err := fs.ParseRuleTable(data)

		require.NoError(t, err)
		rule := table.Rule("windows", "north-china")
		require.NotNil(t, rule)
		assert.False(t, rule.Excludes("t1"))
		assert.True(t, rule.Excludes("t2"))
	})

	t.Run("skips entries without a region", func(t *testing.T) {
		t.Parallel()

		data := []byte(`[{"os": "windows", "tableIDs": ["t1"]}]`)

		table, err := fs.ParseRuleTable(data)

		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())
	})

	t.Run("rejects malformed config", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ParseRuleTable([]byte(`{"not": "an array"}`))

		require.Error(t, err)
		assert.Equal(t, flexcms.EINVALID, flexcms.ErrorCode(err))
	})
}

func TestLoadRuleTable(t *testing.T) {
	t.Parallel()

	t.Run("loads a config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "soft-category.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"os": "a", "region": "r", "tableIDs": ["t"]}]`), 0644))

		table, err := fs.LoadRuleTable(path)

		require.NoError(t, err)
		assert.Equal(t, 1, table.Len())
	})

	t.Run("missing file is ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		_, err := fs.LoadRuleTable(filepath.Join(t.TempDir(), "absent.json"))

		require.Error(t, err)
		assert.Equal(t, flexcms.ENOTFOUND, flexcms.ErrorCode(err))
	})
}
