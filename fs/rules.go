// Package fs provides file-based configuration loading and document
// storage: the region rule table, the product catalog, the page
// archive, and the JSON document writer.
package fs

import (
	"encoding/json"
	"os"

	"github.com/flexcms/flexcms"
)

// ruleEntry is the wire shape of one rule in the region config file.
// The legacy config names exclusions "tableIDs"; the include form was
// added later and both are accepted.
type ruleEntry struct {
	OS              string   `json:"os"`
	Region          string   `json:"region"`
	TableIDs        []string `json:"tableIDs"`
	IncludeTableIDs []string `json:"includeTableIDs"`
}

// LoadRuleTable reads a region rule config file into an immutable rule
// table. Entries without a region are skipped; later entries for the
// same (os, region) pair replace earlier ones.
func LoadRuleTable(path string) (*flexcms.RuleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, flexcms.Errorf(flexcms.ENOTFOUND, "rule config %s not found", path)
		}
		return nil, err
	}
	return ParseRuleTable(data)
}

// ParseRuleTable parses rule config bytes into a rule table.
func ParseRuleTable(data []byte) (*flexcms.RuleTable, error) {
	var raw []ruleEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, flexcms.Errorf(flexcms.EINVALID, "parsing rule config: %v", err)
	}

	var entries []flexcms.RuleEntry
	for _, e := range raw {
		if e.Region == "" {
			continue
		}
		entries = append(entries, flexcms.RuleEntry{
			OS:     e.OS,
			Region: e.Region,
			Rule: flexcms.RegionRule{
				IncludeTableIDs: e.IncludeTableIDs,
				ExcludeTableIDs: e.TableIDs,
			},
		})
	}

	return flexcms.NewRuleTable(entries), nil
}
