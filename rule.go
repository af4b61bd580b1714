package flexcms

import "strings"

// RegionRule names the pricing tables a region includes or excludes for
// one software category. Table ids are matched with or without a leading
// "#".
type RegionRule struct {
	IncludeTableIDs []string `json:"includeTableIds"`
	ExcludeTableIDs []string `json:"excludeTableIds"`
}

// Empty reports whether the rule carries no table ids, in which case it
// filters nothing.
func (r RegionRule) Empty() bool {
	return len(r.IncludeTableIDs) == 0 && len(r.ExcludeTableIDs) == 0
}

// Excludes reports whether the rule excludes the given table id.
func (r RegionRule) Excludes(tableID string) bool {
	if containsTableID(r.ExcludeTableIDs, tableID) {
		return true
	}
	// A non-empty include list excludes everything it does not name.
	if len(r.IncludeTableIDs) > 0 && !containsTableID(r.IncludeTableIDs, tableID) {
		return true
	}
	return false
}

func containsTableID(ids []string, tableID string) bool {
	want := strings.TrimPrefix(tableID, "#")
	for _, id := range ids {
		if strings.TrimPrefix(id, "#") == want {
			return true
		}
	}
	return false
}

// RuleLookup resolves the table rule for an (os, region) pair. A nil
// result means no rule is configured and content passes through
// unfiltered.
type RuleLookup interface {
	Rule(os, region string) *RegionRule
}

// RuleTable is an immutable in-memory RuleLookup. It is constructed once
// per process by the orchestration layer and passed into each extraction
// call; it never mutates afterward.
type RuleTable struct {
	rules map[ruleKey]RegionRule
}

type ruleKey struct {
	os     string
	region string
}

// NewRuleTable builds a RuleTable from per-(os, region) rules. Later
// entries for the same pair replace earlier ones.
func NewRuleTable(entries []RuleEntry) *RuleTable {
	rules := make(map[ruleKey]RegionRule, len(entries))
	for _, e := range entries {
		rules[ruleKey{os: e.OS, region: e.Region}] = e.Rule
	}
	return &RuleTable{rules: rules}
}

// RuleEntry is one (os, region) → rule binding used to build a RuleTable.
type RuleEntry struct {
	OS     string
	Region string
	Rule   RegionRule
}

// Rule returns the rule for an (os, region) pair, or nil when none is
// configured.
func (t *RuleTable) Rule(os, region string) *RegionRule {
	if t == nil {
		return nil
	}
	r, ok := t.rules[ruleKey{os: os, region: region}]
	if !ok {
		return nil
	}
	return &r
}

// Len returns the number of configured rules.
func (t *RuleTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rules)
}

// RegionProcessor applies a region's table rule to a content fragment.
type RegionProcessor interface {
	// FilterFragment removes the tables the (os, region) rule excludes
	// from the fragment and returns the filtered markup. When no rule is
	// configured the fragment is returned unchanged and applied is
	// false.
	FilterFragment(fragment, os, region string) (filtered string, applied bool, err error)
}
