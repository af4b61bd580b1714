package main

import (
	"fmt"
	"strings"

	"github.com/flexcms/flexcms"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	if c.OS == "" {
		fmt.Fprintf(deps.Stdout, "%d rules configured\n", deps.Rules.Len())
		return nil
	}
	if c.Region == "" {
		return flexcms.Errorf(flexcms.EINVALID, "check requires both a software category and a region")
	}

	rule := deps.Rules.Rule(c.OS, c.Region)
	if rule == nil {
		fmt.Fprintf(deps.Stdout, "no rule for (%s, %s); tables pass through unfiltered\n", c.OS, c.Region)
		return nil
	}
	if rule.Empty() {
		fmt.Fprintf(deps.Stdout, "(%s, %s): rule configured, no tables filtered\n", c.OS, c.Region)
		return nil
	}
	if len(rule.IncludeTableIDs) > 0 {
		fmt.Fprintf(deps.Stdout, "(%s, %s) includes only: %s\n", c.OS, c.Region, strings.Join(rule.IncludeTableIDs, ", "))
	}
	if len(rule.ExcludeTableIDs) > 0 {
		fmt.Fprintf(deps.Stdout, "(%s, %s) excludes: %s\n", c.OS, c.Region, strings.Join(rule.ExcludeTableIDs, ", "))
	}
	return nil
}
