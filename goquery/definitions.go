package goquery

import "github.com/flexcms/flexcms"

// Display names of the output-facing filters.
const (
	filterNameRegion   = "地区"
	filterNameSoftware = "软件类别"
	filterNameCategory = "类别"
)

// filterDefinitions projects the option sets the strategies iterate
// over into the output-facing schema. Hidden widgets are omitted: the
// downstream filter interface only offers what the source page offered.
func filterDefinitions(c flexcms.PageClassification, withTabs bool) []flexcms.FilterDefinition {
	var defs []flexcms.FilterDefinition

	if d := c.Filters.Region; d != nil && d.Visible && len(d.Options) > 0 {
		defs = append(defs, flexcms.FilterDefinition{
			FilterKey:  "region",
			FilterName: filterNameRegion,
			FilterType: flexcms.FilterTypeDropdown,
			Options:    defOptions(d.Options),
		})
	}

	if d := c.Filters.Software; d != nil && d.Visible && len(d.Options) > 0 {
		defs = append(defs, flexcms.FilterDefinition{
			FilterKey:  "software",
			FilterName: filterNameSoftware,
			FilterType: flexcms.FilterTypeDropdown,
			Options:    defOptions(d.Options),
		})
	}

	tabs := flexcms.TabDetection{TabGroups: c.TabGroups}.TrueTabs()
	if withTabs && len(tabs) > 0 {
		opts := make([]flexcms.FilterDefOption, len(tabs))
		for i, tab := range tabs {
			opts[i] = flexcms.FilterDefOption{
				Value:     tab.TargetID,
				Label:     tab.Label,
				IsDefault: i == 0,
				Order:     i + 1,
			}
		}
		defs = append(defs, flexcms.FilterDefinition{
			FilterKey:  "category",
			FilterName: filterNameCategory,
			FilterType: flexcms.FilterTypeTab,
			Options:    opts,
		})
	}

	return defs
}

func defOptions(options []flexcms.FilterOption) []flexcms.FilterDefOption {
	opts := make([]flexcms.FilterDefOption, len(options))
	for i, o := range options {
		opts[i] = flexcms.FilterDefOption{
			Value:     o.Value,
			Label:     o.Label,
			IsDefault: i == 0,
			Order:     i + 1,
		}
	}
	return opts
}
