package flexcms

// TabEntry is a true tab: a user-facing navigation entry inside a
// grouping panel that switches visible content. A TabEntry's TargetID
// is never a panel id; panels route software-filter selections and are
// invisible to the user as tabs.
type TabEntry struct {
	// TargetID is the id of the content element the tab reveals.
	TargetID string `json:"targetId"`

	// Label is the tab's visible text.
	Label string `json:"label"`

	// GroupID is the id of the grouping panel that owns this tab.
	GroupID string `json:"groupId"`
}

// TabGroup is a grouping panel together with the true tabs nested
// inside it. Panel ids are exactly the target ids referenced by
// software-filter options.
type TabGroup struct {
	PanelID  string     `json:"panelId"`
	TrueTabs []TabEntry `json:"trueTabs"`
}

// TabDetection holds the outcome of scanning a page for its root
// selector container and tab structure.
type TabDetection struct {
	// HasMainContainer reports whether the page's single root selector
	// container was found.
	HasMainContainer bool

	// TabGroups lists the grouping panels with their true tabs.
	TabGroups []TabGroup

	// HasComplexTabs is true iff any panel contains at least one true
	// tab, i.e. the user is ever offered an in-panel tab switch.
	HasComplexTabs bool

	// Warnings collects non-fatal structural issues found during
	// detection.
	Warnings []Warning
}

// TrueTabs returns all true tabs across all groups, in document order.
func (d TabDetection) TrueTabs() []TabEntry {
	var tabs []TabEntry
	for _, g := range d.TabGroups {
		tabs = append(tabs, g.TrueTabs...)
	}
	return tabs
}

// TabDetector reads the page's root container and tab structure out of
// raw markup. The software-filter options from FilterDetection tell the
// detector which element ids are grouping panels.
type TabDetector interface {
	DetectTabs(html string, filters FilterDetection) (TabDetection, error)
}
