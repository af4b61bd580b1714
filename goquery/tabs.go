package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/flexcms/flexcms"
)

// Ensure TabDetector implements flexcms.TabDetector at compile time.
var _ flexcms.TabDetector = (*TabDetector)(nil)

// TabDetector reads the root selector container and separates grouping
// panels from true tab navigation. Grouping panels exist purely as a
// software-filter routing mechanism; only true tabs nested inside a
// panel count toward the complex classification.
type TabDetector struct{}

// NewTabDetector creates a new TabDetector.
func NewTabDetector() *TabDetector {
	return &TabDetector{}
}

// DetectTabs scans the markup for the root selector container and its
// tab structure. The software-filter options in filters identify which
// element ids are grouping panels.
func (d *TabDetector) DetectTabs(html string, filters flexcms.FilterDetection) (flexcms.TabDetection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return flexcms.TabDetection{}, flexcms.Errorf(flexcms.EINVALID, "failed to parse HTML: %v", err)
	}

	var detection flexcms.TabDetection

	containers := doc.Find("div." + classMainSelector + "." + classMainDetailTab)
	if containers.Length() == 0 {
		return detection, nil
	}
	if containers.Length() > 1 {
		detection.Warnings = append(detection.Warnings, flexcms.Warning{
			Code:    flexcms.WarnStructuralAmbiguity,
			Message: "multiple root selector containers, using the first",
		})
	}
	container := containers.First()
	detection.HasMainContainer = true

	panelIDs := panelIDSet(filters)

	if len(panelIDs) == 0 {
		// No software filter: the whole container is one implicit panel.
		group := flexcms.TabGroup{PanelID: container.AttrOr("id", "")}
		group.TrueTabs = trueTabsIn(container, group.PanelID, panelIDs)
		detection.TabGroups = append(detection.TabGroups, group)
	} else {
		container.Find("div." + classTabContent + " > div." + classTabPanel).Each(func(_ int, panel *goquery.Selection) {
			id := panel.AttrOr("id", "")
			if _, ok := panelIDs[id]; !ok {
				return
			}
			group := flexcms.TabGroup{PanelID: id}
			group.TrueTabs = trueTabsIn(panel, id, panelIDs)
			detection.TabGroups = append(detection.TabGroups, group)
		})
	}

	for _, g := range detection.TabGroups {
		if len(g.TrueTabs) > 0 {
			detection.HasComplexTabs = true
			break
		}
	}

	return detection, nil
}

// panelIDSet collects the panel ids referenced by software-filter
// options, hidden or not.
func panelIDSet(filters flexcms.FilterDetection) map[string]struct{} {
	ids := make(map[string]struct{})
	if filters.Software == nil {
		return ids
	}
	for _, opt := range filters.Software.Options {
		if opt.TargetID != "" {
			ids[opt.TargetID] = struct{}{}
		}
	}
	return ids
}

// trueTabsIn finds the true-tab navigation list inside a panel. The
// legacy markup duplicates the navigation for desktop and mobile; the
// desktop variant (hidden-xs hidden-sm) wins, and tabs are deduplicated
// by target id. Panel ids never count as tabs.
func trueTabsIn(panel *goquery.Selection, panelID string, panelIDs map[string]struct{}) []flexcms.TabEntry {
	navs := panel.Find("ul." + classTabNav + "." + classCategoryTabs)
	if navs.Length() == 0 {
		return nil
	}

	nav := navs.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.HasClass("hidden-xs") && s.HasClass("hidden-sm")
	}).First()
	if nav.Length() == 0 {
		nav = navs.First()
	}

	var tabs []flexcms.TabEntry
	seen := make(map[string]bool)

	nav.Find("a").Each(func(_ int, link *goquery.Selection) {
		target := strings.TrimPrefix(strings.TrimSpace(link.AttrOr(attrTargetHref, "")), "#")
		label := strings.TrimSpace(link.Text())
		if target == "" || label == "" {
			return
		}
		if _, isPanel := panelIDs[target]; isPanel {
			return
		}
		if seen[target] {
			return
		}
		seen[target] = true
		tabs = append(tabs, flexcms.TabEntry{
			TargetID: target,
			Label:    label,
			GroupID:  panelID,
		})
	})

	return tabs
}
