// Package snapshot models a configuration snapshot: a mapping from section
// name (venues, wlans, apGroups, ...) to the list of configuration objects
// fetched for that section.
package snapshot

import "sort"

// Item is one configuration object, kept as untyped JSON. The controller API
// surfaces dozens of entity shapes; matching operates on dotted field paths
// rather than typed accessors.
type Item map[string]interface{}

// Snapshot maps section names to their items. Snapshots are read-only during
// a comparison; the engine never mutates them.
type Snapshot map[string][]Item

// Items returns the item list for a section, or nil when absent. A section
// missing from the snapshot is indistinguishable from an empty one, which is
// the behavior the comparator relies on for one-sided sections.
func (s Snapshot) Items(section string) []Item {
	return s[section]
}

// Sections returns the snapshot's section names, sorted.
func (s Snapshot) Sections() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnionSections returns the sorted union of section names across two
// snapshots. Sections present in only one snapshot are still compared; all
// their items surface as one-sided records.
func UnionSections(source, dest Snapshot) []string {
	seen := make(map[string]struct{}, len(source)+len(dest))
	for name := range source {
		seen[name] = struct{}{}
	}
	for name := range dest {
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
