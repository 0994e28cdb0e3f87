package matcher

import (
	"sort"

	"github.com/google/go-cmp/cmp"

	"github.com/wlantools/wlcdiff/pkg/fieldpath"
	"github.com/wlantools/wlcdiff/pkg/policy"
	"github.com/wlantools/wlcdiff/pkg/snapshot"
)

// FieldDiff computes the field-level changes between a matched pair.
//
// It walks the union of dotted field paths present in either item, drops any
// path whose last segment is in the registry's ignored set (volatile
// identifiers, timestamps, live counters, expiring signed URLs), and reports
// a change wherever the two resolved values are not deeply equal. Changes on
// fields in the important set are flagged for emphasis. Paths are returned
// sorted for deterministic rendering.
func FieldDiff(source, dest snapshot.Item, registry *policy.Registry) []FieldChange {
	paths := unionPaths(source, dest)

	var changes []FieldChange
	for _, path := range paths {
		if registry.IsIgnored(fieldpath.LastSegment(path)) {
			continue
		}

		va, _ := fieldpath.Resolve(source, path)
		vb, _ := fieldpath.Resolve(dest, path)
		if cmp.Equal(va, vb) {
			continue
		}

		changes = append(changes, FieldChange{
			Path:      path,
			Source:    va,
			Dest:      vb,
			Important: registry.IsImportant(fieldpath.LastSegment(path)),
		})
	}

	return changes
}

func unionPaths(source, dest snapshot.Item) []string {
	seen := make(map[string]struct{})
	for _, p := range fieldpath.Flatten(source) {
		seen[p] = struct{}{}
	}
	for _, p := range fieldpath.Flatten(dest) {
		seen[p] = struct{}{}
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
