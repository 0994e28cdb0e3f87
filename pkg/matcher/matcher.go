package matcher

import (
	"sort"

	"github.com/wlantools/wlcdiff/pkg/policy"
	"github.com/wlantools/wlcdiff/pkg/snapshot"
)

// Matcher aligns the items of one section across two snapshots using the
// section's matching policy.
type Matcher struct {
	registry *policy.Registry
}

// New creates a Matcher backed by the given policy registry.
func New(registry *policy.Registry) *Matcher {
	return &Matcher{registry: registry}
}

// Match pairs source items with destination items for a section.
//
// The assignment is intentionally greedy rather than a globally optimal
// bipartite matching: each source item, in original order, claims the
// highest-scoring unclaimed destination item (first seen wins exact ties)
// when the score clears the threshold. A later source item could in theory
// have been the better match for an already-claimed destination, but
// configuration sections hold tens to low hundreds of items and near-ties
// are rare, so the O(n*m) heuristic is an acceptable trade against an
// O(n^3) optimal assignment.
//
// Source items whose best score falls below the threshold become
// source-only records; destination items never claimed become dest-only.
// The result is sorted matched-first by descending score, then source-only,
// then dest-only, preserving original order within each bucket.
func (m *Matcher) Match(source, dest []snapshot.Item, section string, threshold float64) []Record {
	fields := m.registry.MatchingFields(section)

	claimed := make([]bool, len(dest))
	var matched, sourceOnly []Record

	for _, src := range source {
		bestIdx := -1
		bestScore := -1.0

		for j, dst := range dest {
			if claimed[j] {
				continue
			}
			if score := ItemScore(src, dst, fields); score > bestScore {
				bestScore = score
				bestIdx = j
			}
		}

		if bestIdx >= 0 && bestScore >= threshold {
			claimed[bestIdx] = true
			matched = append(matched, Record{
				Source:    src,
				Dest:      dest[bestIdx],
				Score:     bestScore,
				MatchType: MatchTypeMatched,
			})
			continue
		}

		sourceOnly = append(sourceOnly, Record{
			Source:    src,
			MatchType: MatchTypeSourceOnly,
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Score > matched[j].Score
	})

	records := make([]Record, 0, len(matched)+len(sourceOnly)+len(dest))
	records = append(records, matched...)
	records = append(records, sourceOnly...)
	for j, dst := range dest {
		if !claimed[j] {
			records = append(records, Record{
				Dest:      dst,
				MatchType: MatchTypeDestOnly,
			})
		}
	}

	return records
}
