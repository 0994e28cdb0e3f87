// Package matcher aligns items across two configuration snapshots without
// stable shared identifiers, using weighted fuzzy field similarity and a
// greedy assignment over each section.
package matcher

import "github.com/wlantools/wlcdiff/pkg/snapshot"

// MatchType classifies a comparison record.
type MatchType string

const (
	MatchTypeMatched    MatchType = "matched"
	MatchTypeSourceOnly MatchType = "source-only"
	MatchTypeDestOnly   MatchType = "dest-only"
)

// Record is the atomic comparison result: a pairing of a source item with a
// destination item, or a one-sided item present in only one snapshot.
//
// Exactly one match type holds. Source is non-nil iff the type is matched or
// source-only; Dest is non-nil iff the type is matched or dest-only. Score is
// 0 for one-sided records.
type Record struct {
	// Source item, nil for dest-only records
	Source snapshot.Item `json:"source,omitempty"`

	// Dest item, nil for source-only records
	Dest snapshot.Item `json:"dest,omitempty"`

	// Similarity score in [0,1]; meaningful for matched records only
	Score float64 `json:"score"`

	// MatchType classification
	MatchType MatchType `json:"matchType"`

	// Field changes (for matched pairs)
	FieldChanges []FieldChange `json:"fieldChanges,omitempty"`
}

// FieldChange describes one differing field between a matched pair.
type FieldChange struct {
	Path      string      `json:"path"`
	Source    interface{} `json:"source"`
	Dest      interface{} `json:"dest"`
	Important bool        `json:"important,omitempty"`
}
