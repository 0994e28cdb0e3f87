// Package compare orchestrates a full snapshot comparison: it fans out over
// the union of section names, aligns each section's items, and assembles the
// section-keyed diff report.
package compare

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wlantools/wlcdiff/pkg/matcher"
	"github.com/wlantools/wlcdiff/pkg/policy"
	"github.com/wlantools/wlcdiff/pkg/snapshot"
)

// SectionDiff holds the ordered comparison records for one section.
type SectionDiff struct {
	// Section name
	Section string `json:"section"`

	// Records, ordered matched-first (descending score), then source-only,
	// then dest-only
	Records []matcher.Record `json:"records"`

	// Summary
	Matched    int `json:"matched"`
	SourceOnly int `json:"sourceOnly"`
	DestOnly   int `json:"destOnly"`
}

// Report is the result of comparing two snapshots.
type Report struct {
	// ID identifies this comparison run
	ID string `json:"id"`

	// CreatedAt is when the comparison ran
	CreatedAt time.Time `json:"createdAt"`

	// Threshold used for matching
	Threshold float64 `json:"threshold"`

	// Sections in stable (sorted) order
	Sections []SectionDiff `json:"sections"`

	// Summary across all sections
	Matched    int `json:"matched"`
	SourceOnly int `json:"sourceOnly"`
	DestOnly   int `json:"destOnly"`
}

// IsClean returns true when every item matched and no matched pair has a
// field-level change.
func (r *Report) IsClean() bool {
	if r.SourceOnly > 0 || r.DestOnly > 0 {
		return false
	}
	for _, section := range r.Sections {
		for _, rec := range section.Records {
			if len(rec.FieldChanges) > 0 {
				return false
			}
		}
	}
	return true
}

// Options configures comparison behavior.
type Options struct {
	// Threshold overrides the registry threshold when > 0.
	Threshold float64

	// SkipSections are removed from the section union before matching.
	// Skipping is a presentation/performance filter, not part of the
	// matching algorithm.
	SkipSections []string

	// Parallel compares sections concurrently. Sections are independent;
	// results land in pre-indexed slots so output order stays deterministic.
	Parallel bool
}

// Comparator compares configuration snapshots section by section.
type Comparator struct {
	registry *policy.Registry
	matcher  *matcher.Matcher
	options  Options
}

// New creates a Comparator with the given policy registry. A nil registry
// uses the built-in defaults.
func New(registry *policy.Registry) *Comparator {
	return NewWithOptions(registry, Options{})
}

// NewWithOptions creates a Comparator with options.
func NewWithOptions(registry *policy.Registry, opts Options) *Comparator {
	if registry == nil {
		registry = policy.Default()
	}
	return &Comparator{
		registry: registry,
		matcher:  matcher.New(registry),
		options:  opts,
	}
}

// Compare matches and diffs two snapshots. Neither snapshot is mutated, and
// there are no error paths: missing sections, absent fields, and malformed
// values all degrade to lower scores or one-sided records.
func (c *Comparator) Compare(source, dest snapshot.Snapshot) *Report {
	threshold := c.registry.Threshold()
	if c.options.Threshold > 0 {
		threshold = c.options.Threshold
	}

	sections := c.filterSections(snapshot.UnionSections(source, dest))

	report := &Report{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Threshold: threshold,
		Sections:  make([]SectionDiff, len(sections)),
	}

	if c.options.Parallel {
		var wg sync.WaitGroup
		for i, name := range sections {
			wg.Add(1)
			go func(i int, name string) {
				defer wg.Done()
				report.Sections[i] = c.compareSection(name, source.Items(name), dest.Items(name), threshold)
			}(i, name)
		}
		wg.Wait()
	} else {
		for i, name := range sections {
			report.Sections[i] = c.compareSection(name, source.Items(name), dest.Items(name), threshold)
		}
	}

	for _, section := range report.Sections {
		report.Matched += section.Matched
		report.SourceOnly += section.SourceOnly
		report.DestOnly += section.DestOnly
	}

	return report
}

func (c *Comparator) compareSection(name string, source, dest []snapshot.Item, threshold float64) SectionDiff {
	records := c.matcher.Match(source, dest, name, threshold)

	diff := SectionDiff{
		Section: name,
		Records: records,
	}

	for i := range records {
		switch records[i].MatchType {
		case matcher.MatchTypeMatched:
			diff.Matched++
			records[i].FieldChanges = matcher.FieldDiff(records[i].Source, records[i].Dest, c.registry)
		case matcher.MatchTypeSourceOnly:
			diff.SourceOnly++
		case matcher.MatchTypeDestOnly:
			diff.DestOnly++
		}
	}

	return diff
}

func (c *Comparator) filterSections(sections []string) []string {
	if len(c.options.SkipSections) == 0 {
		return sections
	}

	skip := make(map[string]struct{}, len(c.options.SkipSections))
	for _, name := range c.options.SkipSections {
		skip[name] = struct{}{}
	}

	kept := sections[:0]
	for _, name := range sections {
		if _, ok := skip[name]; !ok {
			kept = append(kept, name)
		}
	}
	return kept
}
