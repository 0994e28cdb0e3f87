// Package policy defines which fields drive matching, which are ignored when
// diffing, and which deserve emphasis, per configuration section type.
package policy

import (
	"fmt"
	"sort"

	"github.com/wlantools/wlcdiff/pkg/errors"
)

// DefaultThreshold is the minimum item similarity required to pair a source
// item with a destination item.
const DefaultThreshold = 0.5

// defaultMatchingFields is used for any section without an explicit policy.
var defaultMatchingFields = []string{"name"}

// Config is the serializable form of a policy set. Zero-valued keys inherit
// the built-in defaults when passed to NewRegistry.
type Config struct {
	// Threshold overrides DefaultThreshold when > 0.
	Threshold float64 `yaml:"threshold" json:"threshold"`

	// Sections maps section names to their matching configuration.
	Sections map[string]SectionConfig `yaml:"sections" json:"sections"`

	// IgnoredFields are field names (last path segment) excluded from the
	// per-field diff of matched items. Applied globally, not per section.
	IgnoredFields []string `yaml:"ignoredFields" json:"ignoredFields"`

	// ImportantFields are field names flagged for presentation emphasis.
	// Applied globally, not per section.
	ImportantFields []string `yaml:"importantFields" json:"importantFields"`
}

// SectionConfig holds the per-section matching policy.
type SectionConfig struct {
	// MatchingFields are the dotted field paths used as matching evidence.
	// Order documents intent only; it does not affect scoring.
	MatchingFields []string `yaml:"matchingFields" json:"matchingFields"`
}

// DefaultConfig returns the built-in policy table covering the controller
// sections the console compares. Identifier, timestamp, and live-telemetry
// fields are ignored globally; signed asset URLs embed expiring tokens and
// would otherwise flag a difference on every run.
func DefaultConfig() Config {
	return Config{
		Threshold: DefaultThreshold,
		Sections: map[string]SectionConfig{
			"venues": {MatchingFields: []string{
				"name", "address.addressLine", "address.city", "address.country",
			}},
			"wlans":    {MatchingFields: []string{"name", "ssid"}},
			"apGroups": {MatchingFields: []string{"name", "description"}},
			"aps":      {MatchingFields: []string{"name", "model", "apGroupName"}},
			"switches": {MatchingFields: []string{"name", "model"}},
		},
		IgnoredFields: []string{
			"id", "tenantId", "venueId",
			"createdDate", "updatedDate", "crtTime", "lastUpdTime",
			"clients", "status", "firmware", "uptime",
			"imageUrl", "floorplanUrl",
			"serialNumber", "mac",
		},
		ImportantFields: []string{
			"name", "ssid", "vlanId", "securityProtocol", "model",
		},
	}
}

// Registry is an immutable view over a Config. It is safe for concurrent use
// and never mutated by a comparison; tests construct their own registries
// instead of touching shared state.
type Registry struct {
	threshold float64
	sections  map[string][]string
	ignored   map[string]struct{}
	important map[string]struct{}
}

// NewRegistry validates cfg and builds a Registry. Sections absent from cfg
// fall back to matching on the single "name" field at lookup time.
func NewRegistry(cfg Config) (*Registry, error) {
	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	if threshold < 0 || threshold > 1 {
		return nil, errors.ValidationError(
			fmt.Sprintf("threshold %v is outside [0,1]", cfg.Threshold), nil)
	}

	r := &Registry{
		threshold: threshold,
		sections:  make(map[string][]string, len(cfg.Sections)),
		ignored:   make(map[string]struct{}, len(cfg.IgnoredFields)),
		important: make(map[string]struct{}, len(cfg.ImportantFields)),
	}

	for section, sc := range cfg.Sections {
		if len(sc.MatchingFields) == 0 {
			return nil, errors.PolicyError(section, fmt.Sprintf("section %q has no matching fields", section))
		}
		for _, f := range sc.MatchingFields {
			if f == "" {
				return nil, errors.PolicyError(section, fmt.Sprintf("section %q has an empty matching field", section))
			}
		}
		r.sections[section] = append([]string(nil), sc.MatchingFields...)
	}
	for _, f := range cfg.IgnoredFields {
		r.ignored[f] = struct{}{}
	}
	for _, f := range cfg.ImportantFields {
		r.important[f] = struct{}{}
	}

	return r, nil
}

// Default returns a Registry built from DefaultConfig.
func Default() *Registry {
	r, err := NewRegistry(DefaultConfig())
	if err != nil {
		// DefaultConfig is a compile-time constant table.
		panic(err)
	}
	return r
}

// Threshold returns the minimum similarity for a matched pairing.
func (r *Registry) Threshold() float64 {
	return r.threshold
}

// MatchingFields returns the matching field paths for a section. Sections
// without an explicit policy match on "name" alone.
func (r *Registry) MatchingFields(section string) []string {
	if fields, ok := r.sections[section]; ok {
		return append([]string(nil), fields...)
	}
	return append([]string(nil), defaultMatchingFields...)
}

// HasSection reports whether a section has an explicit (non-default) policy.
func (r *Registry) HasSection(section string) bool {
	_, ok := r.sections[section]
	return ok
}

// Sections returns the explicitly configured section names, sorted.
func (r *Registry) Sections() []string {
	names := make([]string, 0, len(r.sections))
	for name := range r.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsIgnored reports whether a field name (last path segment) is excluded
// from per-field diffs.
func (r *Registry) IsIgnored(field string) bool {
	_, ok := r.ignored[field]
	return ok
}

// IsImportant reports whether a field name (last path segment) is flagged
// for emphasis.
func (r *Registry) IsImportant(field string) bool {
	_, ok := r.important[field]
	return ok
}

// IgnoredFields returns the ignored field names, sorted.
func (r *Registry) IgnoredFields() []string {
	return sortedKeys(r.ignored)
}

// ImportantFields returns the important field names, sorted.
func (r *Registry) ImportantFields() []string {
	return sortedKeys(r.important)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
