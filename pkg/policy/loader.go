package policy

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wlantools/wlcdiff/pkg/errors"
)

// LoadFile reads a YAML policy file and merges it over the built-in defaults:
// sections named in the file replace the default entry for that section,
// unnamed sections keep theirs, and the ignored/important sets are replaced
// wholesale when present.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, "failed to read policy file", err).
			WithDetail("file", path)
	}
	return LoadBytes(data)
}

// LoadBytes parses a YAML policy document and merges it over the defaults.
func LoadBytes(data []byte) (*Registry, error) {
	var overrides Config
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, errors.ParseError("policy file", err)
	}
	return NewRegistry(Merge(DefaultConfig(), overrides))
}

// Merge layers an override Config on top of a base Config. Zero-valued
// override keys inherit the base.
func Merge(base, overrides Config) Config {
	merged := base

	if overrides.Threshold != 0 {
		merged.Threshold = overrides.Threshold
	}
	if len(overrides.Sections) > 0 {
		sections := make(map[string]SectionConfig, len(base.Sections)+len(overrides.Sections))
		for name, sc := range base.Sections {
			sections[name] = sc
		}
		for name, sc := range overrides.Sections {
			sections[name] = sc
		}
		merged.Sections = sections
	}
	if overrides.IgnoredFields != nil {
		merged.IgnoredFields = overrides.IgnoredFields
	}
	if overrides.ImportantFields != nil {
		merged.ImportantFields = overrides.ImportantFields
	}

	return merged
}
