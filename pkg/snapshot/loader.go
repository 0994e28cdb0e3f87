package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wlantools/wlcdiff/pkg/errors"
)

// Load reads a snapshot from a JSON or YAML file, chosen by extension.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, "failed to read snapshot", err).
			WithDetail("file", path)
	}

	var raw map[string]interface{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, errors.ParseError(path, err)
	}

	return Normalize(raw), nil
}

// Parse decodes a raw JSON snapshot document.
func Parse(data []byte) (Snapshot, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.ParseError("snapshot", err)
	}
	return Normalize(raw), nil
}

// Normalize coerces an untyped section map into a Snapshot. The engine sits
// downstream of an untrusted fetch layer, so malformed sections degrade to
// empty item lists instead of propagating a fault:
//
//   - a bare array keeps its object elements and drops the rest
//   - the REST envelope shapes {"data": [...]} and {"list": [...]} are unwrapped
//   - anything else becomes an empty section
func Normalize(raw map[string]interface{}) Snapshot {
	snap := make(Snapshot, len(raw))
	for section, value := range raw {
		snap[section] = normalizeSection(value)
	}
	return snap
}

func normalizeSection(value interface{}) []Item {
	list, ok := value.([]interface{})
	if !ok {
		if envelope, isMap := value.(map[string]interface{}); isMap {
			list = unwrapEnvelope(envelope)
		}
	}

	items := make([]Item, 0, len(list))
	for _, el := range list {
		if obj, isObj := el.(map[string]interface{}); isObj {
			items = append(items, Item(obj))
		}
	}
	return items
}

func unwrapEnvelope(envelope map[string]interface{}) []interface{} {
	for _, key := range []string{"data", "list"} {
		if inner, ok := envelope[key].([]interface{}); ok {
			return inner
		}
	}
	return nil
}
