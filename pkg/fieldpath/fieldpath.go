// Package fieldpath resolves dotted field paths against untyped JSON objects.
package fieldpath

import "strings"

// Resolve walks a dotted path (e.g. "address.addressLine") through a nested
// map and returns the value it lands on. The second return value reports
// whether the full path resolved to a non-nil value; missing or nil
// intermediate segments short-circuit to (nil, false) rather than panicking.
//
// Array indexing is not supported: paths target flat or singly-nested object
// fields, which is all the controller configuration payloads use.
func Resolve(obj map[string]interface{}, path string) (interface{}, bool) {
	if obj == nil || path == "" {
		return nil, false
	}

	var current interface{} = obj
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok || current == nil {
			return nil, false
		}
	}
	return current, true
}

// Flatten returns the dotted paths of every leaf value reachable from obj.
// Nested maps are descended into; arrays and scalars are leaves. The result
// order is unspecified.
func Flatten(obj map[string]interface{}) []string {
	var paths []string
	flattenInto(obj, "", &paths)
	return paths
}

func flattenInto(obj map[string]interface{}, prefix string, paths *[]string) {
	for key, value := range obj {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok && len(nested) > 0 {
			flattenInto(nested, path, paths)
			continue
		}
		*paths = append(*paths, path)
	}
}

// LastSegment returns the final component of a dotted path. Ignored and
// important field sets are keyed on this segment, not the full path.
func LastSegment(path string) string {
	if idx := strings.LastIndex(path, "."); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
