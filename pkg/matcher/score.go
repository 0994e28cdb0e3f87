package matcher

import (
	"reflect"
	"strings"

	"github.com/wlantools/wlcdiff/pkg/fieldpath"
	"github.com/wlantools/wlcdiff/pkg/similarity"
	"github.com/wlantools/wlcdiff/pkg/snapshot"
)

// ItemScore computes a similarity in [0,1] between two items over the given
// matching fields.
//
// Per-field contributions: a field absent on both sides is excluded from the
// denominator entirely (mutual absence is no evidence either way). Otherwise
// the field counts toward the denominator and contributes 1 for strict
// equality, a graded case-insensitive bigram similarity for two strings, and
// 0 for everything else (type mismatches included).
//
// Items with no comparable signal score 0: a nil item, or every matching
// field absent on both sides.
func ItemScore(a, b snapshot.Item, fields []string) float64 {
	if a == nil || b == nil {
		return 0
	}

	var score float64
	var totalFields int

	for _, field := range fields {
		va, oka := fieldpath.Resolve(a, field)
		vb, okb := fieldpath.Resolve(b, field)

		if !oka && !okb {
			continue
		}
		totalFields++

		switch {
		case oka && okb && strictEqual(va, vb):
			score++
		case oka && okb:
			sa, isStrA := va.(string)
			sb, isStrB := vb.(string)
			if isStrA && isStrB {
				score += similarity.Dice(strings.ToLower(sa), strings.ToLower(sb))
			}
		}
	}

	if totalFields == 0 {
		return 0
	}
	return score / float64(totalFields)
}

// strictEqual compares two resolved field values. Scalars compare by value;
// composite values (maps, slices) are never strictly equal here — structural
// comparison of nested objects is the field diff's job, not the scorer's.
func strictEqual(a, b interface{}) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}
