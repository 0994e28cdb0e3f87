package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlantools/wlcdiff/pkg/policy"
	"github.com/wlantools/wlcdiff/pkg/snapshot"
)

func testMatcher(t *testing.T) *Matcher {
	t.Helper()
	return New(policy.Default())
}

func countByType(records []Record) map[MatchType]int {
	counts := make(map[MatchType]int)
	for _, r := range records {
		counts[r.MatchType]++
	}
	return counts
}

func TestMatch_ExactRename(t *testing.T) {
	m := testMatcher(t)

	source := []snapshot.Item{{"name": "Lobby WLAN", "ssid": "Lobby"}}
	dest := []snapshot.Item{{"name": "Lobby-WLAN", "ssid": "Lobby"}}

	records := m.Match(source, dest, "wlans", policy.DefaultThreshold)

	require.Len(t, records, 1)
	assert.Equal(t, MatchTypeMatched, records[0].MatchType)
	assert.GreaterOrEqual(t, records[0].Score, 0.5)
	assert.NotNil(t, records[0].Source)
	assert.NotNil(t, records[0].Dest)
}

func TestMatch_NoCorrespondence(t *testing.T) {
	m := testMatcher(t)

	source := []snapshot.Item{{"name": "Pool Area"}}
	dest := []snapshot.Item{{"name": "Parking Garage"}}

	records := m.Match(source, dest, "venues", 0.5)

	require.Len(t, records, 2)
	counts := countByType(records)
	assert.Equal(t, 1, counts[MatchTypeSourceOnly])
	assert.Equal(t, 1, counts[MatchTypeDestOnly])
	assert.Equal(t, 0, counts[MatchTypeMatched])

	for _, r := range records {
		assert.Equal(t, 0.0, r.Score)
	}
}

func TestMatch_EmptySides(t *testing.T) {
	m := testMatcher(t)

	dest := []snapshot.Item{{"name": "A"}, {"name": "B"}}
	records := m.Match(nil, dest, "wlans", 0.5)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, MatchTypeDestOnly, r.MatchType)
		assert.Nil(t, r.Source)
	}

	source := []snapshot.Item{{"name": "A"}}
	records = m.Match(source, nil, "wlans", 0.5)
	require.Len(t, records, 1)
	assert.Equal(t, MatchTypeSourceOnly, records[0].MatchType)
	assert.Nil(t, records[0].Dest)
}

func TestMatch_IdenticalCollections(t *testing.T) {
	m := testMatcher(t)

	items := []snapshot.Item{
		{"name": "Guest", "ssid": "Guest"},
		{"name": "Corp", "ssid": "Corp-Secure"},
		{"name": "IoT", "ssid": "IoT-Net"},
	}

	records := m.Match(items, items, "wlans", 0.5)

	require.Len(t, records, 3)
	for _, r := range records {
		assert.Equal(t, MatchTypeMatched, r.MatchType)
		assert.Equal(t, 1.0, r.Score)
	}
}

func TestMatch_DestinationClaimedOnce(t *testing.T) {
	m := testMatcher(t)

	// Both source items are closest to the same destination; only the first
	// may claim it.
	source := []snapshot.Item{
		{"name": "Guest", "ssid": "Guest"},
		{"name": "Guest", "ssid": "Guest"},
	}
	dest := []snapshot.Item{{"name": "Guest", "ssid": "Guest"}}

	records := m.Match(source, dest, "wlans", 0.5)

	counts := countByType(records)
	assert.Equal(t, 1, counts[MatchTypeMatched])
	assert.Equal(t, 1, counts[MatchTypeSourceOnly])
	assert.Equal(t, 0, counts[MatchTypeDestOnly])
}

func TestMatch_FirstSeenWinsTies(t *testing.T) {
	m := testMatcher(t)

	source := []snapshot.Item{{"name": "Guest", "ssid": "Guest"}}
	dest := []snapshot.Item{
		{"name": "Guest", "ssid": "Guest", "marker": "first"},
		{"name": "Guest", "ssid": "Guest", "marker": "second"},
	}

	records := m.Match(source, dest, "wlans", 0.5)

	require.Equal(t, MatchTypeMatched, records[0].MatchType)
	assert.Equal(t, "first", records[0].Dest["marker"])
}

func TestMatch_PartitionCompleteness(t *testing.T) {
	m := testMatcher(t)

	source := []snapshot.Item{
		{"name": "Guest", "ssid": "Guest"},
		{"name": "Corp", "ssid": "Corp"},
		{"name": "Legacy", "ssid": "Old-Net"},
	}
	dest := []snapshot.Item{
		{"name": "Guest", "ssid": "Guest"},
		{"name": "Corporate", "ssid": "Corp"},
	}

	records := m.Match(source, dest, "wlans", 0.5)
	counts := countByType(records)

	assert.Equal(t, len(source), counts[MatchTypeMatched]+counts[MatchTypeSourceOnly])
	assert.Equal(t, len(dest), counts[MatchTypeMatched]+counts[MatchTypeDestOnly])
}

func TestMatch_ThresholdMonotonicity(t *testing.T) {
	m := testMatcher(t)

	source := []snapshot.Item{
		{"name": "Lobby WLAN", "ssid": "Lobby"},
		{"name": "Guest Network", "ssid": "Guest"},
	}
	dest := []snapshot.Item{
		{"name": "Lobby-WLAN", "ssid": "Lobby"},
		{"name": "Visitors", "ssid": "Visitors-5G"},
	}

	prevMatched := len(source) + 1
	for _, threshold := range []float64{0.1, 0.3, 0.5, 0.7, 0.9, 1.0} {
		records := m.Match(source, dest, "wlans", threshold)
		matched := countByType(records)[MatchTypeMatched]
		assert.LessOrEqual(t, matched, prevMatched, "threshold %v", threshold)
		prevMatched = matched
	}
}

func TestMatch_RecordOrdering(t *testing.T) {
	m := testMatcher(t)

	source := []snapshot.Item{
		{"name": "Lobby WLAN", "ssid": "Lobby"}, // fuzzy match, score < 1
		{"name": "Orphan", "ssid": "Orphan"},    // source-only
		{"name": "Guest", "ssid": "Guest"},      // exact match, score 1
	}
	dest := []snapshot.Item{
		{"name": "Lobby-WLAN", "ssid": "Lobby"},
		{"name": "Guest", "ssid": "Guest"},
		{"name": "Extra", "ssid": "Extra-Net"}, // dest-only
	}

	records := m.Match(source, dest, "wlans", 0.5)
	require.Len(t, records, 4)

	// Matched first, descending score, then source-only, then dest-only.
	assert.Equal(t, MatchTypeMatched, records[0].MatchType)
	assert.Equal(t, 1.0, records[0].Score)
	assert.Equal(t, MatchTypeMatched, records[1].MatchType)
	assert.Less(t, records[1].Score, 1.0)
	assert.Equal(t, MatchTypeSourceOnly, records[2].MatchType)
	assert.Equal(t, MatchTypeDestOnly, records[3].MatchType)
}

func TestMatch_UnconfiguredSectionMatchesOnName(t *testing.T) {
	m := testMatcher(t)

	source := []snapshot.Item{{"name": "profile-1", "lease": float64(86400)}}
	dest := []snapshot.Item{{"name": "profile-1", "lease": float64(3600)}}

	records := m.Match(source, dest, "dhcpProfiles", 0.5)

	require.Len(t, records, 1)
	assert.Equal(t, MatchTypeMatched, records[0].MatchType)
	assert.Equal(t, 1.0, records[0].Score)
}

func TestMatch_ZeroThresholdForcesPairing(t *testing.T) {
	m := testMatcher(t)

	// Callers should never pass 0 in production; the degenerate behavior is
	// still well defined: every source item claims some destination while
	// any remain.
	source := []snapshot.Item{{"name": "Alpha"}, {"name": "Beta"}}
	dest := []snapshot.Item{{"name": "Wholly Unrelated"}}

	records := m.Match(source, dest, "venues", 0)
	counts := countByType(records)

	assert.Equal(t, 1, counts[MatchTypeMatched])
	assert.Equal(t, 1, counts[MatchTypeSourceOnly])
	assert.Equal(t, 0, counts[MatchTypeDestOnly])
}

func TestMatch_DoesNotMutateInputs(t *testing.T) {
	m := testMatcher(t)

	source := []snapshot.Item{{"name": "Guest", "ssid": "Guest"}}
	dest := []snapshot.Item{{"name": "Guest", "ssid": "Guest"}}

	m.Match(source, dest, "wlans", 0.5)

	assert.Equal(t, snapshot.Item{"name": "Guest", "ssid": "Guest"}, source[0])
	assert.Equal(t, snapshot.Item{"name": "Guest", "ssid": "Guest"}, dest[0])
}
