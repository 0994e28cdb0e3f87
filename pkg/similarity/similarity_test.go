package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDice_Identity(t *testing.T) {
	for _, s := range []string{"ab", "Lobby WLAN", "a", "", "日本語"} {
		assert.Equal(t, 1.0, Dice(s, s), "Dice(%q, %q)", s, s)
	}
}

func TestDice_TooShort(t *testing.T) {
	assert.Equal(t, 0.0, Dice("a", "ab"))
	assert.Equal(t, 0.0, Dice("ab", "b"))
	assert.Equal(t, 0.0, Dice("", "ab"))
	assert.Equal(t, 0.0, Dice("a", "b"))
}

func TestDice_KnownValues(t *testing.T) {
	tests := []struct {
		a, b     string
		expected float64
	}{
		// Classic example: shared bigram "ht" out of 4+4.
		{"night", "nacht", 0.25},
		// One-character rename keeps most bigrams.
		{"lobby wlan", "lobby-wlan", 14.0 / 18.0},
		// No overlap at all.
		{"abcd", "wxyz", 0.0},
		// Repeated bigrams count at most min(occurrences) times.
		{"aaaa", "aab", 0.4},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, Dice(tt.a, tt.b), 1e-9, "Dice(%q, %q)", tt.a, tt.b)
	}
}

func TestDice_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"night", "nacht"},
		{"Pool Area", "Parking Garage"},
		{"aaaa", "aab"},
		{"Lobby WLAN", "Lobby-WLAN"},
		{"", "xy"},
	}

	for _, p := range pairs {
		assert.Equal(t, Dice(p[0], p[1]), Dice(p[1], p[0]), "Dice(%q, %q)", p[0], p[1])
	}
}

func TestDice_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"aaaa", "aa"},
		{"aaaaaaaa", "aaab"},
		{"night", "nacht"},
		{"Guest Network", "Guest-Network-5G"},
	}

	for _, p := range pairs {
		score := Dice(p[0], p[1])
		assert.GreaterOrEqual(t, score, 0.0, "Dice(%q, %q)", p[0], p[1])
		assert.LessOrEqual(t, score, 1.0, "Dice(%q, %q)", p[0], p[1])
	}
}

func TestDice_MultiByte(t *testing.T) {
	// Bigrams are rune pairs, not byte pairs.
	assert.Equal(t, 1.0, Dice("日本語", "日本語"))
	assert.Greater(t, Dice("日本語テスト", "日本語"), 0.0)
}
