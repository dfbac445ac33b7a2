// Package exercises holds small standalone string exercises.
package exercises

import "countup/internal/logging"

// ShiftCharacters replaces every character with the one whose code point
// follows it. There is no wraparound: 'z' becomes '{' and 'Z' becomes '['.
func ShiftCharacters(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, r+1)
	}
	return string(out)
}

// GenerateString returns the first three characters followed by the last
// three. Strings shorter than three characters are returned unchanged.
func GenerateString(s string) string {
	runes := []rune(s)
	if len(runes) < 3 {
		return s
	}
	return string(runes[:3]) + string(runes[len(runes)-3:])
}

// Frequency bounds accepted by CountFreq.
const (
	MinFreq = 2
	MaxFreq = 4
)

// CountFreq reports whether ch occurs in s between MinFreq and MaxFreq
// times inclusive.
func CountFreq(s string, ch rune) bool {
	freq := make(map[rune]int)
	for _, r := range s {
		freq[r]++
	}
	n := freq[ch]
	logging.Get(logging.CategoryExercises).Debug("count_freq %q in %q = %d", ch, s, n)
	return n >= MinFreq && n <= MaxFreq
}
