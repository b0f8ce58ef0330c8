// Package metrics provides pure typing metric calculations.
package metrics

import "math"

// CharsPerWord is the standard typing-test convention of 5 characters per word.
const CharsPerWord = 5

// WPM computes words per minute from correct characters and duration.
// Non-positive durations yield 0.
func WPM(correctChars int, durationMs int64) int {
	if durationMs <= 0 {
		return 0
	}
	minutes := float64(durationMs) / 60000.0
	words := float64(correctChars) / CharsPerWord
	return int(math.Round(words / minutes))
}

// Accuracy computes the percentage of correct characters over all accepted
// keystrokes. Non-positive keystroke counts yield 0. Callers displaying live
// stats before any input should branch to 100 themselves; this is the
// terminal form.
func Accuracy(correctChars, totalKeystrokes int) int {
	if totalKeystrokes <= 0 {
		return 0
	}
	return int(math.Round(float64(correctChars) / float64(totalKeystrokes) * 100))
}
