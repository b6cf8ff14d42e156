// Package utils provides shared utility functions for the TUI.
package utils

import (
	"strconv"

	"github.com/mattn/go-runewidth"
)

// TruncateString truncates a string to the given width, appending "…" if truncated.
// It handles wide characters correctly using runewidth.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) <= maxLen {
		return s
	}

	// Iterate by runes to find cut point
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxLen-1 { // -1 for ellipsis
			return s[:i] + "…"
		}
		w += rw
	}

	return s
}

// MinutesUntil returns how many minutes after now the reminder time falls,
// wrapping past midnight. Both arguments are HH:MM; -1 means unparsable.
func MinutesUntil(now, reminder string) int {
	n, ok1 := minuteOfDay(now)
	r, ok2 := minuteOfDay(reminder)
	if !ok1 || !ok2 {
		return -1
	}
	return (r - n + 24*60) % (24 * 60)
}

func minuteOfDay(hhmm string) (int, bool) {
	if len(hhmm) != 5 || hhmm[2] != ':' {
		return 0, false
	}
	h, err := strconv.Atoi(hhmm[:2])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(hhmm[3:])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}
