package store

import (
	"fmt"
	"strings"
	"time"
)

// ReminderLayout is the time.Format layout of a reminder.
const ReminderLayout = "15:04"

// Task is a single to-do entry. Text is its identity.
type Task struct {
	Text     string
	Reminder string // "HH:MM", or empty when disarmed
}

// Armed reports whether the task has an active reminder.
func (t Task) Armed() bool {
	return t.Reminder != ""
}

// ParseReminder validates s as a 24-hour HH:MM time and returns it trimmed.
// Both fields must be two digits.
func ParseReminder(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) != 5 || s[2] != ':' {
		return "", fmt.Errorf("reminder %q is not HH:MM", s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return "", fmt.Errorf("reminder %q is not HH:MM", s)
		}
	}

	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 {
		return "", fmt.Errorf("reminder %q: hour out of range", s)
	}
	if minute > 59 {
		return "", fmt.Errorf("reminder %q: minute out of range", s)
	}
	return s, nil
}

// ReminderAt formats t as a reminder string, truncated to the minute.
func ReminderAt(t time.Time) string {
	return t.Format(ReminderLayout)
}

func normalizeText(text string) string {
	return strings.TrimSpace(text)
}
