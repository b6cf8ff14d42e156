// Package reminder finds tasks whose reminder matches the current minute.
//
// A reminder fires at most once: after a task is reported due the scanner
// disarms it, so a second scan within the same minute reports nothing.
package reminder

import (
	"time"

	"github.com/hy4ri/todo-reminder/internal/store"
	"github.com/rs/zerolog"
)

// Clock is the scanner's time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// Due reports that a task's reminder time has been reached.
type Due struct {
	Text string
	At   string // HH:MM the reminder was set for
}

// Scanner checks a store's armed tasks against a clock.
type Scanner struct {
	store *store.Store
	clock Clock
	log   zerolog.Logger
}

// NewScanner creates a scanner over s. A nil clock means SystemClock.
func NewScanner(s *store.Store, clock Clock, logger zerolog.Logger) *Scanner {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scanner{
		store: s,
		clock: clock,
		log:   logger.With().Str("component", "reminder").Logger(),
	}
}

// Now returns the scanner clock's current HH:MM.
func (sc *Scanner) Now() string {
	return store.ReminderAt(sc.clock.Now())
}

// Scan checks reminders against the scanner's clock.
func (sc *Scanner) Scan() []Due {
	return sc.ScanAt(sc.clock.Now())
}

// ScanAt returns every task whose reminder equals t's HH:MM, in list order,
// and disarms each one. A failure to persist the disarm is logged; the task
// is still reported.
func (sc *Scanner) ScanAt(t time.Time) []Due {
	now := store.ReminderAt(t)

	var due []Due
	for _, task := range sc.store.Armed() {
		if task.Reminder != now {
			continue
		}
		due = append(due, Due{Text: task.Text, At: task.Reminder})
	}

	for _, d := range due {
		if err := sc.store.ClearReminder(d.Text); err != nil {
			sc.log.Warn().Err(err).Str("task", d.Text).Msg("fired reminder not persisted as cleared")
		}
	}

	sc.log.Debug().Str("now", now).Int("due", len(due)).Msg("scanned reminders")
	return due
}
