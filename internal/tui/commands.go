package tui

import (
	"fmt"
	"strings"

	"github.com/hy4ri/todo-reminder/internal/alert"
	"github.com/hy4ri/todo-reminder/internal/store"
)

// Result is the outcome of a user command, rendered in the status bar.
type Result struct {
	Message string
	Err     error
}

// Failed reports whether the command did not succeed.
func (r Result) Failed() bool {
	return r.Err != nil
}

func ok(format string, args ...interface{}) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

func failed(err error) Result {
	if se, isStore := store.AsError(err); isStore {
		return Result{Message: se.Message(), Err: err}
	}
	return Result{Message: err.Error(), Err: err}
}

// addTask inserts a task, optionally armed.
func addTask(s *store.Store, text, reminder string) Result {
	if err := s.Add(text, reminder); err != nil {
		return failed(err)
	}
	text = strings.TrimSpace(text)
	if r := strings.TrimSpace(reminder); r != "" {
		return ok("Added '%s' with reminder at %s", text, r)
	}
	return ok("Added '%s'", text)
}

// renameTask replaces a task's text and reminder with the edited values.
// The edit form is prefilled with the current reminder, so leaving it alone
// keeps it and clearing the field disarms the task.
func renameTask(s *store.Store, oldText, newText, reminder string) Result {
	if err := s.Rename(oldText, newText, &reminder); err != nil {
		return failed(err)
	}
	return ok("Updated '%s'", strings.TrimSpace(newText))
}

// removeTask deletes a task.
func removeTask(s *store.Store, text string) Result {
	if err := s.Remove(text); err != nil {
		return failed(err)
	}
	return ok("Removed '%s'", text)
}

// setReminder arms a task; a blank time clears the reminder instead.
func setReminder(s *store.Store, text, at string) Result {
	if strings.TrimSpace(at) == "" {
		return clearReminder(s, text)
	}
	if err := s.SetReminder(text, at); err != nil {
		return failed(err)
	}
	return ok("Reminder for '%s' set at %s", text, strings.TrimSpace(at))
}

// clearReminder disarms a task.
func clearReminder(s *store.Store, text string) Result {
	task, found := s.Get(text)
	if err := s.ClearReminder(text); err != nil {
		return failed(err)
	}
	if !found || !task.Armed() {
		return ok("No reminder set for '%s'", text)
	}
	return ok("Reminder for '%s' turned off", text)
}

// chooseRingtone loads an audio file for reminders; a blank path selects the beep.
func chooseRingtone(p *alert.Player, path string) Result {
	path = strings.TrimSpace(path)
	if err := p.Load(path); err != nil {
		return failed(err)
	}
	if path == "" {
		return ok("Ringtone cleared; reminders will beep")
	}
	return ok("Ringtone set to %s", path)
}
