// Package store holds the to-do list: task text mapped to an optional
// reminder, kept in insertion order and mirrored to a JSON file on every
// mutation.
package store

import (
	"github.com/rs/zerolog"
)

// Store is the in-memory task list bound to its file.
// It is not safe for concurrent use; callers serialize access.
type Store struct {
	path  string
	log   zerolog.Logger
	order []string
	tasks map[string]string // text -> reminder

	loadErr error
	// set when the file holds tasks that were neither loaded nor backed up
	fileAtRisk bool
}

// New returns an empty store that persists to path.
func New(path string, logger zerolog.Logger) *Store {
	return &Store{
		path:  path,
		log:   logger.With().Str("component", "store").Logger(),
		tasks: make(map[string]string),
	}
}

// Path returns the file the store persists to.
func (s *Store) Path() string {
	return s.path
}

// LoadErr returns the error recovered from while loading, if any.
func (s *Store) LoadErr() error {
	return s.loadErr
}

// FileAtRisk reports whether the file on disk still holds tasks this store
// never loaded and that exist nowhere else. Writing the store would lose them.
func (s *Store) FileAtRisk() bool {
	return s.fileAtRisk
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.order)
}

// Get looks up a task by its text.
func (s *Store) Get(text string) (Task, bool) {
	text = normalizeText(text)
	reminder, ok := s.tasks[text]
	if !ok {
		return Task{}, false
	}
	return Task{Text: text, Reminder: reminder}, true
}

// Tasks returns a copy of all tasks in list order.
func (s *Store) Tasks() []Task {
	out := make([]Task, 0, len(s.order))
	for _, text := range s.order {
		out = append(out, Task{Text: text, Reminder: s.tasks[text]})
	}
	return out
}

// Armed returns the tasks that currently have a reminder, in list order.
func (s *Store) Armed() []Task {
	var out []Task
	for _, text := range s.order {
		if r := s.tasks[text]; r != "" {
			out = append(out, Task{Text: text, Reminder: r})
		}
	}
	return out
}

// Add inserts a new task. An empty reminder leaves the task disarmed.
func (s *Store) Add(text, reminder string) error {
	text = normalizeText(text)
	if text == "" {
		return newError(EmptyInput, "", nil)
	}
	if _, exists := s.tasks[text]; exists {
		return newError(DuplicateTask, text, nil)
	}

	r, err := optionalReminder(text, reminder)
	if err != nil {
		return err
	}

	s.tasks[text] = r
	s.order = append(s.order, text)
	s.log.Debug().Str("task", text).Str("reminder", r).Msg("task added")
	return s.persist()
}

// Rename changes a task's text in place, keeping its list position.
// A nil reminder keeps the current one; otherwise *reminder replaces it and
// an empty string disarms the task.
func (s *Store) Rename(oldText, newText string, reminder *string) error {
	oldText = normalizeText(oldText)
	newText = normalizeText(newText)

	current, ok := s.tasks[oldText]
	if !ok {
		return newError(TaskNotFound, oldText, nil)
	}
	if newText == "" {
		return newError(EmptyInput, "", nil)
	}
	if newText != oldText {
		if _, exists := s.tasks[newText]; exists {
			return newError(DuplicateTask, newText, nil)
		}
	}

	next := current
	if reminder != nil {
		r, err := optionalReminder(newText, *reminder)
		if err != nil {
			return err
		}
		next = r
	}

	delete(s.tasks, oldText)
	s.tasks[newText] = next
	for i, text := range s.order {
		if text == oldText {
			s.order[i] = newText
			break
		}
	}
	s.log.Debug().Str("from", oldText).Str("to", newText).Str("reminder", next).Msg("task renamed")
	return s.persist()
}

// Remove deletes a task.
func (s *Store) Remove(text string) error {
	text = normalizeText(text)
	if _, ok := s.tasks[text]; !ok {
		return newError(TaskNotFound, text, nil)
	}

	delete(s.tasks, text)
	for i, t := range s.order {
		if t == text {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.log.Debug().Str("task", text).Msg("task removed")
	return s.persist()
}

// SetReminder arms a task at the given HH:MM time.
func (s *Store) SetReminder(text, at string) error {
	text = normalizeText(text)
	if _, ok := s.tasks[text]; !ok {
		return newError(TaskNotFound, text, nil)
	}
	r, err := ParseReminder(at)
	if err != nil {
		return newError(InvalidTimeFormat, text, err)
	}

	s.tasks[text] = r
	s.log.Debug().Str("task", text).Str("reminder", r).Msg("reminder set")
	return s.persist()
}

// ClearReminder disarms a task. Unknown tasks are ignored.
func (s *Store) ClearReminder(text string) error {
	text = normalizeText(text)
	r, ok := s.tasks[text]
	if !ok || r == "" {
		return nil
	}

	s.tasks[text] = ""
	s.log.Debug().Str("task", text).Msg("reminder cleared")
	return s.persist()
}

// Save writes every task to the store's file.
func (s *Store) Save() error {
	return WriteFile(s.path, s.Tasks())
}

// persist saves after a mutation. The in-memory change stands either way.
func (s *Store) persist() error {
	if err := s.Save(); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("failed to save tasks")
		return err
	}
	return nil
}

func optionalReminder(text, reminder string) (string, error) {
	if normalizeText(reminder) == "" {
		return "", nil
	}
	r, err := ParseReminder(reminder)
	if err != nil {
		return "", newError(InvalidTimeFormat, text, err)
	}
	return r, nil
}
