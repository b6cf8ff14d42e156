package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// CorruptSuffix is appended to the path of a task file that failed to load.
const CorruptSuffix = ".corrupt"

// Load builds a store from the file at path. A missing file gives an empty
// store. An unreadable file also gives an empty store, and a corrupt one is
// first copied to path+CorruptSuffix. The error is kept in LoadErr.
func Load(path string, logger zerolog.Logger) *Store {
	s := New(path, logger)

	tasks, err := ReadFile(path)
	if err != nil {
		s.loadErr = err
		s.log.Warn().Err(err).Str("path", path).Msg("starting with an empty task list")
		switch {
		case IsKind(err, CorruptFile):
			if berr := backupCorrupt(path); berr != nil {
				s.fileAtRisk = true
				s.log.Error().Err(berr).Str("path", path).Msg("failed to back up corrupt task file")
			}
		default:
			s.fileAtRisk = true
		}
		return s
	}

	for _, t := range tasks {
		text := normalizeText(t.Text)
		if text == "" {
			continue
		}
		if _, dup := s.tasks[text]; dup {
			s.log.Warn().Str("task", text).Msg("duplicate task in file, keeping the first")
			continue
		}

		reminder := ""
		if normalizeText(t.Reminder) != "" {
			r, err := ParseReminder(t.Reminder)
			if err != nil {
				s.log.Warn().Err(err).Str("task", text).Msg("invalid reminder in file, loading disarmed")
			} else {
				reminder = r
			}
		}

		s.tasks[text] = reminder
		s.order = append(s.order, text)
	}

	s.log.Info().Str("path", path).Int("tasks", len(s.order)).Msg("tasks loaded")
	return s
}

// ReadFile decodes the task file at path in file order. A missing file
// yields no tasks and no error. Reminders are returned as stored.
func ReadFile(path string) ([]Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, newError(IOError, "", fmt.Errorf("failed to read task file: %w", err))
	}

	tasks, err := decode(data)
	if err != nil {
		return nil, newError(CorruptFile, "", err)
	}
	return tasks, nil
}

// WriteFile overwrites path with tasks in canonical form:
// a single object mapping task text to "HH:MM" or "".
func WriteFile(path string, tasks []Task) error {
	data, err := encode(tasks)
	if err != nil {
		return newError(IOError, "", fmt.Errorf("failed to serialize tasks: %w", err))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return newError(IOError, "", fmt.Errorf("failed to write task file: %w", err))
	}
	return nil
}

func decode(data []byte) ([]Task, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse task file: %w", err)
	}
	if err := fileSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("task file does not match schema: %w", err)
	}

	obj, ok := doc.(map[string]interface{})
	if !ok {
		return nil, errors.New("task file is not a JSON object")
	}
	keys, err := objectKeys(data)
	if err != nil {
		return nil, err
	}

	tasks := make([]Task, 0, len(keys))
	for _, key := range keys {
		tasks = append(tasks, Task{Text: key, Reminder: reminderValue(obj[key])})
	}
	return tasks, nil
}

// reminderValue reads a value in canonical form (string or null) or in the
// legacy {"task_text", "reminder_time"} object form.
func reminderValue(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case map[string]interface{}:
		if r, ok := v["reminder_time"].(string); ok {
			return r
		}
	}
	return ""
}

// objectKeys returns the top-level keys of a JSON object in document order,
// each once.
func objectKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("task file is not a JSON object")
	}

	seen := make(map[string]bool)
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read task key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, fmt.Errorf("failed to read value of %q: %w", key, err)
		}

		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func encode(tasks []Task) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, t := range tasks {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n    ")
		if err := writeString(&buf, t.Text); err != nil {
			return nil, err
		}
		buf.WriteString(": ")
		if err := writeString(&buf, t.Reminder); err != nil {
			return nil, err
		}
	}
	if len(tasks) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func writeString(w *bytes.Buffer, s string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates with a newline.
	w.Truncate(w.Len() - 1)
	return nil
}

func backupCorrupt(path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path + CorruptSuffix)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
