package tui

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains all key bindings for the list view.
type Keymap struct {
	// Navigation
	Up     Key
	Down   Key
	Top    Key
	Bottom Key

	// Task actions
	AddTask       Key
	EditTask      Key
	DeleteTask    Key
	SetReminder   Key
	ClearReminder Key
	CopyTask      Key

	// Other
	Ringtone    Key
	ToggleClock Key
	Help        Key
	Quit        Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Top:    Key{Key: "g", Help: "top (gg)"},
		Bottom: Key{Key: "G", Help: "bottom"},

		AddTask:       Key{Key: "a", Help: "add task"},
		EditTask:      Key{Key: "e", Help: "edit task"},
		DeleteTask:    Key{Key: "d", Help: "delete (dd)"},
		SetReminder:   Key{Key: "r", Help: "set reminder"},
		ClearReminder: Key{Key: "x", Help: "done / clear reminder"},
		CopyTask:      Key{Key: "y", Help: "copy (yy)"},

		Ringtone:    Key{Key: "R", Help: "choose ringtone"},
		ToggleClock: Key{Key: "c", Help: "toggle big clock"},
		Help:        Key{Key: "?", Help: "help"},
		Quit:        Key{Key: "q", Help: "quit"},
	}
}

// KeyState tracks multi-key sequences (like 'gg' or 'dd' or 'yy').
// With Vim off, 'd' and 'y' act on the first press and 'g' jumps to top.
type KeyState struct {
	Vim      bool
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingD bool // Waiting for second 'd' in 'dd'
	WaitingY bool // Waiting for second 'y' in 'yy'
}

// HandleKey processes a key press in the list view and returns the action
// to take. Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, km Keymap) (string, bool) {
	key := msg.String()

	if ks.Vim {
		if ks.WaitingG {
			ks.WaitingG = false
			if key == km.Top.Key {
				return "top", true
			}
		}
		if ks.WaitingD {
			ks.WaitingD = false
			if key == km.DeleteTask.Key {
				return "delete", true
			}
		}
		if ks.WaitingY {
			ks.WaitingY = false
			if key == km.CopyTask.Key {
				return "copy", true
			}
		}

		switch key {
		case km.Top.Key:
			ks.WaitingG = true
			return "", true // Key consumed, waiting for next
		case km.DeleteTask.Key:
			ks.WaitingD = true
			return "", true
		case km.CopyTask.Key:
			ks.WaitingY = true
			return "", true
		}
	}

	// Single key mappings
	switch key {
	case km.Up.Key, "up":
		return "up", true
	case km.Down.Key, "down":
		return "down", true
	case km.Top.Key, "home":
		return "top", true
	case km.Bottom.Key, "end":
		return "bottom", true
	case km.AddTask.Key:
		return "add", true
	case km.EditTask.Key, "enter":
		return "edit", true
	case km.DeleteTask.Key, "delete":
		return "delete", true
	case km.SetReminder.Key:
		return "reminder", true
	case km.ClearReminder.Key, " ":
		return "clear_reminder", true
	case km.CopyTask.Key:
		return "copy", true
	case km.Ringtone.Key:
		return "ringtone", true
	case km.ToggleClock.Key:
		return "toggle_clock", true
	case km.Help.Key:
		return "help", true
	case km.Quit.Key, "ctrl+c":
		return "quit", true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingD = false
	ks.WaitingY = false
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k Keymap) HelpItems() [][]string {
	return [][]string{
		{"Navigation", ""},
		{k.Up.Key + "/" + k.Down.Key, "Move up/down"},
		{"gg/" + k.Bottom.Key, "Go to top/bottom"},
		{"", ""},
		{"Task Actions", ""},
		{k.AddTask.Key, "Add new task"},
		{k.EditTask.Key + "/enter", "Edit task and reminder"},
		{"dd", "Delete task"},
		{k.SetReminder.Key, "Set reminder (HH:MM, empty clears)"},
		{k.ClearReminder.Key + "/space", "Done: clear reminder"},
		{"yy", "Copy task to clipboard"},
		{"", ""},
		{"Forms", ""},
		{"tab", "Next field"},
		{"enter", "Save"},
		{"esc", "Cancel"},
		{"", ""},
		{"General", ""},
		{k.Ringtone.Key, "Choose ringtone file"},
		{k.ToggleClock.Key, "Toggle big clock"},
		{k.Help.Key, "Toggle help"},
		{k.Quit.Key, "Quit"},
	}
}
