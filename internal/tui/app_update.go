package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-reminder/internal/store"
	"github.com/hy4ri/todo-reminder/internal/tui/components"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a, a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.SetSize(msg.Width, msg.Height)
		a.clock.SetSize(msg.Width, msg.Height)
		return a, nil

	case reminderTickMsg:
		// Always schedule the next check
		return a, tea.Batch(reminderTickCmd(a.config.Reminder.Interval), a.checkReminders(time.Time(msg)))

	case scanNowMsg:
		return a, a.checkReminders(time.Time(msg))

	case resultMsg:
		a.status = msg.result
		return a, nil

	case alertFailedMsg:
		a.status = Result{Message: "Reminder alert failed: " + msg.err.Error(), Err: msg.err}
		return a, nil

	case components.CloseRequestMsg:
		a.mode = ModeList
		return a, nil
	}

	// Let the focused input consume anything else (cursor blink).
	if a.form != nil {
		return a, a.form.update(msg)
	}
	return a, nil
}

// checkReminders runs the scan for t and raises whatever came due.
func (a *App) checkReminders(t time.Time) tea.Cmd {
	dues := a.scanner.ScanAt(t)
	if len(dues) == 0 {
		return nil
	}

	for _, d := range dues {
		a.log.Info().Str("task", d.Text).Str("at", d.At).Msg("reminder due")
	}
	a.due = append(a.due, dues...)
	return a.fireCmd(dues)
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	// A due reminder blocks everything until acknowledged.
	if len(a.due) > 0 {
		switch msg.String() {
		case "enter", "esc", " ", "q":
			a.due = a.due[1:]
		}
		return nil
	}

	switch a.mode {
	case ModeHelp:
		_, cmd := a.help.Update(msg)
		return cmd
	case ModeAdd, ModeEdit, ModeReminder, ModeRingtone:
		return a.handleFormKey(msg)
	default:
		return a.handleListKey(msg)
	}
}

func (a *App) handleListKey(msg tea.KeyMsg) tea.Cmd {
	action, consumed := a.keyState.HandleKey(msg, a.keymap)
	if !consumed || action == "" {
		return nil
	}

	tasks := a.store.Tasks()
	selected, hasSelection := a.selectedTask(tasks)

	switch action {
	case "up":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down":
		if a.cursor < len(tasks)-1 {
			a.cursor++
		}
	case "top":
		a.cursor = 0
	case "bottom":
		a.cursor = max(len(tasks)-1, 0)

	case "add":
		a.openForm(ModeAdd, newForm("New Task", "").
			addInput("Task", "", "What needs doing?", 200).
			addInput("Reminder", "", "HH:MM (optional)", 5))

	case "edit":
		if !hasSelection {
			a.status = Result{Message: "Please select a task to edit!"}
			return nil
		}
		a.openForm(ModeEdit, newForm("Edit Task", selected.Text).
			addInput("Task", selected.Text, "", 200).
			addInput("Reminder", selected.Reminder, "HH:MM (empty for none)", 5))

	case "delete":
		if !hasSelection {
			a.status = Result{Message: "Please select a task to remove!"}
			return nil
		}
		a.status = removeTask(a.store, selected.Text)
		a.clampCursor()

	case "reminder":
		if !hasSelection {
			a.status = Result{Message: "Please select a task to set a reminder!"}
			return nil
		}
		a.openForm(ModeReminder, newForm("Set Reminder", selected.Text).
			addInput("Reminder for '"+selected.Text+"'", selected.Reminder, a.scanner.Now(), 5))

	case "clear_reminder":
		if !hasSelection {
			return nil
		}
		a.status = clearReminder(a.store, selected.Text)

	case "copy":
		if !hasSelection {
			return nil
		}
		return copyCmd(selected.Text)

	case "ringtone":
		a.openForm(ModeRingtone, newForm("Choose Ringtone", "").
			addInput("Audio file", a.player.Path(), "/path/to/ringtone.mp3 (empty to beep)", 4096))

	case "toggle_clock":
		a.clock.Toggle()

	case "help":
		a.mode = ModeHelp

	case "quit":
		return tea.Quit
	}

	return nil
}

func (a *App) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.closeForm()
		return nil
	case "tab", "down":
		a.form.move(1)
		return nil
	case "shift+tab", "up":
		a.form.move(-1)
		return nil
	case "enter":
		a.submitForm()
		return nil
	}
	return a.form.update(msg)
}

// submitForm runs the command for the open form. The form stays open on
// failure so the input can be corrected.
func (a *App) submitForm() {
	f := a.form
	var res Result
	selectAfter := ""

	switch a.mode {
	case ModeAdd:
		res = addTask(a.store, f.value(0), f.value(1))
		selectAfter = f.value(0)
	case ModeEdit:
		res = renameTask(a.store, f.target, f.value(0), f.value(1))
		selectAfter = f.value(0)
	case ModeReminder:
		res = setReminder(a.store, f.target, f.value(0))
	case ModeRingtone:
		res = chooseRingtone(a.player, f.value(0))
		if !res.Failed() {
			a.config.Reminder.Ringtone = a.player.Path()
			if err := a.saveRingtone(a.config.Reminder.Ringtone); err != nil {
				a.log.Warn().Err(err).Msg("failed to save ringtone to config")
				res.Message += " (not saved to config)"
			}
		}
	}

	a.status = res
	// A failed save still applied the change in memory; treat it as done.
	if res.Failed() && !store.IsKind(res.Err, store.IOError) {
		return
	}

	a.closeForm()
	if selectAfter != "" {
		a.selectText(selectAfter)
	}
}

func (a *App) openForm(mode Mode, f *form) {
	a.keyState.Reset()
	a.mode = mode
	a.form = f
}

func (a *App) closeForm() {
	a.mode = ModeList
	a.form = nil
}

func (a *App) selectedTask(tasks []store.Task) (store.Task, bool) {
	if a.cursor < 0 || a.cursor >= len(tasks) {
		return store.Task{}, false
	}
	return tasks[a.cursor], true
}

// selectText moves the cursor to the task with the given text.
func (a *App) selectText(text string) {
	text = strings.TrimSpace(text)
	for i, t := range a.store.Tasks() {
		if t.Text == text {
			a.cursor = i
			return
		}
	}
}

func (a *App) clampCursor() {
	if n := a.store.Len(); a.cursor >= n {
		a.cursor = max(n-1, 0)
	}
}
