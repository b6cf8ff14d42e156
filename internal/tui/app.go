// Package tui provides the terminal user interface for the to-do list.
//
// The UI owns no task data. Every key press that changes the list goes
// through a command function (commands.go) against the store, and the view
// re-reads the store on every render.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-reminder/internal/alert"
	"github.com/hy4ri/todo-reminder/internal/config"
	"github.com/hy4ri/todo-reminder/internal/reminder"
	"github.com/hy4ri/todo-reminder/internal/store"
	"github.com/hy4ri/todo-reminder/internal/tui/components"
	"github.com/rs/zerolog"
)

// Mode is what the UI is currently showing.
type Mode int

const (
	ModeList Mode = iota
	ModeAdd
	ModeEdit
	ModeReminder
	ModeRingtone
	ModeHelp
)

// Options are the App's collaborators. Store, Scanner, Alerter, Player and
// Config are required.
type Options struct {
	Store   *store.Store
	Scanner *reminder.Scanner
	Alerter *alert.Alerter
	Player  *alert.Player
	Config  *config.Config
	Logger  zerolog.Logger

	// SaveRingtone persists a ringtone chosen in the UI.
	// Defaults to config.SetRingtone.
	SaveRingtone func(path string) error
}

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	store        *store.Store
	scanner      *reminder.Scanner
	alerter      *alert.Alerter
	player       *alert.Player
	config       *config.Config
	log          zerolog.Logger
	saveRingtone func(path string) error

	// View state
	mode   Mode
	cursor int
	width  int
	height int
	status Result

	// Pending due reminders, oldest first; shown as a dialog
	due []reminder.Due

	// Components
	keymap   Keymap
	keyState KeyState
	form     *form
	help     *components.HelpModel
	clock    *components.ClockModel
}

// NewApp creates a new App instance.
func NewApp(opts Options) *App {
	saveRingtone := opts.SaveRingtone
	if saveRingtone == nil {
		saveRingtone = config.SetRingtone
	}

	app := &App{
		store:        opts.Store,
		scanner:      opts.Scanner,
		alerter:      opts.Alerter,
		player:       opts.Player,
		config:       opts.Config,
		log:          opts.Logger.With().Str("component", "tui").Logger(),
		saveRingtone: saveRingtone,
		keymap:       DefaultKeymap(),
		keyState:     KeyState{Vim: opts.Config.UI.VimMode},
		help:         components.NewHelp(),
	}
	app.clock = components.NewClock(opts.Scanner.Now, opts.Config.UI.ShowClock)
	app.help.SetKeymap(app.keymap.HelpItems())

	if err := opts.Store.LoadErr(); err != nil {
		app.status = failed(err)
	}

	return app
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		scanNowCmd(),
		reminderTickCmd(a.config.Reminder.Interval),
	)
}

// Mode returns the current mode.
func (a *App) Mode() Mode {
	return a.mode
}

// Status returns the last command result.
func (a *App) Status() Result {
	return a.status
}

// Due returns the reminders waiting to be acknowledged.
func (a *App) Due() []reminder.Due {
	return a.due
}

// Message types
type reminderTickMsg time.Time
type scanNowMsg time.Time
type resultMsg struct{ result Result }
type alertFailedMsg struct{ err error }

// reminderTickCmd fires in step with the wall clock, so with a one-minute
// interval every tick lands at the start of a minute.
func reminderTickCmd(interval time.Duration) tea.Cmd {
	return tea.Every(interval, func(t time.Time) tea.Msg {
		return reminderTickMsg(t)
	})
}

// scanNowCmd checks reminders once at startup without waiting for the
// first tick.
func scanNowCmd() tea.Cmd {
	return func() tea.Msg {
		return scanNowMsg(time.Now())
	}
}

// fireCmd delivers notifications and the ringtone off the update loop.
func (a *App) fireCmd(dues []reminder.Due) tea.Cmd {
	alerter := a.alerter
	return func() tea.Msg {
		if err := alerter.Fire(context.Background(), dues); err != nil {
			return alertFailedMsg{err}
		}
		return nil
	}
}

// copyCmd copies task text to the system clipboard.
func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return resultMsg{failed(fmt.Errorf("failed to copy to clipboard: %w", err))}
		}
		return resultMsg{ok("Copied '%s' to clipboard", text)}
	}
}

// form is a small stack of labelled text inputs.
type form struct {
	title  string
	target string // text of the task being edited, if any
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(title, target string) *form {
	return &form{title: title, target: target}
}

func (f *form) addInput(label, value, placeholder string, limit int) *form {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40
	ti.SetValue(value)
	if len(f.inputs) == 0 {
		ti.Focus()
	}
	f.labels = append(f.labels, label)
	f.inputs = append(f.inputs, ti)
	return f
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}
