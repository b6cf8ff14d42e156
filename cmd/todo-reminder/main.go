// Package main is the entry point for the to-do reminder application.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-reminder/internal/alert"
	"github.com/hy4ri/todo-reminder/internal/config"
	"github.com/hy4ri/todo-reminder/internal/logging"
	"github.com/hy4ri/todo-reminder/internal/reminder"
	"github.com/hy4ri/todo-reminder/internal/store"
	"github.com/hy4ri/todo-reminder/internal/tui"
	"github.com/rs/zerolog"
)

const version = "0.1.0"

const helpText = `todo-reminder - Terminal to-do list with time-of-day reminders

USAGE:
    todo-reminder [OPTIONS]

OPTIONS:
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file
    --file PATH     Use PATH as the task file
    --list          Print tasks and reminders, then exit
    --debug         Log at debug level (to stderr with --list)

CONFIGURATION:
    Config file: ~/.config/todo-reminder/config.yaml
    Task file:   tasks.json in the working directory unless configured

KEYBINDINGS:
    Navigation:
        j/k         Move down/up
        gg/G        Go to top/bottom

    Task Actions:
        a           Add new task
        e           Edit task and reminder
        dd          Delete task
        r           Set reminder (HH:MM)
        x           Done: clear reminder
        yy          Copy task text

    Other:
        R           Choose ringtone
        c           Toggle big clock
        ?           Show help
        q           Quit
`

const configTemplate = `# To-Do Reminder Configuration
# Location: ~/.config/todo-reminder/config.yaml

store:
  # Task file; relative paths resolve against the working directory
  path: tasks.json

reminder:
  # How often reminders are checked
  interval: 1m
  # Audio file played when a reminder fires; empty plays a beep
  ringtone: ""
  # Show a desktop notification for each due task
  desktop_notify: true

ui:
  # Enable Vim-style keybindings (default: true)
  vim_mode: true
  # Show the clock in the header
  show_clock: true

log:
  # debug, info, warn or error
  level: info
  # Defaults to ~/.config/todo-reminder/todo-reminder.log
  # file: ""
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		listTasks   bool
		debug       bool
		taskFile    string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&listTasks, "list", false, "Print tasks and exit")
	flag.BoolVar(&debug, "debug", false, "Log at debug level")
	flag.StringVar(&taskFile, "file", "", "Task file path")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	// Handle flags
	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("todo-reminder version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if taskFile != "" {
		cfg.Store.Path = taskFile
	}
	if debug {
		cfg.Log.Level = "debug"
	}

	if listTasks {
		logger := zerolog.Nop()
		if debug {
			logger = logging.NewConsole(os.Stderr, cfg.Log.Level)
		}
		return printTasks(os.Stdout, store.Load(cfg.Store.Path, logger))
	}

	return runApp(cfg)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// printTasks writes one line per task: the reminder (or "--") and the text.
func printTasks(w io.Writer, s *store.Store) error {
	if err := s.LoadErr(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	tasks := s.Tasks()
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks.")
		return err
	}
	for _, t := range tasks {
		at := "--"
		if t.Armed() {
			at = t.Reminder
		}
		if _, err := fmt.Fprintf(w, "%-5s  %s\n", at, t.Text); err != nil {
			return err
		}
	}
	return nil
}

// runApp starts the main TUI application.
func runApp(cfg *config.Config) error {
	logPath, err := cfg.LogPath()
	if err != nil {
		return fmt.Errorf("failed to resolve log file: %w", err)
	}
	logger, logFile, err := logging.OpenFile(logPath, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger.Info().Str("version", version).Str("tasks", cfg.Store.Path).Msg("starting")

	s := store.Load(cfg.Store.Path, logger)
	scanner := reminder.NewScanner(s, reminder.SystemClock{}, logger)

	player := alert.NewPlayer(logger)
	if err := player.Load(cfg.Reminder.Ringtone); err != nil {
		// Non-fatal: fall back to the beep
		logger.Warn().Err(err).Str("ringtone", cfg.Reminder.Ringtone).Msg("ringtone unavailable")
	}

	var notifier alert.Notifier
	if cfg.Reminder.DesktopNotify {
		notifier = alert.DesktopNotifier{}
	}
	alerter := alert.New(notifier, player, logger)

	// Create and run TUI
	app := tui.NewApp(tui.Options{
		Store:   s,
		Scanner: scanner,
		Alerter: alerter,
		Player:  player,
		Config:  cfg,
		Logger:  logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	_, runErr := p.Run()

	if err := finalSave(s, logger); err != nil && runErr == nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	if runErr != nil {
		return fmt.Errorf("failed to run TUI: %w", runErr)
	}

	logger.Info().Msg("exiting")
	return nil
}

// finalSave writes the store on exit. Every mutation already saved, so this
// only catches a failed earlier write. A file that was never loaded and has
// no backup is left alone.
func finalSave(s *store.Store, logger zerolog.Logger) error {
	if s.FileAtRisk() {
		logger.Warn().Str("path", s.Path()).Msg("task file was not loaded, leaving it untouched")
		return nil
	}
	if err := s.Save(); err != nil {
		logger.Error().Err(err).Msg("final save failed")
		return err
	}
	return nil
}
