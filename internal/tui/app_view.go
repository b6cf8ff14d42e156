package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/todo-reminder/internal/alert"
	"github.com/hy4ri/todo-reminder/internal/store"
	"github.com/hy4ri/todo-reminder/internal/tui/styles"
	"github.com/hy4ri/todo-reminder/internal/tui/utils"
)

// soonMinutes is how close a reminder must be to be highlighted.
const soonMinutes = 60

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.renderHeader())
	b.WriteString("\n\n")

	switch {
	case len(a.due) > 0:
		b.WriteString(a.renderDue())
	case a.mode == ModeHelp:
		b.WriteString(a.help.View())
	case a.form != nil:
		b.WriteString(a.renderTasks())
		b.WriteString("\n")
		b.WriteString(a.renderForm())
	default:
		b.WriteString(a.renderTasks())
	}

	b.WriteString("\n\n")
	b.WriteString(a.renderStatusBar())

	return styles.App.Render(b.String())
}

func (a *App) renderHeader() string {
	tasks := a.store.Tasks()
	armed := len(a.store.Armed())

	title := styles.Title.Render("📝 To-Do")
	counts := styles.Subtitle.Render(fmt.Sprintf("%d tasks · %d reminders", len(tasks), armed))

	if a.clock.Large() {
		return title + "  " + counts + "\n\n" + a.clock.View()
	}
	return title + "  " + a.clock.View() + "  " + counts
}

func (a *App) renderTasks() string {
	tasks := a.store.Tasks()
	if len(tasks) == 0 {
		return styles.Empty.Render("No tasks yet. Press 'a' to add one.")
	}

	now := a.scanner.Now()
	textWidth := 60
	if a.width > 0 {
		// padding, cursor border and reminder column
		textWidth = max(a.width-4-3-7, 10)
	}

	lines := make([]string, 0, len(tasks))
	for i, t := range tasks {
		line := a.renderReminder(t, now) + utils.TruncateString(t.Text, textWidth)
		if i == a.cursor {
			lines = append(lines, styles.TaskSelected.Render(line))
		} else {
			lines = append(lines, styles.TaskItem.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderReminder(t store.Task, now string) string {
	if !t.Armed() {
		return styles.TaskNoReminder.Render("  --  ")
	}
	label := "⏰" + t.Reminder
	if m := utils.MinutesUntil(now, t.Reminder); m >= 0 && m < soonMinutes {
		return styles.TaskReminderSoon.Render(label)
	}
	return styles.TaskReminder.Render(label)
}

func (a *App) renderForm() string {
	f := a.form
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render(f.title))
	b.WriteString("\n")

	for i, in := range f.inputs {
		b.WriteString(styles.InputLabel.Render(f.labels[i]))
		b.WriteString("\n")
		style := styles.Input
		if i == f.focus {
			style = styles.InputFocused
		}
		b.WriteString(style.Render(in.View()))
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpDesc.Render("enter: save • tab: next field • esc: cancel"))
	return styles.Dialog.Render(b.String())
}

func (a *App) renderDue() string {
	d := a.due[0]
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("⏰ Reminder"))
	b.WriteString("\n")
	b.WriteString(alert.Message(d))
	if rest := len(a.due) - 1; rest > 0 {
		b.WriteString("\n")
		b.WriteString(styles.HelpDesc.Render(fmt.Sprintf("%d more due", rest)))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("enter: dismiss"))

	dialog := styles.DueDialog.Render(b.String())
	if a.width > 0 {
		return lipgloss.PlaceHorizontal(a.width-4, lipgloss.Center, dialog)
	}
	return dialog
}

func (a *App) renderStatusBar() string {
	var status string
	switch {
	case a.status.Message == "":
		status = ""
	case a.status.Failed():
		status = styles.StatusBarError.Render(a.status.Message)
	default:
		status = styles.StatusBarSuccess.Render(a.status.Message)
	}

	hints := []string{
		styles.StatusBarKey.Render("a") + styles.StatusBarText.Render(" add"),
		styles.StatusBarKey.Render("e") + styles.StatusBarText.Render(" edit"),
		styles.StatusBarKey.Render("dd") + styles.StatusBarText.Render(" delete"),
		styles.StatusBarKey.Render("r") + styles.StatusBarText.Render(" remind"),
		styles.StatusBarKey.Render("x") + styles.StatusBarText.Render(" done"),
		styles.StatusBarKey.Render("?") + styles.StatusBarText.Render(" help"),
		styles.StatusBarKey.Render("q") + styles.StatusBarText.Render(" quit"),
	}
	bar := styles.StatusBar.Render(strings.Join(hints, styles.StatusBarText.Render("  ")))

	if status == "" {
		return bar
	}
	return status + "\n" + bar
}
