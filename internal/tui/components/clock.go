package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-reminder/internal/tui/styles"
)

// Digits are the block glyphs used by RenderLargeTime.
var Digits = map[rune][]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", " ███ "},
	'2': {" ███ ", "    █", " ███ ", "█    ", " ███ "},
	'3': {" ███ ", "    █", " ███ ", "    █", " ███ "},
	'4': {"█   █", "█   █", " ███ ", "    █", "    █"},
	'5': {" ███ ", "█    ", " ███ ", "    █", " ███ "},
	'6': {" ███ ", "█    ", " ███ ", "█   █", " ███ "},
	'7': {" ███ ", "    █", "   █ ", "  █  ", "  █  "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ███ ", "    █", " ███ "},
	':': {"   ", " █ ", "   ", " █ ", "   "},
}

// RenderLargeTime renders an HH:MM string in large block characters.
// Unknown runes are skipped.
func RenderLargeTime(tStr string) string {
	var rows [5]string
	for _, r := range tStr {
		lines, ok := Digits[r]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			rows[i] += lines[i] + "  "
		}
	}

	var b strings.Builder
	for i := 0; i < 5; i++ {
		b.WriteString(strings.TrimRight(rows[i], " "))
		b.WriteString("\n")
	}
	return b.String()
}

// ClockModel shows the current HH:MM, either inline or in large digits.
type ClockModel struct {
	now   func() string
	large bool
	width int
}

// NewClock creates a clock reading its time from now.
func NewClock(now func() string, large bool) *ClockModel {
	return &ClockModel{now: now, large: large}
}

// Init implements Component.
func (c *ClockModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (c *ClockModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	return c, nil
}

// View implements Component.
func (c *ClockModel) View() string {
	if !c.large {
		return styles.Subtitle.Render(c.now())
	}
	return styles.Clock.Render(RenderLargeTime(c.now()))
}

// SetSize implements Component.
func (c *ClockModel) SetSize(width, height int) {
	c.width = width
}

// Toggle switches between inline and large display.
func (c *ClockModel) Toggle() {
	c.large = !c.large
}

// Large reports whether the clock renders in large digits.
func (c *ClockModel) Large() bool {
	return c.large
}
