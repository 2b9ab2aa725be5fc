package formatter

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded border tinted with the given color.
func RenderBox(title string, content string, border lipgloss.TerminalColor) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2)

	if title != "" {
		return style.Render(Bold(title) + "\n\n" + content)
	}
	return style.Render(content)
}

// DayLabel formats a date like "Mon, Mar 2".
func DayLabel(t time.Time) string {
	return t.Format("Mon, Jan 2")
}

// ClockLabel formats a time of day like "2:00 PM".
func ClockLabel(t time.Time) string {
	return t.Format("3:04 PM")
}

// LongDate formats a date like "March 12, 2026".
func LongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// DaysLeft describes how far a deadline is from now in whole calendar days.
func DaysLeft(deadline, now time.Time) string {
	dy, dm, dd := deadline.Date()
	ny, nm, nd := now.In(deadline.Location()).Date()
	days := int(time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC).Sub(time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)).Hours() / 24)

	switch {
	case days == 0:
		return "due today"
	case days == 1:
		return "due tomorrow"
	case days > 1:
		return fmt.Sprintf("in %d days", days)
	case days == -1:
		return "1 day overdue"
	default:
		return fmt.Sprintf("%d days overdue", -days)
	}
}
