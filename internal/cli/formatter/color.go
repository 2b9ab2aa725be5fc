package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cooked/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen   = lipgloss.Color("#8ec07c")
	ColorYellow  = lipgloss.Color("#fabd2f")
	ColorOrange  = lipgloss.Color("#fe8019")
	ColorRed     = lipgloss.Color("#fb4934")
	ColorDeepRed = lipgloss.Color("#cc241d")
	ColorBlue    = lipgloss.Color("#83a598")
	ColorDim     = lipgloss.Color("#928374")
	ColorFg      = lipgloss.Color("#ebdbb2")
	ColorTagFg   = lipgloss.Color("#fbf1c7")
)

var (
	StyleGreen   = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow  = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleOrange  = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleRed     = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDeepRed = lipgloss.NewStyle().Foreground(ColorDeepRed).Bold(true)
	StyleBlue    = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim     = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg      = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader  = lipgloss.NewStyle().Foreground(ColorOrange).Bold(true)
	StyleBold    = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)

	StyleStudyTag = lipgloss.NewStyle().Foreground(ColorTagFg).Background(ColorRed).Bold(true).Padding(0, 1)
	StyleDueTag   = lipgloss.NewStyle().Foreground(ColorTagFg).Background(ColorDeepRed).Bold(true).Padding(0, 1)
)

// Indexed by StressLevel.Rank.
var (
	stressStyles = []lipgloss.Style{StyleGreen, StyleYellow, StyleOrange, StyleRed, StyleDeepRed}
	stressEmoji  = []string{"☕", "🍞", "🔥", "🥵", "💀"}
)

// StressColor returns the style for a stress level, green through deep red.
func StressColor(level domain.StressLevel) lipgloss.Style {
	if r := level.Rank(); r >= 0 {
		return stressStyles[r]
	}
	return StyleDim
}

// StressEmoji returns the marker shown next to a level.
func StressEmoji(level domain.StressLevel) string {
	if r := level.Rank(); r >= 0 {
		return stressEmoji[r]
	}
	return ""
}

// StressIndicator returns a colored label such as "● MEDIUM COOKED 🔥".
func StressIndicator(level domain.StressLevel) string {
	text := "● " + strings.ToUpper(level.Label())
	if emoji := StressEmoji(level); emoji != "" {
		text += " " + emoji
	}
	return StressColor(level).Render(text)
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold.
func Bold(text string) string {
	return StyleBold.Render(text)
}
