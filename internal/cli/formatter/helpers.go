package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(upper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDays describes a remaining-days count in Turkish.
func RelativeDays(days int) string {
	switch {
	case days == 0:
		return "Bugün"
	case days == 1:
		return "Yarın"
	case days == -1:
		return "Dün doldu"
	case days > 1:
		return fmt.Sprintf("%d gün kaldı", days)
	default:
		return fmt.Sprintf("%d gün önce doldu", -days)
	}
}

// RelativeDaysStyled returns RelativeDays with urgency coloring applied.
func RelativeDaysStyled(days int) string {
	return UrgencyStyle(days).Render(RelativeDays(days))
}

// Truncate shortens s to at most width visible cells, ending with "…".
func Truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimRight(string(runes), " ") + "…"
}
