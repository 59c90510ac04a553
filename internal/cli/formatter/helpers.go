package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/resolvai/resolvai/internal/domain"
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
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// MethodBadge returns a colored label for a method, keeping each
// framework visually distinct in lists.
func MethodBadge(m domain.Method) string {
	switch m {
	case domain.MethodFiveWhys:
		return StyleBlue.Render(string(m))
	case domain.MethodGUT:
		return StyleRed.Render(string(m))
	case domain.MethodSWOT:
		return StyleGreen.Render(string(m))
	case domain.MethodPDCA:
		return StyleYellow.Render(string(m))
	case domain.MethodSMART:
		return StylePurple.Render(string(m))
	case domain.MethodSixW2H:
		return StyleBlue.Render(string(m))
	case domain.MethodDecisionTree:
		return StyleYellow.Render(string(m))
	case domain.MethodBrainstorm:
		return StyleGreen.Render(string(m))
	case domain.MethodDiary:
		return StylePurple.Render(string(m))
	default:
		return StyleDim.Render(string(m))
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Local().Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Hoje"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Ontem"
	}
	return t.Local().Format("02/01/2006")
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < 0:
		return HumanDate(t)
	case diff < time.Minute:
		return "Agora mesmo"
	case diff < time.Hour:
		return fmt.Sprintf("%dmin atrás", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh atrás", int(diff.Hours()))
	default:
		return HumanDate(t)
	}
}
