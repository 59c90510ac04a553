package methods

import (
	"fmt"
	"strings"

	"github.com/resolvai/resolvai/internal/domain"
)

// SWOTInput carries the four raw lists as typed by the user.
type SWOTInput struct {
	Strengths     []string
	Weaknesses    []string
	Opportunities []string
	Threats       []string
}

// BuildSWOT drops empty entries and requires at least one item across
// all four categories.
func BuildSWOT(in SWOTInput) (*domain.Study, error) {
	strengths := nonEmpty(in.Strengths)
	weaknesses := nonEmpty(in.Weaknesses)
	opportunities := nonEmpty(in.Opportunities)
	threats := nonEmpty(in.Threats)

	total := len(strengths) + len(weaknesses) + len(opportunities) + len(threats)
	if total == 0 {
		return nil, validation("Preencha pelo menos um item em qualquer categoria.")
	}

	var b strings.Builder
	b.WriteString("Análise SWOT\n\n")
	writeSWOTCategory(&b, "FORÇAS", strengths)
	b.WriteString("\n\n")
	writeSWOTCategory(&b, "FRAQUEZAS", weaknesses)
	b.WriteString("\n\n")
	writeSWOTCategory(&b, "OPORTUNIDADES", opportunities)
	b.WriteString("\n\n")
	writeSWOTCategory(&b, "AMEAÇAS", threats)

	data := &domain.SWOTData{
		Strengths:     strengths,
		Weaknesses:    weaknesses,
		Opportunities: opportunities,
		Threats:       threats,
		Total:         total,
		Analysis:      b.String(),
	}
	return &domain.Study{
		Method: domain.MethodSWOT,
		Title:  "Análise SWOT",
		Data:   data,
	}, nil
}

func writeSWOTCategory(b *strings.Builder, label string, items []string) {
	fmt.Fprintf(b, "%s (%d):\n", label, len(items))
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%d. %s", i+1, item)
	}
	b.WriteString(strings.Join(lines, "\n"))
}
