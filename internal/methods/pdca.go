package methods

import (
	"fmt"
	"strings"

	"github.com/resolvai/resolvai/internal/domain"
)

// BuildPDCA keeps the cycles with at least one filled phase. Empty
// phases render as "(não preenchido)" in the analysis.
func BuildPDCA(cycles []domain.PDCACycle) (*domain.Study, error) {
	var filled []domain.PDCACycle
	for _, c := range cycles {
		c.Plan = strings.TrimSpace(c.Plan)
		c.Do = strings.TrimSpace(c.Do)
		c.Check = strings.TrimSpace(c.Check)
		c.Act = strings.TrimSpace(c.Act)
		if c.Plan != "" || c.Do != "" || c.Check != "" || c.Act != "" {
			filled = append(filled, c)
		}
	}
	if len(filled) == 0 {
		return nil, validation("Preencha pelo menos uma fase do ciclo PDCA.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ciclo PDCA - %d ciclo(s)\n\n", len(filled))
	sections := make([]string, len(filled))
	for i, c := range filled {
		sections[i] = fmt.Sprintf("CICLO %d:\nPLANEJAR: %s\nFAZER: %s\nVERIFICAR: %s\nAGIR: %s\n",
			i+1, orUnfilled(c.Plan), orUnfilled(c.Do), orUnfilled(c.Check), orUnfilled(c.Act))
	}
	b.WriteString(strings.Join(sections, "\n"))

	data := &domain.PDCAData{
		Cycles:      filled,
		TotalCycles: len(filled),
		Analysis:    b.String(),
	}
	return &domain.Study{
		Method: domain.MethodPDCA,
		Title:  fmt.Sprintf("Ciclo PDCA - %d ciclo(s)", len(filled)),
		Data:   data,
	}, nil
}

func orUnfilled(s string) string {
	if s == "" {
		return "(não preenchido)"
	}
	return s
}
