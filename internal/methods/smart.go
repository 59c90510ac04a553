package methods

import (
	"fmt"
	"strings"

	"github.com/resolvai/resolvai/internal/domain"
)

// BuildSMART scores an objective against the five criteria. Score is
// the count of checked criteria; the objective is SMART only with all
// five checked.
func BuildSMART(objective string, criteria domain.SMARTCriteria) (*domain.Study, error) {
	objective = strings.TrimSpace(objective)
	if objective == "" {
		return nil, validation("Defina um objetivo antes de gerar o resumo.")
	}

	ordered := []struct {
		label string
		c     domain.SMARTCriterion
	}{
		{"Específico", criteria.Specific},
		{"Mensurável", criteria.Measurable},
		{"Alcançável", criteria.Achievable},
		{"Relevante", criteria.Relevant},
		{"Temporal", criteria.TimeBound},
	}

	score := 0
	var b strings.Builder
	fmt.Fprintf(&b, "Objetivo: %s\n\nAvaliação SMART:\n", objective)
	for _, item := range ordered {
		mark := "✗"
		if item.c.Checked {
			mark = "✓"
			score++
		}
		value := item.c.Value
		if value == "" {
			value = "(não avaliado)"
		}
		fmt.Fprintf(&b, "%s %s: %s\n", mark, item.label, value)
	}

	isSmart := score == 5
	status := "Objetivo precisa de ajustes"
	if isSmart {
		status = "Objetivo SMART ✓"
	}
	fmt.Fprintf(&b, "\nPontuação: %d/5\nStatus: %s", score, status)

	data := &domain.SMARTData{
		Objective: objective,
		Criteria:  criteria,
		Score:     score,
		IsSmart:   isSmart,
		Analysis:  b.String(),
	}
	return &domain.Study{
		Method: domain.MethodSMART,
		Title:  objective,
		Data:   data,
	}, nil
}
