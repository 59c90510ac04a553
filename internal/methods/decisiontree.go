package methods

import (
	"fmt"
	"strings"

	"github.com/resolvai/resolvai/internal/domain"
)

// BuildDecisionTree lays out the evaluated options for one decision.
// Options without a description are dropped; consequences, pros and
// cons only appear in the analysis when filled.
func BuildDecisionTree(decision string, options []domain.DecisionOption) (*domain.Study, error) {
	decision = strings.TrimSpace(decision)
	if decision == "" {
		return nil, validation("Defina a decisão antes de gerar o resumo.")
	}

	var filled []domain.DecisionOption
	for _, o := range options {
		o.Description = strings.TrimSpace(o.Description)
		if o.Description == "" {
			continue
		}
		o.Consequences = strings.TrimSpace(o.Consequences)
		o.Pros = strings.TrimSpace(o.Pros)
		o.Cons = strings.TrimSpace(o.Cons)
		filled = append(filled, o)
	}
	if len(filled) == 0 {
		return nil, validation("Adicione pelo menos uma opção para gerar o resumo.")
	}

	sections := make([]string, len(filled))
	for i, o := range filled {
		var s strings.Builder
		fmt.Fprintf(&s, "OPÇÃO %d: %s\n", i+1, o.Description)
		if o.Consequences != "" {
			fmt.Fprintf(&s, "Consequências: %s\n", o.Consequences)
		}
		if o.Pros != "" {
			fmt.Fprintf(&s, "Prós: %s\n", o.Pros)
		}
		if o.Cons != "" {
			fmt.Fprintf(&s, "Contras: %s\n", o.Cons)
		}
		sections[i] = s.String()
	}

	analysis := fmt.Sprintf("Árvore de Decisão\n\nDecisão: %s\n\nOpções avaliadas (%d):\n\n%s",
		decision, len(filled), strings.Join(sections, "\n"))

	data := &domain.DecisionTreeData{
		Decision:     decision,
		Options:      filled,
		TotalOptions: len(filled),
		Analysis:     analysis,
	}
	return &domain.Study{
		Method: domain.MethodDecisionTree,
		Title:  decision,
		Data:   data,
	}, nil
}
