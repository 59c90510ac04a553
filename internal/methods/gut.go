package methods

import (
	"fmt"
	"sort"
	"strings"

	"github.com/resolvai/resolvai/internal/domain"
)

// GUTInput is one problem rated before prioritization.
type GUTInput struct {
	Description string
	Gravity     int
	Urgency     int
	Tendency    int
}

// BuildGUT prioritizes the rated problems. Priority is the product of
// the three scores; the result is sorted by priority descending with
// ties keeping input order.
func BuildGUT(inputs []GUTInput) (*domain.Study, error) {
	var rated []domain.GUTProblem
	for _, in := range inputs {
		desc := strings.TrimSpace(in.Description)
		if desc == "" {
			continue
		}
		if !validScore(in.Gravity) || !validScore(in.Urgency) || !validScore(in.Tendency) {
			return nil, validation(fmt.Sprintf("Notas de %q devem estar entre 1 e 5.", desc))
		}
		rated = append(rated, domain.GUTProblem{
			Description: desc,
			Gravity:     in.Gravity,
			Urgency:     in.Urgency,
			Tendency:    in.Tendency,
			Priority:    in.Gravity * in.Urgency * in.Tendency,
		})
	}
	if len(rated) == 0 {
		return nil, validation("Adicione pelo menos um problema para gerar o resumo.")
	}

	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].Priority > rated[j].Priority
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Análise GUT - %d problema(s) avaliado(s)\n\n", len(rated))
	for i, p := range rated {
		fmt.Fprintf(&b, "%d. %s\n   G: %d | U: %d | T: %d | Prioridade: %d\n\n",
			i+1, p.Description, p.Gravity, p.Urgency, p.Tendency, p.Priority)
	}
	fmt.Fprintf(&b, "Problema de maior prioridade: %s (Prioridade: %d)",
		rated[0].Description, rated[0].Priority)

	highest := rated[0]
	data := &domain.GUTData{
		Problems:        rated,
		TotalProblems:   len(rated),
		HighestPriority: &highest,
		Analysis:        b.String(),
	}
	return &domain.Study{
		Method: domain.MethodGUT,
		Title:  fmt.Sprintf("Análise GUT - %d problema(s)", len(rated)),
		Data:   data,
	}, nil
}

func validScore(n int) bool { return n >= 1 && n <= 5 }
