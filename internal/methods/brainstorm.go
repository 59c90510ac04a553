package methods

import (
	"fmt"
	"strings"

	"github.com/resolvai/resolvai/internal/domain"
)

// BuildBrainstorm collects the non-empty ideas under an optional
// topic. Categories are deduplicated in first-seen order.
func BuildBrainstorm(topic string, ideas []domain.BrainstormIdea) (*domain.Study, error) {
	topic = strings.TrimSpace(topic)

	var filled []domain.BrainstormIdea
	for _, idea := range ideas {
		idea.Text = strings.TrimSpace(idea.Text)
		if idea.Text == "" {
			continue
		}
		idea.Category = strings.TrimSpace(idea.Category)
		filled = append(filled, idea)
	}
	if len(filled) == 0 {
		return nil, validation("Adicione pelo menos uma ideia para gerar o resumo.")
	}

	var categories []string
	seen := map[string]bool{}
	for _, idea := range filled {
		if idea.Category != "" && !seen[idea.Category] {
			seen[idea.Category] = true
			categories = append(categories, idea.Category)
		}
	}

	var b strings.Builder
	b.WriteString("Brainstorm")
	if topic != "" {
		b.WriteString(": " + topic)
	}
	fmt.Fprintf(&b, "\n\nTotal de ideias: %d\n\n", len(filled))
	if len(categories) > 0 {
		fmt.Fprintf(&b, "Categorias: %s\n\n", strings.Join(categories, ", "))
	}
	lines := make([]string, len(filled))
	for i, idea := range filled {
		lines[i] = fmt.Sprintf("%d. %s", i+1, idea.Text)
		if idea.Category != "" {
			lines[i] += fmt.Sprintf(" [%s]", idea.Category)
		}
	}
	b.WriteString(strings.Join(lines, "\n"))

	title := topic
	if title == "" {
		title = "Brainstorm"
	}
	data := &domain.BrainstormData{
		Topic:      title,
		Ideas:      filled,
		TotalIdeas: len(filled),
		Categories: categories,
		Analysis:   b.String(),
	}
	return &domain.Study{
		Method: domain.MethodBrainstorm,
		Title:  title,
		Data:   data,
	}, nil
}
