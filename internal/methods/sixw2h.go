package methods

import (
	"strings"

	"github.com/resolvai/resolvai/internal/domain"
)

// BuildSixW2H assembles the eight guiding answers, keeping only the
// filled ones in the analysis text.
func BuildSixW2H(in domain.SixW2HData) (*domain.Study, error) {
	ordered := []struct {
		label string
		value *string
	}{
		{"O quê?", &in.What},
		{"Por quê?", &in.Why},
		{"Onde?", &in.Where},
		{"Quando?", &in.When},
		{"Quem?", &in.Who},
		{"Qual?", &in.Which},
		{"Como?", &in.How},
		{"Quanto?", &in.HowMuch},
	}

	var sections []string
	filled := 0
	for _, item := range ordered {
		*item.value = strings.TrimSpace(*item.value)
		if *item.value == "" {
			continue
		}
		filled++
		sections = append(sections, item.label+"\n"+*item.value)
	}
	if filled == 0 {
		return nil, validation("Preencha pelo menos uma pergunta para gerar o resumo.")
	}

	in.FilledCount = filled
	in.Analysis = "Análise 6W2H\n\n" + strings.Join(sections, "\n\n")

	return &domain.Study{
		Method: domain.MethodSixW2H,
		Title:  "Análise 6W2H",
		Data:   &in,
	}, nil
}
