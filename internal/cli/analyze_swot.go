package cli

import (
	"context"
	"fmt"

	"github.com/resolvai/resolvai/internal/domain"
	"github.com/resolvai/resolvai/internal/methods"
	"github.com/spf13/cobra"
)

// runSWOTWizard collects items for the four SWOT categories.
func runSWOTWizard(ctx context.Context, app *App, cmd *cobra.Command, preloaded *domain.Study) error {
	var in methods.SWOTInput
	if preloaded != nil {
		if data, ok := preloaded.Data.(*domain.SWOTData); ok {
			in = methods.SWOTInput{
				Strengths:     data.Strengths,
				Weaknesses:    data.Weaknesses,
				Opportunities: data.Opportunities,
				Threats:       data.Threats,
			}
		}
	}

	categories := []struct {
		label string
		items *[]string
	}{
		{"Força (interno, positivo)", &in.Strengths},
		{"Fraqueza (interno, negativo)", &in.Weaknesses},
		{"Oportunidade (externo, positivo)", &in.Opportunities},
		{"Ameaça (externo, negativo)", &in.Threats},
	}

	for _, cat := range categories {
		for {
			var item string
			title := fmt.Sprintf("%s (vazio para próxima categoria)", cat.label)
			if err := wizardInputText(title, "", false, &item).Run(); err != nil {
				return err
			}
			if item == "" {
				break
			}
			*cat.items = append(*cat.items, item)
		}
	}

	study, err := methods.BuildSWOT(in)
	return finishStudy(ctx, app, cmd, study, err, preloaded)
}
