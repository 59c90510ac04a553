package cli

import (
	"context"

	"github.com/resolvai/resolvai/internal/domain"
	"github.com/resolvai/resolvai/internal/methods"
	"github.com/spf13/cobra"
)

// runGUTWizard collects problems and their Gravity, Urgency and
// Tendency scores until the user stops adding entries.
func runGUTWizard(ctx context.Context, app *App, cmd *cobra.Command, preloaded *domain.Study) error {
	var inputs []methods.GUTInput
	if preloaded != nil {
		if data, ok := preloaded.Data.(*domain.GUTData); ok {
			for _, p := range data.Problems {
				inputs = append(inputs, methods.GUTInput{
					Description: p.Description,
					Gravity:     p.Gravity,
					Urgency:     p.Urgency,
					Tendency:    p.Tendency,
				})
			}
		}
	}

	for {
		var description string
		if err := wizardInputText("Descreva o problema", "Deixe vazio para encerrar", false, &description).Run(); err != nil {
			return err
		}
		if description == "" {
			break
		}

		var g, u, t string
		if err := wizardInputScore("Gravidade (impacto se nada for feito)", &g).Run(); err != nil {
			return err
		}
		if err := wizardInputScore("Urgência (pressa para resolver)", &u).Run(); err != nil {
			return err
		}
		if err := wizardInputScore("Tendência (piora com o tempo)", &t).Run(); err != nil {
			return err
		}

		inputs = append(inputs, methods.GUTInput{
			Description: description,
			Gravity:     parseScore(g),
			Urgency:     parseScore(u),
			Tendency:    parseScore(t),
		})

		more := false
		if err := wizardConfirm("Adicionar outro problema?", &more).Run(); err != nil {
			return err
		}
		if !more {
			break
		}
	}

	study, err := methods.BuildGUT(inputs)
	return finishStudy(ctx, app, cmd, study, err, preloaded)
}
