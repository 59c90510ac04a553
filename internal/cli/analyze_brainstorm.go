package cli

import (
	"context"

	"github.com/resolvai/resolvai/internal/domain"
	"github.com/resolvai/resolvai/internal/methods"
	"github.com/spf13/cobra"
)

// runBrainstormWizard collects free-form ideas with optional categories.
func runBrainstormWizard(ctx context.Context, app *App, cmd *cobra.Command, preloaded *domain.Study) error {
	var topic string
	var ideas []domain.BrainstormIdea
	if preloaded != nil {
		if data, ok := preloaded.Data.(*domain.BrainstormData); ok {
			topic = data.Topic
			ideas = data.Ideas
		}
	}

	if err := wizardInputText("Qual é o tema?", "Tema da sessão de brainstorm", false, &topic).Run(); err != nil {
		return err
	}

	for {
		var idea domain.BrainstormIdea
		if err := wizardInputText("Nova ideia", "Deixe vazio para encerrar", false, &idea.Text).Run(); err != nil {
			return err
		}
		if idea.Text == "" {
			break
		}
		if err := wizardInputText("Categoria (opcional)", "", false, &idea.Category).Run(); err != nil {
			return err
		}
		ideas = append(ideas, idea)
	}

	study, err := methods.BuildBrainstorm(topic, ideas)
	return finishStudy(ctx, app, cmd, study, err, preloaded)
}
