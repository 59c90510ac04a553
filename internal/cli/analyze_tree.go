package cli

import (
	"context"

	"github.com/resolvai/resolvai/internal/domain"
	"github.com/resolvai/resolvai/internal/methods"
	"github.com/spf13/cobra"
)

// runDecisionTreeWizard collects a decision and its candidate options
// with consequences, pros and cons.
func runDecisionTreeWizard(ctx context.Context, app *App, cmd *cobra.Command, preloaded *domain.Study) error {
	var decision string
	var options []domain.DecisionOption
	if preloaded != nil {
		if data, ok := preloaded.Data.(*domain.DecisionTreeData); ok {
			decision = data.Decision
			options = data.Options
		}
	}

	if err := wizardInputText("Qual decisão precisa ser tomada?", "Descreva a decisão", true, &decision).Run(); err != nil {
		return err
	}

	for {
		var opt domain.DecisionOption
		if err := wizardInputText("Descreva a opção", "Deixe vazio para encerrar", false, &opt.Description).Run(); err != nil {
			return err
		}
		if opt.Description == "" {
			break
		}

		if err := wizardTextArea("Consequências esperadas", "Deixe vazio para pular", &opt.Consequences).Run(); err != nil {
			return err
		}
		if err := wizardTextArea("Prós", "Deixe vazio para pular", &opt.Pros).Run(); err != nil {
			return err
		}
		if err := wizardTextArea("Contras", "Deixe vazio para pular", &opt.Cons).Run(); err != nil {
			return err
		}

		options = append(options, opt)

		more := false
		if err := wizardConfirm("Adicionar outra opção?", &more).Run(); err != nil {
			return err
		}
		if !more {
			break
		}
	}

	study, err := methods.BuildDecisionTree(decision, options)
	return finishStudy(ctx, app, cmd, study, err, preloaded)
}
