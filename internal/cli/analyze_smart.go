package cli

import (
	"context"

	"github.com/resolvai/resolvai/internal/domain"
	"github.com/resolvai/resolvai/internal/methods"
	"github.com/spf13/cobra"
)

// runSMARTWizard evaluates an objective against the five criteria.
func runSMARTWizard(ctx context.Context, app *App, cmd *cobra.Command, preloaded *domain.Study) error {
	var objective string
	var criteria domain.SMARTCriteria
	if preloaded != nil {
		if data, ok := preloaded.Data.(*domain.SMARTData); ok {
			objective = data.Objective
			criteria = data.Criteria
		}
	}

	if err := wizardInputText("Qual é o objetivo?", "Descreva o objetivo a avaliar", true, &objective).Run(); err != nil {
		return err
	}

	checks := []struct {
		label     string
		question  string
		criterion *domain.SMARTCriterion
	}{
		{"Específico", "O que exatamente será alcançado?", &criteria.Specific},
		{"Mensurável", "Como o progresso será medido?", &criteria.Measurable},
		{"Alcançável", "É viável com os recursos atuais?", &criteria.Achievable},
		{"Relevante", "Por que este objetivo importa?", &criteria.Relevant},
		{"Temporal", "Qual é o prazo?", &criteria.TimeBound},
	}

	for _, c := range checks {
		if err := wizardTextArea(c.label, c.question, &c.criterion.Value).Run(); err != nil {
			return err
		}
		checked := c.criterion.Checked || c.criterion.Value != ""
		if err := wizardConfirm("O critério "+c.label+" está atendido?", &checked).Run(); err != nil {
			return err
		}
		c.criterion.Checked = checked
	}

	study, err := methods.BuildSMART(objective, criteria)
	return finishStudy(ctx, app, cmd, study, err, preloaded)
}
