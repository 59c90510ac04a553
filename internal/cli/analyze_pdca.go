package cli

import (
	"context"

	"github.com/resolvai/resolvai/internal/domain"
	"github.com/resolvai/resolvai/internal/methods"
	"github.com/spf13/cobra"
)

// runPDCAWizard collects Plan-Do-Check-Act cycles.
func runPDCAWizard(ctx context.Context, app *App, cmd *cobra.Command, preloaded *domain.Study) error {
	var cycles []domain.PDCACycle
	if preloaded != nil {
		if data, ok := preloaded.Data.(*domain.PDCAData); ok {
			cycles = data.Cycles
		}
	}

	for {
		var cycle domain.PDCACycle
		if err := wizardTextArea("Planejar: o que será feito?", "Objetivo e plano de ação", &cycle.Plan).Run(); err != nil {
			return err
		}
		if err := wizardTextArea("Fazer: o que foi executado?", "Execução do plano", &cycle.Do).Run(); err != nil {
			return err
		}
		if err := wizardTextArea("Verificar: o que os resultados mostram?", "Comparação com o esperado", &cycle.Check).Run(); err != nil {
			return err
		}
		if err := wizardTextArea("Agir: o que ajustar?", "Correções e padronização", &cycle.Act).Run(); err != nil {
			return err
		}

		cycles = append(cycles, cycle)

		more := false
		if err := wizardConfirm("Adicionar outro ciclo?", &more).Run(); err != nil {
			return err
		}
		if !more {
			break
		}
	}

	study, err := methods.BuildPDCA(cycles)
	return finishStudy(ctx, app, cmd, study, err, preloaded)
}
