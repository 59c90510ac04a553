package cli

import (
	"context"

	"github.com/resolvai/resolvai/internal/domain"
	"github.com/resolvai/resolvai/internal/methods"
	"github.com/spf13/cobra"
)

// runSixW2HWizard walks the eight guiding questions of the method.
func runSixW2HWizard(ctx context.Context, app *App, cmd *cobra.Command, preloaded *domain.Study) error {
	var in domain.SixW2HData
	if preloaded != nil {
		if data, ok := preloaded.Data.(*domain.SixW2HData); ok {
			in = *data
		}
	}

	questions := []struct {
		title string
		field *string
	}{
		{"O quê? (o que será feito)", &in.What},
		{"Por quê? (justificativa)", &in.Why},
		{"Onde? (local)", &in.Where},
		{"Quando? (prazo ou momento)", &in.When},
		{"Quem? (responsáveis)", &in.Who},
		{"Qual? (alternativa ou prioridade)", &in.Which},
		{"Como? (método de execução)", &in.How},
		{"Quanto? (custo ou esforço)", &in.HowMuch},
	}

	for _, q := range questions {
		if err := wizardTextArea(q.title, "Deixe vazio para pular", q.field).Run(); err != nil {
			return err
		}
	}

	study, err := methods.BuildSixW2H(in)
	return finishStudy(ctx, app, cmd, study, err, preloaded)
}
