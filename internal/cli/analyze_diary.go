package cli

import (
	"context"
	"strings"

	"github.com/resolvai/resolvai/internal/domain"
	"github.com/resolvai/resolvai/internal/methods"
	"github.com/spf13/cobra"
)

// runDiaryWizard records a free-form diary entry with optional tags.
func runDiaryWizard(ctx context.Context, app *App, cmd *cobra.Command, preloaded *domain.Study) error {
	var title, content, tags string
	if preloaded != nil {
		if data, ok := preloaded.Data.(*domain.DiaryData); ok {
			title = data.Title
			content = data.Content
			tags = strings.Join(data.Tags, ", ")
		}
	}

	if err := wizardInputText("Título (opcional)", "", false, &title).Run(); err != nil {
		return err
	}
	if err := wizardTextArea("O que aconteceu?", "Registre aprendizados, decisões e observações", &content).Run(); err != nil {
		return err
	}
	if err := wizardInputText("Tags (separadas por vírgula)", "retrospectiva, produção", false, &tags).Run(); err != nil {
		return err
	}

	study, err := methods.BuildDiary(title, content, tags)
	return finishStudy(ctx, app, cmd, study, err, preloaded)
}
