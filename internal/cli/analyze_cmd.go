package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/resolvai/resolvai/internal/cli/formatter"
	"github.com/resolvai/resolvai/internal/domain"
	"github.com/resolvai/resolvai/internal/fivewhys"
	"github.com/resolvai/resolvai/internal/methods"
	"github.com/resolvai/resolvai/internal/store"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var loadID string

	cmd := &cobra.Command{
		Use:   "analyze [method]",
		Short: "Inicia uma análise com um dos métodos",
		Long: "Inicia uma análise interativa. Sem argumento, um seletor de método é\n" +
			"exibido. Métodos aceitam o nome completo ou o apelido curto\n" +
			"(5whys, gut, swot, pdca, smart, 6w2h, decision-tree, brainstorm, diary).",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("o comando analyze requer um terminal interativo")
			}

			ctx := cmd.Context()

			// A study parked by "history edit" or --load pre-fills
			// the wizard and keeps its ID so saving replaces it.
			if loadID != "" {
				id, err := resolveStudyID(ctx, app, loadID)
				if err != nil {
					return err
				}
				if _, err := app.Studies.LoadForEdit(ctx, id); err != nil {
					return err
				}
			}
			preloaded, err := app.Studies.TakePending(ctx)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return err
			}

			method, err := pickMethod(args, preloaded)
			if err != nil {
				return err
			}

			return runMethodWizard(ctx, app, cmd, method, preloaded)
		},
	}

	cmd.Flags().StringVar(&loadID, "load", "", "ID de um estudo salvo para continuar editando")

	return cmd
}

// pickMethod resolves the method from the argument, the preloaded
// study, or an interactive selector, in that order.
func pickMethod(args []string, preloaded *domain.Study) (domain.Method, error) {
	if len(args) > 0 {
		return domain.ParseMethod(args[0])
	}
	if preloaded != nil {
		return preloaded.Method, nil
	}

	var alias string
	form := wizardSelectMethod(&alias)
	if err := form.Run(); err != nil {
		return "", err
	}
	return domain.ParseMethod(alias)
}

func runMethodWizard(ctx context.Context, app *App, cmd *cobra.Command, method domain.Method, preloaded *domain.Study) error {
	// A parked study of a different method is ignored rather than
	// fed into the wrong wizard.
	if preloaded != nil && preloaded.Method != method {
		preloaded = nil
	}

	switch method {
	case domain.MethodFiveWhys:
		return runFiveWhysWizard(ctx, app, cmd, preloaded)
	case domain.MethodGUT:
		return runGUTWizard(ctx, app, cmd, preloaded)
	case domain.MethodSWOT:
		return runSWOTWizard(ctx, app, cmd, preloaded)
	case domain.MethodPDCA:
		return runPDCAWizard(ctx, app, cmd, preloaded)
	case domain.MethodSMART:
		return runSMARTWizard(ctx, app, cmd, preloaded)
	case domain.MethodSixW2H:
		return runSixW2HWizard(ctx, app, cmd, preloaded)
	case domain.MethodDecisionTree:
		return runDecisionTreeWizard(ctx, app, cmd, preloaded)
	case domain.MethodBrainstorm:
		return runBrainstormWizard(ctx, app, cmd, preloaded)
	case domain.MethodDiary:
		return runDiaryWizard(ctx, app, cmd, preloaded)
	default:
		return fmt.Errorf("método não suportado: %s", method)
	}
}

// finishStudy funnels a method build result into preview and save.
// Validation failures are user guidance, not command errors: they are
// printed and the command exits cleanly so the shell stays quiet.
func finishStudy(ctx context.Context, app *App, cmd *cobra.Command, study *domain.Study, buildErr error, preloaded *domain.Study) error {
	if buildErr != nil {
		var verr *methods.ValidationError
		if errors.As(buildErr, &verr) || errors.Is(buildErr, fivewhys.ErrNothingFilled) {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render(buildErr.Error()))
			return nil
		}
		return buildErr
	}
	return previewAndSave(ctx, app, cmd, study, preloaded)
}

// previewAndSave shows the built study, asks for confirmation and
// persists it. When preloaded is set, its ID is carried over so the
// save replaces the original entry.
func previewAndSave(ctx context.Context, app *App, cmd *cobra.Command, study *domain.Study, preloaded *domain.Study) error {
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStudyDetail(study))

	save := true
	if err := wizardConfirm("Salvar este estudo?", &save).Run(); err != nil {
		return err
	}
	if !save {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Estudo descartado."))
		return nil
	}

	if preloaded != nil {
		study.ID = preloaded.ID
	}
	if err := app.Studies.Save(ctx, study); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Estudo salvo: %s [%s]\n", study.Title, study.DisplayID())
	return nil
}
