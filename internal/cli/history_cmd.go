package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/resolvai/resolvai/internal/cli/formatter"
	"github.com/resolvai/resolvai/internal/domain"
	"github.com/spf13/cobra"
)

// resolveStudyID resolves user input to a stored study ID. Exact
// matches win; otherwise a unique ID prefix is accepted.
func resolveStudyID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("informe o ID do estudo")
	}

	studies, err := app.Studies.List(ctx)
	if err != nil {
		return "", err
	}

	for _, s := range studies {
		if s.ID == input {
			return s.ID, nil
		}
	}

	var matches []string
	for _, s := range studies {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("estudo não encontrado: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("prefixo de ID %q é ambíguo (%d estudos)", input, len(matches))
	}
}

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Consulta o histórico de estudos",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
		newHistoryRemoveCmd(app),
		newHistoryEditCmd(app),
		newHistoryBrowseCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var methodStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista os estudos salvos",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var studies []*domain.Study
			var err error
			if methodStr != "" {
				var m domain.Method
				m, err = domain.ParseMethod(methodStr)
				if err != nil {
					return err
				}
				studies, err = app.Studies.ListByMethod(ctx, m)
			} else {
				studies, err = app.Studies.List(ctx)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStudyList(studies))
			return nil
		},
	}

	cmd.Flags().StringVar(&methodStr, "method", "", "Filtra por método (ex.: 5whys, gut, swot)")

	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Exibe um estudo completo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := resolveStudyID(ctx, app, args[0])
			if err != nil {
				return err
			}
			study, err := app.Studies.GetByID(ctx, id)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStudyDetail(study))
			return nil
		},
	}
}

func newHistoryRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove um estudo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := resolveStudyID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !yes {
				study, err := app.Studies.GetByID(ctx, id)
				if err != nil {
					return err
				}
				confirm := false
				title := fmt.Sprintf("Remover %q?", study.Title)
				if err := wizardConfirm(title, &confirm).Run(); err != nil {
					return err
				}
				if !confirm {
					return nil
				}
			}

			if err := app.Studies.Remove(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Estudo removido: %s\n", id[:8])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Remove sem pedir confirmação")

	return cmd
}

func newHistoryEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id>",
		Short: "Reabre um estudo para continuar a análise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("o comando edit requer um terminal interativo")
			}

			id, err := resolveStudyID(ctx, app, args[0])
			if err != nil {
				return err
			}
			study, err := app.Studies.LoadForEdit(ctx, id)
			if err != nil {
				return err
			}

			preloaded, err := app.Studies.TakePending(ctx)
			if err != nil {
				return err
			}
			return runMethodWizard(ctx, app, cmd, study.Method, preloaded)
		},
	}
}

func newHistoryBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Navega pelo histórico interativamente",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("o comando browse requer um terminal interativo")
			}

			view := newHistoryView(app)
			program := tea.NewProgram(view, tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}
}
