package cli

import (
	"fmt"

	"github.com/resolvai/resolvai/internal/cli/formatter"
	"github.com/resolvai/resolvai/internal/llm"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Configurações de tema e credenciais de IA",
	}

	cmd.AddCommand(
		newSettingsThemeCmd(app),
		newSettingsKeyCmd(app),
	)

	return cmd
}

func newSettingsThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [dark|light]",
		Short: "Mostra ou define o tema de cores",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) == 0 {
				theme, err := app.Settings.Theme(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Tema atual: %s\n", theme)
				return nil
			}

			if err := app.Settings.SetTheme(ctx, args[0]); err != nil {
				return err
			}
			formatter.ApplyTheme(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Tema definido: %s\n", args[0])
			return nil
		},
	}
}

func newSettingsKeyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Gerencia chaves de API dos provedores de IA",
	}

	cmd.AddCommand(
		newSettingsKeySetCmd(app),
		newSettingsKeyTestCmd(app),
		newSettingsKeyRemoveCmd(app),
	)

	return cmd
}

func newSettingsKeySetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <openai|groq|gemini>",
		Short: "Grava a chave de API de um provedor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			provider := args[0]

			var key string
			if err := wizardInputText("Chave de API para "+provider, "", true, &key).Run(); err != nil {
				return err
			}

			if err := app.Settings.SetCredential(ctx, provider, key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Chave gravada para %s.\n", provider)
			return nil
		},
	}
}

func newSettingsKeyTestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "test <openai|groq|gemini>",
		Short: "Valida a chave gravada contra a API do provedor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			provider := args[0]
			out := cmd.OutOrStdout()

			key, err := app.Settings.Credential(ctx, provider)
			if err != nil {
				return err
			}
			if app.ValidatorFor == nil {
				return fmt.Errorf("validação de credencial indisponível")
			}

			client := app.ValidatorFor(provider, key)
			if client == nil {
				return fmt.Errorf("provedor desconhecido: %q", provider)
			}

			stop := formatter.StartSpinner("Validando chave...")
			err = client.ValidateCredential(ctx)
			stop()

			if err != nil {
				fmt.Fprintln(out, formatter.StyleRed.Render("✗ "+llm.UserMessage(err)))
				return nil
			}
			fmt.Fprintln(out, formatter.StyleGreen.Render("✓ Chave válida."))
			return nil
		},
	}
}

func newSettingsKeyRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <openai|groq|gemini>",
		Short: "Remove a chave gravada de um provedor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.RemoveCredential(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Chave removida de %s.\n", args[0])
			return nil
		},
	}
}
