package cli

import (
	"github.com/resolvai/resolvai/internal/assist"
	"github.com/resolvai/resolvai/internal/llm"
	"github.com/resolvai/resolvai/internal/service"
	"github.com/resolvai/resolvai/internal/store"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Studies  service.StudyService
	Settings service.SettingsService

	// Assist is nil-safe: it reports Available() false when no AI
	// provider is configured and commands degrade gracefully.
	Assist *assist.Service

	// Bus delivers study change notifications to the history browser.
	Bus *store.Bus

	// ValidatorFor builds a provider client for credential testing.
	ValidatorFor func(provider, key string) llm.Provider

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "resolvai" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "resolvai",
		Short: "Ferramentas estruturadas de resolução de problemas",
		Long: "ResolvAI guia análises com métodos consagrados (5 Porquês, GUT, SWOT,\n" +
			"PDCA, SMART, 6W2H, Árvore de Decisão, Brainstorm e Diário) e mantém\n" +
			"um histórico local dos estudos realizados.",
	}

	root.AddCommand(
		newAnalyzeCmd(app),
		newHistoryCmd(app),
		newSettingsCmd(app),
		newAboutCmd(app),
	)

	return root
}
