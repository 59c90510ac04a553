package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/resolvai/resolvai/internal/assist"
	"github.com/resolvai/resolvai/internal/cli"
	"github.com/resolvai/resolvai/internal/cli/formatter"
	"github.com/resolvai/resolvai/internal/db"
	"github.com/resolvai/resolvai/internal/llm"
	"github.com/resolvai/resolvai/internal/service"
	"github.com/resolvai/resolvai/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Determine DB path: env var or default ~/.resolvai/resolvai.db
	dbPath := os.Getenv("RESOLVAI_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".resolvai", "resolvai.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire stores and the change bus
	studyStore := store.NewSQLiteStudyStore(database, os.Stderr)
	settingsStore := store.NewSQLiteSettingsStore(database)
	bus := store.NewBus()

	// Wire services
	var useCaseObserver service.UseCaseObserver
	llmCfg := llm.LoadConfig()
	if llmCfg.LogCalls {
		useCaseObserver = service.NewLogUseCaseObserver(os.Stderr)
	}
	studySvc := service.NewStudyService(studyStore, settingsStore, bus, useCaseObserver)
	settingsSvc := service.NewSettingsService(settingsStore)

	// Apply the persisted color theme before anything renders.
	if theme, err := settingsSvc.Theme(ctx); err == nil {
		formatter.ApplyTheme(theme)
	}

	// Stored credentials fill in for providers without an env key.
	for _, provider := range []string{"openai", "groq", "gemini"} {
		if llmCfg.Key(provider) != "" {
			continue
		}
		if key, err := settingsSvc.Credential(ctx, provider); err == nil {
			llmCfg.SetKey(provider, key)
		}
	}

	var llmObserver llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		llmObserver = llm.NewLogObserver(os.Stderr)
	}

	fallback := llm.NewFallbackClient(llm.Providers(llmCfg, llmObserver)...)

	app := &cli.App{
		Studies:  studySvc,
		Settings: settingsSvc,
		Assist:   assist.NewService(fallback),
		Bus:      bus,
	}

	app.ValidatorFor = func(provider, key string) llm.Provider {
		switch provider {
		case "openai":
			return llm.NewOpenAIClient(key, llmObserver)
		case "groq":
			return llm.NewGroqClient(key, llmObserver)
		case "gemini":
			return llm.NewGeminiClient(key, llmObserver)
		default:
			return nil
		}
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
