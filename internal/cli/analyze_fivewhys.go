package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/resolvai/resolvai/internal/cli/formatter"
	"github.com/resolvai/resolvai/internal/domain"
	"github.com/resolvai/resolvai/internal/fivewhys"
	"github.com/resolvai/resolvai/internal/llm"
	"github.com/resolvai/resolvai/internal/methods"
	"github.com/spf13/cobra"
)

// runFiveWhysWizard drives the interactive 5-Whys investigation: a
// growing question chain with optional AI suggestions per slot and an
// AI root cause analysis with follow-up questions at the end.
func runFiveWhysWizard(ctx context.Context, app *App, cmd *cobra.Command, preloaded *domain.Study) error {
	out := cmd.OutOrStdout()

	var problem string
	chain := fivewhys.NewChain()
	if preloaded != nil {
		if data, ok := preloaded.Data.(*domain.FiveWhysData); ok {
			problem = data.Problem
			chain = fivewhys.NewChainFromStudy(data)
		}
	}

	if err := wizardInputText("Qual é o problema?", "Descreva o problema a investigar", true, &problem).Run(); err != nil {
		return err
	}

	assistOn := app.Assist != nil && app.Assist.Available()
	if !assistOn {
		fmt.Fprintln(out, formatter.Dim("Nenhuma chave de IA configurada. Sugestões automáticas desativadas."))
	}

investigate:
	for i := 0; i < chain.VisiblePrefix(); i++ {
		slot := chain.Slot(i)

		fmt.Fprintf(out, "\n%s\n", formatter.Header(slot.Question))
		if a := strings.TrimSpace(slot.Answer); a != "" {
			fmt.Fprintf(out, "%s %s\n", formatter.Dim("Resposta atual:"), a)
		}

		action, err := pickSlotAction(i, assistOn)
		if err != nil {
			return err
		}

		switch action {
		case "answer":
			answer := slot.Answer
			if err := wizardTextArea(slot.Question, "Sua resposta", &answer).Run(); err != nil {
				return err
			}
			chain.SetAnswer(i, answer)

		case "suggest":
			token := chain.MarkPending(i)
			suggestion, err := askAI(out, "Gerando sugestão de resposta...", func() (string, error) {
				return app.Assist.SuggestAnswer(ctx, problem, chain.FilledAnswers(i), chain.Slot(i).Question)
			})
			if err != nil {
				continue
			}
			fmt.Fprintf(out, "\n%s %s\n", formatter.Bold("Sugestão:"), suggestion)

			accept := true
			if err := wizardConfirm("Usar esta resposta?", &accept).Run(); err != nil {
				return err
			}
			if accept {
				chain.ApplySuggestion(token, suggestion)
			}

		case "question":
			suggestion, err := askAI(out, "Gerando próxima pergunta...", func() (string, error) {
				return app.Assist.SuggestNextQuestion(ctx, problem, chain.FilledAnswers(i))
			})
			if err != nil {
				continue
			}
			fmt.Fprintf(out, "\n%s %s\n", formatter.Bold("Pergunta sugerida:"), suggestion)

			accept := true
			if err := wizardConfirm("Usar esta pergunta?", &accept).Run(); err != nil {
				return err
			}
			if accept {
				chain.SetQuestion(i, suggestion)
			}
			i-- // revisit the slot with its new question

		case "edit":
			question := slot.Question
			if err := wizardInputText("Nova pergunta", slot.Question, true, &question).Run(); err != nil {
				return err
			}
			chain.SetQuestion(i, question)
			i-- // revisit the slot with its new question

		case "done":
			break investigate
		}

		// The chain grows one slot at a time, only past a filled tail.
		if i == chain.Len()-1 && chain.CanAddSlot() {
			more := true
			if err := wizardConfirm("Perguntar o próximo \"Por quê?\"", &more).Run(); err != nil {
				return err
			}
			if !more {
				break investigate
			}
			chain.AddSlot()
		}
	}

	if assistOn {
		if err := runRootCauseAnalysis(ctx, app, cmd, problem, chain); err != nil {
			return err
		}
	}

	study, err := methods.BuildFiveWhys(problem, chain)
	return finishStudy(ctx, app, cmd, study, err, preloaded)
}

// pickSlotAction shows the per-slot menu. The conclude option only
// appears after the first why.
func pickSlotAction(i int, assistOn bool) (string, error) {
	options := []huh.Option[string]{
		huh.NewOption("Responder", "answer"),
	}
	if assistOn {
		options = append(options,
			huh.NewOption("Sugerir resposta com IA", "suggest"),
			huh.NewOption("Sugerir pergunta com IA", "question"),
		)
	}
	options = append(options, huh.NewOption("Editar pergunta", "edit"))
	if i > 0 {
		options = append(options, huh.NewOption("Concluir análise", "done"))
	}

	var action string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("O que deseja fazer?").
				Options(options...).
				Value(&action),
		),
	).WithTheme(resolvaiHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", err
	}
	return action, nil
}

// askAI runs fn behind a spinner. Failures are reported inline with a
// friendly message and never abort the investigation.
func askAI(out io.Writer, message string, fn func() (string, error)) (string, error) {
	stop := formatter.StartSpinner(message)
	result, err := fn()
	stop()
	if err != nil {
		fmt.Fprintln(out, formatter.StyleYellow.Render(llm.UserMessage(err)))
		return "", err
	}
	return result, nil
}

// runRootCauseAnalysis asks the AI for a root cause review of the
// filled chain and offers each extracted follow-up question as a new
// investigation step.
func runRootCauseAnalysis(ctx context.Context, app *App, cmd *cobra.Command, problem string, chain *fivewhys.Chain) error {
	out := cmd.OutOrStdout()

	answers := chain.FilledAnswers(chain.Len())
	if len(answers) == 0 {
		return nil
	}

	wantAnalysis := true
	if err := wizardConfirm("Analisar causa raiz com IA?", &wantAnalysis).Run(); err != nil {
		return err
	}
	if !wantAnalysis {
		return nil
	}

	for {
		analysis, err := askAI(out, "Analisando causa raiz...", func() (string, error) {
			return app.Assist.AnalyzeRootCause(ctx, problem, chain.FilledAnswers(chain.Len()), true)
		})
		if err != nil {
			return nil
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, formatter.RenderBox("Análise da IA", analysis))

		appended := 0
		for _, question := range fivewhys.ExtractFollowUps(analysis) {
			add := false
			if err := wizardConfirm(fmt.Sprintf("Adicionar pergunta de acompanhamento: %q?", question), &add).Run(); err != nil {
				return err
			}
			if !add {
				continue
			}

			var answer string
			if err := wizardTextArea(question, "Sua resposta", &answer).Run(); err != nil {
				return err
			}
			chain.AppendFollowUp(question, answer)
			appended++
		}

		// New answers may shift the root cause; offer a fresh pass.
		if appended == 0 {
			return nil
		}
		again := false
		if err := wizardConfirm("Analisar novamente com as novas respostas?", &again).Run(); err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}
