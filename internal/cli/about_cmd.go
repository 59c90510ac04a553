package cli

import (
	"fmt"
	"strings"

	"github.com/resolvai/resolvai/internal/cli/formatter"
	"github.com/resolvai/resolvai/internal/domain"
	"github.com/spf13/cobra"
)

var methodDescriptions = map[domain.Method]string{
	domain.MethodFiveWhys:     "Investiga a causa raiz perguntando \"por quê?\" repetidamente.",
	domain.MethodGUT:          "Prioriza problemas por Gravidade, Urgência e Tendência (1-5).",
	domain.MethodSWOT:         "Mapeia Forças, Fraquezas, Oportunidades e Ameaças.",
	domain.MethodPDCA:         "Ciclos de melhoria contínua: Planejar, Fazer, Verificar, Agir.",
	domain.MethodSMART:        "Avalia objetivos: Específico, Mensurável, Alcançável, Relevante, Temporal.",
	domain.MethodSixW2H:       "Estrutura planos com oito perguntas-guia (o quê, por quê, onde...).",
	domain.MethodDecisionTree: "Compara opções de decisão com consequências, prós e contras.",
	domain.MethodBrainstorm:   "Coleta ideias livremente, com categorização opcional.",
	domain.MethodDiary:        "Registro livre de aprendizados e decisões, com tags.",
}

func newAboutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Descreve os métodos disponíveis",
		RunE: func(cmd *cobra.Command, args []string) error {
			var b strings.Builder
			b.WriteString(formatter.Header("Métodos disponíveis"))
			b.WriteString("\n\n")

			for _, m := range domain.Methods {
				b.WriteString(fmt.Sprintf("%s (%s)\n  %s\n\n",
					formatter.Bold(string(m)),
					formatter.Dim(m.Alias()),
					methodDescriptions[m],
				))
			}

			b.WriteString(formatter.Dim("Use \"resolvai analyze <apelido>\" para iniciar uma análise."))
			b.WriteString("\n")

			fmt.Fprintln(cmd.OutOrStdout(), b.String())
			return nil
		},
	}
}
