package assist

import (
	"fmt"
	"strings"
)

const (
	systemSuggest = "Você é um especialista em análise de causa raiz. Seja direto e objetivo nas respostas."
	systemAnalyze = "Você é um especialista em análise de causa raiz. Forneça análises detalhadas e úteis."
)

// answerContext renders prior answers for the prompt, or a marker for
// the first question.
func answerContext(previousAnswers []string) string {
	if len(previousAnswers) == 0 {
		return `Esta é a primeira pergunta "Por quê?".`
	}
	return "Respostas anteriores:\n" + answerChain(previousAnswers)
}

func answerChain(answers []string) string {
	lines := make([]string, len(answers))
	for i, a := range answers {
		lines[i] = fmt.Sprintf("Por quê %d: %s", i+1, a)
	}
	return strings.Join(lines, "\n")
}

func nextQuestionPrompt(problem string, previousAnswers []string) string {
	return fmt.Sprintf(`Você é um especialista em análise de causa raiz usando o método 5 Porquês.

Problema inicial: %s

%s

Sugira o próximo "Por quê?" que deve ser feito para continuar a investigação da causa raiz.
A resposta deve ser uma pergunta direta e específica que aprofunde a investigação.
Responda APENAS com a pergunta, sem explicações adicionais.`, problem, answerContext(previousAnswers))
}

func suggestAnswerPrompt(problem string, previousAnswers []string, currentQuestion string) string {
	return fmt.Sprintf(`Você é um especialista em análise de causa raiz usando o método 5 Porquês.

Problema inicial: %s

%s

Pergunta atual: %s

Sugira uma resposta objetiva e específica para esta pergunta que aprofunde a investigação da causa raiz.
A resposta deve ser clara, direta e focada na causa, não no sintoma.`, problem, answerContext(previousAnswers), currentQuestion)
}

func analyzePrompt(problem string, answers []string, includeQuestions bool) string {
	questionsInstruction := ""
	closing := ""
	if includeQuestions {
		questionsInstruction = `4. Se a análise precisar de mais profundidade, sugira 2-3 perguntas específicas que o usuário deve responder para continuar a investigação. Formate as perguntas de forma clara, uma por linha, começando com "Pergunta:" ou apenas listando-as.`
		closing = " Se precisar de mais informações, termine sua resposta com perguntas específicas que o usuário deve responder."
	}
	return fmt.Sprintf(`Você é um especialista em análise de causa raiz usando o método 5 Porquês.

Problema inicial: %s

Cadeia de Porquês:
%s

Analise esta cadeia de "Porquês" e:
1. Identifique a causa raiz mais provável
2. Avalie se a análise está completa ou se precisa de mais profundidade
3. Sugira melhorias se necessário
%s

Responda de forma clara e estruturada, destacando a causa raiz identificada.%s`,
		problem, answerChain(answers), questionsInstruction, closing)
}
