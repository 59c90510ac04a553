// Package assist turns five-whys chain state into LLM prompts and
// returns suggestions ready to drop into the wizard.
package assist

import (
	"context"
	"strings"

	"github.com/resolvai/resolvai/internal/llm"
)

const suggestionTemperature = 0.7

// Token budgets per operation. A next-question suggestion is one
// sentence; a root-cause analysis runs several paragraphs.
const (
	maxTokensNextQuestion = 150
	maxTokensAnswer       = 200
	maxTokensAnalysis     = 500
)

// Service produces AI suggestions for the five-whys flow.
type Service struct {
	provider llm.Provider
}

func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// Available reports whether any provider is credentialed.
func (s *Service) Available() bool {
	return s.provider.Configured()
}

// SuggestNextQuestion proposes the next "Por quê?" to ask.
func (s *Service) SuggestNextQuestion(ctx context.Context, problem string, previousAnswers []string) (string, error) {
	text, err := s.provider.Complete(ctx, llm.CompletionRequest{
		System:      systemSuggest,
		Prompt:      nextQuestionPrompt(problem, previousAnswers),
		MaxTokens:   maxTokensNextQuestion,
		Temperature: suggestionTemperature,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// SuggestAnswer proposes an answer for the question currently open.
func (s *Service) SuggestAnswer(ctx context.Context, problem string, previousAnswers []string, currentQuestion string) (string, error) {
	text, err := s.provider.Complete(ctx, llm.CompletionRequest{
		System:      systemSuggest,
		Prompt:      suggestAnswerPrompt(problem, previousAnswers, currentQuestion),
		MaxTokens:   maxTokensAnswer,
		Temperature: suggestionTemperature,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// AnalyzeRootCause reviews the whole chain. When includeQuestions is
// set the model is asked to close with follow-up questions, which the
// caller can extract and feed back into the chain.
func (s *Service) AnalyzeRootCause(ctx context.Context, problem string, answers []string, includeQuestions bool) (string, error) {
	text, err := s.provider.Complete(ctx, llm.CompletionRequest{
		System:      systemAnalyze,
		Prompt:      analyzePrompt(problem, answers, includeQuestions),
		MaxTokens:   maxTokensAnalysis,
		Temperature: suggestionTemperature,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
