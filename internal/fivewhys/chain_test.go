package fivewhys

import (
	"testing"

	"github.com/resolvai/resolvai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain_NewChain_StartsWithOneDefaultSlot(t *testing.T) {
	c := NewChain()

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.VisiblePrefix())
	assert.Equal(t, "Por quê 1?", c.Slot(0).Question)
}

func TestChain_VisiblePrefix_GrowsWithFilledAnswers(t *testing.T) {
	c := NewChain()
	c.SetAnswer(0, "a máquina parou")
	c.SetAnswer(1, "")

	// Slot 1 is materialized but default+empty, so it is the frontier.
	assert.Equal(t, 2, c.VisiblePrefix())
}

func TestChain_VisiblePrefix_CustomQuestionCountsAsFilled(t *testing.T) {
	c := NewChain()
	c.SetQuestion(0, "Por que a entrega atrasou?")
	c.SetAnswer(1, "")

	assert.Equal(t, 2, c.VisiblePrefix())
}

func TestChain_VisiblePrefix_StopsAtFirstEmptySlot(t *testing.T) {
	c := NewChain()
	c.SetAnswer(0, "resposta 1")
	c.SetAnswer(1, "")
	c.SetAnswer(2, "resposta 3")

	// Slot 1 is default+empty: slot 2 stays hidden even though filled.
	assert.Equal(t, 2, c.VisiblePrefix())
}

func TestChain_AddSlot_RequiresFilledLastSlot(t *testing.T) {
	c := NewChain()

	assert.False(t, c.CanAddSlot())
	assert.False(t, c.AddSlot())
	assert.Equal(t, 1, c.Len())

	c.SetAnswer(0, "porque o filtro entupiu")
	assert.True(t, c.CanAddSlot())
	assert.True(t, c.AddSlot())
	assert.Equal(t, 2, c.Len())

	// New slot is empty again, so no further growth.
	assert.False(t, c.AddSlot())
}

func TestChain_SetAnswer_ClearsPendingSuggestion(t *testing.T) {
	c := NewChain()
	token := c.MarkPending(0)

	c.SetAnswer(0, "edição manual")

	assert.False(t, c.ApplySuggestion(token, "sugestão atrasada"))
	assert.Equal(t, "edição manual", c.Slot(0).Answer)
}

func TestChain_ApplySuggestion_BoundToToken(t *testing.T) {
	c := NewChain()
	c.SetAnswer(0, "resposta 1")
	token := c.MarkPending(1)

	// Slot layout changes while the request is in flight.
	c.AppendFollowUp("Por que o fornecedor falhou?", "sem contrato de SLA")

	require.True(t, c.ApplySuggestion(token, "porque faltou manutenção"))
	assert.Equal(t, "porque faltou manutenção", c.Slot(1).Answer)
	assert.Equal(t, "sem contrato de SLA", c.Slot(2).Answer)
}

func TestChain_ApplySuggestion_UnknownTokenDropped(t *testing.T) {
	c := NewChain()
	c.MarkPending(0)

	assert.False(t, c.ApplySuggestion("missing-token", "qualquer coisa"))
	assert.Empty(t, c.Slot(0).Answer)
}

func TestChain_FilledAnswers_OnlyBeforeIndex(t *testing.T) {
	c := NewChain()
	c.SetAnswer(0, "primeira")
	c.SetAnswer(1, "")
	c.SetAnswer(2, "terceira")

	assert.Equal(t, []string{"primeira"}, c.FilledAnswers(2))
	assert.Equal(t, []string{"primeira", "terceira"}, c.FilledAnswers(3))
}

func TestChain_Summary_StopsAtDefaultEmptySlot(t *testing.T) {
	c := NewChain()
	c.SetAnswer(0, "because Y")
	c.SetAnswer(1, "")

	data, err := c.Summary("X")
	require.NoError(t, err)

	assert.Equal(t, []string{"Por quê 1?"}, data.Questions)
	assert.Equal(t, []string{"because Y"}, data.Answers)
	assert.Equal(t, "because Y", data.RootCause)
	assert.Contains(t, data.Analysis, "Problema inicial: X")
	assert.Contains(t, data.Analysis, "Causa raiz identificada: because Y")
}

func TestChain_Summary_RootCauseFallsBackToQuestion(t *testing.T) {
	c := NewChain()
	c.SetQuestion(0, "Por que o processo falha sob carga?")

	data, err := c.Summary("sistema instável")
	require.NoError(t, err)

	assert.Empty(t, data.Answers)
	assert.Equal(t, "Por que o processo falha sob carga?", data.RootCause)
}

func TestChain_Summary_EmptyChainFails(t *testing.T) {
	c := NewChain()

	_, err := c.Summary("problema")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNothingFilled)
}

func TestChain_Summary_UnansweredSlotRendersPlaceholder(t *testing.T) {
	c := NewChain()
	c.SetAnswer(0, "resposta 1")
	c.SetQuestion(1, "Por que não houve inspeção?")

	data, err := c.Summary("defeito recorrente")
	require.NoError(t, err)

	assert.Contains(t, data.Analysis, "Resposta: (sem resposta)")
	assert.Equal(t, "resposta 1", data.RootCause)
}

func TestChain_NewChainFromStudy_AppendsContinuationSlot(t *testing.T) {
	data := &domain.FiveWhysData{
		Problem:   "entregas atrasadas",
		Questions: []string{"Por quê 1?", "Por quê 2?"},
		Answers:   []string{"rota ruim", "sem planejamento"},
	}

	c := NewChainFromStudy(data)

	require.Equal(t, 3, c.Len())
	assert.Equal(t, "rota ruim", c.Slot(0).Answer)
	assert.Equal(t, "sem planejamento", c.Slot(1).Answer)
	assert.Equal(t, "Por quê 3?", c.Slot(2).Question)
	assert.Equal(t, 3, c.VisiblePrefix())
}
