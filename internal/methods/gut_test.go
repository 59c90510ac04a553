package methods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resolvai/resolvai/internal/domain"
)

func TestBuildGUT_PrioritizesByProduct(t *testing.T) {
	study, err := BuildGUT([]GUTInput{
		{Description: "Falta de comunicação", Gravity: 3, Urgency: 2, Tendency: 2},
		{Description: "Sistema instável", Gravity: 5, Urgency: 4, Tendency: 3},
		{Description: "Documentação incompleta", Gravity: 2, Urgency: 2, Tendency: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MethodGUT, study.Method)
	assert.Equal(t, "Análise GUT - 3 problema(s)", study.Title)

	data := study.Data.(*domain.GUTData)
	require.Len(t, data.Problems, 3)
	assert.Equal(t, "Sistema instável", data.Problems[0].Description)
	assert.Equal(t, 60, data.Problems[0].Priority)
	assert.Equal(t, "Falta de comunicação", data.Problems[1].Description)
	assert.Equal(t, 12, data.Problems[1].Priority)
	assert.Equal(t, 4, data.Problems[2].Priority)

	require.NotNil(t, data.HighestPriority)
	assert.Equal(t, "Sistema instável", data.HighestPriority.Description)
	assert.Contains(t, data.Analysis, "Análise GUT - 3 problema(s) avaliado(s)")
	assert.Contains(t, data.Analysis, "G: 5 | U: 4 | T: 3 | Prioridade: 60")
	assert.Contains(t, data.Analysis, "Problema de maior prioridade: Sistema instável (Prioridade: 60)")
}

func TestBuildGUT_TiesKeepInputOrder(t *testing.T) {
	study, err := BuildGUT([]GUTInput{
		{Description: "Primeiro", Gravity: 2, Urgency: 2, Tendency: 2},
		{Description: "Segundo", Gravity: 2, Urgency: 2, Tendency: 2},
	})
	require.NoError(t, err)

	data := study.Data.(*domain.GUTData)
	assert.Equal(t, "Primeiro", data.Problems[0].Description)
	assert.Equal(t, "Segundo", data.Problems[1].Description)
}

func TestBuildGUT_SkipsEmptyDescriptions(t *testing.T) {
	study, err := BuildGUT([]GUTInput{
		{Description: "   ", Gravity: 5, Urgency: 5, Tendency: 5},
		{Description: "Real", Gravity: 1, Urgency: 1, Tendency: 1},
	})
	require.NoError(t, err)

	data := study.Data.(*domain.GUTData)
	require.Len(t, data.Problems, 1)
	assert.Equal(t, "Real", data.Problems[0].Description)
}

func TestBuildGUT_RequiresAtLeastOneProblem(t *testing.T) {
	_, err := BuildGUT([]GUTInput{{Description: ""}})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Adicione pelo menos um problema para gerar o resumo.", ve.Msg)
}

func TestBuildGUT_RejectsOutOfRangeScores(t *testing.T) {
	_, err := BuildGUT([]GUTInput{{Description: "Problema", Gravity: 0, Urgency: 3, Tendency: 3}})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = BuildGUT([]GUTInput{{Description: "Problema", Gravity: 3, Urgency: 6, Tendency: 3}})
	assert.ErrorAs(t, err, &ve)
}
