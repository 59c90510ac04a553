package methods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resolvai/resolvai/internal/domain"
)

func TestBuildSWOT_AllCategories(t *testing.T) {
	study, err := BuildSWOT(SWOTInput{
		Strengths:     []string{"Equipe experiente", "Boa reputação"},
		Weaknesses:    []string{"Orçamento curto"},
		Opportunities: []string{"Novo mercado"},
		Threats:       []string{"Concorrência agressiva"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Análise SWOT", study.Title)

	data := study.Data.(*domain.SWOTData)
	assert.Equal(t, 5, data.Total)
	assert.Contains(t, data.Analysis, "FORÇAS (2):\n1. Equipe experiente\n2. Boa reputação")
	assert.Contains(t, data.Analysis, "FRAQUEZAS (1):\n1. Orçamento curto")
	assert.Contains(t, data.Analysis, "OPORTUNIDADES (1):")
	assert.Contains(t, data.Analysis, "AMEAÇAS (1):")
}

func TestBuildSWOT_EmptyCategoriesStillListed(t *testing.T) {
	study, err := BuildSWOT(SWOTInput{Strengths: []string{"Única força"}})
	require.NoError(t, err)

	data := study.Data.(*domain.SWOTData)
	assert.Equal(t, 1, data.Total)
	assert.Empty(t, data.Weaknesses)
	assert.Contains(t, data.Analysis, "FRAQUEZAS (0):")
	assert.Contains(t, data.Analysis, "AMEAÇAS (0):")
}

func TestBuildSWOT_DropsBlankEntries(t *testing.T) {
	study, err := BuildSWOT(SWOTInput{
		Strengths: []string{"  ", "Força real", ""},
		Threats:   []string{"\t"},
	})
	require.NoError(t, err)

	data := study.Data.(*domain.SWOTData)
	assert.Equal(t, []string{"Força real"}, data.Strengths)
	assert.Empty(t, data.Threats)
}

func TestBuildSWOT_RequiresOneItem(t *testing.T) {
	_, err := BuildSWOT(SWOTInput{Strengths: []string{"", "  "}})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Preencha pelo menos um item em qualquer categoria.", ve.Msg)
}
