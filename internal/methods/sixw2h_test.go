package methods

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resolvai/resolvai/internal/domain"
)

func TestBuildSixW2H_OnlyFilledAnswersInAnalysis(t *testing.T) {
	study, err := BuildSixW2H(domain.SixW2HData{
		What:    "Migrar o banco de dados",
		Why:     "O atual não escala",
		HowMuch: "R$ 10.000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Análise 6W2H", study.Title)

	data := study.Data.(*domain.SixW2HData)
	assert.Equal(t, 3, data.FilledCount)
	assert.Contains(t, data.Analysis, "O quê?\nMigrar o banco de dados")
	assert.Contains(t, data.Analysis, "Por quê?\nO atual não escala")
	assert.Contains(t, data.Analysis, "Quanto?\nR$ 10.000")
	assert.NotContains(t, data.Analysis, "Onde?")
	assert.NotContains(t, data.Analysis, "Quem?")
}

func TestBuildSixW2H_PreservesQuestionOrder(t *testing.T) {
	study, err := BuildSixW2H(domain.SixW2HData{
		HowMuch: "pouco",
		What:    "algo",
	})
	require.NoError(t, err)

	data := study.Data.(*domain.SixW2HData)
	assert.Less(t,
		strings.Index(data.Analysis, "O quê?"),
		strings.Index(data.Analysis, "Quanto?"))
}

func TestBuildSixW2H_RequiresOneAnswer(t *testing.T) {
	_, err := BuildSixW2H(domain.SixW2HData{What: "  "})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Preencha pelo menos uma pergunta para gerar o resumo.", ve.Msg)
}
