package methods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resolvai/resolvai/internal/domain"
)

func TestBuildDiary_WithTitleAndTags(t *testing.T) {
	study, err := BuildDiary("Retro da sprint", "Hoje o deploy atrasou duas horas.", "deploy, processo, ")
	require.NoError(t, err)
	assert.Equal(t, "Retro da sprint", study.Title)

	data := study.Data.(*domain.DiaryData)
	assert.Equal(t, []string{"deploy", "processo"}, data.Tags)
	assert.Equal(t, "Retro da sprint\n\nHoje o deploy atrasou duas horas.\n\nTags: deploy, processo", data.Analysis)
}

func TestBuildDiary_DefaultTitleNoTags(t *testing.T) {
	study, err := BuildDiary("", "Só um registro rápido.", "")
	require.NoError(t, err)

	assert.Equal(t, "Entrada de Diário", study.Title)
	data := study.Data.(*domain.DiaryData)
	assert.Empty(t, data.Tags)
	assert.Equal(t, "Entrada de Diário\n\nSó um registro rápido.", data.Analysis)
}

func TestBuildDiary_RequiresContent(t *testing.T) {
	_, err := BuildDiary("Título", "   ", "tag")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Escreva algo antes de salvar.", ve.Msg)
}
