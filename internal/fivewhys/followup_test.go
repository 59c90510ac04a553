package fivewhys

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFollowUps_StripsMarkersAndNumbering(t *testing.T) {
	analysis := strings.Join([]string{
		"A causa raiz mais provável é a falta de manutenção preventiva.",
		"1. Why did this happen exactly now?",
		"2. Some long enough statement to qualify here?",
		"Short?",
	}, "\n")

	got := ExtractFollowUps(analysis)

	assert.Equal(t, []string{
		"Why did this happen exactly now?",
		"Some long enough statement to qualify here?",
	}, got)
}

func TestExtractFollowUps_StripsPerguntaPrefix(t *testing.T) {
	analysis := strings.Join([]string{
		"Análise concluída.",
		"Pergunta: Por que o fornecedor não foi auditado este ano?",
		"- Questão: Quando foi a última calibração do equipamento?",
	}, "\n")

	got := ExtractFollowUps(analysis)

	assert.Equal(t, []string{
		"Por que o fornecedor não foi auditado este ano?",
		"Quando foi a última calibração do equipamento?",
	}, got)
}

func TestExtractFollowUps_Deduplicates(t *testing.T) {
	analysis := strings.Join([]string{
		"Por que o turno da noite tem mais falhas?",
		"Pergunta: Por que o turno da noite tem mais falhas?",
	}, "\n")

	got := ExtractFollowUps(analysis)
	assert.Len(t, got, 1)
}

func TestExtractFollowUps_CapsAtThree(t *testing.T) {
	analysis := strings.Join([]string{
		"Por que a primeira verificação não detectou o erro?",
		"Por que a segunda verificação não detectou o erro?",
		"Por que a terceira verificação não detectou o erro?",
		"Por que a quarta verificação não detectou o erro?",
	}, "\n")

	got := ExtractFollowUps(analysis)
	assert.Len(t, got, 3)
}

func TestExtractFollowUps_FallbackScansLastFiveLines(t *testing.T) {
	// The numbered line is too short once its numbering is stripped, so
	// the generic scan rejects it; the tail scan keeps it verbatim.
	analysis := strings.Join([]string{
		"linha 1 sem pergunta",
		"linha 2 sem pergunta",
		"linha 3 sem pergunta",
		"1) Como resolver?",
	}, "\n")

	got := ExtractFollowUps(analysis)
	assert.Equal(t, []string{"1) Como resolver?"}, got)
}

func TestExtractFollowUps_EmptyAnalysis(t *testing.T) {
	assert.Nil(t, ExtractFollowUps(""))
	assert.Empty(t, ExtractFollowUps("nenhuma pergunta aqui."))
}
