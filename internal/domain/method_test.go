package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input string
		want  Method
	}{
		{"5whys", MethodFiveWhys},
		{"porques", MethodFiveWhys},
		{"5 Porquês", MethodFiveWhys},
		{"gut", MethodGUT},
		{"GUT", MethodGUT},
		{"arvore", MethodDecisionTree},
		{"Árvore de Decisão", MethodDecisionTree},
		{"diario", MethodDiary},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMethod(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMethod_Unknown(t *testing.T) {
	_, err := ParseMethod("ishikawa")
	assert.Error(t, err)
}

func TestAlias_RoundTrips(t *testing.T) {
	for _, m := range Methods {
		got, err := ParseMethod(m.Alias())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}
