package domain

import "fmt"

// Method identifies which problem-solving framework produced a study.
// The values are the display labels persisted by the application, so
// stored studies remain readable without a lookup table.
type Method string

const (
	MethodFiveWhys     Method = "5 Porquês"
	MethodGUT          Method = "GUT"
	MethodSWOT         Method = "SWOT"
	MethodPDCA         Method = "PDCA"
	MethodSMART        Method = "SMART"
	MethodSixW2H       Method = "6W2H"
	MethodDecisionTree Method = "Árvore de Decisão"
	MethodBrainstorm   Method = "Brainstorm"
	MethodDiary        Method = "Diário"
)

// Methods lists every supported method in presentation order.
var Methods = []Method{
	MethodFiveWhys,
	MethodGUT,
	MethodSWOT,
	MethodPDCA,
	MethodSMART,
	MethodSixW2H,
	MethodDecisionTree,
	MethodBrainstorm,
	MethodDiary,
}

// ValidMethods is the canonical membership set.
var ValidMethods = func() map[Method]bool {
	m := make(map[Method]bool, len(Methods))
	for _, v := range Methods {
		m[v] = true
	}
	return m
}()

// ParseMethod resolves a method label or one of the short CLI aliases
// (e.g. "5whys", "gut", "swot") to its canonical Method value.
func ParseMethod(s string) (Method, error) {
	if ValidMethods[Method(s)] {
		return Method(s), nil
	}
	if m, ok := methodAliases[s]; ok {
		return m, nil
	}
	return "", fmt.Errorf("unknown method %q", s)
}

var methodAliases = map[string]Method{
	"5whys":         MethodFiveWhys,
	"five-whys":     MethodFiveWhys,
	"porques":       MethodFiveWhys,
	"gut":           MethodGUT,
	"swot":          MethodSWOT,
	"pdca":          MethodPDCA,
	"smart":         MethodSMART,
	"6w2h":          MethodSixW2H,
	"decision-tree": MethodDecisionTree,
	"arvore":        MethodDecisionTree,
	"brainstorm":    MethodBrainstorm,
	"diary":         MethodDiary,
	"diario":        MethodDiary,
}

// Alias returns the short CLI alias for a method, used in command help.
func (m Method) Alias() string {
	switch m {
	case MethodFiveWhys:
		return "5whys"
	case MethodGUT:
		return "gut"
	case MethodSWOT:
		return "swot"
	case MethodPDCA:
		return "pdca"
	case MethodSMART:
		return "smart"
	case MethodSixW2H:
		return "6w2h"
	case MethodDecisionTree:
		return "decision-tree"
	case MethodBrainstorm:
		return "brainstorm"
	case MethodDiary:
		return "diary"
	default:
		return string(m)
	}
}
