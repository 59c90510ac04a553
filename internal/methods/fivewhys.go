package methods

import (
	"strings"

	"github.com/resolvai/resolvai/internal/domain"
	"github.com/resolvai/resolvai/internal/fivewhys"
)

// BuildFiveWhys turns a completed chain into a study. The title is the
// problem statement when present.
func BuildFiveWhys(problem string, chain *fivewhys.Chain) (*domain.Study, error) {
	data, err := chain.Summary(problem)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(problem)
	if title == "" {
		title = "Análise 5 Porquês"
	}
	return &domain.Study{
		Method: domain.MethodFiveWhys,
		Title:  title,
		Data:   data,
	}, nil
}
