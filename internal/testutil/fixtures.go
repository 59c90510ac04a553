package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/resolvai/resolvai/internal/domain"
)

// Study options
type StudyOption func(*domain.Study)

func WithID(id string) StudyOption {
	return func(s *domain.Study) {
		s.ID = id
	}
}

func WithDate(d time.Time) StudyOption {
	return func(s *domain.Study) {
		s.Date = d
	}
}

// WithData swaps in another method's payload and retags the study.
func WithData(data domain.StudyData) StudyOption {
	return func(s *domain.Study) {
		s.Data = data
		s.Method = data.Method()
	}
}

// NewTestStudy builds a five-whys study with a minimal valid payload.
func NewTestStudy(title string, opts ...StudyOption) *domain.Study {
	s := &domain.Study{
		ID:     uuid.New().String(),
		Method: domain.MethodFiveWhys,
		Title:  title,
		Date:   time.Now().UTC().Truncate(time.Second),
		Data: &domain.FiveWhysData{
			Problem:   title,
			Questions: []string{"Por quê 1?"},
			Answers:   []string{"falta de padronização"},
			RootCause: "falta de padronização",
			Analysis:  "Problema inicial: " + title,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
