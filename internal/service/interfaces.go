package service

import (
	"context"

	"github.com/resolvai/resolvai/internal/domain"
)

type StudyService interface {
	// Save persists a study. A study without an ID gets one assigned;
	// an existing ID replaces the prior entry. Date is refreshed to
	// the moment of the save either way.
	Save(ctx context.Context, s *domain.Study) error
	GetByID(ctx context.Context, id string) (*domain.Study, error)
	List(ctx context.Context) ([]*domain.Study, error)
	ListByMethod(ctx context.Context, m domain.Method) ([]*domain.Study, error)
	Remove(ctx context.Context, id string) error

	// LoadForEdit parks a stored study so the next analyze run opens
	// it pre-filled. TakePending consumes the parked study.
	LoadForEdit(ctx context.Context, id string) (*domain.Study, error)
	TakePending(ctx context.Context) (*domain.Study, error)
}

type SettingsService interface {
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
	Credential(ctx context.Context, provider string) (string, error)
	SetCredential(ctx context.Context, provider, key string) error
	RemoveCredential(ctx context.Context, provider string) error
}
