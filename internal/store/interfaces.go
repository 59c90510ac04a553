package store

import (
	"context"
	"errors"

	"github.com/resolvai/resolvai/internal/domain"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")

// StudyStore persists completed analyses. Upsert with an existing id
// replaces the prior entry in place; Remove of an absent id is a
// no-op. List never fails on malformed stored payloads: such rows are
// logged and skipped.
type StudyStore interface {
	List(ctx context.Context) ([]*domain.Study, error)
	GetByID(ctx context.Context, id string) (*domain.Study, error)
	Upsert(ctx context.Context, s *domain.Study) error
	Remove(ctx context.Context, id string) error
}

// SettingsStore holds the theme preference, per-provider credentials
// and the transient "edit this study" handoff slot.
type SettingsStore interface {
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error

	Credential(ctx context.Context, provider string) (string, error)
	SetCredential(ctx context.Context, provider, key string) error
	RemoveCredential(ctx context.Context, provider string) error

	// SetPendingStudy parks a study for the analyze view to pick up;
	// TakePendingStudy consumes it (subsequent calls return ErrNotFound).
	SetPendingStudy(ctx context.Context, s *domain.Study) error
	TakePendingStudy(ctx context.Context) (*domain.Study, error)
}
