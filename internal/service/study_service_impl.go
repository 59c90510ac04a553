package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/resolvai/resolvai/internal/domain"
	"github.com/resolvai/resolvai/internal/store"
)

type studyService struct {
	studies  store.StudyStore
	settings store.SettingsStore
	bus      *store.Bus
	observer UseCaseObserver
}

func NewStudyService(studies store.StudyStore, settings store.SettingsStore, bus *store.Bus, observer UseCaseObserver) StudyService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &studyService{studies: studies, settings: settings, bus: bus, observer: observer}
}

func (s *studyService) Save(ctx context.Context, study *domain.Study) error {
	start := time.Now()

	if study.Data == nil {
		return fmt.Errorf("study has no payload")
	}
	if !domain.ValidMethods[study.Method] {
		return fmt.Errorf("unknown study method %q", study.Method)
	}
	if study.ID == "" {
		study.ID = uuid.New().String()
	}
	study.Date = time.Now().UTC()

	err := s.studies.Upsert(ctx, study)
	s.observe(ctx, start, "study_save", err, map[string]any{
		"study_id": study.ID,
		"method":   string(study.Method),
	})
	if err != nil {
		return err
	}

	s.bus.Publish(store.Event{Kind: store.EventSaved, StudyID: study.ID})
	return nil
}

func (s *studyService) GetByID(ctx context.Context, id string) (*domain.Study, error) {
	return s.studies.GetByID(ctx, id)
}

func (s *studyService) List(ctx context.Context) ([]*domain.Study, error) {
	return s.studies.List(ctx)
}

func (s *studyService) ListByMethod(ctx context.Context, m domain.Method) ([]*domain.Study, error) {
	all, err := s.studies.List(ctx)
	if err != nil {
		return nil, err
	}
	var filtered []*domain.Study
	for _, study := range all {
		if study.Method == m {
			filtered = append(filtered, study)
		}
	}
	return filtered, nil
}

func (s *studyService) Remove(ctx context.Context, id string) error {
	start := time.Now()

	err := s.studies.Remove(ctx, id)
	s.observe(ctx, start, "study_remove", err, map[string]any{"study_id": id})
	if err != nil {
		return err
	}

	s.bus.Publish(store.Event{Kind: store.EventRemoved, StudyID: id})
	return nil
}

func (s *studyService) LoadForEdit(ctx context.Context, id string) (*domain.Study, error) {
	study, err := s.studies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.settings.SetPendingStudy(ctx, study); err != nil {
		return nil, err
	}
	return study, nil
}

func (s *studyService) TakePending(ctx context.Context) (*domain.Study, error) {
	return s.settings.TakePendingStudy(ctx)
}

func (s *studyService) observe(ctx context.Context, start time.Time, name string, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
}
