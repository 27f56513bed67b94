// Package lessons manages the lesson catalog.
package lessons

import (
	"context"
	"errors"
	"fmt"

	"github.com/cuentaconmigo/conmigo/internal/problemgen"
	"github.com/cuentaconmigo/conmigo/internal/store"
)

var (
	// ErrNotFound is returned when a lesson id does not exist.
	ErrNotFound = errors.New("lessons: not found")

	// ErrInvalidLesson is returned when a lesson fails validation.
	ErrInvalidLesson = errors.New("lessons: invalid lesson")
)

// Service provides validated CRUD access to the catalog.
type Service struct {
	repo store.LessonRepo
}

// NewService creates a Service over the given repo.
func NewService(repo store.LessonRepo) *Service {
	return &Service{repo: repo}
}

// List returns the full catalog ordered by category and position.
func (s *Service) List(ctx context.Context) ([]store.LessonRecord, error) {
	return s.repo.List(ctx)
}

// ByID returns one lesson or ErrNotFound.
func (s *Service) ByID(ctx context.Context, id int) (*store.LessonRecord, error) {
	lesson, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lesson == nil {
		return nil, ErrNotFound
	}
	return lesson, nil
}

// Create validates and stores a new lesson.
func (s *Service) Create(ctx context.Context, l *store.LessonRecord) (*store.LessonRecord, error) {
	if err := validate(l); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, l)
}

// Update validates and replaces an existing lesson.
func (s *Service) Update(ctx context.Context, l *store.LessonRecord) (*store.LessonRecord, error) {
	if err := validate(l); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, l)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete removes a lesson. Deleting a missing lesson is not an error.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func validate(l *store.LessonRecord) error {
	if l.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidLesson)
	}
	if l.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidLesson)
	}
	if !problemgen.Difficulty(l.Difficulty).Valid() {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidLesson, l.Difficulty)
	}
	if l.Points < 0 {
		return fmt.Errorf("%w: points must be non-negative", ErrInvalidLesson)
	}
	return nil
}
