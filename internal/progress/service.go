package progress

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cuentaconmigo/conmigo/internal/store"
)

// Service wraps the pure updater with snapshot persistence. Concurrent
// completions for the same user are serialized with a per-user mutex so
// the read-modify-write cannot lose an update.
type Service struct {
	repo store.ProgressRepo
	now  func() time.Time

	mu    sync.Mutex
	users map[uuid.UUID]*sync.Mutex
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service persisting through repo.
func NewService(repo store.ProgressRepo, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		now:   time.Now,
		users: make(map[uuid.UUID]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the user's snapshot, creating the default on first access.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*store.ProgressSnapshot, error) {
	snap, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if snap == nil {
		return DefaultSnapshot(), nil
	}
	return snap, nil
}

// Complete applies a lesson completion and persists the new snapshot.
// It returns the updated snapshot along with the achievements unlocked
// by this completion.
func (s *Service) Complete(ctx context.Context, userID uuid.UUID, lessonID, score int) (*store.ProgressSnapshot, []store.AchievementUnlock, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	snap, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load progress: %w", err)
	}

	prior := 0
	if snap != nil {
		prior = len(snap.Achievements)
	}

	next, err := Apply(snap, lessonID, score, s.now())
	if err != nil {
		return nil, nil, err
	}

	if err := s.repo.Save(ctx, userID, next); err != nil {
		return nil, nil, fmt.Errorf("save progress: %w", err)
	}

	unlocked := make([]store.AchievementUnlock, 0, len(next.Achievements)-prior)
	unlocked = append(unlocked, next.Achievements[prior:]...)
	return next, unlocked, nil
}

// Reset restores the user's snapshot to the defaults.
func (s *Service) Reset(ctx context.Context, userID uuid.UUID) (*store.ProgressSnapshot, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	snap := DefaultSnapshot()
	if err := s.repo.Save(ctx, userID, snap); err != nil {
		return nil, fmt.Errorf("reset progress: %w", err)
	}
	return snap, nil
}

func (s *Service) userLock(userID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.users[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.users[userID] = lock
	}
	return lock
}
