package progress

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cuentaconmigo/conmigo/internal/store"
)

// mockProgressRepo implements store.ProgressRepo guarded by its own
// mutex, so it can detect lost updates but not prevent them.
type mockProgressRepo struct {
	mu    sync.Mutex
	snaps map[uuid.UUID]*store.ProgressSnapshot
}

func newMockProgressRepo() *mockProgressRepo {
	return &mockProgressRepo{snaps: make(map[uuid.UUID]*store.ProgressSnapshot)}
}

func (m *mockProgressRepo) Get(_ context.Context, userID uuid.UUID) (*store.ProgressSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap, ok := m.snaps[userID]
	if !ok {
		return nil, nil
	}
	cp := *snap
	return &cp, nil
}

func (m *mockProgressRepo) Save(_ context.Context, userID uuid.UUID, snap *store.ProgressSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *snap
	m.snaps[userID] = &cp
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestServiceGetDefaultsOnFirstAccess(t *testing.T) {
	svc := NewService(newMockProgressRepo())

	snap, err := svc.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if snap.Level != 1 || snap.Points != 0 || snap.LessonsCompleted != 0 {
		t.Errorf("unexpected defaults: %+v", snap)
	}
}

func TestServiceCompletePersists(t *testing.T) {
	repo := newMockProgressRepo()
	svc := NewService(repo, WithClock(fixedClock(monday)))
	userID := uuid.New()

	snap, unlocked, err := svc.Complete(context.Background(), userID, 5, 100)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if snap.Points != 100 || snap.Level != 2 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
	if len(unlocked) == 0 {
		t.Error("expected newly unlocked achievements")
	}

	stored, err := svc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Points != 100 {
		t.Errorf("stored points = %d, want 100", stored.Points)
	}
}

func TestServiceCompleteReportsOnlyNewUnlocks(t *testing.T) {
	repo := newMockProgressRepo()
	svc := NewService(repo, WithClock(fixedClock(monday)))
	userID := uuid.New()

	_, first, err := svc.Complete(context.Background(), userID, 1, 100)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	// First lesson plus perfect score.
	if len(first) != 2 {
		t.Fatalf("first completion unlocked %d, want 2: %+v", len(first), first)
	}

	_, second, err := svc.Complete(context.Background(), userID, 2, 50)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("second completion re-reported unlocks: %+v", second)
	}
}

func TestServiceReset(t *testing.T) {
	repo := newMockProgressRepo()
	svc := NewService(repo, WithClock(fixedClock(monday)))
	userID := uuid.New()

	if _, _, err := svc.Complete(context.Background(), userID, 1, 100); err != nil {
		t.Fatalf("complete: %v", err)
	}

	snap, err := svc.Reset(context.Background(), userID)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if snap.Level != 1 || snap.Points != 0 || len(snap.Achievements) != 0 {
		t.Errorf("reset snapshot = %+v", snap)
	}

	stored, err := svc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Points != 0 {
		t.Errorf("stored points after reset = %d", stored.Points)
	}
}

func TestServiceSerializesConcurrentCompletions(t *testing.T) {
	repo := newMockProgressRepo()
	svc := NewService(repo, WithClock(fixedClock(monday)))
	userID := uuid.New()

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(lesson int) {
			defer wg.Done()
			if _, _, err := svc.Complete(context.Background(), userID, lesson, 10); err != nil {
				t.Errorf("complete %d: %v", lesson, err)
			}
		}(i + 1)
	}
	wg.Wait()

	snap, err := svc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if snap.Points != workers*10 {
		t.Errorf("points = %d, want %d (lost update)", snap.Points, workers*10)
	}
	if snap.LessonsCompleted != workers {
		t.Errorf("lessonsCompleted = %d, want %d", snap.LessonsCompleted, workers)
	}
}
