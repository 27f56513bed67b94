package adaptive

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cuentaconmigo/conmigo/internal/problemgen"
	"github.com/cuentaconmigo/conmigo/internal/store"
)

// mockAttemptRepo implements store.AttemptRepo for adaptive tests.
type mockAttemptRepo struct {
	records []store.AttemptRecord
}

func (m *mockAttemptRepo) Append(_ context.Context, rec store.AttemptRecord) error {
	m.records = append([]store.AttemptRecord{rec}, m.records...)
	return nil
}

func (m *mockAttemptRepo) Recent(_ context.Context, _ uuid.UUID, limit int) ([]store.AttemptRecord, error) {
	if limit > 0 && len(m.records) > limit {
		return m.records[:limit], nil
	}
	return m.records, nil
}

func TestNextDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		current problemgen.Difficulty
		rate    float64
		want    problemgen.Difficulty
	}{
		{"perfect promotes beginner", problemgen.Beginner, 1.0, problemgen.Intermediate},
		{"perfect promotes intermediate", problemgen.Intermediate, 1.0, problemgen.Advanced},
		{"advanced caps", problemgen.Advanced, 1.0, problemgen.Advanced},
		{"threshold promotes inclusively", problemgen.Beginner, 0.8, problemgen.Intermediate},
		{"zero demotes advanced", problemgen.Advanced, 0.0, problemgen.Intermediate},
		{"zero demotes intermediate", problemgen.Intermediate, 0.0, problemgen.Beginner},
		{"beginner floors", problemgen.Beginner, 0.0, problemgen.Beginner},
		{"threshold demotes inclusively", problemgen.Advanced, 0.5, problemgen.Intermediate},
		{"open band holds", problemgen.Intermediate, 0.65, problemgen.Intermediate},
		{"just above demote holds", problemgen.Beginner, 0.51, problemgen.Beginner},
		{"just below promote holds", problemgen.Advanced, 0.79, problemgen.Advanced},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextDifficulty(tt.current, tt.rate); got != tt.want {
				t.Errorf("NextDifficulty(%s, %.2f) = %s, want %s", tt.current, tt.rate, got, tt.want)
			}
		})
	}
}

func attempt(difficulty string, correct bool) store.AttemptRecord {
	return store.AttemptRecord{
		Difficulty: difficulty,
		Operation:  "addition",
		IsCorrect:  correct,
		Timestamp:  time.Now(),
	}
}

func TestSuccessRateEmptyHistory(t *testing.T) {
	svc := NewService(&mockAttemptRepo{})

	rate, err := svc.SuccessRate(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("success rate: %v", err)
	}
	if rate != 0 {
		t.Errorf("rate = %v, want 0 for empty history", rate)
	}
}

func TestSuccessRateWindow(t *testing.T) {
	repo := &mockAttemptRepo{}
	// 15 attempts: the 10 most recent are all correct, the 5 oldest wrong.
	for i := 0; i < 5; i++ {
		repo.Append(context.Background(), attempt("beginner", false))
	}
	for i := 0; i < 10; i++ {
		repo.Append(context.Background(), attempt("beginner", true))
	}

	svc := NewService(repo)
	rate, err := svc.SuccessRate(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("success rate: %v", err)
	}
	if rate != 1.0 {
		t.Errorf("rate = %v, want 1.0 (window excludes older wrong answers)", rate)
	}
}

func TestSuccessRatePartial(t *testing.T) {
	repo := &mockAttemptRepo{}
	for i := 0; i < 3; i++ {
		repo.Append(context.Background(), attempt("beginner", true))
	}
	repo.Append(context.Background(), attempt("beginner", false))

	svc := NewService(repo)
	rate, err := svc.SuccessRate(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("success rate: %v", err)
	}
	if rate != 0.75 {
		t.Errorf("rate = %v, want 0.75", rate)
	}
}

func TestTargetNewUserStartsAtBeginner(t *testing.T) {
	svc := NewService(&mockAttemptRepo{})

	target, err := svc.Target(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("target: %v", err)
	}
	if target != problemgen.Beginner {
		t.Errorf("target = %s, want beginner", target)
	}
}

func TestTargetPromotesOnHighRate(t *testing.T) {
	repo := &mockAttemptRepo{}
	for i := 0; i < 10; i++ {
		repo.Append(context.Background(), attempt("beginner", true))
	}

	svc := NewService(repo)
	target, err := svc.Target(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("target: %v", err)
	}
	if target != problemgen.Intermediate {
		t.Errorf("target = %s, want intermediate", target)
	}
}

func TestTargetDemotesOnLowRate(t *testing.T) {
	repo := &mockAttemptRepo{}
	for i := 0; i < 10; i++ {
		repo.Append(context.Background(), attempt("advanced", i%3 == 0))
	}

	svc := NewService(repo)
	target, err := svc.Target(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("target: %v", err)
	}
	if target != problemgen.Intermediate {
		t.Errorf("target = %s, want intermediate", target)
	}
}
