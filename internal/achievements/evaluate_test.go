package achievements

import (
	"testing"
	"time"

	"github.com/cuentaconmigo/conmigo/internal/store"
)

var testTime = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestCatalogIsStable(t *testing.T) {
	catalog := Catalog()
	if len(catalog) != 6 {
		t.Fatalf("catalog has %d entries, want 6", len(catalog))
	}

	wantTitles := []string{
		"Primeros pasos",
		"Matemático novato",
		"Matemático intermedio",
		"Matemático experto",
		"Perfección",
		"Racha ganadora",
	}
	for i, def := range catalog {
		if def.ID != i+1 {
			t.Errorf("entry %d has id %d, want %d", i, def.ID, i+1)
		}
		if def.Title != wantTitles[i] {
			t.Errorf("entry %d title = %q, want %q", i, def.Title, wantTitles[i])
		}
		if def.Condition == nil {
			t.Errorf("entry %d has nil condition", i)
		}
	}
}

func TestEvaluateFirstLesson(t *testing.T) {
	snap := &store.ProgressSnapshot{Level: 1, LessonsCompleted: 1, CompletedLessons: []int{5}}

	got := Evaluate(snap, testTime)
	if len(got) != 1 {
		t.Fatalf("unlocked %d achievements, want 1", len(got))
	}
	if got[0].ID != 1 || got[0].Title != "Primeros pasos" {
		t.Errorf("unexpected unlock %+v", got[0])
	}
	if !got[0].Earned || !got[0].Date.Equal(testTime) {
		t.Errorf("unlock not stamped: %+v", got[0])
	}
}

func TestEvaluateThresholds(t *testing.T) {
	tests := []struct {
		name    string
		snap    store.ProgressSnapshot
		wantIDs []int
	}{
		{"empty snapshot", store.ProgressSnapshot{Level: 1}, nil},
		{"five lessons", store.ProgressSnapshot{LessonsCompleted: 5}, []int{1, 2}},
		{"fifteen lessons", store.ProgressSnapshot{LessonsCompleted: 15}, []int{1, 2, 3}},
		{"thirty lessons", store.ProgressSnapshot{LessonsCompleted: 30}, []int{1, 2, 3, 4}},
		{"perfect score only", store.ProgressSnapshot{PerfectScores: 1}, []int{5}},
		{"five day streak", store.ProgressSnapshot{Streak: 5}, []int{6}},
		{"four day streak", store.ProgressSnapshot{Streak: 4}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(&tt.snap, testTime)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("unlocked %d, want %d: %+v", len(got), len(tt.wantIDs), got)
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("unlock %d has id %d, want %d", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	snap := &store.ProgressSnapshot{LessonsCompleted: 5, Streak: 5}

	first := Evaluate(snap, testTime)
	snap.Achievements = first

	second := Evaluate(snap, testTime.Add(48*time.Hour))
	if len(second) != len(first) {
		t.Fatalf("second pass changed count: %d -> %d", len(first), len(second))
	}
	for i := range first {
		if second[i] != first[i] {
			t.Errorf("entry %d changed: %+v -> %+v", i, first[i], second[i])
		}
	}
}

func TestEvaluatePreservesUnlockOrder(t *testing.T) {
	// Streak unlocked before the lesson-count entries.
	snap := &store.ProgressSnapshot{Streak: 5}
	snap.Achievements = Evaluate(snap, testTime)

	snap.LessonsCompleted = 5
	got := Evaluate(snap, testTime.Add(time.Hour))

	wantIDs := []int{6, 1, 2}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d unlocks, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("unlock %d has id %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	snap := &store.ProgressSnapshot{LessonsCompleted: 1}
	Evaluate(snap, testTime)
	if len(snap.Achievements) != 0 {
		t.Error("Evaluate mutated the input snapshot")
	}
}

func TestWithStatus(t *testing.T) {
	snap := &store.ProgressSnapshot{LessonsCompleted: 1}
	snap.Achievements = Evaluate(snap, testTime)

	statuses := WithStatus(snap)
	if len(statuses) != 6 {
		t.Fatalf("got %d statuses, want 6", len(statuses))
	}
	if !statuses[0].Earned || statuses[0].Date == nil {
		t.Errorf("first entry should be earned: %+v", statuses[0])
	}
	for _, s := range statuses[1:] {
		if s.Earned || s.Date != nil {
			t.Errorf("entry %d should be locked: %+v", s.ID, s)
		}
	}
}

func TestWithStatusNilSnapshot(t *testing.T) {
	statuses := WithStatus(nil)
	if len(statuses) != 6 {
		t.Fatalf("got %d statuses, want 6", len(statuses))
	}
	for _, s := range statuses {
		if s.Earned {
			t.Errorf("entry %d earned with nil snapshot", s.ID)
		}
	}
}
