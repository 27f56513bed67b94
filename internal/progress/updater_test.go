package progress

import (
	"errors"
	"testing"
	"time"

	"github.com/cuentaconmigo/conmigo/internal/store"
)

var monday = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func TestApplyFreshSnapshot(t *testing.T) {
	next, err := Apply(nil, 5, 100, monday)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if next.Points != 100 {
		t.Errorf("points = %d, want 100", next.Points)
	}
	if next.LessonsCompleted != 1 {
		t.Errorf("lessonsCompleted = %d, want 1", next.LessonsCompleted)
	}
	if next.Level != 2 {
		t.Errorf("level = %d, want 2 (100 >= 1*100)", next.Level)
	}
	if next.Streak != 1 {
		t.Errorf("streak = %d, want 1", next.Streak)
	}
	if !next.HasCompleted(5) {
		t.Error("lesson 5 not in completed set")
	}
	if next.PerfectScores != 1 {
		t.Errorf("perfectScores = %d, want 1", next.PerfectScores)
	}

	found := false
	for _, a := range next.Achievements {
		if a.Title == "Primeros pasos" {
			found = true
		}
	}
	if !found {
		t.Error("Primeros pasos not unlocked after first lesson")
	}
}

func TestApplyRepeatLesson(t *testing.T) {
	snap := &store.ProgressSnapshot{
		Level:            2,
		Points:           100,
		LessonsCompleted: 1,
		CompletedLessons: []int{5},
	}

	next, err := Apply(snap, 5, 50, monday)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if next.LessonsCompleted != 1 {
		t.Errorf("lessonsCompleted = %d, want 1 (repeat does not count)", next.LessonsCompleted)
	}
	if len(next.CompletedLessons) != 1 {
		t.Errorf("completedLessons = %v, want exactly {5}", next.CompletedLessons)
	}
	if next.Points != 150 {
		t.Errorf("points = %d, want 150", next.Points)
	}
}

func TestApplyNegativeScore(t *testing.T) {
	_, err := Apply(nil, 1, -10, monday)
	if !errors.Is(err, ErrInvalidScore) {
		t.Fatalf("err = %v, want ErrInvalidScore", err)
	}
}

func TestApplyStreak(t *testing.T) {
	tests := []struct {
		name       string
		last       string
		streak     int
		wantStreak int
	}{
		{"no prior completion", "", 0, 1},
		{"same day keeps streak", "2025-03-10", 3, 3},
		{"yesterday extends", "2025-03-09", 3, 4},
		{"two day gap resets", "2025-03-08", 7, 1},
		{"long gap resets", "2025-01-01", 30, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := &store.ProgressSnapshot{
				Level:             1,
				Streak:            tt.streak,
				LastCompletedDate: tt.last,
			}
			next, err := Apply(snap, 1, 10, monday)
			if err != nil {
				t.Fatalf("apply: %v", err)
			}
			if next.Streak != tt.wantStreak {
				t.Errorf("streak = %d, want %d", next.Streak, tt.wantStreak)
			}
			if next.LastCompletedDate != "2025-03-10" {
				t.Errorf("lastCompletedDate = %q", next.LastCompletedDate)
			}
		})
	}
}

func TestApplyStreakAcrossMonthBoundary(t *testing.T) {
	firstOfMonth := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	snap := &store.ProgressSnapshot{Level: 1, Streak: 2, LastCompletedDate: "2025-03-31"}

	next, err := Apply(snap, 1, 10, firstOfMonth)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if next.Streak != 3 {
		t.Errorf("streak = %d, want 3", next.Streak)
	}
}

func TestApplySingleStepLevelUp(t *testing.T) {
	// 300 points crosses the level-1 and level-2 thresholds, but only
	// one promotion applies per completion.
	next, err := Apply(nil, 1, 300, monday)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if next.Level != 2 {
		t.Errorf("level = %d, want 2 (no cascading)", next.Level)
	}
}

func TestApplyNoLevelUpBelowThreshold(t *testing.T) {
	next, err := Apply(nil, 1, 99, monday)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if next.Level != 1 {
		t.Errorf("level = %d, want 1", next.Level)
	}
}

func TestApplyMonotonicity(t *testing.T) {
	var snap *store.ProgressSnapshot
	day := monday

	prevPoints, prevLessons, prevAchievements := 0, 0, 0
	for lesson := 1; lesson <= 20; lesson++ {
		next, err := Apply(snap, lesson, 40, day)
		if err != nil {
			t.Fatalf("apply %d: %v", lesson, err)
		}
		if next.Points < prevPoints {
			t.Fatalf("points decreased: %d -> %d", prevPoints, next.Points)
		}
		if next.LessonsCompleted < prevLessons {
			t.Fatalf("lessonsCompleted decreased: %d -> %d", prevLessons, next.LessonsCompleted)
		}
		if len(next.Achievements) < prevAchievements {
			t.Fatalf("achievements shrank: %d -> %d", prevAchievements, len(next.Achievements))
		}
		prevPoints, prevLessons, prevAchievements = next.Points, next.LessonsCompleted, len(next.Achievements)
		snap = next
		day = day.AddDate(0, 0, 1)
	}

	// 20 distinct lessons on 20 consecutive days.
	if snap.LessonsCompleted != 20 {
		t.Errorf("lessonsCompleted = %d, want 20", snap.LessonsCompleted)
	}
	if snap.Streak != 20 {
		t.Errorf("streak = %d, want 20", snap.Streak)
	}
	for _, wantID := range []int{1, 2, 3, 6} {
		found := false
		for _, a := range snap.Achievements {
			if a.ID == wantID {
				found = true
			}
		}
		if !found {
			t.Errorf("achievement %d not unlocked", wantID)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	snap := &store.ProgressSnapshot{
		Level:            1,
		Points:           10,
		LessonsCompleted: 1,
		CompletedLessons: []int{1},
	}

	if _, err := Apply(snap, 2, 10, monday); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if snap.Points != 10 || snap.LessonsCompleted != 1 || len(snap.CompletedLessons) != 1 {
		t.Errorf("input snapshot mutated: %+v", snap)
	}
}
