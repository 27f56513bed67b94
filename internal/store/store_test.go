package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	// A named in-memory database keeps pooled connections on the same
	// data while isolating tests from each other.
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"users", "lessons", "progresses", "attempt_events", "settings"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestProgressSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()
	userID := uuid.New()

	// No snapshot yet.
	snap, err := repo.Get(ctx, userID)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exists")
	}

	err = repo.Save(ctx, userID, &ProgressSnapshot{
		Level:             2,
		Points:            150,
		LessonsCompleted:  3,
		CompletedLessons:  []int{1, 2, 5},
		PerfectScores:     1,
		Streak:            4,
		LastCompletedDate: "2025-03-10",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Get(ctx, userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Level != 2 || snap.Points != 150 {
		t.Errorf("level/points = %d/%d, want 2/150", snap.Level, snap.Points)
	}
	if len(snap.CompletedLessons) != 3 || !snap.HasCompleted(5) {
		t.Errorf("completed lessons = %v, want [1 2 5]", snap.CompletedLessons)
	}
	if snap.Streak != 4 || snap.LastCompletedDate != "2025-03-10" {
		t.Errorf("streak = %d (%q), want 4 (2025-03-10)", snap.Streak, snap.LastCompletedDate)
	}
}

func TestProgressSaveUpserts(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()
	userID := uuid.New()

	for points := 100; points <= 300; points += 100 {
		err := repo.Save(ctx, userID, &ProgressSnapshot{Level: 1, Points: points})
		if err != nil {
			t.Fatalf("save %d: %v", points, err)
		}
	}

	snap, err := repo.Get(ctx, userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if snap.Points != 300 {
		t.Errorf("points = %d, want 300", snap.Points)
	}

	count, err := s.Client().Progress.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("progress rows = %d, want 1", count)
	}
}

func TestProgressIsolatedPerUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	alice, bob := uuid.New(), uuid.New()
	if err := repo.Save(ctx, alice, &ProgressSnapshot{Level: 3, Points: 250}); err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err := repo.Get(ctx, bob)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot for another user")
	}
}

func TestAttemptAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()
	userID := uuid.New()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		err := repo.Append(ctx, AttemptRecord{
			UserID:     userID,
			Operation:  "addition",
			Difficulty: "beginner",
			Operand1:   i,
			Operand2:   1,
			Given:      i + 1,
			Answer:     i + 1,
			IsCorrect:  true,
			Timestamp:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recs, err := repo.Recent(ctx, userID, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
	// Newest first.
	for i, rec := range recs {
		if want := 4 - i; rec.Operand1 != want {
			t.Errorf("recs[%d].operand1 = %d, want %d", i, rec.Operand1, want)
		}
	}
}

func TestAttemptRecentFiltersByUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	alice, bob := uuid.New(), uuid.New()
	now := time.Now().UTC()
	for _, id := range []uuid.UUID{alice, alice, bob} {
		err := repo.Append(ctx, AttemptRecord{
			UserID:     id,
			Operation:  "subtraction",
			Difficulty: "beginner",
			Timestamp:  now,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recs, err := repo.Recent(ctx, alice, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("got %d records for alice, want 2", len(recs))
	}
}

func TestLessonCRUD(t *testing.T) {
	s := openTestStore(t)
	repo := s.LessonRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, &LessonRecord{
		Title:      "Sumas hasta 10",
		Category:   "addition",
		Difficulty: "beginner",
		Points:     100,
		Content:    map[string]any{"examples": []any{"2 + 3 = 5"}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := repo.ByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if got == nil || got.Title != "Sumas hasta 10" {
		t.Fatalf("got %+v, want created lesson", got)
	}
	if got.Content["examples"] == nil {
		t.Error("expected content to round-trip")
	}

	got.Title = "Sumas hasta 20"
	got.Points = 120
	updated, err := repo.Update(ctx, got)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Sumas hasta 20" || updated.Points != 120 {
		t.Errorf("updated = %+v", updated)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err = repo.ByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("by id after delete: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil after delete")
	}
}

func TestLessonByIDMissing(t *testing.T) {
	s := openTestStore(t)
	got, err := s.LessonRepo().ByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for missing lesson")
	}
}

func TestLessonListOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.LessonRepo()
	ctx := context.Background()

	seed := []LessonRecord{
		{Title: "Restas", Category: "subtraction", Difficulty: "beginner", Position: 1},
		{Title: "Sumas avanzadas", Category: "addition", Difficulty: "advanced", Position: 2},
		{Title: "Sumas", Category: "addition", Difficulty: "beginner", Position: 1},
	}
	for i := range seed {
		if _, err := repo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d lessons, want 3", len(list))
	}

	// Category first, then position.
	want := []string{"Sumas", "Sumas avanzadas", "Restas"}
	for i, title := range want {
		if list[i].Title != title {
			t.Errorf("list[%d] = %q, want %q", i, list[i].Title, title)
		}
	}
}

func TestUserCreateAndLookup(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, "Ana", "ana@example.com", "hash")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected assigned uuid")
	}

	byEmail, err := repo.ByEmail(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("by email: %v", err)
	}
	if byEmail == nil || byEmail.ID != created.ID {
		t.Fatalf("by email = %+v, want id %s", byEmail, created.ID)
	}
	if byEmail.PasswordHash != "hash" {
		t.Errorf("password hash = %q", byEmail.PasswordHash)
	}

	byID, err := repo.ByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if byID == nil || byID.Email != "ana@example.com" {
		t.Fatalf("by id = %+v", byID)
	}

	missing, err := repo.ByEmail(ctx, "nadie@example.com")
	if err != nil {
		t.Fatalf("by email (missing): %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for unknown email")
	}
}

func TestSettingsDefaultsAndUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.SettingsRepo()
	ctx := context.Background()
	userID := uuid.New()

	// Never saved: defaults.
	settings, err := repo.Get(ctx, userID)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if settings.FontSize != "medium" || !settings.TextToSpeech {
		t.Errorf("defaults = %+v", settings)
	}

	settings.FontSize = "large"
	settings.HighContrast = true
	settings.TextToSpeech = false
	if err := repo.Save(ctx, userID, settings); err != nil {
		t.Fatalf("save: %v", err)
	}

	settings.FontSize = "small"
	if err := repo.Save(ctx, userID, settings); err != nil {
		t.Fatalf("save again: %v", err)
	}

	got, err := repo.Get(ctx, userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FontSize != "small" || !got.HighContrast || got.TextToSpeech {
		t.Errorf("got %+v", got)
	}

	count, err := s.Client().Setting.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("settings rows = %d, want 1", count)
	}
}
