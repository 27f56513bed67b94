package lessons

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cuentaconmigo/conmigo/internal/store"
)

// mockLessonRepo implements store.LessonRepo for lessons tests.
type mockLessonRepo struct {
	nextID  int
	lessons map[int]store.LessonRecord
}

func newMockLessonRepo() *mockLessonRepo {
	return &mockLessonRepo{nextID: 1, lessons: make(map[int]store.LessonRecord)}
}

func (m *mockLessonRepo) Create(_ context.Context, l *store.LessonRecord) (*store.LessonRecord, error) {
	cp := *l
	cp.ID = m.nextID
	m.nextID++
	m.lessons[cp.ID] = cp
	return &cp, nil
}

func (m *mockLessonRepo) Update(_ context.Context, l *store.LessonRecord) (*store.LessonRecord, error) {
	if _, ok := m.lessons[l.ID]; !ok {
		return nil, nil
	}
	m.lessons[l.ID] = *l
	cp := *l
	return &cp, nil
}

func (m *mockLessonRepo) Delete(_ context.Context, id int) error {
	delete(m.lessons, id)
	return nil
}

func (m *mockLessonRepo) ByID(_ context.Context, id int) (*store.LessonRecord, error) {
	l, ok := m.lessons[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (m *mockLessonRepo) List(_ context.Context) ([]store.LessonRecord, error) {
	out := make([]store.LessonRecord, 0, len(m.lessons))
	for id := 1; id < m.nextID; id++ {
		if l, ok := m.lessons[id]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

func validLesson() *store.LessonRecord {
	return &store.LessonRecord{
		Title:      "Sumas hasta 10",
		Category:   "addition",
		Difficulty: "beginner",
		Points:     100,
	}
}

func TestCreateAndGet(t *testing.T) {
	svc := NewService(newMockLessonRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, validLesson())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created lesson has no id")
	}

	got, err := svc.ByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("byID: %v", err)
	}
	if got.Title != "Sumas hasta 10" {
		t.Errorf("title = %q", got.Title)
	}
}

func TestByIDNotFound(t *testing.T) {
	svc := NewService(newMockLessonRepo())
	_, err := svc.ByID(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newMockLessonRepo())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*store.LessonRecord)
	}{
		{"missing title", func(l *store.LessonRecord) { l.Title = "" }},
		{"missing category", func(l *store.LessonRecord) { l.Category = "" }},
		{"unknown difficulty", func(l *store.LessonRecord) { l.Difficulty = "imposible" }},
		{"negative points", func(l *store.LessonRecord) { l.Points = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validLesson()
			tt.mutate(l)
			if _, err := svc.Create(ctx, l); !errors.Is(err, ErrInvalidLesson) {
				t.Errorf("err = %v, want ErrInvalidLesson", err)
			}
		})
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewService(newMockLessonRepo())
	l := validLesson()
	l.ID = 42
	_, err := svc.Update(context.Background(), l)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestValidateImport(t *testing.T) {
	raw := []byte(`[
		{"title": "Sumas hasta 10", "category": "addition", "difficulty": "beginner"},
		{"title": "Restas con llevada", "category": "subtraction", "difficulty": "intermediate", "points": 150, "position": 2}
	]`)

	lessons, err := ValidateImport(raw)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(lessons) != 2 {
		t.Fatalf("got %d lessons, want 2", len(lessons))
	}
	if lessons[0].Points != 100 {
		t.Errorf("default points = %d, want 100", lessons[0].Points)
	}
	if lessons[1].Points != 150 {
		t.Errorf("explicit points = %d, want 150", lessons[1].Points)
	}
}

func TestValidateImportRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", `{{{`},
		{"not an array", `{"title": "x"}`},
		{"empty array", `[]`},
		{"missing title", `[{"category": "addition", "difficulty": "beginner"}]`},
		{"bad difficulty", `[{"title": "x", "category": "addition", "difficulty": "hard"}]`},
		{"bad category", `[{"title": "x", "category": "calculus", "difficulty": "beginner"}]`},
		{"unknown field", `[{"title": "x", "category": "addition", "difficulty": "beginner", "bogus": 1}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateImport([]byte(tt.raw)); !errors.Is(err, ErrInvalidLesson) {
				t.Errorf("err = %v, want ErrInvalidLesson", err)
			}
		})
	}
}

func TestImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lessons.json")
	content := `[{"title": "Sumas hasta 10", "category": "addition", "difficulty": "beginner"}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	repo := newMockLessonRepo()
	svc := NewService(repo)

	n, err := svc.ImportFile(context.Background(), path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 1 {
		t.Errorf("imported %d, want 1", n)
	}
	if len(repo.lessons) != 1 {
		t.Errorf("stored %d lessons, want 1", len(repo.lessons))
	}
}

func TestImportFileInvalidWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lessons.json")
	content := `[{"title": "", "category": "addition", "difficulty": "beginner"}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	repo := newMockLessonRepo()
	svc := NewService(repo)

	if _, err := svc.ImportFile(context.Background(), path); err == nil {
		t.Fatal("expected validation error")
	}
	if len(repo.lessons) != 0 {
		t.Errorf("stored %d lessons, want 0", len(repo.lessons))
	}
}
