package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DayFormat is the date-only layout used for streak bookkeeping.
// Streaks count calendar days, not 24-hour windows.
const DayFormat = "2006-01-02"

// AchievementUnlock is one earned achievement inside a progress snapshot.
type AchievementUnlock struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Earned      bool      `json:"earned"`
	Date        time.Time `json:"date"`
}

// ProgressSnapshot is the complete persisted learning state for one user.
// It round-trips through the Progress row's JSON data column.
type ProgressSnapshot struct {
	Level             int                 `json:"level"`
	Points            int                 `json:"points"`
	LessonsCompleted  int                 `json:"lessons_completed"`
	CompletedLessons  []int               `json:"completed_lessons"`
	PerfectScores     int                 `json:"perfect_scores"`
	Achievements      []AchievementUnlock `json:"achievements"`
	Streak            int                 `json:"streak"`
	LastCompletedDate string              `json:"last_completed_date,omitempty"`
}

// HasCompleted reports whether lessonID is already in the completed set.
func (s *ProgressSnapshot) HasCompleted(lessonID int) bool {
	for _, id := range s.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// ProgressRepo manages per-user progress snapshots.
type ProgressRepo interface {
	// Get returns the user's snapshot, or nil if none exists yet.
	Get(ctx context.Context, userID uuid.UUID) (*ProgressSnapshot, error)

	// Save upserts the user's snapshot.
	Save(ctx context.Context, userID uuid.UUID, snap *ProgressSnapshot) error
}

// AttemptRecord is one answered problem.
type AttemptRecord struct {
	UserID     uuid.UUID `json:"user_id"`
	Operation  string    `json:"operation"`
	Difficulty string    `json:"difficulty"`
	Operand1   int       `json:"operand1"`
	Operand2   int       `json:"operand2"`
	Given      int       `json:"given"`
	Answer     int       `json:"answer"`
	IsCorrect  bool      `json:"is_correct"`
	Timestamp  time.Time `json:"timestamp"`
}

// AttemptRepo provides append and windowed read access to attempts.
type AttemptRepo interface {
	// Append records an answered problem.
	Append(ctx context.Context, rec AttemptRecord) error

	// Recent returns up to limit attempts for the user, newest first.
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]AttemptRecord, error)
}

// LessonRecord is a catalog lesson as stored.
type LessonRecord struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Difficulty  string         `json:"difficulty"`
	Points      int            `json:"points"`
	Content     map[string]any `json:"content,omitempty"`
	Position    int            `json:"position"`
}

// LessonRepo manages the lesson catalog.
type LessonRepo interface {
	Create(ctx context.Context, l *LessonRecord) (*LessonRecord, error)
	Update(ctx context.Context, l *LessonRecord) (*LessonRecord, error)
	Delete(ctx context.Context, id int) error

	// ByID returns the lesson, or nil if it does not exist.
	ByID(ctx context.Context, id int) (*LessonRecord, error)

	// List returns all lessons ordered by category then position.
	List(ctx context.Context) ([]LessonRecord, error)
}

// UserRecord is a registered account.
type UserRecord struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserRepo manages accounts.
type UserRepo interface {
	Create(ctx context.Context, name, email, passwordHash string) (*UserRecord, error)

	// ByEmail returns the user, or nil if no account has that email.
	ByEmail(ctx context.Context, email string) (*UserRecord, error)

	// ByID returns the user, or nil if it does not exist.
	ByID(ctx context.Context, id uuid.UUID) (*UserRecord, error)
}

// AccessibilitySettings mirror the client's accessibility preferences.
type AccessibilitySettings struct {
	FontSize         string `json:"font_size"`
	HighContrast     bool   `json:"high_contrast"`
	TextToSpeech     bool   `json:"text_to_speech"`
	ReduceAnimations bool   `json:"reduce_animations"`
}

// DefaultAccessibilitySettings returns the settings a new user starts with.
func DefaultAccessibilitySettings() AccessibilitySettings {
	return AccessibilitySettings{
		FontSize:     "medium",
		TextToSpeech: true,
	}
}

// SettingsRepo manages per-user accessibility settings.
type SettingsRepo interface {
	// Get returns the user's settings, falling back to defaults when the
	// user has never saved any.
	Get(ctx context.Context, userID uuid.UUID) (AccessibilitySettings, error)

	// Save upserts the user's settings.
	Save(ctx context.Context, userID uuid.UUID, settings AccessibilitySettings) error
}
