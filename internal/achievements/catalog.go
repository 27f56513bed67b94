// Package achievements holds the fixed achievement catalog and the
// evaluator that unlocks entries against a progress snapshot.
package achievements

import (
	"time"

	"github.com/cuentaconmigo/conmigo/internal/store"
)

// Definition is one catalog entry. Condition is a pure predicate over
// the snapshot.
type Definition struct {
	ID          int
	Title       string
	Description string
	Icon        string
	Condition   func(*store.ProgressSnapshot) bool
}

// Catalog returns the fixed, ordered achievement definitions.
func Catalog() []Definition {
	return []Definition{
		{
			ID:          1,
			Title:       "Primeros pasos",
			Description: "Completa tu primera lección",
			Icon:        "🏆",
			Condition: func(s *store.ProgressSnapshot) bool {
				return s.LessonsCompleted >= 1
			},
		},
		{
			ID:          2,
			Title:       "Matemático novato",
			Description: "Completa 5 lecciones",
			Icon:        "🥉",
			Condition: func(s *store.ProgressSnapshot) bool {
				return s.LessonsCompleted >= 5
			},
		},
		{
			ID:          3,
			Title:       "Matemático intermedio",
			Description: "Completa 15 lecciones",
			Icon:        "🥈",
			Condition: func(s *store.ProgressSnapshot) bool {
				return s.LessonsCompleted >= 15
			},
		},
		{
			ID:          4,
			Title:       "Matemático experto",
			Description: "Completa 30 lecciones",
			Icon:        "🥇",
			Condition: func(s *store.ProgressSnapshot) bool {
				return s.LessonsCompleted >= 30
			},
		},
		{
			ID:          5,
			Title:       "Perfección",
			Description: "Obtén una puntuación perfecta en una lección",
			Icon:        "⭐",
			Condition: func(s *store.ProgressSnapshot) bool {
				return s.PerfectScores > 0
			},
		},
		{
			ID:          6,
			Title:       "Racha ganadora",
			Description: "Completa lecciones durante 5 días seguidos",
			Icon:        "🔥",
			Condition: func(s *store.ProgressSnapshot) bool {
				return s.Streak >= 5
			},
		},
	}
}

// Status pairs a catalog entry with its unlock state for one user.
type Status struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Earned      bool       `json:"earned"`
	Date        *time.Time `json:"date,omitempty"`
}

// WithStatus returns the full catalog annotated with the snapshot's
// unlock state, in catalog order.
func WithStatus(snap *store.ProgressSnapshot) []Status {
	unlocked := make(map[int]store.AchievementUnlock)
	if snap != nil {
		for _, u := range snap.Achievements {
			unlocked[u.ID] = u
		}
	}

	catalog := Catalog()
	statuses := make([]Status, len(catalog))
	for i, def := range catalog {
		status := Status{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Icon:        def.Icon,
		}
		if u, ok := unlocked[def.ID]; ok {
			status.Earned = true
			date := u.Date
			status.Date = &date
		}
		statuses[i] = status
	}
	return statuses
}
