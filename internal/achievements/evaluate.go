package achievements

import (
	"time"

	"github.com/cuentaconmigo/conmigo/internal/store"
)

// Evaluate returns the snapshot's achievement list with any newly
// satisfied catalog entries appended in catalog order. Existing unlocks
// keep their position and are never re-evaluated; an unlocked id never
// re-triggers.
func Evaluate(snap *store.ProgressSnapshot, now time.Time) []store.AchievementUnlock {
	result := make([]store.AchievementUnlock, len(snap.Achievements))
	copy(result, snap.Achievements)

	unlocked := make(map[int]bool, len(result))
	for _, u := range result {
		unlocked[u.ID] = true
	}

	for _, def := range Catalog() {
		if unlocked[def.ID] {
			continue
		}
		if !def.Condition(snap) {
			continue
		}
		result = append(result, store.AchievementUnlock{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Icon:        def.Icon,
			Earned:      true,
			Date:        now,
		})
	}
	return result
}
