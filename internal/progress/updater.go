// Package progress computes and persists per-user learning snapshots
// in response to lesson completions.
package progress

import (
	"errors"
	"time"

	"github.com/cuentaconmigo/conmigo/internal/achievements"
	"github.com/cuentaconmigo/conmigo/internal/store"
)

// ErrInvalidScore is returned when a completion carries a negative score.
var ErrInvalidScore = errors.New("progress: score must be non-negative")

// PerfectScore is the score counted as a perfect lesson completion.
const PerfectScore = 100

// DefaultSnapshot returns the state a user starts with.
func DefaultSnapshot() *store.ProgressSnapshot {
	return &store.ProgressSnapshot{
		Level:            1,
		CompletedLessons: []int{},
		Achievements:     []store.AchievementUnlock{},
	}
}

// Apply computes the snapshot resulting from completing lessonID with
// the given score at time now. The input snapshot is not mutated; a nil
// snapshot is treated as a fresh default. Level promotion is applied at
// most once per call even when the new points cross several thresholds.
func Apply(snap *store.ProgressSnapshot, lessonID, score int, now time.Time) (*store.ProgressSnapshot, error) {
	if score < 0 {
		return nil, ErrInvalidScore
	}
	if snap == nil {
		snap = DefaultSnapshot()
	}

	next := &store.ProgressSnapshot{
		Level:            snap.Level,
		Points:           snap.Points + score,
		LessonsCompleted: snap.LessonsCompleted,
		CompletedLessons: append([]int(nil), snap.CompletedLessons...),
		PerfectScores:    snap.PerfectScores,
		Achievements:     append([]store.AchievementUnlock(nil), snap.Achievements...),
		Streak:           nextStreak(snap, now),
	}
	if next.Level < 1 {
		next.Level = 1
	}

	if !snap.HasCompleted(lessonID) {
		next.LessonsCompleted++
		next.CompletedLessons = append(next.CompletedLessons, lessonID)
	}
	if score >= PerfectScore {
		next.PerfectScores++
	}
	next.LastCompletedDate = now.Format(store.DayFormat)

	if next.Points >= next.Level*100 {
		next.Level++
	}

	next.Achievements = achievements.Evaluate(next, now)
	return next, nil
}

// nextStreak applies the calendar-day streak rule: a repeat completion
// on the same day keeps the streak, a completion the day after the last
// one extends it, anything else starts over at 1.
func nextStreak(snap *store.ProgressSnapshot, now time.Time) int {
	today := now.Format(store.DayFormat)
	yesterday := now.AddDate(0, 0, -1).Format(store.DayFormat)

	switch snap.LastCompletedDate {
	case today:
		if snap.Streak > 0 {
			return snap.Streak
		}
		return 1
	case yesterday:
		return snap.Streak + 1
	default:
		return 1
	}
}
