// Package adaptive maps recent answer history to the difficulty tier
// the next problem should be served at.
package adaptive

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cuentaconmigo/conmigo/internal/problemgen"
	"github.com/cuentaconmigo/conmigo/internal/store"
)

const (
	// DefaultWindow is the number of recent attempts considered when
	// computing the success rate.
	DefaultWindow = 10

	// promoteThreshold and demoteThreshold are inclusive bounds; rates
	// strictly between them leave the tier unchanged.
	promoteThreshold = 0.8
	demoteThreshold  = 0.5
)

// NextDifficulty maps the current tier and a success rate in [0,1] to
// the tier the next problem should use.
func NextDifficulty(current problemgen.Difficulty, successRate float64) problemgen.Difficulty {
	switch {
	case successRate >= promoteThreshold:
		switch current {
		case problemgen.Beginner:
			return problemgen.Intermediate
		case problemgen.Intermediate:
			return problemgen.Advanced
		default:
			return problemgen.Advanced
		}
	case successRate <= demoteThreshold:
		switch current {
		case problemgen.Advanced:
			return problemgen.Intermediate
		case problemgen.Intermediate:
			return problemgen.Beginner
		default:
			return problemgen.Beginner
		}
	default:
		return current
	}
}

// Service computes success rates and target difficulties from the
// attempt history.
type Service struct {
	attempts store.AttemptRepo
	window   int
}

// NewService creates a Service reading from the given attempt history.
func NewService(attempts store.AttemptRepo) *Service {
	return &Service{attempts: attempts, window: DefaultWindow}
}

// SuccessRate returns correct/total over the most recent window of
// attempts, or 0 when the user has no attempt history.
func (s *Service) SuccessRate(ctx context.Context, userID uuid.UUID) (float64, error) {
	records, err := s.attempts.Recent(ctx, userID, s.window)
	if err != nil {
		return 0, fmt.Errorf("recent attempts: %w", err)
	}
	if len(records) == 0 {
		return 0, nil
	}

	correct := 0
	for _, rec := range records {
		if rec.IsCorrect {
			correct++
		}
	}
	return float64(correct) / float64(len(records)), nil
}

// Target returns the difficulty the next problem should be generated
// at: the most recent attempt's tier adjusted by the success rate.
// New users start at beginner.
func (s *Service) Target(ctx context.Context, userID uuid.UUID) (problemgen.Difficulty, error) {
	records, err := s.attempts.Recent(ctx, userID, s.window)
	if err != nil {
		return "", fmt.Errorf("recent attempts: %w", err)
	}
	if len(records) == 0 {
		return problemgen.Beginner, nil
	}

	current := problemgen.Difficulty(records[0].Difficulty)
	if !current.Valid() {
		current = problemgen.Beginner
	}

	correct := 0
	for _, rec := range records {
		if rec.IsCorrect {
			correct++
		}
	}
	rate := float64(correct) / float64(len(records))

	return NextDifficulty(current, rate), nil
}
