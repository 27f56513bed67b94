package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cuentaconmigo/conmigo/ent"
	"github.com/cuentaconmigo/conmigo/ent/attemptevent"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Append(ctx context.Context, rec AttemptRecord) error {
	builder := r.client.AttemptEvent.Create().
		SetUserID(rec.UserID).
		SetOperation(rec.Operation).
		SetDifficulty(rec.Difficulty).
		SetOperand1(rec.Operand1).
		SetOperand2(rec.Operand2).
		SetGiven(rec.Given).
		SetAnswer(rec.Answer).
		SetIsCorrect(rec.IsCorrect)

	if !rec.Timestamp.IsZero() {
		builder = builder.SetTimestamp(rec.Timestamp)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]AttemptRecord, error) {
	query := r.client.AttemptEvent.Query().
		Where(attemptevent.UserID(userID)).
		Order(ent.Desc(attemptevent.FieldTimestamp), ent.Desc(attemptevent.FieldID))

	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	records := make([]AttemptRecord, len(events))
	for i, e := range events {
		records[i] = AttemptRecord{
			UserID:     e.UserID,
			Operation:  e.Operation,
			Difficulty: e.Difficulty,
			Operand1:   e.Operand1,
			Operand2:   e.Operand2,
			Given:      e.Given,
			Answer:     e.Answer,
			IsCorrect:  e.IsCorrect,
			Timestamp:  e.Timestamp,
		}
	}
	return records, nil
}
