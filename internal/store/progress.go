package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/cuentaconmigo/conmigo/ent"
	entprogress "github.com/cuentaconmigo/conmigo/ent/progress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, userID uuid.UUID) (*ProgressSnapshot, error) {
	row, err := r.client.Progress.Query().
		Where(entprogress.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return snapshotFromMap(row.Data)
}

func (r *progressRepo) Save(ctx context.Context, userID uuid.UUID, snap *ProgressSnapshot) error {
	dataMap, err := snapshotToMap(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	n, err := r.client.Progress.Update().
		Where(entprogress.UserID(userID)).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Progress.Create().
		SetUserID(userID).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create progress: %w", err)
	}
	return nil
}

// snapshotToMap converts a snapshot to map[string]any for ent JSON storage.
func snapshotToMap(snap *ProgressSnapshot) (map[string]any, error) {
	b, err := json.Marshal(snap)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// snapshotFromMap converts the stored JSON map back to a snapshot.
func snapshotFromMap(m map[string]any) (*ProgressSnapshot, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal stored data: %w", err)
	}
	var snap ProgressSnapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &snap, nil
}
