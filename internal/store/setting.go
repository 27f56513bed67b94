package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/cuentaconmigo/conmigo/ent"
	entsetting "github.com/cuentaconmigo/conmigo/ent/setting"
)

// settingsRepo implements SettingsRepo using the ent client.
type settingsRepo struct {
	client *ent.Client
}

func (r *settingsRepo) Get(ctx context.Context, userID uuid.UUID) (AccessibilitySettings, error) {
	row, err := r.client.Setting.Query().
		Where(entsetting.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return DefaultAccessibilitySettings(), nil
		}
		return AccessibilitySettings{}, fmt.Errorf("query settings: %w", err)
	}

	b, err := json.Marshal(row.Data)
	if err != nil {
		return AccessibilitySettings{}, fmt.Errorf("marshal stored settings: %w", err)
	}
	var settings AccessibilitySettings
	if err := json.Unmarshal(b, &settings); err != nil {
		return AccessibilitySettings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return settings, nil
}

func (r *settingsRepo) Save(ctx context.Context, userID uuid.UUID, settings AccessibilitySettings) error {
	b, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	var dataMap map[string]any
	if err := json.Unmarshal(b, &dataMap); err != nil {
		return fmt.Errorf("settings to map: %w", err)
	}

	n, err := r.client.Setting.Update().
		Where(entsetting.UserID(userID)).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Setting.Create().
		SetUserID(userID).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}
	return nil
}
