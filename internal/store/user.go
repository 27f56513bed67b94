package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cuentaconmigo/conmigo/ent"
	entuser "github.com/cuentaconmigo/conmigo/ent/user"
)

// userRepo implements UserRepo using the ent client.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, name, email, passwordHash string) (*UserRecord, error) {
	row, err := r.client.User.Create().
		SetName(name).
		SetEmail(email).
		SetPasswordHash(passwordHash).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return userFromEnt(row), nil
}

func (r *userRepo) ByEmail(ctx context.Context, email string) (*UserRecord, error) {
	row, err := r.client.User.Query().
		Where(entuser.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return userFromEnt(row), nil
}

func (r *userRepo) ByID(ctx context.Context, id uuid.UUID) (*UserRecord, error) {
	row, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return userFromEnt(row), nil
}

func userFromEnt(row *ent.User) *UserRecord {
	return &UserRecord{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}
}
