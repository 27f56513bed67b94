package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cuentaconmigo/conmigo/internal/store"
)

// mockUserRepo implements store.UserRepo for auth tests.
type mockUserRepo struct {
	users map[string]*store.UserRecord
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*store.UserRecord)}
}

func (m *mockUserRepo) Create(_ context.Context, name, email, passwordHash string) (*store.UserRecord, error) {
	user := &store.UserRecord{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	m.users[email] = user
	return user, nil
}

func (m *mockUserRepo) ByEmail(_ context.Context, email string) (*store.UserRecord, error) {
	return m.users[email], nil
}

func (m *mockUserRepo) ByID(_ context.Context, id uuid.UUID) (*store.UserRecord, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func newTestService() *Service {
	return NewService(newMockUserRepo(), []byte("test-secret"), time.Hour)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "hunter22") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "hunter23") {
		t.Error("wrong password accepted")
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Ana", "ana@example.com", "secreto1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "ana@example.com" || token == "" {
		t.Fatalf("unexpected register result: %+v token=%q", user, token)
	}

	got, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != user.ID {
		t.Errorf("token subject = %s, want %s", got, user.ID)
	}

	loggedIn, token2, err := svc.Login(ctx, "ana@example.com", "secreto1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.ID != user.ID || token2 == "" {
		t.Errorf("unexpected login result: %+v", loggedIn)
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "Ana", "  Ana@Example.COM ", "secreto1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.Login(ctx, "ana@example.com", "secreto1"); err != nil {
		t.Errorf("login with normalized email: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"empty name", "", "a@b.com", "secreto1"},
		{"bad email", "Ana", "not-an-email", "secreto1"},
		{"short password", "Ana", "a@b.com", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(ctx, tt.userName, tt.email, tt.password)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "Ana", "ana@example.com", "secreto1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, _, err := svc.Register(ctx, "Otra Ana", "ana@example.com", "secreto2")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "Ana", "ana@example.com", "secreto1"); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, _, err := svc.Login(ctx, "ana@example.com", "equivocado")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestService()
	_, _, err := svc.Login(context.Background(), "nadie@example.com", "secreto1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestVerifyRejectsForgedToken(t *testing.T) {
	svc := newTestService()
	other := NewService(newMockUserRepo(), []byte("other-secret"), time.Hour)

	_, token, err := other.Register(context.Background(), "Eve", "eve@example.com", "secreto1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, []byte("test-secret"), -time.Minute)

	_, token, err := svc.Register(context.Background(), "Ana", "ana@example.com", "secreto1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}
