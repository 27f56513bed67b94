package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuentaconmigo/conmigo/internal/adaptive"
	"github.com/cuentaconmigo/conmigo/internal/auth"
	"github.com/cuentaconmigo/conmigo/internal/lessons"
	"github.com/cuentaconmigo/conmigo/internal/problemgen"
	"github.com/cuentaconmigo/conmigo/internal/progress"
	"github.com/cuentaconmigo/conmigo/internal/store"
)

// In-memory repos backing the handler tests.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*store.UserRecord
}

func (m *memUserRepo) Create(_ context.Context, name, email, hash string) (*store.UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := &store.UserRecord{ID: uuid.New(), Name: name, Email: email, PasswordHash: hash, CreatedAt: time.Now()}
	m.users[email] = u
	return u, nil
}

func (m *memUserRepo) ByEmail(_ context.Context, email string) (*store.UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[email], nil
}

func (m *memUserRepo) ByID(_ context.Context, id uuid.UUID) (*store.UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type memProgressRepo struct {
	mu    sync.Mutex
	snaps map[uuid.UUID]*store.ProgressSnapshot
}

func (m *memProgressRepo) Get(_ context.Context, userID uuid.UUID) (*store.ProgressSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap, ok := m.snaps[userID]
	if !ok {
		return nil, nil
	}
	cp := *snap
	return &cp, nil
}

func (m *memProgressRepo) Save(_ context.Context, userID uuid.UUID, snap *store.ProgressSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *snap
	m.snaps[userID] = &cp
	return nil
}

type memAttemptRepo struct {
	mu      sync.Mutex
	records []store.AttemptRecord
}

func (m *memAttemptRepo) Append(_ context.Context, rec store.AttemptRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append([]store.AttemptRecord{rec}, m.records...)
	return nil
}

func (m *memAttemptRepo) Recent(_ context.Context, userID uuid.UUID, limit int) ([]store.AttemptRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.AttemptRecord
	for _, rec := range m.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type memLessonRepo struct {
	mu      sync.Mutex
	nextID  int
	lessons map[int]store.LessonRecord
}

func (m *memLessonRepo) Create(_ context.Context, l *store.LessonRecord) (*store.LessonRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *l
	cp.ID = m.nextID
	m.nextID++
	m.lessons[cp.ID] = cp
	return &cp, nil
}

func (m *memLessonRepo) Update(_ context.Context, l *store.LessonRecord) (*store.LessonRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lessons[l.ID]; !ok {
		return nil, nil
	}
	m.lessons[l.ID] = *l
	cp := *l
	return &cp, nil
}

func (m *memLessonRepo) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lessons, id)
	return nil
}

func (m *memLessonRepo) ByID(_ context.Context, id int) (*store.LessonRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lessons[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (m *memLessonRepo) List(_ context.Context) ([]store.LessonRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]store.LessonRecord, 0, len(m.lessons))
	for id := 1; id < m.nextID; id++ {
		if l, ok := m.lessons[id]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

type memSettingsRepo struct {
	mu       sync.Mutex
	settings map[uuid.UUID]store.AccessibilitySettings
}

func (m *memSettingsRepo) Get(_ context.Context, userID uuid.UUID) (store.AccessibilitySettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.settings[userID]; ok {
		return s, nil
	}
	return store.DefaultAccessibilitySettings(), nil
}

func (m *memSettingsRepo) Save(_ context.Context, userID uuid.UUID, s store.AccessibilitySettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[userID] = s
	return nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	attempts := &memAttemptRepo{}
	return New(Options{
		Auth:      auth.NewService(&memUserRepo{users: map[string]*store.UserRecord{}}, []byte("test-secret"), time.Hour),
		Lessons:   lessons.NewService(&memLessonRepo{nextID: 1, lessons: map[int]store.LessonRecord{}}),
		Progress:  progress.NewService(&memProgressRepo{snaps: map[uuid.UUID]*store.ProgressSnapshot{}}),
		Adaptive:  adaptive.NewService(attempts),
		Generator: problemgen.NewSeeded(1),
		Attempts:  attempts,
		Settings:  &memSettingsRepo{settings: map[uuid.UUID]store.AccessibilitySettings{}},
	})
}

func doJSON(t *testing.T, srv *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, srv *Server, email string) string {
	t.Helper()
	w := doJSON(t, srv, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Ana", "email": email, "password": "secreto1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	w := doJSON(t, srv, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	srv := newTestServer(t)
	registerUser(t, srv, "ana@example.com")

	w := doJSON(t, srv, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ana@example.com", "password": "secreto1",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, srv, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ana@example.com", "password": "mal",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterDuplicate(t *testing.T) {
	srv := newTestServer(t)
	registerUser(t, srv, "ana@example.com")

	w := doJSON(t, srv, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Ana", "email": "ana@example.com", "password": "secreto1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/progress", "/api/problems/next", "/api/achievements"} {
		w := doJSON(t, srv, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := doJSON(t, srv, http.MethodGet, "/api/progress", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLessonCRUD(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "ana@example.com")

	w := doJSON(t, srv, http.MethodPost, "/api/lessons", token, gin.H{
		"title": "Sumas hasta 10", "category": "addition", "difficulty": "beginner", "points": 100,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created store.LessonRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	// The catalog reads are public.
	w = doJSON(t, srv, http.MethodGet, "/api/lessons", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodPut, "/api/lessons/1", token, gin.H{
		"title": "Sumas hasta 20", "category": "addition", "difficulty": "beginner", "points": 120,
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, srv, http.MethodPost, "/api/lessons", token, gin.H{
		"title": "x", "category": "addition", "difficulty": "imposible",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, srv, http.MethodDelete, "/api/lessons/1", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/lessons/1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompleteLessonFlow(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "ana@example.com")

	w := doJSON(t, srv, http.MethodPost, "/api/progress/complete", token, gin.H{
		"lesson_id": 5, "score": 100,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Progress        store.ProgressSnapshot    `json:"progress"`
		NewAchievements []store.AchievementUnlock `json:"new_achievements"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 100, resp.Progress.Points)
	assert.Equal(t, 2, resp.Progress.Level)
	assert.Equal(t, 1, resp.Progress.LessonsCompleted)
	assert.NotEmpty(t, resp.NewAchievements)

	// Repeat completion does not double-count the lesson.
	w = doJSON(t, srv, http.MethodPost, "/api/progress/complete", token, gin.H{
		"lesson_id": 5, "score": 50,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 150, resp.Progress.Points)
	assert.Equal(t, 1, resp.Progress.LessonsCompleted)

	w = doJSON(t, srv, http.MethodPost, "/api/progress/reset", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/progress", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var snap store.ProgressSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, 0, snap.Points)
	assert.Equal(t, 1, snap.Level)
}

func TestCompleteNegativeScore(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "ana@example.com")

	w := doJSON(t, srv, http.MethodPost, "/api/progress/complete", token, gin.H{
		"lesson_id": 5, "score": -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAchievementsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "ana@example.com")

	w := doJSON(t, srv, http.MethodGet, "/api/achievements", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Achievements []struct {
			ID     int  `json:"id"`
			Earned bool `json:"earned"`
		} `json:"achievements"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Achievements, 6)
	for _, a := range resp.Achievements {
		assert.False(t, a.Earned)
	}
}

func TestNextProblemAndAttempts(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "ana@example.com")

	// New user: beginner tier.
	w := doJSON(t, srv, http.MethodGet, "/api/problems/next?operation=division", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Problem problemgen.Problem `json:"problem"`
		Text    string             `json:"text"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, problemgen.OpDivision, resp.Problem.Operation)
	assert.Equal(t, problemgen.Beginner, resp.Problem.Difficulty)
	assert.Zero(t, resp.Problem.Operand1%resp.Problem.Operand2)
	assert.NotEmpty(t, resp.Text)

	// Record a correct attempt; the response carries the new rate.
	w = doJSON(t, srv, http.MethodPost, "/api/problems/attempts", token, gin.H{
		"operation":  string(resp.Problem.Operation),
		"difficulty": string(resp.Problem.Difficulty),
		"operand1":   resp.Problem.Operand1,
		"operand2":   resp.Problem.Operand2,
		"given":      resp.Problem.Answer,
		"answer":     resp.Problem.Answer,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var attemptResp struct {
		IsCorrect   bool    `json:"is_correct"`
		SuccessRate float64 `json:"success_rate"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &attemptResp))
	assert.True(t, attemptResp.IsCorrect)
	assert.Equal(t, 1.0, attemptResp.SuccessRate)

	// A perfect window promotes the next problem's tier.
	w = doJSON(t, srv, http.MethodGet, "/api/problems/next?operation=addition", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, problemgen.Intermediate, resp.Problem.Difficulty)

	w = doJSON(t, srv, http.MethodGet, "/api/problems/next?difficulty=imposible", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccessibilitySettings(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv, "ana@example.com")

	w := doJSON(t, srv, http.MethodGet, "/api/settings/accessibility", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var settings store.AccessibilitySettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, "medium", settings.FontSize)
	assert.True(t, settings.TextToSpeech)

	w = doJSON(t, srv, http.MethodPut, "/api/settings/accessibility", token, gin.H{
		"font_size": "large", "high_contrast": true, "text_to_speech": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/settings/accessibility", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, "large", settings.FontSize)
	assert.True(t, settings.HighContrast)
	assert.False(t, settings.TextToSpeech)

	w = doJSON(t, srv, http.MethodPut, "/api/settings/accessibility", token, gin.H{
		"font_size": "enorme",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
