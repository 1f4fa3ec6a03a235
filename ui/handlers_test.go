package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"psychoscore/app"
	"psychoscore/domain/core"
	"psychoscore/domain/scoring"
	"psychoscore/internal"
	"psychoscore/internal/config"
	"psychoscore/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	mock.Mock
}

func (m *stubUserRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *stubUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *stubUserRepo) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.User), args.Error(1)
}

type stubSessionRepo struct {
	mock.Mock
}

func (m *stubSessionRepo) CreateSession(ctx context.Context, session *models.TestSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *stubSessionRepo) GetSessionByID(ctx context.Context, sessionID uuid.UUID) (*models.TestSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TestSession), args.Error(1)
}

func (m *stubSessionRepo) UpdateSessionStatus(ctx context.Context, sessionID uuid.UUID, status models.SessionStatus) error {
	args := m.Called(ctx, sessionID, status)
	return args.Error(0)
}

func (m *stubSessionRepo) ListSessionsByUser(ctx context.Context, userID uuid.UUID) ([]*models.TestSession, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*models.TestSession), args.Error(1)
}

type stubResultRepo struct {
	mock.Mock
}

func (m *stubResultRepo) SaveResult(ctx context.Context, result *models.TestResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *stubResultRepo) GetResult(ctx context.Context, userID uuid.UUID, instrument string) (*models.TestResult, error) {
	args := m.Called(ctx, userID, instrument)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TestResult), args.Error(1)
}

func (m *stubResultRepo) ListResultsByUser(ctx context.Context, userID uuid.UUID) ([]*models.TestResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TestResult), args.Error(1)
}

type stubExporter struct {
	mock.Mock
}

func (m *stubExporter) Export(ctx context.Context, userName string, results []scoring.Result) ([]byte, error) {
	args := m.Called(ctx, userName, results)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func newTestServer() (*Server, *stubUserRepo, *stubSessionRepo, *stubResultRepo) {
	users := &stubUserRepo{}
	sessions := &stubSessionRepo{}
	results := &stubResultRepo{}
	exporter := &stubExporter{}

	logger := internal.NewLogger(internal.LogLevelError)
	profiles := app.NewProfileService(users, sessions, results, exporter, logger)
	cfg := &config.Config{Server: config.ServerConfig{Port: "0", GinMode: "test"}}
	return NewServer(cfg, profiles, users, sessions, logger), users, sessions, results
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s, _, _, _ := newTestServer()
	rec := doJSON(t, s, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestScoreSessionEndpoint(t *testing.T) {
	s, users, sessions, results := newTestServer()

	userID := uuid.New()
	sessionID := uuid.New()
	sessions.On("GetSessionByID", mock.Anything, sessionID).Return(&models.TestSession{
		ID: sessionID, UserID: userID, Instrument: "rfq", Status: models.SessionStatusActive,
	}, nil)
	users.On("GetUserByID", mock.Anything, userID).Return(&models.User{
		ID: userID, FirstName: "Анна", Gender: "female",
	}, nil)
	results.On("SaveResult", mock.Anything, mock.AnythingOfType("*models.TestResult")).Return(nil)
	sessions.On("UpdateSessionStatus", mock.Anything, sessionID, models.SessionStatusCompleted).Return(nil)

	body := map[string]interface{}{"responses": map[string]int{
		"1": 5, "2": 1, "3": 5, "4": 1, "5": 5, "6": 1, "7": 5, "8": 1, "9": 1, "10": 5, "11": 1,
	}}
	rec := doJSON(t, s, http.MethodPost, "/api/sessions/"+sessionID.String()+"/score", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var outcome struct {
		Instrument string             `json:"instrument"`
		Scores     map[string]float64 `json:"scores"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
	assert.Equal(t, "rfq", outcome.Instrument)
	assert.Equal(t, 30.0, outcome.Scores["promotion_score"])
	assert.Equal(t, 25.0, outcome.Scores["prevention_score"])
}

func TestScoreSessionIncompleteReturns422(t *testing.T) {
	s, _, sessions, _ := newTestServer()

	sessionID := uuid.New()
	sessions.On("GetSessionByID", mock.Anything, sessionID).Return(&models.TestSession{
		ID: sessionID, UserID: uuid.New(), Instrument: "rfq",
	}, nil)

	body := map[string]interface{}{"responses": map[string]int{"1": 3}}
	rec := doJSON(t, s, http.MethodPost, "/api/sessions/"+sessionID.String()+"/score", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestScoreSessionBadQuestionKey(t *testing.T) {
	s, _, sessions, _ := newTestServer()

	sessionID := uuid.New()
	sessions.On("GetSessionByID", mock.Anything, sessionID).Return(&models.TestSession{
		ID: sessionID, UserID: uuid.New(), Instrument: "rfq",
	}, nil)

	body := map[string]interface{}{"responses": map[string]int{"one": 3}}
	rec := doJSON(t, s, http.MethodPost, "/api/sessions/"+sessionID.String()+"/score", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScoreSessionUnknownSessionReturns404(t *testing.T) {
	s, _, sessions, _ := newTestServer()

	sessionID := uuid.New()
	sessions.On("GetSessionByID", mock.Anything, sessionID).Return(nil, core.ErrSessionNotFound)

	body := map[string]interface{}{"responses": map[string]int{"1": 3}}
	rec := doJSON(t, s, http.MethodPost, "/api/sessions/"+sessionID.String()+"/score", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScoreSessionInvalidID(t *testing.T) {
	s, _, _, _ := newTestServer()
	rec := doJSON(t, s, http.MethodPost, "/api/sessions/not-a-uuid/score", map[string]interface{}{"responses": map[string]int{}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateSessionRejectsUnknownInstrument(t *testing.T) {
	s, _, _, _ := newTestServer()
	body := map[string]interface{}{"user_id": uuid.New(), "instrument": "mmpi"}
	rec := doJSON(t, s, http.MethodPost, "/api/sessions", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateSessionHappyPath(t *testing.T) {
	s, users, sessions, _ := newTestServer()

	userID := uuid.New()
	users.On("GetUserByID", mock.Anything, userID).Return(&models.User{ID: userID, FirstName: "Глеб", Gender: "male"}, nil)
	sessions.On("CreateSession", mock.Anything, mock.AnythingOfType("*models.TestSession")).Return(nil)

	body := map[string]interface{}{"user_id": userID, "instrument": "hexaco"}
	rec := doJSON(t, s, http.MethodPost, "/api/sessions", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var session models.TestSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, "hexaco", session.Instrument)
	assert.Equal(t, models.SessionStatusActive, session.Status)
}

func TestCreateUserValidation(t *testing.T) {
	s, _, _, _ := newTestServer()

	rec := doJSON(t, s, http.MethodPost, "/api/users", map[string]interface{}{"first_name": "Анна", "gender": "other"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/users", map[string]interface{}{"gender": "female"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserReportRendersHTML(t *testing.T) {
	s, users, _, results := newTestServer()

	userID := uuid.New()
	users.On("GetUserByID", mock.Anything, userID).Return(&models.User{ID: userID, FirstName: "Вера", Gender: "female"}, nil)
	results.On("ListResultsByUser", mock.Anything, userID).Return([]*models.TestResult{}, nil)

	rec := doJSON(t, s, http.MethodGet, "/api/users/"+userID.String()+"/report", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Вера")
}

func TestUserResultsUnknownUserReturns404(t *testing.T) {
	s, users, _, _ := newTestServer()

	userID := uuid.New()
	users.On("GetUserByID", mock.Anything, userID).Return(nil, core.ErrUserNotFound)

	rec := doJSON(t, s, http.MethodGet, "/api/users/"+userID.String()+"/results", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
