package app

import (
	"context"
	"testing"
	"time"

	"psychoscore/domain/core"
	"psychoscore/domain/scoring"
	"psychoscore/domain/survey"
	"psychoscore/internal"
	"psychoscore/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.User), args.Error(1)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) CreateSession(ctx context.Context, session *models.TestSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetSessionByID(ctx context.Context, sessionID uuid.UUID) (*models.TestSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TestSession), args.Error(1)
}

func (m *MockSessionRepository) UpdateSessionStatus(ctx context.Context, sessionID uuid.UUID, status models.SessionStatus) error {
	args := m.Called(ctx, sessionID, status)
	return args.Error(0)
}

func (m *MockSessionRepository) ListSessionsByUser(ctx context.Context, userID uuid.UUID) ([]*models.TestSession, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*models.TestSession), args.Error(1)
}

type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) SaveResult(ctx context.Context, result *models.TestResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultRepository) GetResult(ctx context.Context, userID uuid.UUID, instrument string) (*models.TestResult, error) {
	args := m.Called(ctx, userID, instrument)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TestResult), args.Error(1)
}

func (m *MockResultRepository) ListResultsByUser(ctx context.Context, userID uuid.UUID) ([]*models.TestResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TestResult), args.Error(1)
}

type MockProfileExporter struct {
	mock.Mock
}

func (m *MockProfileExporter) Export(ctx context.Context, userName string, results []scoring.Result) ([]byte, error) {
	args := m.Called(ctx, userName, results)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func fullProtocol(inst survey.Instrument, value int) survey.ResponseSet {
	rs := make(survey.ResponseSet, inst.TotalQuestions())
	for id := 1; id <= inst.TotalQuestions(); id++ {
		rs[id] = value
	}
	return rs
}

func newTestService() (*ProfileService, *MockUserRepository, *MockSessionRepository, *MockResultRepository, *MockProfileExporter) {
	users := &MockUserRepository{}
	sessions := &MockSessionRepository{}
	results := &MockResultRepository{}
	exporter := &MockProfileExporter{}
	svc := NewProfileService(users, sessions, results, exporter, internal.NewLogger(internal.LogLevelError))
	return svc, users, sessions, results, exporter
}

func TestScoreSessionHappyPath(t *testing.T) {
	svc, users, sessions, results, _ := newTestService()
	ctx := context.Background()

	userID := uuid.New()
	sessionID := uuid.New()
	session := &models.TestSession{
		ID:         sessionID,
		UserID:     userID,
		Instrument: survey.RFQ.String(),
		Status:     models.SessionStatusActive,
	}
	user := &models.User{ID: userID, FirstName: "Анна", LastName: "Иванова", Gender: "female"}

	sessions.On("GetSessionByID", ctx, sessionID).Return(session, nil)
	users.On("GetUserByID", ctx, userID).Return(user, nil)
	results.On("SaveResult", ctx, mock.AnythingOfType("*models.TestResult")).Return(nil)
	sessions.On("UpdateSessionStatus", ctx, sessionID, models.SessionStatusCompleted).Return(nil)

	rs := survey.ResponseSet{1: 5, 2: 1, 3: 5, 4: 1, 5: 5, 6: 1, 7: 5, 8: 1, 9: 1, 10: 5, 11: 1}
	outcome, err := svc.ScoreSession(ctx, sessionID, rs)
	require.NoError(t, err)

	assert.Equal(t, survey.RFQ.String(), outcome.Instrument)
	assert.Equal(t, 30.0, outcome.Scores["promotion_score"])
	assert.Equal(t, 25.0, outcome.Scores["prevention_score"])
	assert.Contains(t, outcome.Message, "Анна Иванова")
	assert.Equal(t, 11, outcome.Quality.Answered)
	assert.NotEqual(t, uuid.Nil, outcome.ResultID)

	results.AssertExpectations(t)
	sessions.AssertExpectations(t)

	saved := results.Calls[0].Arguments.Get(1).(*models.TestResult)
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, sessionID, saved.SessionID)
	assert.NotEmpty(t, saved.ScoresJSON)
	assert.NotEmpty(t, saved.ResponsesJSON)
	assert.NotEmpty(t, saved.QualityJSON)
}

func TestScoreSessionIncompleteProtocol(t *testing.T) {
	svc, _, sessions, results, _ := newTestService()
	ctx := context.Background()

	sessionID := uuid.New()
	session := &models.TestSession{
		ID:         sessionID,
		UserID:     uuid.New(),
		Instrument: survey.RFQ.String(),
	}
	sessions.On("GetSessionByID", ctx, sessionID).Return(session, nil)

	_, err := svc.ScoreSession(ctx, sessionID, survey.ResponseSet{1: 3})
	assert.ErrorIs(t, err, core.ErrIncompleteResponses)
	results.AssertNotCalled(t, "SaveResult", mock.Anything, mock.Anything)
}

func TestScoreSessionUnknownSession(t *testing.T) {
	svc, _, sessions, _, _ := newTestService()
	ctx := context.Background()

	sessionID := uuid.New()
	sessions.On("GetSessionByID", ctx, sessionID).Return(nil, core.ErrSessionNotFound)

	_, err := svc.ScoreSession(ctx, sessionID, survey.ResponseSet{})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestUserResultsKeepsLatestPerInstrument(t *testing.T) {
	svc, users, _, results, _ := newTestService()
	ctx := context.Background()

	userID := uuid.New()
	users.On("GetUserByID", ctx, userID).Return(&models.User{ID: userID, FirstName: "Пётр", Gender: "male"}, nil)

	newer := &models.TestResult{ID: uuid.New(), UserID: userID, Instrument: "rfq", CreatedAt: time.Now()}
	older := &models.TestResult{ID: uuid.New(), UserID: userID, Instrument: "rfq", CreatedAt: time.Now().Add(-time.Hour)}
	panas := &models.TestResult{ID: uuid.New(), UserID: userID, Instrument: "panas", CreatedAt: time.Now()}

	// Repository returns newest first.
	results.On("ListResultsByUser", ctx, userID).Return([]*models.TestResult{newer, panas, older}, nil)

	out, err := svc.UserResults(ctx, userID)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Canonical instrument order: panas before rfq.
	assert.Equal(t, "panas", out[0].Instrument)
	assert.Equal(t, "rfq", out[1].Instrument)
	assert.Equal(t, newer.ID, out[1].ID)
}

func TestAssembleProfileRescoresStoredResponses(t *testing.T) {
	svc, users, _, results, _ := newTestService()
	ctx := context.Background()

	userID := uuid.New()
	user := &models.User{ID: userID, FirstName: "Ольга", Gender: "female"}
	users.On("GetUserByID", ctx, userID).Return(user, nil)

	responsesJSON, err := fullProtocol(survey.RFQ, 3).ToJSON()
	require.NoError(t, err)
	record := &models.TestResult{
		ID:            uuid.New(),
		UserID:        userID,
		Instrument:    "rfq",
		ResponsesJSON: responsesJSON,
		CreatedAt:     time.Now(),
	}
	results.On("ListResultsByUser", ctx, userID).Return([]*models.TestResult{record}, nil)

	gotUser, scored, err := svc.AssembleProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, user, gotUser)
	require.Len(t, scored, 1)

	rfq, ok := scored[0].(*scoring.RFQResult)
	require.True(t, ok)
	assert.Equal(t, 18, rfq.Promotion)
	assert.Equal(t, 15, rfq.Prevention)
}

func TestAssembleProfileCorruptResponses(t *testing.T) {
	svc, users, _, results, _ := newTestService()
	ctx := context.Background()

	userID := uuid.New()
	users.On("GetUserByID", ctx, userID).Return(&models.User{ID: userID, FirstName: "Иван", Gender: "male"}, nil)
	record := &models.TestResult{
		ID:            uuid.New(),
		UserID:        userID,
		Instrument:    "rfq",
		ResponsesJSON: "{broken",
		CreatedAt:     time.Now(),
	}
	results.On("ListResultsByUser", ctx, userID).Return([]*models.TestResult{record}, nil)

	_, _, err := svc.AssembleProfile(ctx, userID)
	assert.Error(t, err)
}

func TestProfileWorkbookDelegatesToExporter(t *testing.T) {
	svc, users, _, results, exporter := newTestService()
	ctx := context.Background()

	userID := uuid.New()
	users.On("GetUserByID", ctx, userID).Return(&models.User{ID: userID, FirstName: "Мария", Gender: "female"}, nil)
	results.On("ListResultsByUser", ctx, userID).Return([]*models.TestResult{}, nil)
	exporter.On("Export", ctx, "Мария", mock.Anything).Return([]byte("workbook"), nil)

	data, err := svc.ProfileWorkbook(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []byte("workbook"), data)
	exporter.AssertExpectations(t)
}

func TestProgressStats(t *testing.T) {
	svc, users, _, results, _ := newTestService()
	ctx := context.Background()

	userID := uuid.New()
	users.On("GetUserByID", ctx, userID).Return(&models.User{ID: userID, FirstName: "Нина", Gender: "female"}, nil)

	first := time.Now().Add(-2 * time.Hour)
	last := time.Now()
	results.On("ListResultsByUser", ctx, userID).Return([]*models.TestResult{
		{ID: uuid.New(), UserID: userID, Instrument: "rfq", CreatedAt: last},
		{ID: uuid.New(), UserID: userID, Instrument: "panas", CreatedAt: first},
	}, nil)

	stats, err := svc.ProgressStats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.CompletedInstruments)
	assert.Equal(t, 8, stats.TotalInstruments)
	require.NotNil(t, stats.FirstCompletedAt)
	require.NotNil(t, stats.LastCompletedAt)
	assert.True(t, stats.FirstCompletedAt.Equal(first))
	assert.True(t, stats.LastCompletedAt.Equal(last))
}
