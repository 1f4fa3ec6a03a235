package ui

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"psychoscore/domain/core"
	"psychoscore/domain/survey"
	"psychoscore/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateUserRequest is the payload for registering a respondent
type CreateUserRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender" binding:"required,oneof=male female"`
}

func (s *Server) handleCreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		ID:        uuid.New(),
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
	}
	if err := s.users.CreateUser(c.Request.Context(), user); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (s *Server) handleListUsers(c *gin.Context) {
	users, err := s.users.ListUsers(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// CreateSessionRequest starts one instrument attempt for a user
type CreateSessionRequest struct {
	UserID     uuid.UUID `json:"user_id" binding:"required"`
	Instrument string    `json:"instrument" binding:"required"`
}

func (s *Server) handleCreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inst, err := survey.Parse(req.Instrument)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := s.users.GetUserByID(c.Request.Context(), req.UserID); err != nil {
		s.respondError(c, err)
		return
	}

	session := &models.TestSession{
		ID:         uuid.New(),
		UserID:     req.UserID,
		Instrument: inst.String(),
		Status:     models.SessionStatusActive,
	}
	if err := s.sessions.CreateSession(c.Request.Context(), session); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (s *Server) handleGetSession(c *gin.Context) {
	sessionID, ok := parseID(c)
	if !ok {
		return
	}
	session, err := s.sessions.GetSessionByID(c.Request.Context(), sessionID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ScoreRequest carries the completed responses for a session. JSON object
// keys are strings, so question ids arrive as "1", "2", ...
type ScoreRequest struct {
	Responses map[string]int `json:"responses" binding:"required"`
}

func (s *Server) handleScoreSession(c *gin.Context) {
	sessionID, ok := parseID(c)
	if !ok {
		return
	}

	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rs := make(survey.ResponseSet, len(req.Responses))
	for key, value := range req.Responses {
		id, err := strconv.Atoi(key)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "question ids must be integers, got " + key})
			return
		}
		rs[id] = value
	}

	outcome, err := s.profiles.ScoreSession(c.Request.Context(), sessionID, rs)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// ResultSummary is the wire form of one stored result.
type ResultSummary struct {
	ID         uuid.UUID       `json:"id"`
	Instrument string          `json:"instrument"`
	Scores     json.RawMessage `json:"scores"`
	Quality    json.RawMessage `json:"quality"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (s *Server) handleUserResults(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	records, err := s.profiles.UserResults(c.Request.Context(), userID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	summaries := make([]ResultSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, ResultSummary{
			ID:         r.ID,
			Instrument: r.Instrument,
			Scores:     json.RawMessage(r.ScoresJSON),
			Quality:    json.RawMessage(r.QualityJSON),
			CreatedAt:  r.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"results": summaries, "count": len(summaries)})
}

func (s *Server) handleUserStats(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}
	stats, err := s.profiles.ProgressStats(c.Request.Context(), userID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleUserReport(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}
	md, err := s.profiles.ProfileMarkdown(c.Request.Context(), userID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", s.html.Render(md))
}

func (s *Server) handleUserWorkbook(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}
	data, err := s.profiles.ProfileWorkbook(c.Request.Context(), userID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="profile.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// parseID reads the :id path parameter as a UUID, writing the 400 itself.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id: " + c.Param("id")})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps domain errors onto HTTP statuses. Validation failures
// are client errors, everything unexpected stays a 500 with a log line.
func (s *Server) respondError(c *gin.Context, err error) {
	switch {
	case core.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case core.IsValidationError(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrUnknownInstrument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.logger.Error("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
