// Package app orchestrates scoring, persistence and profile assembly. It is
// the only layer that touches both the domain scorers and the repositories.
package app

import (
	"context"
	"encoding/json"

	"psychoscore/domain/report"
	"psychoscore/domain/scoring"
	"psychoscore/domain/survey"
	"psychoscore/internal"
	"psychoscore/internal/errors"
	"psychoscore/internal/quality"
	"psychoscore/models"
	"psychoscore/ports"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ProfileService orchestrates the score-and-persist pipeline
type ProfileService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	results  ports.ResultRepository
	exporter ports.ProfileExporter
	logger   *internal.Logger
}

// NewProfileService creates a profile service
func NewProfileService(users ports.UserRepository, sessions ports.SessionRepository, results ports.ResultRepository, exporter ports.ProfileExporter, logger *internal.Logger) *ProfileService {
	return &ProfileService{
		users:    users,
		sessions: sessions,
		results:  results,
		exporter: exporter,
		logger:   logger,
	}
}

// ScoreOutcome is what ScoreSession hands back to the delivery layer: the
// scored result plus the rendered message and quality diagnostics.
type ScoreOutcome struct {
	Result     scoring.Result      `json:"-"`
	Instrument string              `json:"instrument"`
	Scores     map[string]float64  `json:"scores"`
	Quality    quality.Diagnostics `json:"quality"`
	Message    string              `json:"message"`
	ResultID   uuid.UUID           `json:"result_id"`
	Completed  bool                `json:"completed"`
}

// ScoreSession validates and scores the responses for one session, persists
// the result and marks the session completed.
func (s *ProfileService) ScoreSession(ctx context.Context, sessionID uuid.UUID, rs survey.ResponseSet) (*ScoreOutcome, error) {
	session, err := s.sessions.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	inst, err := survey.Parse(session.Instrument)
	if err != nil {
		return nil, err
	}

	result, err := scoring.Score(inst, rs)
	if err != nil {
		return nil, err
	}

	diag := quality.Analyze(inst, rs)

	user, err := s.users.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	record, err := buildResultRecord(session, result, rs, diag)
	if err != nil {
		return nil, err
	}
	if err := s.results.SaveResult(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to save result")
	}
	if err := s.sessions.UpdateSessionStatus(ctx, sessionID, models.SessionStatusCompleted); err != nil {
		return nil, errors.Wrap(err, "failed to complete session")
	}

	s.logger.Info("Scored session %s (%s) for user %s", sessionID, inst, session.UserID)

	return &ScoreOutcome{
		Result:     result,
		Instrument: inst.String(),
		Scores:     result.ScaleScores(),
		Quality:    diag,
		Message:    report.FormatMessage(result, displayName(user)),
		ResultID:   record.ID,
		Completed:  true,
	}, nil
}

// UserResults loads the latest stored result per instrument, newest first
// within each instrument collapsed to one row.
func (s *ProfileService) UserResults(ctx context.Context, userID uuid.UUID) ([]*models.TestResult, error) {
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	all, err := s.results.ListResultsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	latest := make(map[string]*models.TestResult, len(all))
	for _, r := range all {
		if _, seen := latest[r.Instrument]; !seen {
			latest[r.Instrument] = r
		}
	}

	out := make([]*models.TestResult, 0, len(latest))
	for _, inst := range survey.All() {
		if r, ok := latest[inst.String()]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// AssembleProfile re-scores a user's stored responses and returns the scored
// results in canonical instrument order. Stored responses are the source of
// truth, so rule changes flow through without a migration.
func (s *ProfileService) AssembleProfile(ctx context.Context, userID uuid.UUID) (*models.User, []scoring.Result, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	records, err := s.UserResults(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	// Each goroutine writes only its own slot, so no lock is needed.
	results := make([]scoring.Result, len(records))

	g, gctx := errgroup.WithContext(ctx)
	for i, record := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			inst, err := survey.Parse(record.Instrument)
			if err != nil {
				return err
			}
			rs, err := survey.ResponsesFromJSON(record.ResponsesJSON)
			if err != nil {
				return errors.Wrapf(err, "stored responses for %s are corrupt", record.Instrument)
			}
			result, err := scoring.Score(inst, rs)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return user, results, nil
}

// ProfileMarkdown renders the full profile document for a user.
func (s *ProfileService) ProfileMarkdown(ctx context.Context, userID uuid.UUID) (string, error) {
	user, results, err := s.AssembleProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	return report.BuildProfileMarkdown(displayName(user), results), nil
}

// ProfileWorkbook renders the full profile as an xlsx workbook.
func (s *ProfileService) ProfileWorkbook(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	user, results, err := s.AssembleProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.exporter.Export(ctx, displayName(user), results)
}

// ProgressStats summarizes which instruments a user has completed.
func (s *ProfileService) ProgressStats(ctx context.Context, userID uuid.UUID) (*models.UserResultStats, error) {
	records, err := s.UserResults(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &models.UserResultStats{
		CompletedInstruments: len(records),
		TotalInstruments:     len(survey.All()),
	}
	for _, r := range records {
		t := r.CreatedAt
		if stats.FirstCompletedAt == nil || t.Before(*stats.FirstCompletedAt) {
			first := t
			stats.FirstCompletedAt = &first
		}
		if stats.LastCompletedAt == nil || t.After(*stats.LastCompletedAt) {
			last := t
			stats.LastCompletedAt = &last
		}
	}
	return stats, nil
}

func buildResultRecord(session *models.TestSession, result scoring.Result, rs survey.ResponseSet, diag quality.Diagnostics) (*models.TestResult, error) {
	scoresJSON, err := marshalScores(result)
	if err != nil {
		return nil, err
	}
	responsesJSON, err := rs.ToJSON()
	if err != nil {
		return nil, err
	}
	qualityJSON, err := diag.ToJSON()
	if err != nil {
		return nil, err
	}

	return &models.TestResult{
		ID:            uuid.New(),
		SessionID:     session.ID,
		UserID:        session.UserID,
		Instrument:    result.Instrument().String(),
		ScoresJSON:    scoresJSON,
		ResponsesJSON: responsesJSON,
		QualityJSON:   qualityJSON,
	}, nil
}

// marshalScores stores the full typed result, not just the flat scale map,
// so exports keep instrument-specific fields like rankings and bands.
func marshalScores(result scoring.Result) (string, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal scores")
	}
	return string(data), nil
}

func displayName(user *models.User) string {
	name := user.FirstName
	if user.LastName != "" {
		name += " " + user.LastName
	}
	if name == "" {
		name = user.Username
	}
	return name
}
