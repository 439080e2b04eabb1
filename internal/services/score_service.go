package services

import (
	"context"

	"github.com/ajharbinger/leaderboard-api/internal/errors"
	"github.com/ajharbinger/leaderboard-api/internal/logger"
	"github.com/ajharbinger/leaderboard-api/internal/metrics"
	"github.com/ajharbinger/leaderboard-api/internal/models"
	"github.com/ajharbinger/leaderboard-api/internal/repository"
)

// scoreServiceImpl implements ScoreService
type scoreServiceImpl struct {
	repos   *repository.Repositories
	logger  logger.Logger
	metrics *metrics.Metrics
	limit   int
}

// NewScoreService creates a score service over the given repositories.
// m may be nil.
func NewScoreService(repos *repository.Repositories, log logger.Logger, m *metrics.Metrics) ScoreService {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &scoreServiceImpl{
		repos:   repos,
		logger:  log,
		metrics: m,
		limit:   models.DefaultTopScoresLimit,
	}
}

// SubmitScore inserts one score inside a transaction
func (s *scoreServiceImpl) SubmitScore(ctx context.Context, points int64) (*models.Score, error) {
	score := &models.Score{Points: points}

	err := s.repos.Tx.WithTransaction(ctx, func(repos *repository.Repositories) error {
		return repos.Score.Create(ctx, score)
	})
	if err != nil {
		s.logger.Error("Failed to store score", err, "points", points)
		s.metrics.StoreError("SubmitScore")
		return nil, errors.DatabaseError("failed to save score", err).WithOperation("SubmitScore")
	}

	s.metrics.ScoreSubmitted(points)
	s.logger.Info("Score submitted", "id", score.ID, "points", score.Points)

	return score, nil
}

// GetTopScores retrieves the leaderboard
func (s *scoreServiceImpl) GetTopScores(ctx context.Context) ([]models.Score, error) {
	s.logger.Debug("Retrieving top scores", "limit", s.limit)

	scores, err := s.repos.Score.GetTop(ctx, s.limit)
	if err != nil {
		s.logger.Error("Failed to retrieve top scores", err, "limit", s.limit)
		s.metrics.StoreError("GetTopScores")
		return nil, errors.DatabaseError("failed to get top scores", err).WithOperation("GetTopScores")
	}

	return scores, nil
}
