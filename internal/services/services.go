package services

import (
	"context"
	"database/sql"

	"github.com/ajharbinger/leaderboard-api/internal/logger"
	"github.com/ajharbinger/leaderboard-api/internal/metrics"
	"github.com/ajharbinger/leaderboard-api/internal/models"
	"github.com/ajharbinger/leaderboard-api/internal/repository"
)

// Services contains all application services
type Services struct {
	Score ScoreService
}

// ScoreService defines the interface for leaderboard business logic
type ScoreService interface {
	// SubmitScore persists a new score and returns it with its assigned id and timestamp.
	SubmitScore(ctx context.Context, points int64) (*models.Score, error)
	// GetTopScores returns the leaderboard window, highest points first.
	GetTopScores(ctx context.Context) ([]models.Score, error)
}

// NewServices creates a new Services instance with all dependencies
func NewServices(db *sql.DB, log logger.Logger, m *metrics.Metrics) *Services {
	repos := repository.NewRepositories(db)

	return &Services{
		Score: NewScoreService(repos, log, m),
	}
}
