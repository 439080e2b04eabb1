package repository

import (
	"context"

	"github.com/ajharbinger/leaderboard-api/internal/models"
)

// ScoreRepository defines the interface for score data access
type ScoreRepository interface {
	// Create inserts the score and fills in its store-assigned ID and CreatedAt.
	Create(ctx context.Context, score *models.Score) error
	// GetTop returns up to limit scores ordered by points descending.
	GetTop(ctx context.Context, limit int) ([]models.Score, error)
	Count(ctx context.Context) (int64, error)
}

// TransactionManager defines the interface for database transaction management
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(repos *Repositories) error) error
}

// Repositories groups all repository interfaces
type Repositories struct {
	Score ScoreRepository
	Tx    TransactionManager
}
