package repository

import (
	"context"
	"fmt"

	"github.com/ajharbinger/leaderboard-api/internal/models"
)

// scoreRepository implements ScoreRepository
type scoreRepository struct {
	db dbExecutor
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db dbExecutor) ScoreRepository {
	return &scoreRepository{db: db}
}

// Create inserts a score; id and created_at come from the column defaults.
func (r *scoreRepository) Create(ctx context.Context, score *models.Score) error {
	query := `
		INSERT INTO scores (points)
		VALUES ($1)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, score.Points).Scan(&score.ID, &score.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create score: %w", err)
	}

	return nil
}

// GetTop retrieves the highest scores. Equal points keep insertion order.
func (r *scoreRepository) GetTop(ctx context.Context, limit int) ([]models.Score, error) {
	if limit <= 0 {
		limit = models.DefaultTopScoresLimit
	}

	query := `
		SELECT id, points, created_at
		FROM scores
		ORDER BY points DESC, id ASC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top scores: %w", err)
	}
	defer rows.Close()

	scores := make([]models.Score, 0, limit)
	for rows.Next() {
		var score models.Score
		if err := rows.Scan(&score.ID, &score.Points, &score.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, score)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scores: %w", err)
	}

	return scores, nil
}

// Count returns the number of persisted scores
func (r *scoreRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scores`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count scores: %w", err)
	}
	return count, nil
}
