package models

import "time"

// CreatedAtLayout is the wire format of Score.CreatedAt ("YYYY-MM-DD HH:MM:SS").
const CreatedAtLayout = "2006-01-02 15:04:05"

// DefaultTopScoresLimit is the size of the leaderboard window.
const DefaultTopScoresLimit = 10

// Score is a single leaderboard entry. ID and CreatedAt are assigned by the
// store on insert and never change afterwards.
type Score struct {
	ID        int64     `json:"id" db:"id"`
	Points    int64     `json:"points" db:"points"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ScoreResponse is the JSON representation of a Score
type ScoreResponse struct {
	ID        int64  `json:"id"`
	Points    int64  `json:"points"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts the score to its wire representation (timestamps in UTC).
func (s *Score) ToResponse() ScoreResponse {
	return ScoreResponse{
		ID:        s.ID,
		Points:    s.Points,
		CreatedAt: s.CreatedAt.UTC().Format(CreatedAtLayout),
	}
}

// ToResponses converts a slice of scores, always returning a non-nil slice.
func ToResponses(scores []Score) []ScoreResponse {
	responses := make([]ScoreResponse, 0, len(scores))
	for i := range scores {
		responses = append(responses, scores[i].ToResponse())
	}
	return responses
}
