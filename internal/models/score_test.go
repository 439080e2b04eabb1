package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_ToResponse(t *testing.T) {
	score := Score{
		ID:        3,
		Points:    120,
		CreatedAt: time.Date(2024, time.March, 9, 7, 5, 3, 999, time.UTC),
	}

	resp := score.ToResponse()

	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, int64(120), resp.Points)
	assert.Equal(t, "2024-03-09 07:05:03", resp.CreatedAt)
}

func TestScore_ToResponse_ConvertsToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	score := Score{ID: 1, Points: -4, CreatedAt: time.Date(2024, time.January, 1, 1, 30, 0, 0, zone)}

	assert.Equal(t, "2023-12-31 23:30:00", score.ToResponse().CreatedAt)
}

func TestScoreResponse_JSONShape(t *testing.T) {
	score := Score{ID: 7, Points: 42, CreatedAt: time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)}

	raw, err := json.Marshal(score.ToResponse())
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":7,"points":42,"created_at":"2025-05-01 12:00:00"}`, string(raw))
}

func TestToResponses(t *testing.T) {
	assert.NotNil(t, ToResponses(nil))
	assert.Len(t, ToResponses(nil), 0)

	raw, err := json.Marshal(ToResponses(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	scores := []Score{{ID: 1, Points: 9}, {ID: 2, Points: 5}}
	responses := ToResponses(scores)
	require.Len(t, responses, 2)
	assert.Equal(t, int64(9), responses[0].Points)
	assert.Equal(t, int64(5), responses[1].Points)
}
