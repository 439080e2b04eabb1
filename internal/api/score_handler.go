package api

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ajharbinger/leaderboard-api/internal/errors"
	"github.com/ajharbinger/leaderboard-api/internal/middleware"
	"github.com/ajharbinger/leaderboard-api/internal/models"
	"github.com/ajharbinger/leaderboard-api/internal/services"
)

// ScoreHandler serves the leaderboard endpoints
type ScoreHandler struct {
	scoreService services.ScoreService
}

// NewScoreHandler creates a new score handler with service injection
func NewScoreHandler(scoreService services.ScoreService) *ScoreHandler {
	return &ScoreHandler{
		scoreService: scoreService,
	}
}

// SubmitScoreRequest is the body of POST /scores. Score is kept raw so that
// strings, floats and null can be rejected instead of coerced.
type SubmitScoreRequest struct {
	Score json.RawMessage `json:"score"`
}

// Points validates the submitted score and returns it as an integer.
// With a repeated "score" key the last value is the one validated, as with encoding/json.
func (r *SubmitScoreRequest) Points() (int64, error) {
	raw := bytes.TrimSpace(r.Score)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, errors.ValidationError("score is required", nil)
	}

	points, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		appErr := errors.ValidationError("score must be an integer", err)
		if stderrors.Is(err, strconv.ErrRange) {
			appErr = appErr.WithDetails("score does not fit in a 64-bit integer")
		}
		return 0, appErr
	}
	return points, nil
}

// GetScores returns the top scores, highest first
func (h *ScoreHandler) GetScores(c *gin.Context) {
	scores, err := h.scoreService.GetTopScores(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ToResponses(scores))
}

// CreateScore persists a submitted score
func (h *ScoreHandler) CreateScore(c *gin.Context) {
	var req SubmitScoreRequest
	if err := decodeJSONBody(c.Request.Body, &req); err != nil {
		respondError(c, errors.ValidationError("invalid request body", err).WithOperation("CreateScore"))
		return
	}

	points, err := req.Points()
	if err != nil {
		respondError(c, err)
		return
	}

	score, err := h.scoreService.SubmitScore(c.Request.Context(), points)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, score.ToResponse())
}

// decodeJSONBody decodes exactly one JSON value from body into v.
// Anything but whitespace after that value is an error.
func decodeJSONBody(body io.Reader, v interface{}) error {
	if body == nil {
		return io.EOF
	}
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			return stderrors.New("unexpected data after JSON value")
		}
		return err
	}
	return nil
}

// respondError writes an AppError as JSON. Causes of non-validation errors stay out of the response.
func respondError(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	body := gin.H{
		"error": "internal server error",
		"code":  errors.CodeOf(err),
	}

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		body["error"] = appErr.Message
		if errors.IsValidation(appErr) {
			if appErr.Details != "" {
				body["details"] = appErr.Details
			} else if appErr.Cause != nil {
				body["details"] = appErr.Cause.Error()
			}
		}
	}
	if requestID := c.GetString(middleware.RequestIDKey); requestID != "" {
		body["request_id"] = requestID
	}

	_ = c.Error(err)
	c.JSON(status, body)
}
