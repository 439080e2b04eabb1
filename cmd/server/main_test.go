package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajharbinger/leaderboard-api/internal/database"
	"github.com/ajharbinger/leaderboard-api/internal/metrics"
)

type fakeDB struct {
	err   error
	stats database.Stats
}

func (f fakeDB) HealthCheckContext(ctx context.Context) error {
	return f.err
}

func (f fakeDB) GetStats() database.Stats {
	return f.stats
}

type fakeCounter struct {
	n   int64
	err error
}

func (f fakeCounter) Count(ctx context.Context) (int64, error) {
	return f.n, f.err
}

func getHealthz(t *testing.T, h http.HandlerFunc) (int, healthResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	var resp healthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	return w.Code, resp
}

func TestHealthzHandler(t *testing.T) {
	db := fakeDB{stats: database.Stats{OpenConnections: 3, InUse: 1, Idle: 2}}

	code, resp := getHealthz(t, healthzHandler(db, fakeCounter{n: 42}))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, healthResponse{Status: "ok", Scores: 42, OpenConnections: 3, InUse: 1, Idle: 2}, resp)
}

func TestHealthzHandler_DatabaseDown(t *testing.T) {
	code, resp := getHealthz(t, healthzHandler(fakeDB{err: errors.New("down")}, fakeCounter{n: 1}))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unavailable", resp.Status)
	assert.Equal(t, "database unavailable", resp.Error)
	assert.Zero(t, resp.Scores)
}

func TestHealthzHandler_CountFails(t *testing.T) {
	code, resp := getHealthz(t, healthzHandler(fakeDB{}, fakeCounter{err: errors.New("relation does not exist")}))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "score count failed", resp.Error)
}

func TestOpsServer_Metrics(t *testing.T) {
	m := metrics.New()
	m.ScoreSubmitted(1)

	srv := newOpsServer(":0", fakeDB{}, fakeCounter{}, m)

	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "leaderboard_scores_submitted_total 1")

	w = httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
