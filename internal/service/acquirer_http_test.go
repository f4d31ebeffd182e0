package service

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library_landing/internal/domain"
	"library_landing/internal/source/backend"
)

func newBackendAcquirer(baseURL string) *StatsAcquirer {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	client := backend.New(backend.Config{BaseURL: baseURL, Timeout: time.Second}, logger)
	return NewStatsAcquirer(client, nil, logger)
}

func backendServer(t *testing.T, healthStatus int, stats http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(backend.HealthPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(healthStatus)
	})
	mux.HandleFunc(backend.StatsPath, stats)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAcquire_FallbackCompleteness(t *testing.T) {
	statsCalls := 0

	tests := []struct {
		name    string
		baseURL func(t *testing.T) string
	}{
		{
			name: "health unreachable",
			baseURL: func(t *testing.T) string {
				srv := httptest.NewServer(http.NotFoundHandler())
				srv.Close()
				return srv.URL
			},
		},
		{
			name: "health not ok",
			baseURL: func(t *testing.T) string {
				return backendServer(t, http.StatusServiceUnavailable, func(w http.ResponseWriter, r *http.Request) {
					statsCalls++
				}).URL
			},
		},
		{
			name: "stats unreachable",
			baseURL: func(t *testing.T) string {
				return backendServer(t, http.StatusOK, func(w http.ResponseWriter, r *http.Request) {
					hj, ok := w.(http.Hijacker)
					require.True(t, ok)
					conn, _, err := hj.Hijack()
					require.NoError(t, err)
					_ = conn.Close()
				}).URL
			},
		},
		{
			name: "stats 500",
			baseURL: func(t *testing.T) string {
				return backendServer(t, http.StatusOK, func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"success": false, "error": "boom"}`))
				}).URL
			},
		},
		{
			name: "stats success false",
			baseURL: func(t *testing.T) string {
				return backendServer(t, http.StatusOK, func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte(`{"success": false}`))
				}).URL
			},
		},
		{
			name: "stats malformed json",
			baseURL: func(t *testing.T) string {
				return backendServer(t, http.StatusOK, func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte(`<html>not json</html>`))
				}).URL
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := newBackendAcquirer(tt.baseURL(t)).Acquire(context.Background())

			assert.Equal(t, domain.OriginFallback, snap.Origin)
			assert.Equal(t, domain.Stats{BooksTotal: 1250, StudentsTotal: 340, BooksIssued: 89, BooksAvailable: 1161}, snap.Stats)
		})
	}

	assert.Zero(t, statsCalls, "stats must not be requested when health fails")
}

func TestAcquire_PartialPayload(t *testing.T) {
	srv := backendServer(t, http.StatusOK, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "data": {"total_books": 300, "total_students": 45, "available_books": 280}}`))
	})

	snap := newBackendAcquirer(srv.URL).Acquire(context.Background())

	assert.Equal(t, domain.OriginLive, snap.Origin)
	assert.Equal(t, int64(300), snap.Stats.BooksTotal)
	assert.Equal(t, int64(45), snap.Stats.StudentsTotal)
	assert.Equal(t, int64(0), snap.Stats.BooksIssued)
	assert.Equal(t, int64(280), snap.Stats.BooksAvailable)
}

func TestAcquire_AvailableNotRecomputed(t *testing.T) {
	srv := backendServer(t, http.StatusOK, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "data": {"total_books": 100, "total_students": 1, "books_issued": 10, "available_books": 95}}`))
	})

	snap := newBackendAcquirer(srv.URL).Acquire(context.Background())

	assert.Equal(t, int64(95), snap.Stats.BooksAvailable)
}
