package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"library_landing/internal/domain"
)

const (
	HealthPath = "/api/health"
	StatsPath  = "/api/stats"
)

// ErrUnsuccessful is returned when the backend answers with success=false.
var ErrUnsuccessful = errors.New("backend reported failure")

// Config holds backend client configuration.
type Config struct {
	BaseURL string
	Origin  string
	Timeout time.Duration
}

// Client talks to the library backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	origin     string
	logger     *slog.Logger
}

// New creates a new backend client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		origin:  cfg.Origin,
		logger:  logger.With("base_url", cfg.BaseURL),
	}
}

// BaseURL returns the resolved endpoint the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Available reports whether the health endpoint answers with a 2xx status.
func (c *Client) Available(ctx context.Context) bool {
	resp, err := c.get(ctx, HealthPath)
	if err != nil {
		c.logger.Warn("backend not available, using demo data", "error", err)
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if !isSuccess(resp.StatusCode) {
		c.logger.Warn("backend health check failed", "status", resp.StatusCode)
		return false
	}
	return true
}

// FetchStats fetches library statistics. Missing fields come back as zero.
func (c *Client) FetchStats(ctx context.Context) (domain.Stats, error) {
	resp, err := c.get(ctx, StatsPath)
	if err != nil {
		return domain.Stats{}, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return domain.Stats{}, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResp StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return domain.Stats{}, fmt.Errorf("decode response: %w", err)
	}

	if !apiResp.Success {
		if apiResp.Error != "" {
			return domain.Stats{}, fmt.Errorf("%w: %s", ErrUnsuccessful, apiResp.Error)
		}
		return domain.Stats{}, ErrUnsuccessful
	}

	if apiResp.Data == nil {
		return domain.Stats{}, errors.New("response without data")
	}

	return transform(apiResp.Data), nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "LibraryLanding/1.0")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	if c.origin != "" {
		req.Header.Set("Origin", c.origin)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	return resp, nil
}

func transform(data *StatsData) domain.Stats {
	stats := domain.Stats{
		BooksTotal:     valueOrZero(data.TotalBooks),
		StudentsTotal:  valueOrZero(data.TotalStudents),
		BooksIssued:    valueOrZero(data.BooksIssued),
		BooksAvailable: valueOrZero(data.AvailableBooks),
		RecentIssues:   data.RecentIssues,
	}

	for _, b := range data.PopularBooks {
		stats.PopularBooks = append(stats.PopularBooks, domain.PopularBook{
			Title:      b.Title,
			IssueCount: b.IssueCount,
		})
	}

	return stats
}

func valueOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
