// Package dataapi is the HTTP client for the hoopsight score/schedule
// backend, which owns teams, seasons, games, and the analytics models.
package dataapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/hoopsight/hoopsight/internal/domain/analytics"
	"github.com/hoopsight/hoopsight/internal/domain/game"
	"github.com/hoopsight/hoopsight/internal/domain/season"
	"github.com/hoopsight/hoopsight/internal/domain/team"
	"github.com/hoopsight/hoopsight/internal/platform/logging"
	"github.com/hoopsight/hoopsight/internal/platform/resilience"
	"github.com/hoopsight/hoopsight/internal/usecase"
)

const (
	defaultBaseURL  = "http://localhost:8000"
	apiPrefix       = "/api/v1"
	maxResponseSize = 6 << 20
)

var errBackendTransient = crerr.New("data backend transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		maxRetries:     maxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.ProbeLimit),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) CurrentSeason(ctx context.Context) (season.Season, error) {
	var payload seasonPayload
	if err := c.doJSON(ctx, apiPrefix+"/seasons/current", nil, &payload); err != nil {
		return season.Season{}, fmt.Errorf("fetch current season: %w", err)
	}
	return payload.toDomain(), nil
}

func (c *Client) Seasons(ctx context.Context) ([]season.Season, error) {
	var payload []seasonPayload
	if err := c.doJSON(ctx, apiPrefix+"/seasons", nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch seasons: %w", err)
	}

	out := make([]season.Season, 0, len(payload))
	for _, item := range payload {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (c *Client) SeasonByYear(ctx context.Context, year int) (season.Season, error) {
	if year <= 0 {
		return season.Season{}, fmt.Errorf("season year must be positive")
	}

	var payload seasonPayload
	path := fmt.Sprintf("%s/seasons/%d", apiPrefix, year)
	if err := c.doJSON(ctx, path, nil, &payload); err != nil {
		return season.Season{}, fmt.Errorf("fetch season year=%d: %w", year, err)
	}
	return payload.toDomain(), nil
}

func (c *Client) TeamByID(ctx context.Context, teamID string) (team.Team, error) {
	if strings.TrimSpace(teamID) == "" {
		return team.Team{}, fmt.Errorf("team id is required")
	}

	var payload teamPayload
	path := apiPrefix + "/teams/" + url.PathEscape(teamID)
	if err := c.doJSON(ctx, path, nil, &payload); err != nil {
		return team.Team{}, fmt.Errorf("fetch team id=%s: %w", teamID, err)
	}
	return payload.toDomain(), nil
}

func (c *Client) TeamSchedule(ctx context.Context, teamID string, year int) ([]team.ScheduleEntry, error) {
	if strings.TrimSpace(teamID) == "" {
		return nil, fmt.Errorf("team id is required")
	}

	var payload []scheduleEntryPayload
	path := apiPrefix + "/teams/" + url.PathEscape(teamID) + "/schedule"
	if err := c.doJSON(ctx, path, seasonQuery(year), &payload); err != nil {
		return nil, fmt.Errorf("fetch schedule team_id=%s season=%d: %w", teamID, year, err)
	}

	out := make([]team.ScheduleEntry, 0, len(payload))
	for _, item := range payload {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (c *Client) TeamRoster(ctx context.Context, teamID string, year int) ([]team.RosterEntry, error) {
	if strings.TrimSpace(teamID) == "" {
		return nil, fmt.Errorf("team id is required")
	}

	var payload []rosterEntryPayload
	path := apiPrefix + "/teams/" + url.PathEscape(teamID) + "/roster"
	if err := c.doJSON(ctx, path, seasonQuery(year), &payload); err != nil {
		return nil, fmt.Errorf("fetch roster team_id=%s season=%d: %w", teamID, year, err)
	}

	out := make([]team.RosterEntry, 0, len(payload))
	for _, item := range payload {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (c *Client) TeamStats(ctx context.Context, teamID string, year int) (team.SeasonStats, error) {
	if strings.TrimSpace(teamID) == "" {
		return team.SeasonStats{}, fmt.Errorf("team id is required")
	}

	var payload teamStatsPayload
	path := apiPrefix + "/teams/" + url.PathEscape(teamID) + "/stats"
	if err := c.doJSON(ctx, path, seasonQuery(year), &payload); err != nil {
		return team.SeasonStats{}, fmt.Errorf("fetch stats team_id=%s season=%d: %w", teamID, year, err)
	}
	return payload.toDomain(), nil
}

func (c *Client) GameByID(ctx context.Context, gameID string) (game.Game, error) {
	if strings.TrimSpace(gameID) == "" {
		return game.Game{}, fmt.Errorf("game id is required")
	}

	var payload gamePayload
	path := apiPrefix + "/games/" + url.PathEscape(gameID)
	if err := c.doJSON(ctx, path, nil, &payload); err != nil {
		return game.Game{}, fmt.Errorf("fetch game id=%s: %w", gameID, err)
	}
	return payload.toDomain(), nil
}

func (c *Client) ConferenceStandings(ctx context.Context, conferenceSlug string, year int) ([]analytics.Standing, error) {
	if strings.TrimSpace(conferenceSlug) == "" {
		return nil, fmt.Errorf("conference slug is required")
	}

	query := seasonQuery(year)
	query["conference"] = conferenceSlug

	var payload []standingPayload
	if err := c.doJSON(ctx, apiPrefix+"/analytics/conference-standings", query, &payload); err != nil {
		return nil, fmt.Errorf("fetch standings conference=%s season=%d: %w", conferenceSlug, year, err)
	}

	out := make([]analytics.Standing, 0, len(payload))
	for _, item := range payload {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (c *Client) PowerRankings(ctx context.Context, year, limit int) ([]analytics.PowerRanking, error) {
	query := seasonQuery(year)
	if limit > 0 {
		query["limit"] = strconv.Itoa(limit)
	}

	var payload []powerRankingPayload
	if err := c.doJSON(ctx, apiPrefix+"/analytics/power-rankings", query, &payload); err != nil {
		return nil, fmt.Errorf("fetch power rankings season=%d: %w", year, err)
	}

	out := make([]analytics.PowerRanking, 0, len(payload))
	for _, item := range payload {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (c *Client) BettingEdges(ctx context.Context, date string, minEdge float64) ([]analytics.BettingEdge, error) {
	query := map[string]string{}
	if date != "" {
		query["date"] = date
	}
	if minEdge > 0 {
		query["min_edge"] = strconv.FormatFloat(minEdge, 'f', -1, 64)
	}

	var payload []bettingEdgePayload
	if err := c.doJSON(ctx, apiPrefix+"/analytics/betting-edges", query, &payload); err != nil {
		return nil, fmt.Errorf("fetch betting edges date=%s: %w", date, err)
	}

	out := make([]analytics.BettingEdge, 0, len(payload))
	for _, item := range payload {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func seasonQuery(year int) map[string]string {
	query := map[string]string{}
	if year > 0 {
		query["season"] = strconv.Itoa(year)
	}
	return query
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "data backend circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: data backend is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode backend payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("x-api-key", c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errBackendTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errBackendTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case resp.StatusCode == http.StatusNotFound:
				return nil, fmt.Errorf("%w: backend status=%d body=%s", usecase.ErrNotFound, resp.StatusCode, abbreviateBody(raw))
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: backend status=%d body=%s", errBackendTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("backend status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("backend request failed")
	}
	c.logger.WarnContext(ctx, "data backend request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errBackendTransient)
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	}
	return code >= 500
}

func sanitizeSensitiveText(value, secret string) string {
	value = strings.TrimSpace(value)
	if value == "" || secret == "" {
		return value
	}
	return strings.ReplaceAll(value, secret, "REDACTED")
}

func abbreviateBody(raw []byte) string {
	const limit = 300
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}
