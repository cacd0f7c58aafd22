package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/hoopsight/hoopsight/internal/domain/analytics"
	"github.com/hoopsight/hoopsight/internal/domain/game"
	"github.com/hoopsight/hoopsight/internal/domain/season"
	"github.com/hoopsight/hoopsight/internal/domain/team"
	"github.com/hoopsight/hoopsight/internal/platform/cache"
	"github.com/hoopsight/hoopsight/internal/platform/logging"
	"github.com/hoopsight/hoopsight/internal/usecase"
)

type routerBackend struct{}

func (routerBackend) CurrentSeason(context.Context) (season.Season, error) {
	return season.Season{Year: 2026, DisplayName: "2025-26"}, nil
}

func (routerBackend) Seasons(context.Context) ([]season.Season, error) {
	return []season.Season{
		{Year: 2026, DisplayName: "2025-26"},
		{Year: 2025, DisplayName: "2024-25"},
	}, nil
}

func (routerBackend) SeasonByYear(_ context.Context, year int) (season.Season, error) {
	if year != 2026 && year != 2025 {
		return season.Season{}, usecase.ErrNotFound
	}
	return season.Season{Year: year}, nil
}

func (routerBackend) TeamByID(_ context.Context, teamID string) (team.Team, error) {
	return team.Team{ID: teamID, DisplayName: "Test Team"}, nil
}

func (routerBackend) TeamSchedule(_ context.Context, teamID string, _ int) ([]team.ScheduleEntry, error) {
	score := 80
	oppScore := 72
	won := true
	return []team.ScheduleEntry{
		{GameID: "game-1", Date: "2025-11-04", OpponentID: "55", OpponentName: "Rival", IsHome: true, Completed: true, Score: &score, OpponentScore: &oppScore, Won: &won},
		{GameID: "game-2", Date: "2026-03-01", OpponentID: "56", OpponentName: "Next Up"},
	}, nil
}

func (routerBackend) TeamRoster(_ context.Context, teamID string, year int) ([]team.RosterEntry, error) {
	return []team.RosterEntry{
		{SeasonPlayerID: "sp-1", Season: year, PlayerID: "p-1", DisplayName: "Guard One", TeamID: teamID},
	}, nil
}

func (routerBackend) TeamStats(_ context.Context, teamID string, year int) (team.SeasonStats, error) {
	return team.SeasonStats{TeamID: teamID, Season: year, Wins: 20, Losses: 5}, nil
}

func (routerBackend) GameByID(_ context.Context, gameID string) (game.Game, error) {
	return game.Game{
		ID:                     gameID,
		HomeTeamID:             "130",
		AwayTeamID:             "55",
		HomeTeamConferenceSlug: "big-ten",
		AwayTeamConferenceSlug: "acc",
	}, nil
}

func (routerBackend) ConferenceStandings(_ context.Context, slug string, _ int) ([]analytics.Standing, error) {
	return []analytics.Standing{
		{Rank: 1, TeamID: "130", TeamName: "Test Team", ConferenceWins: 10, ConferenceLosses: 2},
	}, nil
}

func (routerBackend) PowerRankings(_ context.Context, year, limit int) ([]analytics.PowerRanking, error) {
	return []analytics.PowerRanking{
		{Rank: 1, TeamID: "130", TeamName: "Test Team", Rating: 28.4, SeasonYear: year},
	}, nil
}

func (routerBackend) BettingEdges(_ context.Context, _ string, _ float64) ([]analytics.BettingEdge, error) {
	return []analytics.BettingEdge{
		{GameID: "game-9", HomeTeamID: "130", AwayTeamID: "55", Edge: 0.08, Pick: "home"},
	}, nil
}

type routerLive struct{}

func (routerLive) TeamSeasonStatistics(context.Context, string, int) (usecase.ExternalStats, error) {
	return usecase.ExternalStats{}, nil
}

func (routerLive) TeamSeasonRecord(context.Context, string, int) (usecase.ExternalRecord, error) {
	return usecase.ExternalRecord{}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	store := cache.NewStore(time.Minute)
	backend := routerBackend{}

	seasonService := usecase.NewSeasonService(backend, store)
	teamViewService := usecase.NewTeamViewService(backend, routerLive{}, seasonService, store, logger)
	analyticsService := usecase.NewAnalyticsService(backend, store)
	warmService := usecase.NewWarmService(teamViewService, 4, logger)

	handler := NewHandler(teamViewService, seasonService, analyticsService, warmService, logger)
	return NewRouter(handler, logger, []string{"*"}, "job-secret")
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRouter_ListSeasons(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/seasons", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("expected data array, got %T", body["data"])
	}
	if len(data) != 2 {
		t.Fatalf("expected 2 seasons, got %d", len(data))
	}
}

func TestRouter_GetTeamView(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/teams/130/view?tab=roster&rosterPage=1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %T", body["data"])
	}

	if got, _ := data["teamId"].(string); got != "130" {
		t.Fatalf("expected teamId=130, got %v", data["teamId"])
	}
	if got, _ := data["seasonResolved"].(bool); !got {
		t.Fatalf("expected season to resolve from the current season")
	}
	if got, _ := data["seasonYear"].(float64); int(got) != 2026 {
		t.Fatalf("expected seasonYear=2026, got %v", data["seasonYear"])
	}
	if got, _ := data["conferenceSlug"].(string); got != "big-ten" {
		t.Fatalf("expected conferenceSlug=big-ten, got %v", data["conferenceSlug"])
	}
	if got, _ := data["canonicalQuery"].(string); got != "?tab=roster" {
		t.Fatalf("expected canonical query to drop default page, got %q", got)
	}

	standingsState, _ := data["standingsState"].(map[string]any)
	if got, _ := standingsState["status"].(string); got != "ok" {
		t.Fatalf("expected standings section ok, got %v", standingsState)
	}
	recent, _ := data["recentGames"].([]any)
	if len(recent) != 1 {
		t.Fatalf("expected 1 recent game, got %d", len(recent))
	}
	upcoming, _ := data["upcomingGames"].([]any)
	if len(upcoming) != 1 {
		t.Fatalf("expected 1 upcoming game, got %d", len(upcoming))
	}
}

func TestRouter_GetTeamView_RejectsBadSeason(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/teams/130/view?season=banana", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRouter_PowerRankings(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/power-rankings?season=2026", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("expected 1 ranking row, got %v", body["data"])
	}
}

func TestRouter_WarmJob_RequiresToken(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	payload := strings.NewReader(`{"team_ids":["130"],"season":2026}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/warm", payload)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouter_WarmJob_RunsWithToken(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	payload := strings.NewReader(`{"team_ids":["130","131"],"season":2026}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/warm", payload)
	req.Header.Set("X-Internal-Job-Token", "job-secret")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %T", body["data"])
	}
	if got, _ := data["team_count"].(float64); int(got) != 2 {
		t.Fatalf("expected team_count=2, got %v", data["team_count"])
	}
	if got, _ := data["success_count"].(float64); int(got) != 2 {
		t.Fatalf("expected success_count=2, got %v", data["success_count"])
	}
}
