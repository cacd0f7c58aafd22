package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hoopsight/hoopsight/internal/domain/analytics"
	"github.com/hoopsight/hoopsight/internal/domain/game"
	"github.com/hoopsight/hoopsight/internal/domain/season"
	"github.com/hoopsight/hoopsight/internal/domain/team"
	"github.com/hoopsight/hoopsight/internal/domain/viewstate"
	"github.com/hoopsight/hoopsight/internal/platform/cache"
	"github.com/hoopsight/hoopsight/internal/platform/logging"
)

type stubBackend struct {
	currentSeasonFn func(ctx context.Context) (season.Season, error)
	seasonsFn       func(ctx context.Context) ([]season.Season, error)
	teamFn          func(ctx context.Context, teamID string) (team.Team, error)
	scheduleFn      func(ctx context.Context, teamID string, year int) ([]team.ScheduleEntry, error)
	rosterFn        func(ctx context.Context, teamID string, year int) ([]team.RosterEntry, error)
	statsFn         func(ctx context.Context, teamID string, year int) (team.SeasonStats, error)
	gameFn          func(ctx context.Context, gameID string) (game.Game, error)
	standingsFn     func(ctx context.Context, slug string, year int) ([]analytics.Standing, error)

	scheduleCalls atomic.Int32
}

func (b *stubBackend) CurrentSeason(ctx context.Context) (season.Season, error) {
	if b.currentSeasonFn != nil {
		return b.currentSeasonFn(ctx)
	}
	return season.Season{Year: 2026, DisplayName: "2025-26"}, nil
}

func (b *stubBackend) Seasons(ctx context.Context) ([]season.Season, error) {
	if b.seasonsFn != nil {
		return b.seasonsFn(ctx)
	}
	return []season.Season{{Year: 2026}, {Year: 2025}}, nil
}

func (b *stubBackend) SeasonByYear(_ context.Context, year int) (season.Season, error) {
	return season.Season{Year: year}, nil
}

func (b *stubBackend) TeamByID(ctx context.Context, teamID string) (team.Team, error) {
	if b.teamFn != nil {
		return b.teamFn(ctx, teamID)
	}
	return team.Team{ID: teamID, DisplayName: "Michigan Wolverines", Abbreviation: "MICH"}, nil
}

func (b *stubBackend) TeamSchedule(ctx context.Context, teamID string, year int) ([]team.ScheduleEntry, error) {
	b.scheduleCalls.Add(1)
	if b.scheduleFn != nil {
		return b.scheduleFn(ctx, teamID, year)
	}
	return scheduleFixture(), nil
}

func (b *stubBackend) TeamRoster(ctx context.Context, teamID string, year int) ([]team.RosterEntry, error) {
	if b.rosterFn != nil {
		return b.rosterFn(ctx, teamID, year)
	}
	return rosterFixture(25), nil
}

func (b *stubBackend) TeamStats(ctx context.Context, teamID string, year int) (team.SeasonStats, error) {
	if b.statsFn != nil {
		return b.statsFn(ctx, teamID, year)
	}
	return team.SeasonStats{TeamID: teamID, Season: year, Wins: 20, Losses: 8}, nil
}

func (b *stubBackend) GameByID(ctx context.Context, gameID string) (game.Game, error) {
	if b.gameFn != nil {
		return b.gameFn(ctx, gameID)
	}
	return game.Game{
		ID:                     gameID,
		HomeTeamID:             "130",
		AwayTeamID:             "990",
		HomeTeamConferenceSlug: "big-ten",
		AwayTeamConferenceSlug: "acc",
	}, nil
}

func (b *stubBackend) ConferenceStandings(ctx context.Context, slug string, year int) ([]analytics.Standing, error) {
	if b.standingsFn != nil {
		return b.standingsFn(ctx, slug, year)
	}
	return []analytics.Standing{{Rank: 1, TeamID: "130", TeamName: "Michigan"}}, nil
}

func (b *stubBackend) PowerRankings(context.Context, int, int) ([]analytics.PowerRanking, error) {
	return nil, nil
}

func (b *stubBackend) BettingEdges(context.Context, string, float64) ([]analytics.BettingEdge, error) {
	return nil, nil
}

type stubLive struct {
	statsFn  func(ctx context.Context, teamID string, year int) (ExternalStats, error)
	recordFn func(ctx context.Context, teamID string, year int) (ExternalRecord, error)
}

func (l *stubLive) TeamSeasonStatistics(ctx context.Context, teamID string, year int) (ExternalStats, error) {
	if l.statsFn != nil {
		return l.statsFn(ctx, teamID, year)
	}
	return NewExternalStats(map[string]any{
		"splits": map[string]any{
			"categories": []any{
				map[string]any{"name": "offensive", "stats": []any{
					map[string]any{"name": "points", "displayValue": "78.2", "value": 78.2},
				}},
			},
		},
	}), nil
}

func (l *stubLive) TeamSeasonRecord(ctx context.Context, teamID string, year int) (ExternalRecord, error) {
	if l.recordFn != nil {
		return l.recordFn(ctx, teamID, year)
	}
	return NewExternalRecord(map[string]any{
		"items": []any{
			map[string]any{"name": "overall", "summary": "20-8"},
		},
	}), nil
}

// scheduleFixture returns eight games where the first five finished.
func scheduleFixture() []team.ScheduleEntry {
	entries := make([]team.ScheduleEntry, 0, 8)
	for i := 1; i <= 8; i++ {
		e := team.ScheduleEntry{
			GameID:       gameID(i),
			Date:         time.Date(2025, 11, i, 19, 0, 0, 0, time.UTC).Format(time.RFC3339),
			OpponentName: "Opponent",
			Completed:    i <= 5,
		}
		entries = append(entries, e)
	}
	return entries
}

func gameID(i int) string {
	return "game-" + string(rune('0'+i))
}

func rosterFixture(n int) []team.RosterEntry {
	out := make([]team.RosterEntry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, team.RosterEntry{
			SeasonPlayerID: gameID(i % 10),
			PlayerID:       gameID(i % 10),
			DisplayName:    "Player",
		})
	}
	return out
}

func newTestService(backend DataBackend, live LiveStatsProvider, store *cache.Store) *TeamViewService {
	seasons := NewSeasonService(backend, store)
	return NewTeamViewService(backend, live, seasons, store, logging.NewNop())
}

func TestBuildTeamView_AssemblesAllSections(t *testing.T) {
	backend := &stubBackend{}
	svc := newTestService(backend, &stubLive{}, cache.NewStore(time.Minute))

	view, err := svc.BuildTeamView(context.Background(), TeamViewQuery{TeamID: "130"})
	if err != nil {
		t.Fatalf("BuildTeamView: %v", err)
	}

	if !view.SeasonResolved || view.SeasonYear != 2026 {
		t.Fatalf("season = (%d, %v), want (2026, true)", view.SeasonYear, view.SeasonResolved)
	}
	if view.TeamState.Status != SectionOK {
		t.Fatalf("team state = %+v, want ok", view.TeamState)
	}
	if view.ScheduleState.Status != SectionOK || len(view.Schedule) != 8 {
		t.Fatalf("schedule state = %+v with %d entries", view.ScheduleState, len(view.Schedule))
	}
	if view.StatsState.Status != SectionOK || view.Stats.Wins != 20 {
		t.Fatalf("stats state = %+v, wins = %d", view.StatsState, view.Stats.Wins)
	}
	if view.ConferenceSlug != "big-ten" {
		t.Fatalf("conference slug = %q, want big-ten", view.ConferenceSlug)
	}
	if view.StandingsState.Status != SectionOK || len(view.Standings) != 1 {
		t.Fatalf("standings state = %+v with %d rows", view.StandingsState, len(view.Standings))
	}
	if view.LiveStatsState.Status != SectionOK || view.LiveRecordState.Status != SectionOK {
		t.Fatalf("live states = %+v / %+v", view.LiveStatsState, view.LiveRecordState)
	}
	if view.CanonicalQuery != "" {
		t.Fatalf("canonical query = %q, want empty for defaults", view.CanonicalQuery)
	}
}

func TestBuildTeamView_RecentAndUpcomingDerivation(t *testing.T) {
	backend := &stubBackend{}
	svc := newTestService(backend, &stubLive{}, cache.NewStore(time.Minute))

	view, err := svc.BuildTeamView(context.Background(), TeamViewQuery{TeamID: "130"})
	if err != nil {
		t.Fatalf("BuildTeamView: %v", err)
	}

	wantRecent := []string{gameID(5), gameID(4), gameID(3), gameID(2), gameID(1)}
	if len(view.RecentGames) != len(wantRecent) {
		t.Fatalf("recent games = %d entries, want %d", len(view.RecentGames), len(wantRecent))
	}
	for i, want := range wantRecent {
		if view.RecentGames[i].GameID != want {
			t.Fatalf("recent[%d] = %s, want %s", i, view.RecentGames[i].GameID, want)
		}
	}

	wantUpcoming := []string{gameID(6), gameID(7), gameID(8)}
	if len(view.UpcomingGames) != len(wantUpcoming) {
		t.Fatalf("upcoming games = %d entries, want %d", len(view.UpcomingGames), len(wantUpcoming))
	}
	for i, want := range wantUpcoming {
		if view.UpcomingGames[i].GameID != want {
			t.Fatalf("upcoming[%d] = %s, want %s", i, view.UpcomingGames[i].GameID, want)
		}
	}
}

func TestBuildTeamView_SeasonUnresolvedDefersSeasonSections(t *testing.T) {
	backend := &stubBackend{
		currentSeasonFn: func(context.Context) (season.Season, error) {
			return season.Season{}, errors.New("backend down")
		},
	}
	svc := newTestService(backend, &stubLive{}, cache.NewStore(time.Minute))

	view, err := svc.BuildTeamView(context.Background(), TeamViewQuery{TeamID: "130"})
	if err != nil {
		t.Fatalf("BuildTeamView: %v", err)
	}

	if view.SeasonResolved {
		t.Fatal("season reported resolved despite backend failure")
	}
	for name, state := range map[string]SectionState{
		"schedule":    view.ScheduleState,
		"roster":      view.RosterState,
		"stats":       view.StatsState,
		"standings":   view.StandingsState,
		"live stats":  view.LiveStatsState,
		"live record": view.LiveRecordState,
	} {
		if state.Status != SectionPending {
			t.Fatalf("%s state = %+v, want pending", name, state)
		}
	}
	if backend.scheduleCalls.Load() != 0 {
		t.Fatal("schedule fetched before a season was resolved")
	}
	if view.TeamState.Status != SectionOK {
		t.Fatalf("team state = %+v, want ok independent of season", view.TeamState)
	}
}

func TestBuildTeamView_ExplicitSeasonSkipsResolution(t *testing.T) {
	backend := &stubBackend{
		currentSeasonFn: func(context.Context) (season.Season, error) {
			return season.Season{}, errors.New("must not be called into a result")
		},
	}
	svc := newTestService(backend, &stubLive{}, cache.NewStore(time.Minute))

	view, err := svc.BuildTeamView(context.Background(), TeamViewQuery{TeamID: "130", SeasonYear: 2024})
	if err != nil {
		t.Fatalf("BuildTeamView: %v", err)
	}
	if !view.SeasonResolved || view.SeasonYear != 2024 {
		t.Fatalf("season = (%d, %v), want (2024, true)", view.SeasonYear, view.SeasonResolved)
	}
	if view.ScheduleState.Status != SectionOK {
		t.Fatalf("schedule state = %+v, want ok", view.ScheduleState)
	}
}

func TestBuildTeamView_SectionFailuresStayLocal(t *testing.T) {
	backend := &stubBackend{
		rosterFn: func(context.Context, string, int) ([]team.RosterEntry, error) {
			return nil, errors.New("roster upstream 502")
		},
		statsFn: func(context.Context, string, int) (team.SeasonStats, error) {
			return team.SeasonStats{}, errors.New("stats upstream timeout")
		},
	}
	svc := newTestService(backend, &stubLive{}, cache.NewStore(time.Minute))

	view, err := svc.BuildTeamView(context.Background(), TeamViewQuery{TeamID: "130"})
	if err != nil {
		t.Fatalf("BuildTeamView: %v", err)
	}

	if view.RosterState.Status != SectionError || view.RosterState.Error == "" {
		t.Fatalf("roster state = %+v, want error with message", view.RosterState)
	}
	if view.StatsState.Status != SectionError {
		t.Fatalf("stats state = %+v, want error", view.StatsState)
	}
	if view.ScheduleState.Status != SectionOK {
		t.Fatalf("schedule state = %+v, want ok despite sibling failures", view.ScheduleState)
	}
	if view.StandingsState.Status != SectionOK {
		t.Fatalf("standings state = %+v, want ok despite sibling failures", view.StandingsState)
	}
}

func TestBuildTeamView_StandingsGatedOnConferenceSlug(t *testing.T) {
	standingsCalled := false
	backend := &stubBackend{
		gameFn: func(context.Context, string) (game.Game, error) {
			return game.Game{}, errors.New("game lookup failed")
		},
		standingsFn: func(context.Context, string, int) ([]analytics.Standing, error) {
			standingsCalled = true
			return nil, nil
		},
	}
	svc := newTestService(backend, &stubLive{}, cache.NewStore(time.Minute))

	view, err := svc.BuildTeamView(context.Background(), TeamViewQuery{TeamID: "130"})
	if err != nil {
		t.Fatalf("BuildTeamView: %v", err)
	}

	if view.ConferenceSlug != "" {
		t.Fatalf("conference slug = %q, want empty after lookup failure", view.ConferenceSlug)
	}
	if view.StandingsState.Status != SectionEmpty {
		t.Fatalf("standings state = %+v, want empty", view.StandingsState)
	}
	if standingsCalled {
		t.Fatal("standings fetched without a conference slug")
	}
}

func TestBuildTeamView_RosterPagination(t *testing.T) {
	backend := &stubBackend{}
	svc := newTestService(backend, &stubLive{}, cache.NewStore(time.Minute))

	state := viewstate.ViewState{ActiveTab: viewstate.TabRoster, RosterPage: 3}
	view, err := svc.BuildTeamView(context.Background(), TeamViewQuery{TeamID: "130", State: state})
	if err != nil {
		t.Fatalf("BuildTeamView: %v", err)
	}

	if view.RosterTotal != 25 || view.RosterPages != 3 {
		t.Fatalf("roster total/pages = %d/%d, want 25/3", view.RosterTotal, view.RosterPages)
	}
	if len(view.Roster) != 5 {
		t.Fatalf("page 3 of 25 has %d rows, want 5", len(view.Roster))
	}
	if view.CanonicalQuery != "?tab=roster&rosterPage=3" {
		t.Fatalf("canonical query = %q", view.CanonicalQuery)
	}
}

func TestBuildTeamView_SharesCachedSections(t *testing.T) {
	backend := &stubBackend{}
	svc := newTestService(backend, &stubLive{}, cache.NewStore(time.Minute))

	for i := 0; i < 3; i++ {
		if _, err := svc.BuildTeamView(context.Background(), TeamViewQuery{TeamID: "130"}); err != nil {
			t.Fatalf("BuildTeamView %d: %v", i, err)
		}
	}

	if got := backend.scheduleCalls.Load(); got != 1 {
		t.Fatalf("schedule fetched %d times across three views, want 1", got)
	}
}

func TestBuildTeamView_RejectsMissingTeamID(t *testing.T) {
	svc := newTestService(&stubBackend{}, &stubLive{}, cache.NewStore(time.Minute))

	_, err := svc.BuildTeamView(context.Background(), TeamViewQuery{TeamID: "  "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestBuildTeamView_SeasonSwitchDiscardsInFlightResults(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	backend := &stubBackend{
		scheduleFn: func(_ context.Context, _ string, year int) ([]team.ScheduleEntry, error) {
			if year == 2026 {
				close(started)
				<-release
			}
			return scheduleFixture(), nil
		},
	}
	svc := newTestService(backend, &stubLive{}, cache.NewStore(time.Minute))

	sess := NewSession("130", viewstate.Default())
	sess.AdoptSeason(2026)

	done := make(chan struct{})
	go func() {
		svc.runSession(context.Background(), sess)
		close(done)
	}()

	<-started
	sess.SelectSeason(2025)
	close(release)
	<-done

	if _, ok := sess.SlotResult(slotSchedule); ok {
		t.Fatal("schedule result for the abandoned season was committed")
	}
	view := svc.assembleView(sess)
	if view.SeasonYear != 2025 {
		t.Fatalf("season year = %d, want 2025", view.SeasonYear)
	}
	if view.ScheduleState.Status != SectionPending {
		t.Fatalf("schedule state = %+v, want pending after the switch", view.ScheduleState)
	}

	// A fresh pass against the new season fills the slots again.
	svc.runSession(context.Background(), sess)
	r, ok := sess.SlotResult(slotSchedule)
	if !ok || r.SeasonYear != 2025 {
		t.Fatalf("schedule slot = (%+v, %v), want a committed 2025 result", r, ok)
	}
}

func TestInvalidateTeam_ForcesRefetch(t *testing.T) {
	backend := &stubBackend{}
	store := cache.NewStore(time.Minute)
	svc := newTestService(backend, &stubLive{}, store)

	ctx := context.Background()
	if _, err := svc.BuildTeamView(ctx, TeamViewQuery{TeamID: "130"}); err != nil {
		t.Fatalf("first build: %v", err)
	}
	svc.InvalidateTeam(ctx, "130")
	if _, err := svc.BuildTeamView(ctx, TeamViewQuery{TeamID: "130"}); err != nil {
		t.Fatalf("second build: %v", err)
	}

	if got := backend.scheduleCalls.Load(); got != 2 {
		t.Fatalf("schedule fetched %d times around invalidation, want 2", got)
	}
}
