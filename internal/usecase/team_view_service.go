package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc"

	"github.com/hoopsight/hoopsight/internal/domain/analytics"
	"github.com/hoopsight/hoopsight/internal/domain/season"
	"github.com/hoopsight/hoopsight/internal/domain/team"
	"github.com/hoopsight/hoopsight/internal/domain/viewstate"
	"github.com/hoopsight/hoopsight/internal/platform/cache"
	"github.com/hoopsight/hoopsight/internal/platform/logging"
)

// SectionStatus describes how one section of a team view resolved.
type SectionStatus string

const (
	// SectionOK means the section loaded and has data.
	SectionOK SectionStatus = "ok"
	// SectionPending means the section was not fetched because a
	// prerequisite (usually the season) is still unresolved.
	SectionPending SectionStatus = "pending"
	// SectionEmpty means the fetch succeeded but there is nothing to
	// show. Distinct from an error so the UI can render a blank state.
	SectionEmpty SectionStatus = "empty"
	// SectionError means the fetch failed. Other sections are not
	// affected.
	SectionError SectionStatus = "error"
)

type SectionState struct {
	Status SectionStatus
	Error  string
}

func okSection() SectionState      { return SectionState{Status: SectionOK} }
func pendingSection() SectionState { return SectionState{Status: SectionPending} }
func emptySection() SectionState   { return SectionState{Status: SectionEmpty} }

func errSection(err error) SectionState {
	return SectionState{Status: SectionError, Error: err.Error()}
}

// TeamView is the fully assembled team detail payload. Every section
// carries its own state so one failing upstream degrades only its own
// panel.
type TeamView struct {
	TeamID         string
	SeasonYear     int
	SeasonResolved bool

	Seasons []season.Season

	Team      team.Team
	TeamState SectionState

	Schedule      []team.ScheduleEntry
	ScheduleState SectionState
	RecentGames   []team.ScheduleEntry
	UpcomingGames []team.ScheduleEntry

	Roster      []team.RosterEntry
	RosterTotal int
	RosterPages int
	RosterState SectionState

	Stats      team.SeasonStats
	StatsState SectionState

	ConferenceSlug string
	Standings      []analytics.Standing
	StandingsState SectionState

	LiveStats       ExternalStats
	LiveStatsState  SectionState
	LiveRecord      ExternalRecord
	LiveRecordState SectionState

	State          viewstate.ViewState
	CanonicalQuery string
}

// TeamViewQuery selects which team view to assemble. A zero SeasonYear
// means "resolve the current season first".
type TeamViewQuery struct {
	TeamID     string
	SeasonYear int
	State      viewstate.ViewState
}

type seasonDirectory interface {
	Current(ctx context.Context) (season.Season, error)
	List(ctx context.Context) ([]season.Season, error)
}

// TeamViewService assembles team views by fanning out to the data
// backend and the live stats provider. All reads go through the shared
// cache store, so repeated views of the same team within the TTL
// window reuse one upstream call per section.
type TeamViewService struct {
	backend DataBackend
	live    LiveStatsProvider
	seasons seasonDirectory
	store   *cache.Store
	logger  *logging.Logger
}

func NewTeamViewService(
	backend DataBackend,
	live LiveStatsProvider,
	seasons seasonDirectory,
	store *cache.Store,
	logger *logging.Logger,
) *TeamViewService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamViewService{
		backend: backend,
		live:    live,
		seasons: seasons,
		store:   store,
		logger:  logger,
	}
}

// Fetch slots of one view session. Each slot carries its own ticket
// generation so a stale result cannot land in it.
const (
	slotTeam       = "team"
	slotSchedule   = "schedule"
	slotRoster     = "roster"
	slotStats      = "stats"
	slotLiveStats  = "liveStats"
	slotLiveRecord = "liveRecord"
	slotStandings  = "standings"
)

// standingsOutcome keeps the derived slug next to the rows so the view
// can report affiliation even when the standings table is empty.
type standingsOutcome struct {
	Slug string
	Rows []analytics.Standing
}

func (s *TeamViewService) BuildTeamView(ctx context.Context, q TeamViewQuery) (TeamView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamViewService.BuildTeamView")
	defer span.End()

	if strings.TrimSpace(q.TeamID) == "" {
		return TeamView{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if q.SeasonYear < 0 {
		return TeamView{}, fmt.Errorf("%w: season year must not be negative", ErrInvalidInput)
	}

	sess := NewSession(q.TeamID, q.State)
	if q.SeasonYear > 0 {
		sess.SelectSeason(q.SeasonYear)
	} else if current, err := s.seasons.Current(ctx); err != nil {
		s.logger.WarnContext(ctx, "current season unresolved, deferring season sections", "error", err)
	} else {
		sess.AdoptSeason(current.Year)
	}

	var seasons []season.Season
	if list, err := s.seasons.List(ctx); err != nil {
		s.logger.WarnContext(ctx, "season directory unavailable", "error", err)
	} else {
		seasons = list
	}

	s.runSession(ctx, sess)

	view := s.assembleView(sess)
	view.Seasons = seasons
	return view, nil
}

// runSession issues the fetch set for the session's current team and
// season. Every result goes through its ticket, so a fetch that
// outlives a team or season switch is dropped on arrival instead of
// overwriting newer state.
func (s *TeamViewService) runSession(ctx context.Context, sess *Session) {
	var wg conc.WaitGroup

	teamTicket := sess.BeginFetch(slotTeam)
	wg.Go(func() {
		found, err := s.loadTeam(ctx, teamTicket.TeamID)
		sess.CommitFetch(teamTicket, found, err)
	})

	if _, ok := sess.Season(); ok {
		scheduleTicket := sess.BeginFetch(slotSchedule)
		wg.Go(func() {
			entries, err := s.loadSchedule(ctx, scheduleTicket.TeamID, scheduleTicket.SeasonYear)
			sess.CommitFetch(scheduleTicket, entries, err)
		})
		rosterTicket := sess.BeginFetch(slotRoster)
		wg.Go(func() {
			entries, err := s.loadRoster(ctx, rosterTicket.TeamID, rosterTicket.SeasonYear)
			sess.CommitFetch(rosterTicket, entries, err)
		})
		statsTicket := sess.BeginFetch(slotStats)
		wg.Go(func() {
			stats, err := s.loadStats(ctx, statsTicket.TeamID, statsTicket.SeasonYear)
			sess.CommitFetch(statsTicket, stats, err)
		})
		liveStatsTicket := sess.BeginFetch(slotLiveStats)
		wg.Go(func() {
			doc, err := s.loadLiveStats(ctx, liveStatsTicket.TeamID, liveStatsTicket.SeasonYear)
			sess.CommitFetch(liveStatsTicket, doc, err)
		})
		liveRecordTicket := sess.BeginFetch(slotLiveRecord)
		wg.Go(func() {
			doc, err := s.loadLiveRecord(ctx, liveRecordTicket.TeamID, liveRecordTicket.SeasonYear)
			sess.CommitFetch(liveRecordTicket, doc, err)
		})
	}

	wg.Wait()

	s.fetchStandings(ctx, sess)
}

// fetchStandings runs after the schedule settles because conference
// affiliation is derived from it.
func (s *TeamViewService) fetchStandings(ctx context.Context, sess *Session) {
	r, ok := sess.SlotResult(slotSchedule)
	if !ok || r.Err != nil {
		return
	}
	schedule, _ := r.Value.([]team.ScheduleEntry)

	ticket := sess.BeginFetch(slotStandings)
	slug := s.conferenceSlug(ctx, ticket.TeamID, ticket.SeasonYear, schedule)
	if slug == "" {
		sess.CommitFetch(ticket, standingsOutcome{}, nil)
		return
	}

	rows, err := s.loadStandings(ctx, slug, ticket.SeasonYear)
	sess.CommitFetch(ticket, standingsOutcome{Slug: slug, Rows: rows}, err)
}

// assembleView renders the session's committed slots into a team view.
// A slot with no committed result, whether never started or discarded
// as stale, surfaces as pending.
func (s *TeamViewService) assembleView(sess *Session) TeamView {
	state := sess.ViewState()
	year, resolved := sess.Season()

	view := TeamView{
		TeamID:         sess.TeamID(),
		SeasonYear:     year,
		SeasonResolved: resolved,
		State:          state,
		CanonicalQuery: sess.CanonicalQuery(),
	}

	view.TeamState = pendingSection()
	if r, ok := sess.SlotResult(slotTeam); ok {
		if r.Err != nil {
			view.TeamState = errSection(r.Err)
		} else {
			view.Team, _ = r.Value.(team.Team)
			view.TeamState = okSection()
		}
	}

	view.ScheduleState = pendingSection()
	if r, ok := sess.SlotResult(slotSchedule); ok {
		if r.Err != nil {
			view.ScheduleState = errSection(r.Err)
		} else {
			schedule, _ := r.Value.([]team.ScheduleEntry)
			view.Schedule = schedule
			view.RecentGames = RecentGames(schedule)
			view.UpcomingGames = UpcomingGames(schedule)
			if len(schedule) == 0 {
				view.ScheduleState = emptySection()
			} else {
				view.ScheduleState = okSection()
			}
		}
	}

	var roster []team.RosterEntry
	view.RosterState = pendingSection()
	if r, ok := sess.SlotResult(slotRoster); ok {
		if r.Err != nil {
			view.RosterState = errSection(r.Err)
		} else {
			roster, _ = r.Value.([]team.RosterEntry)
			if len(roster) == 0 {
				view.RosterState = emptySection()
			} else {
				view.RosterState = okSection()
			}
		}
	}
	view.RosterTotal = len(roster)
	view.RosterPages = viewstate.TotalPages(len(roster))
	start, end := viewstate.PageBounds(len(roster), state.RosterPage)
	view.Roster = roster[start:end]

	view.StatsState = pendingSection()
	if r, ok := sess.SlotResult(slotStats); ok {
		if r.Err != nil {
			view.StatsState = errSection(r.Err)
		} else {
			view.Stats, _ = r.Value.(team.SeasonStats)
			view.StatsState = okSection()
		}
	}

	view.LiveStatsState = pendingSection()
	if r, ok := sess.SlotResult(slotLiveStats); ok {
		doc, _ := r.Value.(ExternalStats)
		switch {
		case r.Err != nil:
			view.LiveStatsState = errSection(r.Err)
		case doc.IsZero():
			view.LiveStatsState = emptySection()
		default:
			view.LiveStats = doc
			view.LiveStatsState = okSection()
		}
	}

	view.LiveRecordState = pendingSection()
	if r, ok := sess.SlotResult(slotLiveRecord); ok {
		doc, _ := r.Value.(ExternalRecord)
		switch {
		case r.Err != nil:
			view.LiveRecordState = errSection(r.Err)
		case doc.IsZero():
			view.LiveRecordState = emptySection()
		default:
			view.LiveRecord = doc
			view.LiveRecordState = okSection()
		}
	}

	view.StandingsState = pendingSection()
	if r, ok := sess.SlotResult(slotStandings); ok {
		outcome, _ := r.Value.(standingsOutcome)
		view.ConferenceSlug = outcome.Slug
		switch {
		case r.Err != nil:
			view.StandingsState = errSection(r.Err)
		case outcome.Slug == "" || len(outcome.Rows) == 0:
			view.StandingsState = emptySection()
		default:
			view.Standings = outcome.Rows
			view.StandingsState = okSection()
		}
	}

	return view
}

// InvalidateTeam drops every cached section for a team so the next
// view is rebuilt from the upstreams.
func (s *TeamViewService) InvalidateTeam(ctx context.Context, teamID string) {
	if s.store == nil || teamID == "" {
		return
	}
	s.store.DeletePrefix(ctx, "backend:team:"+teamID)
	s.store.DeletePrefix(ctx, "live:team:"+teamID)
}

func (s *TeamViewService) conferenceSlug(ctx context.Context, teamID string, year int, schedule []team.ScheduleEntry) string {
	key := fmt.Sprintf("backend:team:%s:confslug:%d", teamID, year)
	v, err := s.cached(ctx, key, func(ctx context.Context) (any, error) {
		return DeriveConferenceSlug(ctx, schedule, s.backend.GameByID, teamID), nil
	})
	if err != nil {
		return ""
	}
	slug, _ := v.(string)
	return slug
}

func (s *TeamViewService) loadTeam(ctx context.Context, teamID string) (team.Team, error) {
	v, err := s.cached(ctx, fmt.Sprintf("backend:team:%s:identity", teamID), func(ctx context.Context) (any, error) {
		return s.backend.TeamByID(ctx, teamID)
	})
	if err != nil {
		return team.Team{}, fmt.Errorf("team %s: %w", teamID, err)
	}
	found, _ := v.(team.Team)
	return found, nil
}

func (s *TeamViewService) loadSchedule(ctx context.Context, teamID string, year int) ([]team.ScheduleEntry, error) {
	key := fmt.Sprintf("backend:team:%s:schedule:%d", teamID, year)
	v, err := s.cached(ctx, key, func(ctx context.Context) (any, error) {
		return s.backend.TeamSchedule(ctx, teamID, year)
	})
	if err != nil {
		return nil, fmt.Errorf("schedule for team %s season %d: %w", teamID, year, err)
	}
	entries, _ := v.([]team.ScheduleEntry)
	return entries, nil
}

func (s *TeamViewService) loadRoster(ctx context.Context, teamID string, year int) ([]team.RosterEntry, error) {
	key := fmt.Sprintf("backend:team:%s:roster:%d", teamID, year)
	v, err := s.cached(ctx, key, func(ctx context.Context) (any, error) {
		return s.backend.TeamRoster(ctx, teamID, year)
	})
	if err != nil {
		return nil, fmt.Errorf("roster for team %s season %d: %w", teamID, year, err)
	}
	entries, _ := v.([]team.RosterEntry)
	return entries, nil
}

func (s *TeamViewService) loadStats(ctx context.Context, teamID string, year int) (team.SeasonStats, error) {
	key := fmt.Sprintf("backend:team:%s:stats:%d", teamID, year)
	v, err := s.cached(ctx, key, func(ctx context.Context) (any, error) {
		return s.backend.TeamStats(ctx, teamID, year)
	})
	if err != nil {
		return team.SeasonStats{}, fmt.Errorf("stats for team %s season %d: %w", teamID, year, err)
	}
	stats, _ := v.(team.SeasonStats)
	return stats, nil
}

func (s *TeamViewService) loadStandings(ctx context.Context, slug string, year int) ([]analytics.Standing, error) {
	key := fmt.Sprintf("backend:standings:%s:%d", slug, year)
	v, err := s.cached(ctx, key, func(ctx context.Context) (any, error) {
		return s.backend.ConferenceStandings(ctx, slug, year)
	})
	if err != nil {
		return nil, fmt.Errorf("standings for conference %s season %d: %w", slug, year, err)
	}
	standings, _ := v.([]analytics.Standing)
	return standings, nil
}

func (s *TeamViewService) loadLiveStats(ctx context.Context, teamID string, year int) (ExternalStats, error) {
	if s.live == nil {
		return ExternalStats{}, nil
	}
	key := fmt.Sprintf("live:team:%s:stats:%d", teamID, year)
	v, err := s.cached(ctx, key, func(ctx context.Context) (any, error) {
		return s.live.TeamSeasonStatistics(ctx, teamID, year)
	})
	if err != nil {
		return ExternalStats{}, fmt.Errorf("live statistics for team %s season %d: %w", teamID, year, err)
	}
	doc, _ := v.(ExternalStats)
	return doc, nil
}

func (s *TeamViewService) loadLiveRecord(ctx context.Context, teamID string, year int) (ExternalRecord, error) {
	if s.live == nil {
		return ExternalRecord{}, nil
	}
	key := fmt.Sprintf("live:team:%s:record:%d", teamID, year)
	v, err := s.cached(ctx, key, func(ctx context.Context) (any, error) {
		return s.live.TeamSeasonRecord(ctx, teamID, year)
	})
	if err != nil {
		return ExternalRecord{}, fmt.Errorf("live record for team %s season %d: %w", teamID, year, err)
	}
	doc, _ := v.(ExternalRecord)
	return doc, nil
}

func (s *TeamViewService) cached(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if s.store == nil {
		return loader(ctx)
	}
	return s.store.GetOrLoad(ctx, key, loader)
}
