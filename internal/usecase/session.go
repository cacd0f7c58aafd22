package usecase

import (
	"sync"

	"github.com/hoopsight/hoopsight/internal/domain/viewstate"
)

// Session tracks one viewer's position in the team detail view: which
// team and season they are looking at and the tab/page state. Fetches
// are tied to the session through tickets so a result that arrives
// after the viewer moved on is discarded instead of overwriting newer
// data.
type Session struct {
	mu sync.Mutex

	teamID       string
	seasonYear   int
	seasonPinned bool
	state        viewstate.ViewState

	generation map[string]uint64
	results    map[string]SlotResult
}

// FetchTicket is handed out when a fetch starts and must be presented
// to commit its result. It pins the slot to the team, season, and
// generation that were current when the fetch began.
type FetchTicket struct {
	Slot       string
	TeamID     string
	SeasonYear int
	generation uint64
}

// SlotResult is the committed outcome of one fetch slot.
type SlotResult struct {
	TeamID     string
	SeasonYear int
	Value      any
	Err        error
}

func NewSession(teamID string, state viewstate.ViewState) *Session {
	return &Session{
		teamID:     teamID,
		state:      viewstate.Default().WithTab(state.ActiveTab).WithRosterPage(state.RosterPage),
		generation: make(map[string]uint64),
		results:    make(map[string]SlotResult),
	}
}

// AdoptSeason records the resolved current season, but only once. A
// season the viewer picked explicitly is never overwritten by a late
// resolution of the current season.
func (s *Session) AdoptSeason(year int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seasonPinned || s.seasonYear != 0 || year <= 0 {
		return false
	}
	s.seasonYear = year
	return true
}

// SelectSeason switches to a viewer-picked season. All committed
// results and in-flight tickets become stale.
func (s *Session) SelectSeason(year int) {
	if year <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seasonPinned && s.seasonYear == year {
		return
	}
	s.seasonYear = year
	s.seasonPinned = true
	s.invalidateLocked()
}

// SelectTeam switches the session to another team and resets the
// roster page, keeping the active tab.
func (s *Session) SelectTeam(teamID string) {
	if teamID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.teamID == teamID {
		return
	}
	s.teamID = teamID
	s.state = s.state.WithRosterPage(1)
	s.invalidateLocked()
}

func (s *Session) TeamID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.teamID
}

// Season returns the effective season year and whether one is set.
func (s *Session) Season() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seasonYear, s.seasonYear != 0
}

func (s *Session) ViewState() viewstate.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) SetTab(tab viewstate.Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.WithTab(tab)
}

func (s *Session) SetRosterPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.state.WithRosterPage(page)
}

// CanonicalQuery renders the session's current URL query string.
func (s *Session) CanonicalQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Query()
}

// BeginFetch opens a ticket for a fetch slot against the session's
// current team and season.
func (s *Session) BeginFetch(slot string) FetchTicket {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Materialize the slot so a later invalidation bumps it even if
	// nothing has committed yet.
	if _, ok := s.generation[slot]; !ok {
		s.generation[slot] = 0
	}

	return FetchTicket{
		Slot:       slot,
		TeamID:     s.teamID,
		SeasonYear: s.seasonYear,
		generation: s.generation[slot],
	}
}

// CommitFetch stores the result for the ticket's slot. It reports
// false, and stores nothing, when the session moved to another team or
// season after the ticket was issued.
func (s *Session) CommitFetch(t FetchTicket, value any, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.generation != s.generation[t.Slot] {
		return false
	}
	if t.TeamID != s.teamID || t.SeasonYear != s.seasonYear {
		return false
	}

	s.results[t.Slot] = SlotResult{
		TeamID:     t.TeamID,
		SeasonYear: t.SeasonYear,
		Value:      value,
		Err:        err,
	}
	return true
}

// SlotResult returns the committed result for a slot, if any.
func (s *Session) SlotResult(slot string) (SlotResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.results[slot]
	return r, ok
}

// invalidateLocked bumps every slot generation and clears committed
// results. Callers hold s.mu.
func (s *Session) invalidateLocked() {
	for slot := range s.generation {
		s.generation[slot]++
	}
	clear(s.results)
}
