// Package viewstate models the shareable UI state of a team detail
// view and its canonical query-string form. Encoding omits defaults so
// equivalent states always produce the same URL.
package viewstate

import (
	"net/url"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// Tab identifies one panel of the team detail view.
type Tab string

const (
	TabOverview    Tab = "overview"
	TabTeamStats   Tab = "team-stats"
	TabPlayerStats Tab = "player-stats"
	TabStandings   Tab = "standings"
	TabRoster      Tab = "roster"
)

const (
	tabParam        = "tab"
	rosterPageParam = "rosterPage"
)

// RosterPageSize is how many roster rows one page shows.
const RosterPageSize = 10

// ParseTab maps a raw query value to a known tab. Unrecognized or
// empty values fall back to the overview tab.
func ParseTab(raw string) Tab {
	switch Tab(raw) {
	case TabTeamStats, TabPlayerStats, TabStandings, TabRoster:
		return Tab(raw)
	default:
		return TabOverview
	}
}

// ViewState is the URL-visible state of a team detail view.
type ViewState struct {
	ActiveTab  Tab
	RosterPage int
}

func Default() ViewState {
	return ViewState{ActiveTab: TabOverview, RosterPage: 1}
}

// FromQuery reads the view state out of request query parameters.
// Malformed or out-of-range values degrade to defaults rather than
// failing the request.
func FromQuery(values url.Values) ViewState {
	state := Default()
	state.ActiveTab = ParseTab(values.Get(tabParam))
	if raw := values.Get(rosterPageParam); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page >= 1 {
			state.RosterPage = page
		}
	}
	return state
}

// WithTab switches the active tab. The roster page is kept so moving
// away from the roster tab and back preserves the reader's place.
func (s ViewState) WithTab(tab Tab) ViewState {
	s.ActiveTab = ParseTab(string(tab))
	return s
}

// WithRosterPage selects a roster page, clamping below at 1.
func (s ViewState) WithRosterPage(page int) ViewState {
	if page < 1 {
		page = 1
	}
	s.RosterPage = page
	return s
}

func (s ViewState) normalized() ViewState {
	s.ActiveTab = ParseTab(string(s.ActiveTab))
	if s.RosterPage < 1 {
		s.RosterPage = 1
	}
	return s
}

// Query renders the canonical query string, including the leading "?".
// Default values are omitted entirely; an all-default state renders as
// the empty string.
func (s ViewState) Query() string {
	s = s.normalized()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if s.ActiveTab != TabOverview {
		buf.WriteString(tabParam)
		buf.WriteByte('=')
		buf.WriteString(string(s.ActiveTab))
	}
	if s.RosterPage != 1 {
		if buf.Len() > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(rosterPageParam)
		buf.WriteByte('=')
		buf.WriteString(strconv.Itoa(s.RosterPage))
	}

	if buf.Len() == 0 {
		return ""
	}
	return "?" + buf.String()
}

// PageBounds returns the half-open slice bounds for the given page of
// a list with total items. Pages past the end return an empty range at
// the list's tail.
func PageBounds(total, page int) (int, int) {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * RosterPageSize
	if start > total {
		return total, total
	}
	end := start + RosterPageSize
	if end > total {
		end = total
	}
	return start, end
}

// TotalPages reports how many roster pages total items occupy. An
// empty roster still has one page.
func TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + RosterPageSize - 1) / RosterPageSize
}
