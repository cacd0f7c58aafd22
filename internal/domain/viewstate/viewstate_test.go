package viewstate

import (
	"net/url"
	"testing"
)

func TestQuery_OmitsDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state ViewState
		want  string
	}{
		{"all defaults", Default(), ""},
		{"overview with page one", ViewState{ActiveTab: TabOverview, RosterPage: 1}, ""},
		{"roster tab only", ViewState{ActiveTab: TabRoster, RosterPage: 1}, "?tab=roster"},
		{"roster tab with page", ViewState{ActiveTab: TabRoster, RosterPage: 3}, "?tab=roster&rosterPage=3"},
		{"overview with deep page", ViewState{ActiveTab: TabOverview, RosterPage: 4}, "?rosterPage=4"},
		{"standings tab", ViewState{ActiveTab: TabStandings, RosterPage: 1}, "?tab=standings"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.state.Query(); got != tc.want {
				t.Fatalf("Query() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFromQuery_RoundTrip(t *testing.T) {
	t.Parallel()

	states := []ViewState{
		Default(),
		{ActiveTab: TabRoster, RosterPage: 3},
		{ActiveTab: TabPlayerStats, RosterPage: 1},
		{ActiveTab: TabOverview, RosterPage: 7},
	}

	for _, state := range states {
		raw := state.Query()
		values, err := url.ParseQuery(trimQuestion(raw))
		if err != nil {
			t.Fatalf("parsing %q: %v", raw, err)
		}
		if got := FromQuery(values); got != state {
			t.Fatalf("round trip of %q gave %+v, want %+v", raw, got, state)
		}
	}
}

func TestFromQuery_DegradesBadValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want ViewState
	}{
		{"unknown tab", "tab=injuries", Default()},
		{"zero page", "rosterPage=0", Default()},
		{"negative page", "rosterPage=-2", Default()},
		{"non-numeric page", "tab=roster&rosterPage=abc", ViewState{ActiveTab: TabRoster, RosterPage: 1}},
		{"empty query", "", Default()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values, err := url.ParseQuery(tc.raw)
			if err != nil {
				t.Fatalf("parsing %q: %v", tc.raw, err)
			}
			if got := FromQuery(values); got != tc.want {
				t.Fatalf("FromQuery(%q) = %+v, want %+v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestWithTab_KeepsRosterPage(t *testing.T) {
	t.Parallel()

	state := ViewState{ActiveTab: TabRoster, RosterPage: 5}
	state = state.WithTab(TabOverview)
	if state.RosterPage != 5 {
		t.Fatalf("roster page = %d after tab switch, want 5", state.RosterPage)
	}
	state = state.WithTab(TabRoster)
	if got := state.Query(); got != "?tab=roster&rosterPage=5" {
		t.Fatalf("Query() after returning to roster = %q", got)
	}
}

func TestPageBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total, page, start, end int
	}{
		{25, 1, 0, 10},
		{25, 2, 10, 20},
		{25, 3, 20, 25},
		{25, 9, 25, 25},
		{0, 1, 0, 0},
		{10, 0, 0, 10},
	}

	for _, tc := range tests {
		start, end := PageBounds(tc.total, tc.page)
		if start != tc.start || end != tc.end {
			t.Fatalf("PageBounds(%d, %d) = (%d, %d), want (%d, %d)",
				tc.total, tc.page, start, end, tc.start, tc.end)
		}
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ total, want int }{
		{0, 1}, {1, 1}, {10, 1}, {11, 2}, {25, 3},
	} {
		if got := TotalPages(tc.total); got != tc.want {
			t.Fatalf("TotalPages(%d) = %d, want %d", tc.total, got, tc.want)
		}
	}
}

func trimQuestion(s string) string {
	if len(s) > 0 && s[0] == '?' {
		return s[1:]
	}
	return s
}
