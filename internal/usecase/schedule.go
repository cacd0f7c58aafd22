package usecase

import "github.com/hoopsight/hoopsight/internal/domain/team"

const (
	recentGamesLimit   = 5
	upcomingGamesLimit = 5
)

// RecentGames returns the last completed games in reverse chronological
// order, newest first, capped at five.
func RecentGames(entries []team.ScheduleEntry) []team.ScheduleEntry {
	completed := make([]team.ScheduleEntry, 0, len(entries))
	for _, e := range entries {
		if e.Completed {
			completed = append(completed, e)
		}
	}
	if len(completed) > recentGamesLimit {
		completed = completed[len(completed)-recentGamesLimit:]
	}
	// Reverse so the most recent game leads.
	out := make([]team.ScheduleEntry, len(completed))
	for i, e := range completed {
		out[len(completed)-1-i] = e
	}
	return out
}

// UpcomingGames returns the next games that have not finished yet, in
// schedule order, capped at five.
func UpcomingGames(entries []team.ScheduleEntry) []team.ScheduleEntry {
	out := make([]team.ScheduleEntry, 0, upcomingGamesLimit)
	for _, e := range entries {
		if e.Completed {
			continue
		}
		out = append(out, e)
		if len(out) == upcomingGamesLimit {
			break
		}
	}
	return out
}
