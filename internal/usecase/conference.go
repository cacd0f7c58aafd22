package usecase

import (
	"context"

	"github.com/hoopsight/hoopsight/internal/domain/game"
	"github.com/hoopsight/hoopsight/internal/domain/team"
)

// GameLookup resolves a game by id. The view service passes the
// backend's GameByID so the derivation stays testable in isolation.
type GameLookup func(ctx context.Context, gameID string) (game.Game, error)

// DeriveConferenceSlug infers which conference a team belongs to from
// its schedule. The backend does not expose affiliation on the team
// record, but every game record carries the conference slug of both
// sides, so the first scheduled game is fetched and the slug of this
// team's side is taken. Any failure or missing data yields "", which
// callers treat as affiliation unknown rather than an error.
func DeriveConferenceSlug(ctx context.Context, entries []team.ScheduleEntry, lookup GameLookup, teamID string) string {
	if len(entries) == 0 || lookup == nil || teamID == "" {
		return ""
	}

	gameID := entries[0].GameID
	if gameID == "" {
		return ""
	}

	g, err := lookup(ctx, gameID)
	if err != nil {
		return ""
	}

	return g.ConferenceSlugFor(teamID)
}
