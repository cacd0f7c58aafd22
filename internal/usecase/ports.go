package usecase

import (
	"context"

	"github.com/hoopsight/hoopsight/internal/domain/analytics"
	"github.com/hoopsight/hoopsight/internal/domain/game"
	"github.com/hoopsight/hoopsight/internal/domain/season"
	"github.com/hoopsight/hoopsight/internal/domain/team"
)

// DataBackend is the primary score/schedule backend the view services
// read from.
type DataBackend interface {
	CurrentSeason(ctx context.Context) (season.Season, error)
	Seasons(ctx context.Context) ([]season.Season, error)
	SeasonByYear(ctx context.Context, year int) (season.Season, error)
	TeamByID(ctx context.Context, teamID string) (team.Team, error)
	TeamSchedule(ctx context.Context, teamID string, year int) ([]team.ScheduleEntry, error)
	TeamRoster(ctx context.Context, teamID string, year int) ([]team.RosterEntry, error)
	TeamStats(ctx context.Context, teamID string, year int) (team.SeasonStats, error)
	GameByID(ctx context.Context, gameID string) (game.Game, error)
	ConferenceStandings(ctx context.Context, conferenceSlug string, year int) ([]analytics.Standing, error)
	PowerRankings(ctx context.Context, year, limit int) ([]analytics.PowerRanking, error)
	BettingEdges(ctx context.Context, date string, minEdge float64) ([]analytics.BettingEdge, error)
}

// LiveStatsProvider serves the supplemental per-season statistics and
// record documents from the upstream stats site.
type LiveStatsProvider interface {
	TeamSeasonStatistics(ctx context.Context, teamID string, year int) (ExternalStats, error)
	TeamSeasonRecord(ctx context.Context, teamID string, year int) (ExternalRecord, error)
}
