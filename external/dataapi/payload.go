package dataapi

import (
	"github.com/hoopsight/hoopsight/internal/domain/analytics"
	"github.com/hoopsight/hoopsight/internal/domain/game"
	"github.com/hoopsight/hoopsight/internal/domain/season"
	"github.com/hoopsight/hoopsight/internal/domain/team"
)

// Wire shapes of the backend's JSON responses. Kept separate from the
// domain types so backend field renames stay contained here.

type seasonPayload struct {
	Year        int    `json:"year"`
	DisplayName string `json:"displayName"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

func (p seasonPayload) toDomain() season.Season {
	return season.Season{
		Year:        p.Year,
		DisplayName: p.DisplayName,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
	}
}

type teamPayload struct {
	ID             string `json:"id"`
	UID            string `json:"uid"`
	Slug           string `json:"slug"`
	Abbreviation   string `json:"abbreviation"`
	DisplayName    string `json:"displayName"`
	Name           string `json:"name"`
	Nickname       string `json:"nickname"`
	Location       string `json:"location"`
	Color          string `json:"color"`
	AlternateColor string `json:"alternateColor"`
	Logos          string `json:"logos"`
}

func (p teamPayload) toDomain() team.Team {
	return team.Team{
		ID:             p.ID,
		UID:            p.UID,
		Slug:           p.Slug,
		Abbreviation:   p.Abbreviation,
		DisplayName:    p.DisplayName,
		Name:           p.Name,
		Nickname:       p.Nickname,
		Location:       p.Location,
		Color:          p.Color,
		AlternateColor: p.AlternateColor,
		LogoURL:        p.Logos,
	}
}

type scheduleEntryPayload struct {
	ID                   string `json:"id"`
	Date                 string `json:"date"`
	OpponentID           string `json:"opponent_id"`
	OpponentName         string `json:"opponent_name"`
	OpponentAbbreviation string `json:"opponent_abbreviation"`
	IsHome               bool   `json:"is_home"`
	IsConference         bool   `json:"is_conference"`
	Score                *int   `json:"score"`
	OpponentScore        *int   `json:"opponent_score"`
	Won                  *bool  `json:"won"`
	Completed            bool   `json:"completed"`
	StatusDetail         string `json:"status_detail"`
}

func (p scheduleEntryPayload) toDomain() team.ScheduleEntry {
	return team.ScheduleEntry{
		GameID:               p.ID,
		Date:                 p.Date,
		OpponentID:           p.OpponentID,
		OpponentName:         p.OpponentName,
		OpponentAbbreviation: p.OpponentAbbreviation,
		IsHome:               p.IsHome,
		IsConference:         p.IsConference,
		Score:                p.Score,
		OpponentScore:        p.OpponentScore,
		Won:                  p.Won,
		Completed:            p.Completed,
		StatusDetail:         p.StatusDetail,
	}
}

type rosterEntryPayload struct {
	SeasonPlayerID       string `json:"season_player_id"`
	Season               int    `json:"season"`
	PlayerID             string `json:"player_id"`
	DisplayName          string `json:"displayName"`
	PositionAbbreviation string `json:"position_abbreviation"`
	PositionName         string `json:"position_name"`
	TeamID               string `json:"team_id"`
	Jersey               string `json:"jersey"`
	DisplayHeight        string `json:"displayHeight"`
	DisplayWeight        string `json:"displayWeight"`
	Experience           string `json:"experience_displayValue"`
	Headshot             string `json:"headshot"`
}

func (p rosterEntryPayload) toDomain() team.RosterEntry {
	return team.RosterEntry{
		SeasonPlayerID:       p.SeasonPlayerID,
		Season:               p.Season,
		PlayerID:             p.PlayerID,
		DisplayName:          p.DisplayName,
		PositionAbbreviation: p.PositionAbbreviation,
		PositionName:         p.PositionName,
		TeamID:               p.TeamID,
		Jersey:               p.Jersey,
		DisplayHeight:        p.DisplayHeight,
		DisplayWeight:        p.DisplayWeight,
		Experience:           p.Experience,
		HeadshotURL:          p.Headshot,
	}
}

type teamStatsPayload struct {
	TeamID            string  `json:"team_id"`
	Season            int     `json:"season"`
	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	WinPercentage     float64 `json:"win_percentage"`
	ConferenceWins    int     `json:"conference_wins"`
	ConferenceLosses  int     `json:"conference_losses"`
	HomeRecord        string  `json:"home_record"`
	AwayRecord        string  `json:"away_record"`
	PointsPerGame     float64 `json:"points_per_game"`
	OppPointsPerGame  float64 `json:"opponent_points_per_game"`
	PointDifferential float64 `json:"point_differential"`
	TotalGames        int     `json:"total_games"`
}

func (p teamStatsPayload) toDomain() team.SeasonStats {
	return team.SeasonStats{
		TeamID:            p.TeamID,
		Season:            p.Season,
		Wins:              p.Wins,
		Losses:            p.Losses,
		WinPercentage:     p.WinPercentage,
		ConferenceWins:    p.ConferenceWins,
		ConferenceLosses:  p.ConferenceLosses,
		HomeRecord:        p.HomeRecord,
		AwayRecord:        p.AwayRecord,
		PointsPerGame:     p.PointsPerGame,
		OppPointsPerGame:  p.OppPointsPerGame,
		PointDifferential: p.PointDifferential,
		TotalGames:        p.TotalGames,
	}
}

type gamePayload struct {
	ID                     string `json:"id"`
	SeasonYear             int    `json:"season_year"`
	Date                   string `json:"date"`
	HomeTeamID             string `json:"home_team_id"`
	AwayTeamID             string `json:"away_team_id"`
	HomeTeamName           string `json:"home_team_name"`
	AwayTeamName           string `json:"away_team_name"`
	HomeTeamConferenceSlug string `json:"home_team_conference_slug"`
	AwayTeamConferenceSlug string `json:"away_team_conference_slug"`
	HomeScore              *int   `json:"home_score"`
	AwayScore              *int   `json:"away_score"`
	Completed              bool   `json:"completed"`
	StatusDetail           string `json:"status_detail"`
}

func (p gamePayload) toDomain() game.Game {
	return game.Game{
		ID:                     p.ID,
		SeasonYear:             p.SeasonYear,
		Date:                   p.Date,
		HomeTeamID:             p.HomeTeamID,
		AwayTeamID:             p.AwayTeamID,
		HomeTeamName:           p.HomeTeamName,
		AwayTeamName:           p.AwayTeamName,
		HomeTeamConferenceSlug: p.HomeTeamConferenceSlug,
		AwayTeamConferenceSlug: p.AwayTeamConferenceSlug,
		HomeScore:              p.HomeScore,
		AwayScore:              p.AwayScore,
		Completed:              p.Completed,
		StatusDetail:           p.StatusDetail,
	}
}

type standingPayload struct {
	Rank             int     `json:"rank"`
	TeamID           string  `json:"team_id"`
	TeamName         string  `json:"team_name"`
	Abbreviation     string  `json:"abbreviation"`
	ConferenceWins   int     `json:"conference_wins"`
	ConferenceLosses int     `json:"conference_losses"`
	ConferenceWinPct float64 `json:"conference_win_pct"`
	OverallWins      int     `json:"overall_wins"`
	OverallLosses    int     `json:"overall_losses"`
}

func (p standingPayload) toDomain() analytics.Standing {
	return analytics.Standing{
		Rank:             p.Rank,
		TeamID:           p.TeamID,
		TeamName:         p.TeamName,
		Abbreviation:     p.Abbreviation,
		ConferenceWins:   p.ConferenceWins,
		ConferenceLosses: p.ConferenceLosses,
		ConferenceWinPct: p.ConferenceWinPct,
		OverallWins:      p.OverallWins,
		OverallLosses:    p.OverallLosses,
	}
}

type powerRankingPayload struct {
	Rank       int     `json:"rank"`
	TeamID     string  `json:"team_id"`
	TeamName   string  `json:"team_name"`
	Rating     float64 `json:"rating"`
	Offense    float64 `json:"offense"`
	Defense    float64 `json:"defense"`
	RecentForm float64 `json:"recent_form"`
	SeasonYear int     `json:"season_year"`
}

func (p powerRankingPayload) toDomain() analytics.PowerRanking {
	return analytics.PowerRanking{
		Rank:       p.Rank,
		TeamID:     p.TeamID,
		TeamName:   p.TeamName,
		Rating:     p.Rating,
		Offense:    p.Offense,
		Defense:    p.Defense,
		RecentForm: p.RecentForm,
		SeasonYear: p.SeasonYear,
	}
}

type bettingEdgePayload struct {
	GameID         string  `json:"game_id"`
	Date           string  `json:"date"`
	HomeTeamID     string  `json:"home_team_id"`
	HomeTeamName   string  `json:"home_team_name"`
	AwayTeamID     string  `json:"away_team_id"`
	AwayTeamName   string  `json:"away_team_name"`
	ModelHomeProb  float64 `json:"model_home_prob"`
	MarketHomeProb float64 `json:"market_home_prob"`
	Edge           float64 `json:"edge"`
	Pick           string  `json:"pick"`
}

func (p bettingEdgePayload) toDomain() analytics.BettingEdge {
	return analytics.BettingEdge{
		GameID:         p.GameID,
		Date:           p.Date,
		HomeTeamID:     p.HomeTeamID,
		HomeTeamName:   p.HomeTeamName,
		AwayTeamID:     p.AwayTeamID,
		AwayTeamName:   p.AwayTeamName,
		ModelHomeProb:  p.ModelHomeProb,
		MarketHomeProb: p.MarketHomeProb,
		Edge:           p.Edge,
		Pick:           p.Pick,
	}
}
