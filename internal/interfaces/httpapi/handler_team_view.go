package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/hoopsight/hoopsight/internal/domain/analytics"
	"github.com/hoopsight/hoopsight/internal/domain/team"
	"github.com/hoopsight/hoopsight/internal/domain/viewstate"
	"github.com/hoopsight/hoopsight/internal/usecase"
)

func (h *Handler) GetTeamView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamView")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))

	query := r.URL.Query()
	seasonYear := 0
	if rawSeason := strings.TrimSpace(query.Get("season")); rawSeason != "" {
		parsed, err := strconv.Atoi(rawSeason)
		if err != nil || parsed <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: season must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		seasonYear = parsed
	}

	view, err := h.teamViewService.BuildTeamView(ctx, usecase.TeamViewQuery{
		TeamID:     teamID,
		SeasonYear: seasonYear,
		State:      viewstate.FromQuery(query),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "build team view failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamViewToDTO(ctx, view))
}

type sectionDTO struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type teamViewDTO struct {
	TeamID         string `json:"teamId"`
	SeasonYear     int    `json:"seasonYear,omitempty"`
	SeasonResolved bool   `json:"seasonResolved"`

	Seasons []seasonDTO `json:"seasons"`

	Team      *teamDTO   `json:"team,omitempty"`
	TeamState sectionDTO `json:"teamState"`

	Schedule      []scheduleEntryDTO `json:"schedule"`
	RecentGames   []scheduleEntryDTO `json:"recentGames"`
	UpcomingGames []scheduleEntryDTO `json:"upcomingGames"`
	ScheduleState sectionDTO         `json:"scheduleState"`

	Roster      []rosterEntryDTO `json:"roster"`
	RosterPage  int              `json:"rosterPage"`
	RosterTotal int              `json:"rosterTotal"`
	RosterPages int              `json:"rosterPages"`
	RosterState sectionDTO       `json:"rosterState"`

	Stats      *seasonStatsDTO `json:"stats,omitempty"`
	StatsState sectionDTO      `json:"statsState"`

	ConferenceSlug string        `json:"conferenceSlug,omitempty"`
	Standings      []standingDTO `json:"standings"`
	StandingsState sectionDTO    `json:"standingsState"`

	LiveStats       map[string]any `json:"liveStats,omitempty"`
	LiveStatsState  sectionDTO     `json:"liveStatsState"`
	LiveRecord      map[string]any `json:"liveRecord,omitempty"`
	LiveRecordState sectionDTO     `json:"liveRecordState"`

	ActiveTab      string `json:"activeTab"`
	CanonicalQuery string `json:"canonicalQuery"`
}

type teamDTO struct {
	ID             string `json:"id"`
	UID            string `json:"uid,omitempty"`
	Slug           string `json:"slug,omitempty"`
	Abbreviation   string `json:"abbreviation,omitempty"`
	DisplayName    string `json:"displayName"`
	Name           string `json:"name,omitempty"`
	Nickname       string `json:"nickname,omitempty"`
	Location       string `json:"location,omitempty"`
	Color          string `json:"color,omitempty"`
	AlternateColor string `json:"alternateColor,omitempty"`
	LogoURL        string `json:"logoUrl,omitempty"`
}

type scheduleEntryDTO struct {
	GameID               string `json:"gameId"`
	Date                 string `json:"date"`
	OpponentID           string `json:"opponentId"`
	OpponentName         string `json:"opponentName"`
	OpponentAbbreviation string `json:"opponentAbbreviation,omitempty"`
	IsHome               bool   `json:"isHome"`
	IsConference         bool   `json:"isConference"`
	Score                *int   `json:"score,omitempty"`
	OpponentScore        *int   `json:"opponentScore,omitempty"`
	Won                  *bool  `json:"won,omitempty"`
	Completed            bool   `json:"completed"`
	StatusDetail         string `json:"statusDetail,omitempty"`
}

type rosterEntryDTO struct {
	SeasonPlayerID       string `json:"seasonPlayerId"`
	Season               int    `json:"season"`
	PlayerID             string `json:"playerId"`
	DisplayName          string `json:"displayName"`
	PositionAbbreviation string `json:"positionAbbreviation,omitempty"`
	PositionName         string `json:"positionName,omitempty"`
	Jersey               string `json:"jersey,omitempty"`
	DisplayHeight        string `json:"displayHeight,omitempty"`
	DisplayWeight        string `json:"displayWeight,omitempty"`
	Experience           string `json:"experience,omitempty"`
	HeadshotURL          string `json:"headshotUrl,omitempty"`
}

type seasonStatsDTO struct {
	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	WinPercentage     float64 `json:"winPercentage"`
	ConferenceWins    int     `json:"conferenceWins"`
	ConferenceLosses  int     `json:"conferenceLosses"`
	HomeRecord        string  `json:"homeRecord,omitempty"`
	AwayRecord        string  `json:"awayRecord,omitempty"`
	PointsPerGame     float64 `json:"pointsPerGame"`
	OppPointsPerGame  float64 `json:"oppPointsPerGame"`
	PointDifferential float64 `json:"pointDifferential"`
	TotalGames        int     `json:"totalGames"`
}

type standingDTO struct {
	Rank             int     `json:"rank"`
	TeamID           string  `json:"teamId"`
	TeamName         string  `json:"teamName"`
	Abbreviation     string  `json:"abbreviation,omitempty"`
	ConferenceWins   int     `json:"conferenceWins"`
	ConferenceLosses int     `json:"conferenceLosses"`
	ConferenceWinPct float64 `json:"conferenceWinPct"`
	OverallWins      int     `json:"overallWins"`
	OverallLosses    int     `json:"overallLosses"`
}

func teamViewToDTO(ctx context.Context, v usecase.TeamView) teamViewDTO {
	ctx, span := startSpan(ctx, "httpapi.teamViewToDTO")
	defer span.End()

	out := teamViewDTO{
		TeamID:         v.TeamID,
		SeasonYear:     v.SeasonYear,
		SeasonResolved: v.SeasonResolved,
		Seasons:        make([]seasonDTO, 0, len(v.Seasons)),
		Schedule:       scheduleEntriesToDTO(v.Schedule),
		RecentGames:    scheduleEntriesToDTO(v.RecentGames),
		UpcomingGames:  scheduleEntriesToDTO(v.UpcomingGames),
		Roster:         rosterEntriesToDTO(v.Roster),
		RosterPage:     v.State.RosterPage,
		RosterTotal:    v.RosterTotal,
		RosterPages:    v.RosterPages,
		ConferenceSlug: v.ConferenceSlug,
		Standings:      standingsToDTO(v.Standings),
		ActiveTab:      string(v.State.ActiveTab),
		CanonicalQuery: v.CanonicalQuery,

		TeamState:       sectionToDTO(v.TeamState),
		ScheduleState:   sectionToDTO(v.ScheduleState),
		RosterState:     sectionToDTO(v.RosterState),
		StatsState:      sectionToDTO(v.StatsState),
		StandingsState:  sectionToDTO(v.StandingsState),
		LiveStatsState:  sectionToDTO(v.LiveStatsState),
		LiveRecordState: sectionToDTO(v.LiveRecordState),
	}

	for _, s := range v.Seasons {
		out.Seasons = append(out.Seasons, seasonToDTO(ctx, s))
	}

	if v.TeamState.Status == usecase.SectionOK {
		dto := teamToDTO(v.Team)
		out.Team = &dto
	}
	if v.StatsState.Status == usecase.SectionOK {
		dto := seasonStatsToDTO(v.Stats)
		out.Stats = &dto
	}
	if !v.LiveStats.IsZero() {
		out.LiveStats = v.LiveStats.Raw()
	}
	if !v.LiveRecord.IsZero() {
		out.LiveRecord = v.LiveRecord.Raw()
	}

	return out
}

func sectionToDTO(v usecase.SectionState) sectionDTO {
	return sectionDTO{
		Status: string(v.Status),
		Error:  v.Error,
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:             v.ID,
		UID:            v.UID,
		Slug:           v.Slug,
		Abbreviation:   v.Abbreviation,
		DisplayName:    v.DisplayName,
		Name:           v.Name,
		Nickname:       v.Nickname,
		Location:       v.Location,
		Color:          v.Color,
		AlternateColor: v.AlternateColor,
		LogoURL:        v.LogoURL,
	}
}

func scheduleEntriesToDTO(entries []team.ScheduleEntry) []scheduleEntryDTO {
	out := make([]scheduleEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, scheduleEntryDTO{
			GameID:               e.GameID,
			Date:                 e.Date,
			OpponentID:           e.OpponentID,
			OpponentName:         e.OpponentName,
			OpponentAbbreviation: e.OpponentAbbreviation,
			IsHome:               e.IsHome,
			IsConference:         e.IsConference,
			Score:                e.Score,
			OpponentScore:        e.OpponentScore,
			Won:                  e.Won,
			Completed:            e.Completed,
			StatusDetail:         e.StatusDetail,
		})
	}
	return out
}

func rosterEntriesToDTO(entries []team.RosterEntry) []rosterEntryDTO {
	out := make([]rosterEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, rosterEntryDTO{
			SeasonPlayerID:       e.SeasonPlayerID,
			Season:               e.Season,
			PlayerID:             e.PlayerID,
			DisplayName:          e.DisplayName,
			PositionAbbreviation: e.PositionAbbreviation,
			PositionName:         e.PositionName,
			Jersey:               e.Jersey,
			DisplayHeight:        e.DisplayHeight,
			DisplayWeight:        e.DisplayWeight,
			Experience:           e.Experience,
			HeadshotURL:          e.HeadshotURL,
		})
	}
	return out
}

func seasonStatsToDTO(v team.SeasonStats) seasonStatsDTO {
	return seasonStatsDTO{
		Wins:              v.Wins,
		Losses:            v.Losses,
		WinPercentage:     v.WinPercentage,
		ConferenceWins:    v.ConferenceWins,
		ConferenceLosses:  v.ConferenceLosses,
		HomeRecord:        v.HomeRecord,
		AwayRecord:        v.AwayRecord,
		PointsPerGame:     v.PointsPerGame,
		OppPointsPerGame:  v.OppPointsPerGame,
		PointDifferential: v.PointDifferential,
		TotalGames:        v.TotalGames,
	}
}

func standingsToDTO(standings []analytics.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(standings))
	for _, s := range standings {
		out = append(out, standingDTO{
			Rank:             s.Rank,
			TeamID:           s.TeamID,
			TeamName:         s.TeamName,
			Abbreviation:     s.Abbreviation,
			ConferenceWins:   s.ConferenceWins,
			ConferenceLosses: s.ConferenceLosses,
			ConferenceWinPct: s.ConferenceWinPct,
			OverallWins:      s.OverallWins,
			OverallLosses:    s.OverallLosses,
		})
	}
	return out
}
