package team

import "fmt"

// Team is one NCAA basketball program.
type Team struct {
	ID             string
	UID            string
	Slug           string
	Abbreviation   string
	DisplayName    string
	Name           string
	Nickname       string
	Location       string
	Color          string
	AlternateColor string
	LogoURL        string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.DisplayName == "" {
		return fmt.Errorf("team display name is required")
	}
	return nil
}

// ScheduleEntry is one game on a team's season schedule, seen from
// that team's side. Score fields are nil until the game has a result.
type ScheduleEntry struct {
	GameID               string
	Date                 string
	OpponentID           string
	OpponentName         string
	OpponentAbbreviation string
	IsHome               bool
	IsConference         bool
	Score                *int
	OpponentScore        *int
	Won                  *bool
	Completed            bool
	StatusDetail         string
}

// RosterEntry is one player's membership on a team for one season.
type RosterEntry struct {
	SeasonPlayerID       string
	Season               int
	PlayerID             string
	DisplayName          string
	PositionAbbreviation string
	PositionName         string
	TeamID               string
	Jersey               string
	DisplayHeight        string
	DisplayWeight        string
	Experience           string
	HeadshotURL          string
}

// SeasonStats are a team's aggregate results for one season.
type SeasonStats struct {
	TeamID            string
	Season            int
	Wins              int
	Losses            int
	WinPercentage     float64
	ConferenceWins    int
	ConferenceLosses  int
	HomeRecord        string
	AwayRecord        string
	PointsPerGame     float64
	OppPointsPerGame  float64
	PointDifferential float64
	TotalGames        int
}
