package game

import "fmt"

// Game is one matchup between two teams, including the conference
// affiliation of each side when the backend knows it.
type Game struct {
	ID                     string
	SeasonYear             int
	Date                   string
	HomeTeamID             string
	AwayTeamID             string
	HomeTeamName           string
	AwayTeamName           string
	HomeTeamConferenceSlug string
	AwayTeamConferenceSlug string
	HomeScore              *int
	AwayScore              *int
	Completed              bool
	StatusDetail           string
}

func (g Game) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("game id is required")
	}
	return nil
}

// ConferenceSlugFor returns the conference slug of the given team's
// side of the game: the home slug when the team is the home side, the
// away slug otherwise. Empty only when the backend left the slug
// blank.
func (g Game) ConferenceSlugFor(teamID string) string {
	if teamID == g.HomeTeamID {
		return g.HomeTeamConferenceSlug
	}
	return g.AwayTeamConferenceSlug
}
