package analytics

// Standing is one row of a conference standings table.
type Standing struct {
	Rank             int
	TeamID           string
	TeamName         string
	Abbreviation     string
	ConferenceWins   int
	ConferenceLosses int
	ConferenceWinPct float64
	OverallWins      int
	OverallLosses    int
}

// PowerRanking is one row of the model-driven national ranking.
type PowerRanking struct {
	Rank       int
	TeamID     string
	TeamName   string
	Rating     float64
	Offense    float64
	Defense    float64
	RecentForm float64
	SeasonYear int
}

// BettingEdge flags a game where the model's win probability diverges
// from the market line.
type BettingEdge struct {
	GameID         string
	Date           string
	HomeTeamID     string
	HomeTeamName   string
	AwayTeamID     string
	AwayTeamName   string
	ModelHomeProb  float64
	MarketHomeProb float64
	Edge           float64
	Pick           string
}
