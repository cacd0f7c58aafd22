package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/hoopsight/hoopsight/internal/domain/analytics"
	"github.com/hoopsight/hoopsight/internal/usecase"
)

func (h *Handler) ListPowerRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPowerRankings")
	defer span.End()

	query := r.URL.Query()
	year, err := parseOptionalInt(query.Get("season"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: season must be a positive integer", usecase.ErrInvalidInput))
		return
	}
	limit, err := parseOptionalInt(query.Get("limit"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: limit must be a positive integer", usecase.ErrInvalidInput))
		return
	}

	rankings, err := h.analyticsService.PowerRankings(ctx, year, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list power rankings failed", "season", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]powerRankingDTO, 0, len(rankings))
	for _, row := range rankings {
		items = append(items, powerRankingToDTO(ctx, row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListBettingEdges(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBettingEdges")
	defer span.End()

	query := r.URL.Query()
	date := strings.TrimSpace(query.Get("date"))

	minEdge := 0.0
	if rawMinEdge := strings.TrimSpace(query.Get("minEdge")); rawMinEdge != "" {
		parsed, err := strconv.ParseFloat(rawMinEdge, 64)
		if err != nil || parsed < 0 {
			writeError(ctx, w, fmt.Errorf("%w: minEdge must be a non-negative number", usecase.ErrInvalidInput))
			return
		}
		minEdge = parsed
	}

	edges, err := h.analyticsService.BettingEdges(ctx, date, minEdge)
	if err != nil {
		h.logger.WarnContext(ctx, "list betting edges failed", "date", date, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]bettingEdgeDTO, 0, len(edges))
	for _, row := range edges {
		items = append(items, bettingEdgeToDTO(ctx, row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func parseOptionalInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("invalid integer %q", raw)
	}
	return parsed, nil
}

type powerRankingDTO struct {
	Rank       int     `json:"rank"`
	TeamID     string  `json:"teamId"`
	TeamName   string  `json:"teamName"`
	Rating     float64 `json:"rating"`
	Offense    float64 `json:"offense"`
	Defense    float64 `json:"defense"`
	RecentForm float64 `json:"recentForm"`
	SeasonYear int     `json:"seasonYear"`
}

type bettingEdgeDTO struct {
	GameID         string  `json:"gameId"`
	Date           string  `json:"date"`
	HomeTeamID     string  `json:"homeTeamId"`
	HomeTeamName   string  `json:"homeTeamName"`
	AwayTeamID     string  `json:"awayTeamId"`
	AwayTeamName   string  `json:"awayTeamName"`
	ModelHomeProb  float64 `json:"modelHomeProb"`
	MarketHomeProb float64 `json:"marketHomeProb"`
	Edge           float64 `json:"edge"`
	Pick           string  `json:"pick"`
}

func powerRankingToDTO(ctx context.Context, v analytics.PowerRanking) powerRankingDTO {
	_, span := startSpan(ctx, "httpapi.powerRankingToDTO")
	defer span.End()

	return powerRankingDTO{
		Rank:       v.Rank,
		TeamID:     v.TeamID,
		TeamName:   v.TeamName,
		Rating:     v.Rating,
		Offense:    v.Offense,
		Defense:    v.Defense,
		RecentForm: v.RecentForm,
		SeasonYear: v.SeasonYear,
	}
}

func bettingEdgeToDTO(ctx context.Context, v analytics.BettingEdge) bettingEdgeDTO {
	_, span := startSpan(ctx, "httpapi.bettingEdgeToDTO")
	defer span.End()

	return bettingEdgeDTO{
		GameID:         v.GameID,
		Date:           v.Date,
		HomeTeamID:     v.HomeTeamID,
		HomeTeamName:   v.HomeTeamName,
		AwayTeamID:     v.AwayTeamID,
		AwayTeamName:   v.AwayTeamName,
		ModelHomeProb:  v.ModelHomeProb,
		MarketHomeProb: v.MarketHomeProb,
		Edge:           v.Edge,
		Pick:           v.Pick,
	}
}
