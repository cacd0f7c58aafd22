package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/hoopsight/hoopsight/internal/domain/season"
	"github.com/hoopsight/hoopsight/internal/usecase"
)

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons, err := h.seasonService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonDTO, 0, len(seasons))
	for _, s := range seasons {
		items = append(items, seasonToDTO(ctx, s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetCurrentSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentSeason")
	defer span.End()

	current, err := h.seasonService.Current(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get current season failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(ctx, current))
}

func (h *Handler) GetSeasonByYear(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonByYear")
	defer span.End()

	rawYear := strings.TrimSpace(r.PathValue("year"))
	year, err := strconv.Atoi(rawYear)
	if err != nil || year <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: season year must be a positive integer", usecase.ErrInvalidInput))
		return
	}

	item, err := h.seasonService.ByYear(ctx, year)
	if err != nil {
		h.logger.WarnContext(ctx, "get season failed", "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(ctx, item))
}

type seasonDTO struct {
	Year        int    `json:"year"`
	DisplayName string `json:"displayName"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

func seasonToDTO(ctx context.Context, v season.Season) seasonDTO {
	_, span := startSpan(ctx, "httpapi.seasonToDTO")
	defer span.End()

	return seasonDTO{
		Year:        v.Year,
		DisplayName: v.DisplayName,
		StartDate:   v.StartDate,
		EndDate:     v.EndDate,
	}
}
