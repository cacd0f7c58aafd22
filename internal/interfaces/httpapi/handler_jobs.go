package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/hoopsight/hoopsight/internal/usecase"
)

type warmJobRequest struct {
	TeamIDs    []string `json:"team_ids" validate:"required,min=1,dive,required"`
	SeasonYear int      `json:"season" validate:"gte=0"`
	MaxWorkers int      `json:"max_workers" validate:"gte=0"`
}

type invalidateJobRequest struct {
	TeamIDs []string `json:"team_ids" validate:"required,min=1,dive,required"`
}

type invalidateJobResponse struct {
	TeamCount int `json:"team_count"`
}

func (h *Handler) RunWarmJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunWarmJob")
	defer span.End()

	var req warmJobRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.warmService.Run(ctx, usecase.WarmInput{
		TeamIDs:    req.TeamIDs,
		SeasonYear: req.SeasonYear,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "warm job failed", "teams", len(req.TeamIDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunInvalidateJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunInvalidateJob")
	defer span.End()

	var req invalidateJobRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	count := 0
	for _, teamID := range req.TeamIDs {
		teamID = strings.TrimSpace(teamID)
		if teamID == "" {
			continue
		}
		h.teamViewService.InvalidateTeam(ctx, teamID)
		count++
	}

	writeSuccess(ctx, w, http.StatusOK, invalidateJobResponse{TeamCount: count})
}
