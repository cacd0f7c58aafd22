package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hoopsight/hoopsight/internal/platform/logging"
	"github.com/hoopsight/hoopsight/internal/usecase"
)

type Handler struct {
	teamViewService  *usecase.TeamViewService
	seasonService    *usecase.SeasonService
	analyticsService *usecase.AnalyticsService
	warmService      *usecase.WarmService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	teamViewService *usecase.TeamViewService,
	seasonService *usecase.SeasonService,
	analyticsService *usecase.AnalyticsService,
	warmService *usecase.WarmService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		teamViewService:  teamViewService,
		seasonService:    seasonService,
		analyticsService: analyticsService,
		warmService:      warmService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
