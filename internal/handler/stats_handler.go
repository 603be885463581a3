package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/handler/dto"
)

// StatsHandler handles aggregate and schema introspection requests.
type StatsHandler struct {
	usecase domain.StatsUsecase
	logger  *slog.Logger
}

func NewStatsHandler(usecase domain.StatsUsecase, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{usecase: usecase, logger: logger}
}

// StateStats handles GET /stats/state.
func (h *StatsHandler) StateStats(ctx context.Context, c *app.RequestContext) {
	stats, err := h.usecase.StateStats(ctx)
	if err != nil {
		h.logger.Error("failed to compute state stats", "error", err)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, stats)
}

// DatasetFields handles GET /stats/fields/:dataset, reporting which source
// headers the detection pass bound for the named dataset.
func (h *StatsHandler) DatasetFields(ctx context.Context, c *app.RequestContext) {
	name := c.Param("dataset")
	fields, err := h.usecase.DatasetFields(ctx, name)
	if err != nil {
		h.logger.Error("failed to get dataset fields", "error", err, "dataset", name)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.ToFieldsResponse(name, fields))
}
