package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/jab1897/LoneStarLedger5/internal/domain"
)

// GeoHandler handles map feature HTTP requests.
type GeoHandler struct {
	usecase domain.GeoUsecase
	logger  *slog.Logger
}

func NewGeoHandler(usecase domain.GeoUsecase, logger *slog.Logger) *GeoHandler {
	return &GeoHandler{usecase: usecase, logger: logger}
}

// DistrictFeature handles GET /geojson/districts/:id. The feature is
// returned bare, not wrapped in the response envelope, so map clients can
// consume it directly.
func (h *GeoHandler) DistrictFeature(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	feature, err := h.usecase.DistrictFeature(ctx, id)
	if err != nil {
		h.logger.Error("failed to get district boundary", "error", err, "district_id", id)
		ErrorResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, feature)
}

// CampusFeatures handles GET /geojson/districts/:id/campuses.
func (h *GeoHandler) CampusFeatures(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	fc, err := h.usecase.CampusFeatures(ctx, id)
	if err != nil {
		h.logger.Error("failed to get campus features", "error", err, "district_id", id)
		ErrorResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, fc)
}
