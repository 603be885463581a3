package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/jab1897/LoneStarLedger5/internal/domain"
)

// HealthHandler serves liveness and readiness probes. Readiness checks that
// the district dataset is servable; liveness never touches the upstreams.
type HealthHandler struct {
	districts domain.DistrictRepository
}

func NewHealthHandler(districts domain.DistrictRepository) *HealthHandler {
	return &HealthHandler{districts: districts}
}

// Ping handles GET /ping.
func (h *HealthHandler) Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{
		"status":  "ok",
		"message": "pong",
	})
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{
		"status": "alive",
	})
}

// Readiness handles GET /health/ready. Ready means the district dataset
// loads, or its URL is unconfigured; an unconfigured source is a deliberate
// deployment choice, not a fault, so it does not fail the probe.
func (h *HealthHandler) Readiness(ctx context.Context, c *app.RequestContext) {
	if err := h.checkReady(ctx); err != nil {
		c.JSON(consts.StatusServiceUnavailable, utils.H{
			"status": "not ready",
			"reason": err.Error(),
		})
		return
	}
	c.JSON(consts.StatusOK, utils.H{
		"status": "ready",
	})
}

func (h *HealthHandler) checkReady(ctx context.Context) error {
	_, err := h.districts.Fields(ctx)
	if err != nil && !domain.IsUnavailable(err) {
		return err
	}
	return nil
}
