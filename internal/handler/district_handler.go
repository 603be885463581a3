package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/handler/dto"
)

// DistrictHandler handles district HTTP requests.
type DistrictHandler struct {
	usecase domain.DistrictUsecase
	logger  *slog.Logger
}

func NewDistrictHandler(usecase domain.DistrictUsecase, logger *slog.Logger) *DistrictHandler {
	return &DistrictHandler{usecase: usecase, logger: logger}
}

// List handles GET /districts. Filters: search, county (comma-separated),
// min_enrollment, max_enrollment; sort and pagination: sort, dir, page,
// page_size.
func (h *DistrictHandler) List(ctx context.Context, c *app.RequestContext) {
	minEnrollment, err := queryFloat(c, "min_enrollment")
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	maxEnrollment, err := queryFloat(c, "max_enrollment")
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	page, pageSize := queryPage(c)

	list, err := h.usecase.List(ctx, domain.ListDistrictsQuery{
		Search:        c.Query("search"),
		Counties:      queryList(c, "county"),
		MinEnrollment: minEnrollment,
		MaxEnrollment: maxEnrollment,
		SortKey:       c.Query("sort"),
		SortDir:       c.Query("dir"),
		Page:          page,
		PageSize:      pageSize,
	})
	if err != nil {
		h.logger.Error("failed to list districts", "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToDistrictListResponse(list))
}

// Get handles GET /districts/:id.
func (h *DistrictHandler) Get(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	district, err := h.usecase.Get(ctx, id)
	if err != nil {
		h.logger.Error("failed to get district", "error", err, "district_id", id)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, dto.ToDistrictResponse(district))
}

// Counties handles GET /districts/counties.
func (h *DistrictHandler) Counties(ctx context.Context, c *app.RequestContext) {
	counties, err := h.usecase.Counties(ctx)
	if err != nil {
		h.logger.Error("failed to list counties", "error", err)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, &dto.CountiesResponse{Counties: counties})
}
