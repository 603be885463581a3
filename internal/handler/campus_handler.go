package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/handler/dto"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

// CampusHandler handles campus HTTP requests.
type CampusHandler struct {
	usecase domain.CampusUsecase
	logger  *slog.Logger
}

func NewCampusHandler(usecase domain.CampusUsecase, logger *slog.Logger) *CampusHandler {
	return &CampusHandler{usecase: usecase, logger: logger}
}

// List handles GET /campuses. Filters: search, grade (comma-separated),
// min_score, max_score; sort and pagination: sort, dir, page, page_size.
func (h *CampusHandler) List(ctx context.Context, c *app.RequestContext) {
	minScore, err := queryFloat(c, "min_score")
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	maxScore, err := queryFloat(c, "max_score")
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	page, pageSize := queryPage(c)

	list, err := h.usecase.List(ctx, domain.ListCampusesQuery{
		Search:   c.Query("search"),
		Grades:   queryList(c, "grade"),
		MinScore: minScore,
		MaxScore: maxScore,
		SortKey:  c.Query("sort"),
		SortDir:  c.Query("dir"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.logger.Error("failed to list campuses", "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToCampusListResponse(list))
}

// Get handles GET /campuses/:id.
func (h *CampusHandler) Get(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	campus, err := h.usecase.Get(ctx, id)
	if err != nil {
		h.logger.Error("failed to get campus", "error", err, "campus_id", id)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, campus)
}

// ListByDistrict handles GET /districts/:id/campuses.
func (h *CampusHandler) ListByDistrict(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	campuses, err := h.usecase.ListByDistrict(ctx, id)
	if err != nil {
		h.logger.Error("failed to list district campuses", "error", err, "district_id", id)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, &dto.DistrictCampusesResponse{
		DistrictID: schema.CanonicalID(id),
		Items:      campuses,
		Total:      len(campuses),
	})
}
