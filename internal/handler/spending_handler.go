package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/handler/dto"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

// SpendingHandler handles spending HTTP requests.
type SpendingHandler struct {
	usecase domain.SpendingUsecase
	logger  *slog.Logger
}

func NewSpendingHandler(usecase domain.SpendingUsecase, logger *slog.Logger) *SpendingHandler {
	return &SpendingHandler{usecase: usecase, logger: logger}
}

func (h *SpendingHandler) parseQuery(c *app.RequestContext) (domain.ListSpendingQuery, error) {
	minAmount, err := queryFloat(c, "min_amount")
	if err != nil {
		return domain.ListSpendingQuery{}, err
	}
	maxAmount, err := queryFloat(c, "max_amount")
	if err != nil {
		return domain.ListSpendingQuery{}, err
	}
	from, err := queryDate(c, "from")
	if err != nil {
		return domain.ListSpendingQuery{}, err
	}
	to, err := queryDate(c, "to")
	if err != nil {
		return domain.ListSpendingQuery{}, err
	}
	page, pageSize := queryPage(c)

	return domain.ListSpendingQuery{
		Search:     c.Query("search"),
		Categories: queryList(c, "category"),
		MinAmount:  minAmount,
		MaxAmount:  maxAmount,
		From:       from,
		To:         to,
		SortKey:    c.Query("sort"),
		SortDir:    c.Query("dir"),
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// ListByDistrict handles GET /districts/:id/spending. Filters: search,
// category (comma-separated), min_amount, max_amount, from, to; sort and
// pagination: sort, dir, page, page_size.
func (h *SpendingHandler) ListByDistrict(ctx context.Context, c *app.RequestContext) {
	q, err := h.parseQuery(c)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	id := c.Param("id")
	list, err := h.usecase.ListByDistrict(ctx, id, q)
	if err != nil {
		h.logger.Error("failed to list spending", "error", err, "district_id", id)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToSpendingListResponse(list))
}

// Categories handles GET /districts/:id/spending/categories.
func (h *SpendingHandler) Categories(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	categories, err := h.usecase.Categories(ctx, id)
	if err != nil {
		h.logger.Error("failed to list spending categories", "error", err, "district_id", id)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, &dto.CategoriesResponse{
		DistrictID: schema.CanonicalID(id),
		Categories: categories,
	})
}

// Export handles GET /districts/:id/spending/export, returning the filtered
// result set as a CSV download.
func (h *SpendingHandler) Export(ctx context.Context, c *app.RequestContext) {
	q, err := h.parseQuery(c)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	id := c.Param("id")
	body, err := h.usecase.ExportCSV(ctx, id, q)
	if err != nil {
		h.logger.Error("failed to export spending", "error", err, "district_id", id)
		ErrorResponse(c, err)
		return
	}

	CSVResponse(c, "spending-"+schema.CanonicalID(id)+".csv", body)
}
