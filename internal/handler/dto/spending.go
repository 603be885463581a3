package dto

import (
	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
)

// SpendingListResponse is one page of spending line items.
type SpendingListResponse struct {
	Items    []*entity.SpendingRecord `json:"items"`
	Total    int                      `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

func ToSpendingListResponse(list *domain.SpendingList) *SpendingListResponse {
	return &SpendingListResponse{
		Items:    list.Items,
		Total:    list.Total,
		Page:     list.Page,
		PageSize: list.PageSize,
	}
}

// CategoriesResponse lists the distinct spending categories of a district.
type CategoriesResponse struct {
	DistrictID string   `json:"district_id"`
	Categories []string `json:"categories"`
}
