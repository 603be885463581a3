package dto

import (
	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
)

// CampusListResponse is one page of campuses. Campus entities serialize
// directly; there is no computed detail to add.
type CampusListResponse struct {
	Items    []*entity.Campus `json:"items"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

func ToCampusListResponse(list *domain.CampusList) *CampusListResponse {
	return &CampusListResponse{
		Items:    list.Items,
		Total:    list.Total,
		Page:     list.Page,
		PageSize: list.PageSize,
	}
}

// DistrictCampusesResponse is the full campus roster of one district,
// already sorted by score.
type DistrictCampusesResponse struct {
	DistrictID string           `json:"district_id"`
	Items      []*entity.Campus `json:"items"`
	Total      int              `json:"total"`
}
