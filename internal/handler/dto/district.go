// Package dto defines the JSON shapes returned by the HTTP handlers.
package dto

import (
	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
)

// DistrictResponse is a district plus its computed per-student spending.
type DistrictResponse struct {
	*entity.District
	PerStudentSpending *float64 `json:"per_student_spending,omitempty"`
}

func ToDistrictResponse(d *entity.District) *DistrictResponse {
	return &DistrictResponse{
		District:           d,
		PerStudentSpending: d.PerStudentSpending(),
	}
}

// DistrictListResponse is one page of districts.
type DistrictListResponse struct {
	Items    []*DistrictResponse `json:"items"`
	Total    int                 `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

func ToDistrictListResponse(list *domain.DistrictList) *DistrictListResponse {
	items := make([]*DistrictResponse, 0, len(list.Items))
	for _, d := range list.Items {
		items = append(items, ToDistrictResponse(d))
	}
	return &DistrictListResponse{
		Items:    items,
		Total:    list.Total,
		Page:     list.Page,
		PageSize: list.PageSize,
	}
}
