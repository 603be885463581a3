package domain

import (
	"context"
	"time"

	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

// ListSpendingQuery carries the parsed spending list parameters. From is the
// start of its day; To is extended to the end of its day downstream so a
// single-day range still matches that day's records.
type ListSpendingQuery struct {
	Search     string
	Categories []string
	MinAmount  *float64
	MaxAmount  *float64
	From       *time.Time
	To         *time.Time
	SortKey    string
	SortDir    string
	Page       int
	PageSize   int
}

// SpendingList is one page of spending records plus the pre-pagination total.
type SpendingList struct {
	Items    []*entity.SpendingRecord
	Total    int
	Page     int
	PageSize int
}

// SpendingRepository serves spending line items grouped by district.
type SpendingRepository interface {
	// ListByDistrict returns a district's line items in source row order.
	ListByDistrict(ctx context.Context, districtCanonID string) ([]*entity.SpendingRecord, error)

	// Categories returns the distinct category names for a district, sorted.
	Categories(ctx context.Context, districtCanonID string) ([]string, error)

	Fields(ctx context.Context) (schema.FieldMap, error)
}

// SpendingUsecase is the spending query surface.
type SpendingUsecase interface {
	ListByDistrict(ctx context.Context, districtID string, q ListSpendingQuery) (*SpendingList, error)
	Categories(ctx context.Context, districtID string) ([]string, error)

	// ExportCSV renders the full filtered result set (ignoring pagination)
	// as CSV bytes.
	ExportCSV(ctx context.Context, districtID string, q ListSpendingQuery) ([]byte, error)
}
