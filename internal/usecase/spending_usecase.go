package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"log/slog"
	"strconv"

	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
	"github.com/jab1897/LoneStarLedger5/internal/query"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

var spendingSortKeys = map[string]bool{
	"amount": true, "vendor": true, "category": true, "date": true,
}

// spendingUsecase implements domain.SpendingUsecase.
type spendingUsecase struct {
	repo   domain.SpendingRepository
	logger *slog.Logger
}

func NewSpendingUsecase(repo domain.SpendingRepository, logger *slog.Logger) domain.SpendingUsecase {
	return &spendingUsecase{repo: repo, logger: logger}
}

func (u *spendingUsecase) ListByDistrict(ctx context.Context, districtID string, q domain.ListSpendingQuery) (*domain.SpendingList, error) {
	records, opts, err := u.filtered(ctx, districtID, q)
	if err != nil {
		return nil, err
	}

	page, total := query.Apply(records, opts)
	return &domain.SpendingList{
		Items:    page,
		Total:    total,
		Page:     opts.Page,
		PageSize: opts.PageSize,
	}, nil
}

func (u *spendingUsecase) Categories(ctx context.Context, districtID string) ([]string, error) {
	canon := schema.CanonicalID(districtID)
	if canon == "" {
		return nil, domain.NewInvalidInputError("district id must contain digits")
	}
	return u.repo.Categories(ctx, canon)
}

// ExportCSV renders the filtered records as CSV, ignoring pagination so the
// download always covers the whole result set.
func (u *spendingUsecase) ExportCSV(ctx context.Context, districtID string, q domain.ListSpendingQuery) ([]byte, error) {
	records, opts, err := u.filtered(ctx, districtID, q)
	if err != nil {
		return nil, err
	}
	opts.Page = 1
	opts.PageSize = 0 // full result set

	all, _ := query.Apply(records, opts)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"date", "vendor", "category", "amount", "description"}); err != nil {
		return nil, domain.NewInternalError(err)
	}
	for _, rec := range all {
		row := []string{
			rec.Date,
			rec.Vendor,
			rec.Category,
			strconv.FormatFloat(rec.Amount, 'f', 2, 64),
			rec.Description,
		}
		if err := w.Write(row); err != nil {
			return nil, domain.NewInternalError(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, domain.NewInternalError(err)
	}

	u.logger.Info("spending export rendered", "district", districtID, "records", len(all))
	return buf.Bytes(), nil
}

func (u *spendingUsecase) filtered(ctx context.Context, districtID string, q domain.ListSpendingQuery) ([]*entity.SpendingRecord, query.Options, error) {
	canon := schema.CanonicalID(districtID)
	if canon == "" {
		return nil, query.Options{}, domain.NewInvalidInputError("district id must contain digits")
	}
	if q.From != nil && q.To != nil && q.To.Before(*q.From) {
		return nil, query.Options{}, domain.NewInvalidInputError("date range end precedes start")
	}

	opts, err := buildOptions(q.SortKey, q.SortDir, "date", spendingSortKeys, q.Page, q.PageSize)
	if err != nil {
		return nil, query.Options{}, err
	}
	opts.Text = q.Search
	opts.Categories = q.Categories
	opts.MinValue = q.MinAmount
	opts.MaxValue = q.MaxAmount
	opts.From = q.From
	opts.To = q.To

	records, err := u.repo.ListByDistrict(ctx, canon)
	if err != nil {
		return nil, query.Options{}, err
	}
	return records, opts, nil
}
