package entity

import (
	"time"

	"github.com/jab1897/LoneStarLedger5/internal/query"
)

// SpendingRecord is one normalized spending line item.
type SpendingRecord struct {
	DistrictCanonID string  `json:"district_id"`
	Date            string  `json:"date,omitempty"`
	Vendor          string  `json:"vendor,omitempty"`
	Category        string  `json:"category,omitempty"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description,omitempty"`

	// ParsedDate is the interpreted Date cell; DateOK is false when the
	// cell was empty or unparseable.
	ParsedDate time.Time `json:"-"`
	DateOK     bool      `json:"-"`
}

func (s *SpendingRecord) SearchFields() []string {
	return []string{s.Vendor, s.Description, s.Category}
}

func (s *SpendingRecord) CanonicalID() string { return s.DistrictCanonID }

func (s *SpendingRecord) CategoryValue() string { return s.Category }

func (s *SpendingRecord) RangeValue() (float64, bool) { return s.Amount, true }

func (s *SpendingRecord) DateValue() (time.Time, bool) { return s.ParsedDate, s.DateOK }

func (s *SpendingRecord) DisplayName() string { return s.Vendor }

func (s *SpendingRecord) SortValue(key string) query.Value {
	switch key {
	case "amount":
		return query.NumberValue(s.Amount)
	case "vendor":
		return query.StringValue(s.Vendor)
	case "category":
		return query.StringValue(s.Category)
	case "date":
		if !s.DateOK {
			return query.NoValue()
		}
		return query.TimeValue(s.ParsedDate)
	}
	return query.NoValue()
}
