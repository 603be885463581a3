package entity

import (
	"time"

	"github.com/jab1897/LoneStarLedger5/internal/query"
)

// District is one school district row after field normalization. Numeric
// fields are nil when the source column was undetected or the cell did not
// parse; consumers render a placeholder instead of a value.
type District struct {
	ID      string `json:"id"`
	CanonID string `json:"canonical_id"`
	Name    string `json:"name"`
	County  string `json:"county,omitempty"`

	TotalSpending        *float64 `json:"total_spending,omitempty"`
	Enrollment           *float64 `json:"enrollment,omitempty"`
	Debt                 *float64 `json:"district_debt,omitempty"`
	PerPupilDebt         *float64 `json:"per_pupil_debt,omitempty"`
	TeacherSalary        *float64 `json:"teacher_salary,omitempty"`
	PrincipalSalary      *float64 `json:"principal_salary,omitempty"`
	SuperintendentSalary *float64 `json:"superintendent_salary,omitempty"`
}

// PerStudentSpending is total spending divided by enrollment for this
// district's row, the figure shown on the detail view. Distinct from the
// fixed statewide constant. Nil when either input is missing or enrollment
// is zero.
func (d *District) PerStudentSpending() *float64 {
	if d.TotalSpending == nil || d.Enrollment == nil || *d.Enrollment <= 0 {
		return nil
	}
	v := *d.TotalSpending / *d.Enrollment
	return &v
}

func (d *District) SearchFields() []string {
	return []string{d.Name, d.ID, d.County}
}

func (d *District) CanonicalID() string { return d.CanonID }

func (d *District) CategoryValue() string { return d.County }

func (d *District) RangeValue() (float64, bool) {
	if d.Enrollment == nil {
		return 0, false
	}
	return *d.Enrollment, true
}

func (d *District) DateValue() (time.Time, bool) { return time.Time{}, false }

func (d *District) DisplayName() string { return d.Name }

func (d *District) SortValue(key string) query.Value {
	switch key {
	case "name":
		return query.StringValue(d.Name)
	case "county":
		return query.StringValue(d.County)
	case "enrollment":
		return numValue(d.Enrollment)
	case "spending":
		return numValue(d.TotalSpending)
	case "debt":
		return numValue(d.Debt)
	case "teacher_salary":
		return numValue(d.TeacherSalary)
	}
	return query.NoValue()
}

func numValue(v *float64) query.Value {
	if v == nil {
		return query.NoValue()
	}
	return query.NumberValue(*v)
}
