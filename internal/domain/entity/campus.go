package entity

import (
	"time"

	"github.com/jab1897/LoneStarLedger5/internal/query"
)

// Campus is one campus row after field normalization, joined to its parent
// district by canonical district id.
type Campus struct {
	ID              string `json:"id"`
	CanonID         string `json:"canonical_id"`
	Name            string `json:"name"`
	DistrictCanonID string `json:"district_id,omitempty"`

	Score            *float64 `json:"score,omitempty"`
	Grade            string   `json:"grade,omitempty"`
	ReadingOGR       *float64 `json:"reading_on_grade_level,omitempty"`
	MathOGR          *float64 `json:"math_on_grade_level,omitempty"`
	TeacherCount     *float64 `json:"teacher_count,omitempty"`
	AdminCount       *float64 `json:"admin_count,omitempty"`
	AvgAdminSalary   *float64 `json:"avg_admin_salary,omitempty"`
	AvgTeacherSalary *float64 `json:"avg_teacher_salary,omitempty"`

	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`
}

func (c *Campus) SearchFields() []string {
	return []string{c.Name, c.ID}
}

func (c *Campus) CanonicalID() string { return c.CanonID }

func (c *Campus) CategoryValue() string { return c.Grade }

func (c *Campus) RangeValue() (float64, bool) {
	if c.Score == nil {
		return 0, false
	}
	return *c.Score, true
}

func (c *Campus) DateValue() (time.Time, bool) { return time.Time{}, false }

func (c *Campus) DisplayName() string { return c.Name }

func (c *Campus) SortValue(key string) query.Value {
	switch key {
	case "name":
		return query.StringValue(c.Name)
	case "score":
		return numValue(c.Score)
	case "grade":
		return query.StringValue(c.Grade)
	case "teacher_count":
		return numValue(c.TeacherCount)
	}
	return query.NoValue()
}
