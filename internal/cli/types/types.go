// Package types defines the API response shapes the CLI consumes.
package types

// APIResponse is the server's uniform JSON envelope.
type APIResponse[T any] struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// District mirrors the server's district payload.
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
	PerStudentSpending   *float64 `json:"per_student_spending,omitempty"`
}

// DistrictList is one page of districts.
type DistrictList struct {
	Items    []District `json:"items"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

// Campus mirrors the server's campus payload.
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

// CampusList is one page of campuses.
type CampusList struct {
	Items    []Campus `json:"items"`
	Total    int      `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
}

// DistrictCampuses is the full campus roster of one district.
type DistrictCampuses struct {
	DistrictID string   `json:"district_id"`
	Items      []Campus `json:"items"`
	Total      int      `json:"total"`
}

// SpendingRecord mirrors the server's spending line item payload.
type SpendingRecord struct {
	DistrictCanonID string  `json:"district_id"`
	Date            string  `json:"date,omitempty"`
	Vendor          string  `json:"vendor,omitempty"`
	Category        string  `json:"category,omitempty"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description,omitempty"`
}

// SpendingList is one page of spending records.
type SpendingList struct {
	Items    []SpendingRecord `json:"items"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// StateStats mirrors the server's statewide aggregate payload.
type StateStats struct {
	DistrictCount           int     `json:"district_count"`
	TotalSpending           float64 `json:"total_spending"`
	Enrollment              float64 `json:"enrollment"`
	DistrictDebt            float64 `json:"district_debt"`
	PerStudentSpending      int     `json:"per_student_spending"`
	PerPupilDebtAvg         int     `json:"per_pupil_debt_avg"`
	TeacherSalaryAvg        int     `json:"teacher_salary_avg"`
	PrincipalSalaryAvg      int     `json:"principal_salary_avg"`
	SuperintendentSalaryAvg int     `json:"superintendent_salary_avg"`
}

// Counties is the distinct county list.
type Counties struct {
	Counties []string `json:"counties"`
}
