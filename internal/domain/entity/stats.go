package entity

// StateStats is the fixed set of statewide aggregates computed over a fully
// loaded district table. Recomputed from scratch on each load, never
// incrementally updated.
type StateStats struct {
	DistrictCount int `json:"district_count"`

	TotalSpending float64 `json:"total_spending"`
	Enrollment    float64 `json:"enrollment"`
	DistrictDebt  float64 `json:"district_debt"`

	// PerStudentSpending is a documented fixed constant, not derived from
	// the table. See stats.FixedPerStudentSpending.
	PerStudentSpending int `json:"per_student_spending"`

	PerPupilDebtAvg         int `json:"per_pupil_debt_avg"`
	TeacherSalaryAvg        int `json:"teacher_salary_avg"`
	PrincipalSalaryAvg      int `json:"principal_salary_avg"`
	SuperintendentSalaryAvg int `json:"superintendent_salary_avg"`
}
