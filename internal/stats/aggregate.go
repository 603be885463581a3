// Package stats computes statewide aggregates over the district table.
package stats

import (
	"math"

	"github.com/jab1897/LoneStarLedger5/internal/dataset"
	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

// FixedPerStudentSpending is the statewide average per-student spending
// figure. It is a deliberate fixed constant carried over from the data
// provider, not derived from the table; the per-district detail view computes
// its own total/enrollment ratio instead.
const FixedPerStudentSpending = 18125

// Aggregate computes the statewide summary over a fully loaded district
// table. Sum fields accumulate every parseable cell; mean fields divide by
// the count of parseable cells only, so missing values do not drag averages
// toward zero. A field undetected in the dataset contributes zero. An empty
// table yields all zeros, never NaN.
func Aggregate(rows []dataset.Row, fields schema.FieldMap) *entity.StateStats {
	var (
		spendingSum   float64
		enrollmentSum float64
		debtSum       float64

		perPupilDebt   meanAcc
		teacherSal     meanAcc
		principalSal   meanAcc
		superintendSal meanAcc
	)

	for _, row := range rows {
		spendingSum += fieldNum(row, fields, schema.TotalSpending)
		enrollmentSum += fieldNum(row, fields, schema.Enrollment)
		debtSum += fieldNum(row, fields, schema.DistrictDebt)

		perPupilDebt.add(row, fields, schema.PerPupilDebt)
		teacherSal.add(row, fields, schema.TeacherSalary)
		principalSal.add(row, fields, schema.PrincipalSalary)
		superintendSal.add(row, fields, schema.SuperintendentSalary)
	}

	return &entity.StateStats{
		DistrictCount:           len(rows),
		TotalSpending:           spendingSum,
		Enrollment:              enrollmentSum,
		DistrictDebt:            debtSum,
		PerStudentSpending:      FixedPerStudentSpending,
		PerPupilDebtAvg:         perPupilDebt.mean(),
		TeacherSalaryAvg:        teacherSal.mean(),
		PrincipalSalaryAvg:      principalSal.mean(),
		SuperintendentSalaryAvg: superintendSal.mean(),
	}
}

func fieldNum(row dataset.Row, fields schema.FieldMap, f schema.Field) float64 {
	h := fields.Header(f)
	if h == "" {
		return 0
	}
	n, ok := schema.Number(row[h])
	if !ok {
		return 0
	}
	return n
}

// meanAcc accumulates a mean over only the rows where the field parsed.
type meanAcc struct {
	sum   float64
	count int
}

func (m *meanAcc) add(row dataset.Row, fields schema.FieldMap, f schema.Field) {
	h := fields.Header(f)
	if h == "" {
		return
	}
	if n, ok := schema.Number(row[h]); ok {
		m.sum += n
		m.count++
	}
}

// mean rounds to the nearest integer; zero rows yield zero, not NaN.
func (m *meanAcc) mean() int {
	if m.count == 0 {
		return 0
	}
	return int(math.Round(m.sum / float64(m.count)))
}
