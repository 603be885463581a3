package ui

import (
	"fmt"
	"strings"

	"github.com/jab1897/LoneStarLedger5/internal/cli/types"
)

const missing = "-"

func fmtMoney(v *float64) string {
	if v == nil {
		return missing
	}
	return "$" + groupDigits(fmt.Sprintf("%.0f", *v))
}

func fmtMoneyVal(v float64) string {
	return "$" + groupDigits(fmt.Sprintf("%.2f", v))
}

func fmtNum(v *float64) string {
	if v == nil {
		return missing
	}
	if *v == float64(int64(*v)) {
		return groupDigits(fmt.Sprintf("%.0f", *v))
	}
	return fmt.Sprintf("%.1f", *v)
}

// groupDigits inserts thousands separators into a plain decimal string.
func groupDigits(s string) string {
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return intPart + frac
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + frac
}

// renderTable renders rows with dynamic column widths and a styled header.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(Styles.Header.Render(fmt.Sprintf("%-*s", widths[i], h)))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteByte('\n')
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(fmt.Sprintf("%-*s", widths[i], cell))
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderDistrictTable renders a district list as a table.
func RenderDistrictTable(items []types.District) string {
	if len(items) == 0 {
		return Styles.Key.Render("No districts found")
	}
	rows := make([][]string, 0, len(items))
	for _, d := range items {
		rows = append(rows, []string{
			d.CanonID,
			d.Name,
			d.County,
			fmtNum(d.Enrollment),
			fmtMoney(d.TotalSpending),
		})
	}
	return renderTable([]string{"ID", "NAME", "COUNTY", "ENROLLMENT", "SPENDING"}, rows)
}

// RenderDistrictDetail renders one district's full profile.
func RenderDistrictDetail(d *types.District) string {
	var b strings.Builder
	b.WriteString(Styles.Header.Render(d.Name))
	if d.County != "" {
		b.WriteString(Styles.Key.Render("  (" + d.County + " County)"))
	}
	b.WriteByte('\n')

	kv := func(key string, value string) {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			Styles.Key.Render(fmt.Sprintf("%-24s", key)),
			Styles.Value.Render(value)))
	}
	kv("District ID:", d.CanonID)
	kv("Enrollment:", fmtNum(d.Enrollment))
	kv("Total Spending:", fmtMoney(d.TotalSpending))
	kv("Per-Student Spending:", fmtMoney(d.PerStudentSpending))
	kv("District Debt:", fmtMoney(d.Debt))
	kv("Per-Pupil Debt:", fmtMoney(d.PerPupilDebt))
	kv("Avg Teacher Salary:", fmtMoney(d.TeacherSalary))
	kv("Avg Principal Salary:", fmtMoney(d.PrincipalSalary))
	kv("Superintendent Salary:", fmtMoney(d.SuperintendentSalary))
	return b.String()
}

// RenderCampusTable renders a campus list as a table.
func RenderCampusTable(items []types.Campus) string {
	if len(items) == 0 {
		return Styles.Key.Render("No campuses found")
	}
	rows := make([][]string, 0, len(items))
	for _, c := range items {
		rows = append(rows, []string{
			c.CanonID,
			c.Name,
			fmtNum(c.Score),
			c.Grade,
			fmtNum(c.TeacherCount),
		})
	}
	return renderTable([]string{"ID", "NAME", "SCORE", "GRADE", "TEACHERS"}, rows)
}

// RenderCampusDetail renders one campus's full profile.
func RenderCampusDetail(c *types.Campus) string {
	var b strings.Builder
	b.WriteString(Styles.Header.Render(c.Name))
	b.WriteByte('\n')

	kv := func(key string, value string) {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			Styles.Key.Render(fmt.Sprintf("%-24s", key)),
			Styles.Value.Render(value)))
	}
	grade := c.Grade
	if grade == "" {
		grade = missing
	}
	kv("Campus ID:", c.CanonID)
	kv("District ID:", c.DistrictCanonID)
	kv("Score:", fmtNum(c.Score))
	kv("Grade:", grade)
	kv("Reading On Grade Level:", fmtPct(c.ReadingOGR))
	kv("Math On Grade Level:", fmtPct(c.MathOGR))
	kv("Teachers:", fmtNum(c.TeacherCount))
	kv("Administrators:", fmtNum(c.AdminCount))
	kv("Avg Teacher Salary:", fmtMoney(c.AvgTeacherSalary))
	kv("Avg Admin Salary:", fmtMoney(c.AvgAdminSalary))
	return b.String()
}

func fmtPct(v *float64) string {
	if v == nil {
		return missing
	}
	return fmt.Sprintf("%.1f%%", *v)
}

// RenderSpendingTable renders spending line items as a table.
func RenderSpendingTable(items []types.SpendingRecord) string {
	if len(items) == 0 {
		return Styles.Key.Render("No spending records found")
	}
	rows := make([][]string, 0, len(items))
	for _, rec := range items {
		date := rec.Date
		if date == "" {
			date = missing
		}
		rows = append(rows, []string{
			date,
			rec.Vendor,
			rec.Category,
			fmtMoneyVal(rec.Amount),
		})
	}
	return renderTable([]string{"DATE", "VENDOR", "CATEGORY", "AMOUNT"}, rows)
}

// RenderStateStats renders the statewide aggregates in a box.
func RenderStateStats(s *types.StateStats) string {
	kv := func(key, value string) string {
		return fmt.Sprintf("%s %s",
			Styles.Key.Render(fmt.Sprintf("%-26s", key)),
			Styles.Value.Render(value))
	}
	lines := []string{
		Styles.Header.Render("Texas Statewide Summary"),
		"",
		kv("Districts:", groupDigits(fmt.Sprintf("%d", s.DistrictCount))),
		kv("Total Spending:", "$"+groupDigits(fmt.Sprintf("%.0f", s.TotalSpending))),
		kv("Enrollment:", groupDigits(fmt.Sprintf("%.0f", s.Enrollment))),
		kv("District Debt:", "$"+groupDigits(fmt.Sprintf("%.0f", s.DistrictDebt))),
		kv("Per-Student Spending:", "$"+groupDigits(fmt.Sprintf("%d", s.PerStudentSpending))),
		kv("Avg Per-Pupil Debt:", "$"+groupDigits(fmt.Sprintf("%d", s.PerPupilDebtAvg))),
		kv("Avg Teacher Salary:", "$"+groupDigits(fmt.Sprintf("%d", s.TeacherSalaryAvg))),
		kv("Avg Principal Salary:", "$"+groupDigits(fmt.Sprintf("%d", s.PrincipalSalaryAvg))),
		kv("Avg Superintendent Salary:", "$"+groupDigits(fmt.Sprintf("%d", s.SuperintendentSalaryAvg))),
	}
	return Styles.StatsBox.Render(strings.Join(lines, "\n"))
}

// RenderListSummary renders the pagination footer under a table.
func RenderListSummary(shown, total, page int) string {
	summary := fmt.Sprintf("Showing %s of %s (page %s)",
		Styles.Highlight.Render(fmt.Sprintf("%d", shown)),
		Styles.Key.Render(fmt.Sprintf("%d", total)),
		Styles.Highlight.Render(fmt.Sprintf("%d", page)),
	)
	return Styles.Summary.Render(summary)
}
