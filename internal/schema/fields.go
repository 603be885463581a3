package schema

import "regexp"

// Logical fields for the district finance dataset.
const (
	DistrictID            Field = "DISTRICT_ID"
	DistrictName          Field = "NAME"
	County                Field = "COUNTY"
	TotalSpending         Field = "TOTAL_SPENDING"
	Enrollment            Field = "ENROLLMENT"
	DistrictDebt          Field = "DISTRICT_DEBT"
	PerPupilDebt          Field = "PER_PUPIL_DEBT"
	TeacherSalary         Field = "TEACHER_SALARY"
	PrincipalSalary       Field = "PRINCIPAL_SALARY"
	SuperintendentSalary  Field = "SUPERINTENDENT_SALARY"
)

// Logical fields for the campus dataset.
const (
	CampusID         Field = "CAMPUS_ID"
	CampusName       Field = "CAMPUS_NAME"
	CampusDistrictID Field = "DISTRICT_ID"
	CampusScore      Field = "CAMPUS_SCORE"
	CampusGrade      Field = "CAMPUS_GRADE"
	ReadingOGR       Field = "READING_OGR"
	MathOGR          Field = "MATH_OGR"
	TeacherCount     Field = "TEACHER_COUNT"
	AdminCount       Field = "ADMIN_COUNT"
	AvgAdminSalary   Field = "AVG_ADMIN_SAL"
	AvgTeacherSalary Field = "AVG_TEACH_SAL"
	Latitude         Field = "LAT"
	Longitude        Field = "LON"
)

// Logical fields for the spending line-item dataset.
const (
	SpendingDistrictID  Field = "DISTRICT_ID"
	SpendingDate        Field = "DATE"
	SpendingVendor      Field = "VENDOR"
	SpendingCategory    Field = "CATEGORY"
	SpendingAmount      Field = "AMOUNT"
	SpendingDescription Field = "DESCRIPTION"
)

// DistrictSpecs holds the detection rules for the district CSV. The alias
// lists carry the exact provider column names first (including the provider's
// "Distrit Debt" typo), followed by names seen in earlier revisions.
var DistrictSpecs = Specs{
	DistrictID: {
		Aliases: []string{"DISTRICT_N", "DISTRICT_ID", "DISTRICTCODE", "ID"},
		Fuzzy:   []*regexp.Regexp{regexp.MustCompile(`district.*(number|id|code)`)},
	},
	DistrictName: {
		Aliases: []string{"NAME", "DISTRICT_NAME", "DISTRICT", "DISTNAME"},
		Fuzzy:   []*regexp.Regexp{regexp.MustCompile(`district.*name`)},
	},
	County: {
		Aliases: []string{"COUNTY", "COUNTY_NAME"},
		Fuzzy:   []*regexp.Regexp{regexp.MustCompile(`county`)},
	},
	TotalSpending: {
		Aliases: []string{
			"Total Spending",
			"TOTAL_SPENDING", "TOTAL EXPENDITURES", "TOTAL_EXPENDITURES",
			"TOTAL SPENDING", "TOTAL OUTLAYS", "TOTAL_OUTLAYS",
			"SPENDING_TOTAL", "EXPENDITURES_TOTAL", "TOTAL_EXPENSE", "TOTAL_EXPENSES",
		},
		Fuzzy: []*regexp.Regexp{regexp.MustCompile(`total.*(spend|expend|outlay)`)},
	},
	Enrollment: {
		Aliases: []string{"Enrollment", "ENROLLMENT", "TOTAL_ENROLLMENT", "STUDENTS", "TOTAL_STUDENTS"},
		Fuzzy:   []*regexp.Regexp{regexp.MustCompile(`enroll`), regexp.MustCompile(`student.*count`)},
	},
	DistrictDebt: {
		Aliases: []string{
			"Distrit Debt",
			"District Debt", "TOTAL_DEBT", "DEBT_TOTAL", "OUTSTANDING_DEBT",
			"DEBT OUTSTANDING", "DEBT_OUTSTANDING",
		},
		Fuzzy: []*regexp.Regexp{regexp.MustCompile(`(district|total|outstanding).*debt`)},
	},
	PerPupilDebt: {
		Aliases: []string{"Per-Pupil Debt", "PER_PUPIL_DEBT", "DEBT_PER_STUDENT", "DEBT PER STUDENT"},
		Fuzzy:   []*regexp.Regexp{regexp.MustCompile(`debt.*(pupil|student)`), regexp.MustCompile(`(pupil|student).*debt`)},
	},
	TeacherSalary: {
		Aliases: []string{
			"Average Teacher Salary",
			"AVG_TEACHER_SALARY", "AVERAGE_TEACHER_SALARY", "TEACHER_AVG_SALARY",
			"TEACHER SALARY (AVG)", "TEACHER_SALARY_AVG", "TEACHER_SALARY",
		},
		Fuzzy: []*regexp.Regexp{regexp.MustCompile(`teacher.*salary`)},
	},
	PrincipalSalary: {
		Aliases: []string{
			"Average Principal Salary",
			"AVG_PRINCIPAL_SALARY", "AVERAGE_PRINCIPAL_SALARY", "PRINCIPAL_AVG_SALARY",
			"PRINCIPAL SALARY (AVG)", "PRINCIPAL_SALARY_AVG", "PRINCIPAL_SALARY",
		},
		Fuzzy: []*regexp.Regexp{regexp.MustCompile(`principal.*salary`)},
	},
	SuperintendentSalary: {
		Aliases: []string{
			"Superintendent Salary",
			"AVG_SUPERINTENDENT_SALARY", "AVERAGE_SUPERINTENDENT_SALARY",
			"SUPERINTENDENT_AVG_SALARY", "SUPERINTENDENT SALARY (AVG)",
			"SUPERINTENDENT_SALARY_AVG", "SUPERINTENDENT_SALARY",
		},
		Fuzzy: []*regexp.Regexp{regexp.MustCompile(`superintendent.*salary`)},
	},
}

// CampusSpecs holds the detection rules for the campus CSV.
var CampusSpecs = Specs{
	CampusDistrictID: {
		Aliases: []string{
			"USER_District_Number", "DISTRICT_N", "DISTRICT_ID",
			"LEAID", "LEA", "LEA CODE", "LEA_ID",
		},
		Fuzzy: []*regexp.Regexp{
			regexp.MustCompile(`district.*(number|id|code)`),
			regexp.MustCompile(`\blea(\s*id|\s*code)?\b`),
		},
	},
	CampusID: {
		Aliases: []string{
			"USER_School_Number", "USER_Campus_Number", "CAMPUS_ID", "Campus ID",
			"SCHOOL_NUMBER", "SCHOOL ID", "School Number",
		},
		Fuzzy: []*regexp.Regexp{
			regexp.MustCompile(`campus.*(id|number)`),
			regexp.MustCompile(`school.*(id|number)`),
		},
	},
	CampusName: {
		Aliases: []string{"USER_School_Name", "Campus Name", "CAMPUS_NAME", "SCHOOL_NAME", "NAME"},
		Fuzzy: []*regexp.Regexp{
			regexp.MustCompile(`campus.*name`),
			regexp.MustCompile(`school.*name`),
		},
	},
	CampusScore: {
		Aliases: []string{"Campus Score", "CAMPUS_SCORE", "CampusScore", "SCORE", "RATING", "GRADE"},
		Fuzzy: []*regexp.Regexp{
			regexp.MustCompile(`score`),
			regexp.MustCompile(`rating`),
			regexp.MustCompile(`grade`),
		},
	},
	CampusGrade: {
		Aliases: []string{"Campus Grade", "Overall Grade", "GRADE", "RATING", "Letter Grade", "LETTER_GRADE"},
		Fuzzy: []*regexp.Regexp{
			regexp.MustCompile(`(^|\s)(overall\s*)?grade`),
			regexp.MustCompile(`rating`),
		},
	},
	ReadingOGR: {
		Aliases: []string{"Reading OGL", "Reading On Grade-Level", "READING_OGL", "READING OGL"},
		Fuzzy:   []*regexp.Regexp{regexp.MustCompile(`read.*(on.*grade|ogl)`)},
	},
	MathOGR: {
		Aliases: []string{"Math OGL", "MATH_OGL", "Math On Grade-Level", "MATH OGL"},
		Fuzzy:   []*regexp.Regexp{regexp.MustCompile(`math.*(on.*grade|ogl)`)},
	},
	TeacherCount: {
		Aliases: []string{"Teacher Count", "TEACHERS", "TEACHER_COUNT"},
		Fuzzy:   []*regexp.Regexp{regexp.MustCompile(`teacher.*count`)},
	},
	AdminCount: {
		Aliases: []string{"Admin Count", "ADMIN_COUNT", "Administrators"},
		Fuzzy:   []*regexp.Regexp{regexp.MustCompile(`admin.*count`)},
	},
	AvgAdminSalary: {
		Aliases: []string{"Average Admin Salary", "ADMIN_AVG_SALARY", "AVG_ADMIN_SAL"},
		Fuzzy:   []*regexp.Regexp{regexp.MustCompile(`admin.*salary`)},
	},
	AvgTeacherSalary: {
		Aliases: []string{"Average Teacher Salary", "TEACHER_AVG_SALARY", "AVG_TEACH_SAL"},
		Fuzzy:   []*regexp.Regexp{regexp.MustCompile(`teacher.*salary`)},
	},
	Latitude: {
		Aliases: []string{"LAT", "Latitude", "Y"},
		Fuzzy:   []*regexp.Regexp{regexp.MustCompile(`^lat$`), regexp.MustCompile(`latitude`)},
	},
	Longitude: {
		Aliases: []string{"LON", "LONG", "Longitude", "X"},
		Fuzzy: []*regexp.Regexp{
			regexp.MustCompile(`^lon$|^lng$`),
			regexp.MustCompile(`longitude`),
			regexp.MustCompile(`long`),
		},
	},
}

// SpendingSpecs holds the detection rules for the spending line-item CSV.
var SpendingSpecs = Specs{
	SpendingDistrictID: {
		Aliases: []string{"DISTRICT_N", "DISTRICT_ID", "DISTRICTCODE", "DISTRICT"},
		Fuzzy:   []*regexp.Regexp{regexp.MustCompile(`district`)},
	},
	SpendingDate: {
		Aliases: []string{"DATE", "TxDate", "POST_DATE", "INVOICE_DATE"},
		Fuzzy:   []*regexp.Regexp{regexp.MustCompile(`date`)},
	},
	SpendingVendor: {
		Aliases: []string{"VENDOR", "PAYEE", "SUPPLIER"},
		Fuzzy:   []*regexp.Regexp{regexp.MustCompile(`vendor|payee|supplier`)},
	},
	SpendingCategory: {
		Aliases: []string{"CATEGORY", "OBJECT", "ACCOUNT", "FUNCTION"},
		Fuzzy:   []*regexp.Regexp{regexp.MustCompile(`categor`)},
	},
	SpendingAmount: {
		Aliases: []string{"AMOUNT", "TOTAL", "EXPENSE", "DEBIT", "LINE_AMOUNT"},
		Fuzzy:   []*regexp.Regexp{regexp.MustCompile(`amount|total|expense|debit`)},
	},
	SpendingDescription: {
		Aliases: []string{"DESCRIPTION", "DESC", "MEMO", "LINE_DESCRIPTION"},
		Fuzzy:   []*regexp.Regexp{regexp.MustCompile(`desc|memo`)},
	},
}

// GeoDistrictIDSpec locates the district identifier property on GeoJSON
// district boundary features.
var GeoDistrictIDSpec = Spec{
	Aliases: []string{"DISTRICT_N", "DISTRICT_ID", "LEAID", "LEA", "USER_District_Number"},
	Fuzzy: []*regexp.Regexp{
		regexp.MustCompile(`district.*(number|id|code)`),
		regexp.MustCompile(`\blea(\s*id)?\b`),
	},
}
