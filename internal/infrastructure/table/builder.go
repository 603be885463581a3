// Package table implements the domain repositories over lazily loaded CSV
// and GeoJSON sources. Entities are built once per loaded dataset and reused;
// a repository never mutates a built slice after publishing it.
package table

import (
	"github.com/jab1897/LoneStarLedger5/internal/dataset"
	"github.com/jab1897/LoneStarLedger5/internal/domain/entity"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

func cell(row dataset.Row, fields schema.FieldMap, f schema.Field) string {
	h := fields.Header(f)
	if h == "" {
		return ""
	}
	return row[h]
}

// numPtr parses a cell as a number, nil when the field is undetected or the
// cell does not parse.
func numPtr(row dataset.Row, fields schema.FieldMap, f schema.Field) *float64 {
	h := fields.Header(f)
	if h == "" {
		return nil
	}
	n, ok := schema.Number(row[h])
	if !ok {
		return nil
	}
	return &n
}

func buildDistrict(row dataset.Row, fields schema.FieldMap) *entity.District {
	id := cell(row, fields, schema.DistrictID)
	return &entity.District{
		ID:                   id,
		CanonID:              schema.CanonicalID(id),
		Name:                 cell(row, fields, schema.DistrictName),
		County:               cell(row, fields, schema.County),
		TotalSpending:        numPtr(row, fields, schema.TotalSpending),
		Enrollment:           numPtr(row, fields, schema.Enrollment),
		Debt:                 numPtr(row, fields, schema.DistrictDebt),
		PerPupilDebt:         numPtr(row, fields, schema.PerPupilDebt),
		TeacherSalary:        numPtr(row, fields, schema.TeacherSalary),
		PrincipalSalary:      numPtr(row, fields, schema.PrincipalSalary),
		SuperintendentSalary: numPtr(row, fields, schema.SuperintendentSalary),
	}
}

func buildCampus(row dataset.Row, fields schema.FieldMap) *entity.Campus {
	id := cell(row, fields, schema.CampusID)
	return &entity.Campus{
		ID:               id,
		CanonID:          schema.CanonicalID(id),
		Name:             cell(row, fields, schema.CampusName),
		DistrictCanonID:  schema.CanonicalID(cell(row, fields, schema.CampusDistrictID)),
		Score:            numPtr(row, fields, schema.CampusScore),
		Grade:            cell(row, fields, schema.CampusGrade),
		ReadingOGR:       numPtr(row, fields, schema.ReadingOGR),
		MathOGR:          numPtr(row, fields, schema.MathOGR),
		TeacherCount:     numPtr(row, fields, schema.TeacherCount),
		AdminCount:       numPtr(row, fields, schema.AdminCount),
		AvgAdminSalary:   numPtr(row, fields, schema.AvgAdminSalary),
		AvgTeacherSalary: numPtr(row, fields, schema.AvgTeacherSalary),
		Lat:              numPtr(row, fields, schema.Latitude),
		Lon:              numPtr(row, fields, schema.Longitude),
	}
}

func buildSpending(row dataset.Row, fields schema.FieldMap) *entity.SpendingRecord {
	rec := &entity.SpendingRecord{
		DistrictCanonID: schema.CanonicalID(cell(row, fields, schema.SpendingDistrictID)),
		Date:            cell(row, fields, schema.SpendingDate),
		Vendor:          cell(row, fields, schema.SpendingVendor),
		Category:        cell(row, fields, schema.SpendingCategory),
		Description:     cell(row, fields, schema.SpendingDescription),
	}
	if n, ok := schema.Number(cell(row, fields, schema.SpendingAmount)); ok {
		rec.Amount = n
	}
	if t, ok := schema.Date(rec.Date); ok {
		rec.ParsedDate = t
		rec.DateOK = true
	}
	return rec
}
