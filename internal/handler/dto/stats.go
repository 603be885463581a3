package dto

import "github.com/jab1897/LoneStarLedger5/internal/schema"

// FieldsResponse maps each logical field of a dataset to the source header
// the detection pass bound it to. Undetected fields are absent.
type FieldsResponse struct {
	Dataset string            `json:"dataset"`
	Fields  map[string]string `json:"fields"`
}

func ToFieldsResponse(dataset string, fields schema.FieldMap) *FieldsResponse {
	out := make(map[string]string, len(fields))
	for f, header := range fields {
		out[string(f)] = header
	}
	return &FieldsResponse{Dataset: dataset, Fields: out}
}

// CountiesResponse lists the distinct county names of the district table.
type CountiesResponse struct {
	Counties []string `json:"counties"`
}
