package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Row maps a column header to the cell value from one CSV line. Values are
// always strings; identifier columns keep their leading zeros.
type Row map[string]string

// Table is one parsed CSV dataset: the headers in source column order and the
// data rows in source row order.
type Table struct {
	Headers []string
	Rows    []Row
}

// maxLoggedParseErrors bounds how many per-record CSV errors reach the log;
// the rest are counted silently.
const maxLoggedParseErrors = 3

// DecodeCSV parses CSV text into a Table. The first record supplies the
// headers; a UTF-8 BOM and surrounding whitespace are stripped from them, and
// duplicate headers are renamed with a "-<n>" suffix so every column stays
// addressable. Malformed records are skipped and logged (first few only);
// short records simply leave the trailing columns absent. A malformed stream
// yields whatever rows parsed, never an error for the caller to die on.
func DecodeCSV(r io.Reader, logger *slog.Logger) *Table {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	headerRec, err := cr.Read()
	if err != nil {
		if err != io.EOF {
			logger.Warn("csv header unreadable", "error", err)
		}
		return &Table{}
	}

	headers := dedupeHeaders(headerRec)

	t := &Table{Headers: headers}
	errCount := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			errCount++
			if errCount <= maxLoggedParseErrors {
				logger.Warn("csv record skipped", "error", err)
			}
			continue
		}

		row := make(Row, len(headers))
		empty := true
		for i, v := range rec {
			if i >= len(headers) {
				break
			}
			row[headers[i]] = v
			if strings.TrimSpace(v) != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		t.Rows = append(t.Rows, row)
	}

	if errCount > maxLoggedParseErrors {
		logger.Warn("csv records skipped", "total", errCount)
	}
	return t
}

// dedupeHeaders cleans the raw header record: BOM/whitespace stripped, and a
// repeated header "Foo" becomes "Foo-1", "Foo-2" on later occurrences.
func dedupeHeaders(rec []string) []string {
	headers := make([]string, 0, len(rec))
	seen := make(map[string]int, len(rec))
	for _, h := range rec {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if n, ok := seen[h]; ok {
			seen[h] = n + 1
			headers = append(headers, fmt.Sprintf("%s-%d", h, n))
			continue
		}
		seen[h] = 1
		headers = append(headers, h)
	}
	return headers
}

// SampleRow returns the first row with at least one populated cell, used as
// the representative row for header detection.
func (t *Table) SampleRow() Row {
	for _, r := range t.Rows {
		for _, v := range r {
			if strings.TrimSpace(v) != "" {
				return r
			}
		}
	}
	if len(t.Rows) > 0 {
		return t.Rows[0]
	}
	return nil
}
