// Package index builds lookup structures over a parsed table using resolved
// headers. Building is a pure function of the table and field map; indexes
// are rebuilt whenever a source table is reloaded and never mutated in place.
package index

import (
	"log/slog"

	"github.com/jab1897/LoneStarLedger5/internal/dataset"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

// EntityIndex is the lookup structure for one table: rows by their own
// canonical id, and rows grouped by the canonical id of a parent entity.
type EntityIndex struct {
	ByID     map[string]dataset.Row
	ByParent map[string][]dataset.Row
}

// Build indexes rows by idHeader and groups them by parentHeader. Either
// header may be "" (field undetected), which leaves the corresponding map
// empty. Rows whose id cell canonicalizes to nothing are silently excluded.
// Duplicate canonical ids are last-writer-wins, logged at debug level so
// dropped rows are at least visible. Group order follows source row order.
func Build(rows []dataset.Row, idHeader, parentHeader string, logger *slog.Logger) *EntityIndex {
	idx := &EntityIndex{
		ByID:     make(map[string]dataset.Row),
		ByParent: make(map[string][]dataset.Row),
	}

	for _, row := range rows {
		if idHeader != "" {
			if id := schema.CanonicalID(row[idHeader]); id != "" {
				if _, dup := idx.ByID[id]; dup {
					logger.Debug("duplicate canonical id, keeping later row", "id", id)
				}
				idx.ByID[id] = row
			}
		}
		if parentHeader != "" {
			if pid := schema.CanonicalID(row[parentHeader]); pid != "" {
				idx.ByParent[pid] = append(idx.ByParent[pid], row)
			}
		}
	}

	return idx
}
