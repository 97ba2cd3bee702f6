package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-decision
// LogDecision writes a provenance entry to the provenance_log table.
func LogDecision(db *sql.DB, entry ProvenanceEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO provenance_log (turn, phase, actor, decision, input, output, rationale, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Turn,
		entry.Phase,
		nullIfEmpty(entry.Actor),
		entry.Decision,
		nullIfEmpty(entry.Input),
		nullIfEmpty(entry.Output),
		nullIfEmpty(entry.Rationale),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion log-decision

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
