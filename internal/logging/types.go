package logging

import "time"

// #region provenance-entry
// ProvenanceEntry is a single row in the provenance_log table: one recorded
// decision — a smoothing application, a ledger nudge, a rejection, a default
// substitution, a timeout, a commit.
type ProvenanceEntry struct {
	Turn      int
	Phase     string
	Actor     string // empty for coordinator-level decisions
	Decision  string
	Input     string
	Output    string
	Rationale string
	CreatedAt time.Time
}

// #endregion provenance-entry

// #region decisions

// Decision labels for provenance rows.
const (
	DecisionSmoothed    = "relationship_smoothed"
	DecisionNormSet     = "norm_weight_set"
	DecisionLedgerNudge = "ledger_nudge"
	DecisionRejected    = "value_rejected"
	DecisionDefaulted   = "default_substituted"
	DecisionTimeout     = "phase_timeout"
	DecisionCommit      = "session_commit"
	DecisionVetoed      = "commit_vetoed"
)

// #endregion decisions
