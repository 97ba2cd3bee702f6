package session

import "time"

// #region key

// Key is the composite session identity used by the original tooling.
type Key struct {
	AppName   string
	UserID    string
	SessionID string
}

// #endregion key

// #region version

// Version is one immutable committed-turn row: the full session blob as it
// stood after that turn.
type Version struct {
	Version   int
	Parent    int // 0 for the first version
	Turn      int
	Blob      map[string]float64
	CreatedAt time.Time
}

// #endregion version

// #region session-row

// Row is one sessions-table entry, for inspection tooling.
type Row struct {
	ID        string
	AppName   string
	UserID    string
	SessionID string
	State     map[string]float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// #endregion session-row

// #region outcome-row

// OutcomeRow is one turn_outcomes entry.
type OutcomeRow struct {
	Turn         int
	Actor        string
	Action       string
	NormBehavior string // JSON map of norm → comply/violate, may be empty
}

// #endregion outcome-row
