package eval

// #region eval-config
// Config holds thresholds for analyst-proposal vetting.
type Config struct {
	MaxDelta float64 // reject proposals whose |delta| exceeds this
}

// DefaultConfig returns the defaults used by the coordinator.
func DefaultConfig() Config {
	return Config{
		MaxDelta: 0.1,
	}
}

// #endregion eval-config

// #region verdict
// Verdict is the vetting result for one proposal.
type Verdict struct {
	Accepted bool
	Reason   string
	Score    float64 // 0-1 ranking score for accepted proposals
}

// #endregion verdict
