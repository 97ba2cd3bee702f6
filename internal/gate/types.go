package gate

// #region veto-type
// VetoType enumerates hard veto categories.
type VetoType string

const (
	VetoRange        VetoType = "value_out_of_range"
	VetoMissingActor VetoType = "missing_actor_keys"
	VetoTurnOrder    VetoType = "non_monotonic_turn"
)

// #endregion veto-type

// #region veto-signal
// VetoSignal represents a detected hard veto condition.
type VetoSignal struct {
	Type   VetoType
	Reason string
}

// #endregion veto-signal

// #region gate-config
// GateConfig holds thresholds for commit decisions.
type GateConfig struct {
	MaxKeyDelta float64 // soft: largest single-key change considered stable
}

// DefaultGateConfig returns the defaults used by the coordinator.
func DefaultGateConfig() GateConfig {
	return GateConfig{
		MaxKeyDelta: 0.6,
	}
}

// #endregion gate-config

// #region gate-decision
// GateDecision is the output of the gate evaluation.
type GateDecision struct {
	Action      string // "commit" | "reject"
	Reason      string
	Vetoed      bool
	VetoSignals []VetoSignal // non-empty if vetoed
	SoftScore   float64      // 0-1 composite of soft signals (for logging)
}

// #endregion gate-decision
