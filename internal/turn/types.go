package turn

// #region imports
import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/interpret"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/norm"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/signals"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/world"
)

// #endregion

// #region phases

// Phase is one stage of the turn state machine.
type Phase string

const (
	PhaseIdle            Phase = "idle"
	PhasePerceiving      Phase = "perceiving"
	PhaseNegotiating     Phase = "negotiating"
	PhaseActingSelection Phase = "acting_selection"
	PhaseResolving       Phase = "resolving"
	PhaseLearning        Phase = "learning"
	PhaseMemoryUpdate    Phase = "memory_update"
)

// #endregion phases

// #region config

// Config holds the turn loop parameters.
type Config struct {
	Iterations       int           // full turns to run
	DiplomaticRounds int           // sub-rounds per Negotiating phase
	ActionMenu       []string      // the fixed action menu
	CallTimeout      time.Duration // per responder call
	PhaseBudget      time.Duration // whole-phase gather budget
}

// DefaultConfig returns the standard loop parameters.
func DefaultConfig() Config {
	return Config{
		Iterations:       3,
		DiplomaticRounds: 2,
		ActionMenu: []string{
			"cooperate",
			"defect",
			"signal",
			"sanction",
			"negotiate",
			"build_coalition",
			"contest_norm",
		},
		CallTimeout: 30 * time.Second,
		PhaseBudget: 120 * time.Second,
	}
}

// #endregion config

// #region turn-record

// RoundMessages maps sender to recipient to message text for one diplomatic
// sub-round. Only declared, registered recipients appear.
type RoundMessages map[string]map[string]string

// RelationshipChange records one smoothed relationship update applied during
// the Learning phase, with enough detail to recompute the smoothing.
type RelationshipChange struct {
	Actor    string  `json:"actor"`
	Other    string  `json:"other"`
	Proposed float64 `json:"proposed"`
	Before   float64 `json:"before"`
	After    float64 `json:"after"`
}

// TurnRecord is the append-only record of one completed turn.
type TurnRecord struct {
	TurnNumber          int                             `json:"turn_number"`
	StartedAt           time.Time                       `json:"started_at"`
	Perceptions         map[string]interpret.Perception `json:"perceptions,omitempty"`
	Messages            []RoundMessages                 `json:"messages,omitempty"`
	Actions             map[string]string               `json:"actions"`
	Outcomes            map[string]world.Outcome        `json:"outcomes"`
	RelationshipChanges []RelationshipChange            `json:"relationship_changes,omitempty"`
	NormStatus          map[string]norm.Status          `json:"norm_status"`
	Indicators          signals.Indicators              `json:"indicators"`
	Degraded            map[string][]Phase              `json:"degraded,omitempty"` // actor -> phases that defaulted
	Version             int                             `json:"version,omitempty"`  // committed session version, 0 when not committed
	CreatedAt           time.Time                       `json:"created_at"`
}

// Summary renders the record as one line for recall indexing and analyst
// context.
func (r TurnRecord) Summary() string {
	names := make([]string, 0, len(r.Actions))
	for actorName := range r.Actions {
		names = append(names, actorName)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, actorName := range names {
		parts = append(parts, fmt.Sprintf("%s:%s", actorName, r.Actions[actorName]))
	}
	return fmt.Sprintf("turn %d actions %s cooperation=%.2f coercion=%.2f polarization=%.2f",
		r.TurnNumber, strings.Join(parts, " "),
		r.Indicators.CooperationRate, r.Indicators.CoercionRate, r.Indicators.Polarization)
}

// #endregion turn-record

// #region errors

// PhaseTimeoutError means a phase's concurrent gather missed its budget.
// Partial results are used; the listed actors degraded to defaults.
type PhaseTimeoutError struct {
	Phase   Phase
	Missing []string
}

func (e *PhaseTimeoutError) Error() string {
	return fmt.Sprintf("phase %s timed out waiting for [%s]", e.Phase, strings.Join(e.Missing, ", "))
}

// #endregion errors
