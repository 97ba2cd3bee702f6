package interpret

import (
	"fmt"
	"strings"
)

// #region threat-level

// ThreatLevel is the canonical perception threat scale. Responders return free
// text or numbers; both are coerced onto this enum.
type ThreatLevel string

const (
	ThreatLow      ThreatLevel = "low"
	ThreatModerate ThreatLevel = "moderate"
	ThreatHigh     ThreatLevel = "high"
	ThreatSevere   ThreatLevel = "severe"
)

// #endregion threat-level

// #region results

// Perception is one actor's typed reading of the world snapshot.
type Perception struct {
	Interpretation        string
	ThreatLevel           ThreatLevel
	Opportunities         []string
	NormAssessment        string
	AffectedRelationships []string
	EmotionalResponse     string
	Null                  bool // true when this is the documented default
}

// NullPerception is the documented default substituted for a malformed or
// missing perception. The actor proceeds with defaults in later phases.
func NullPerception() Perception {
	return Perception{ThreatLevel: ThreatLow, Null: true}
}

// ActionChoice is one actor's typed action selection.
type ActionChoice struct {
	SelectedAction    string
	ActionType        string
	Justification     string
	ExpectedReactions map[string]string
	Risks             []string
	IdentityAlignment string
}

// Messages maps recipient name to message text for one diplomatic sub-round.
type Messages map[string]string

// RelationshipProposal maps other-actor name to a proposed relationship value.
type RelationshipProposal map[string]float64

// Proposal is one analyst suggestion: nudge an actor's weight on one norm.
type Proposal struct {
	Actor     string
	Norm      string
	Delta     float64
	Rationale string
}

// #endregion results

// #region errors

// MalformedResponseError means responder output failed extraction, schema
// validation, or mapping for one shape. The caller substitutes the documented
// default and the turn continues.
type MalformedResponseError struct {
	Shape  string
	Reason string
	Raw    string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed %s response: %s", e.Shape, e.Reason)
}

// InvalidActionError means the selected action is not on the fixed menu.
// The caller substitutes the no-op default.
type InvalidActionError struct {
	Action string
	Menu   []string
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("action %q not on menu [%s]", e.Action, strings.Join(e.Menu, ", "))
}

// #endregion errors

// AbstainAction is the no-op default substituted for malformed or off-menu
// selections. It is not on the menu and resolves with no norm tags.
const AbstainAction = "abstain"
