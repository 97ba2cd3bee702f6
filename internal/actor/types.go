package actor

import "fmt"

// #region actor

// Actor is one simulated state: fixed identity plus mutable relationship and
// norm-weight maps. Identity fields are set at construction and never touched
// again; the registry is the only writer for the mutable maps.
type Actor struct {
	Name              string
	Identity          map[string]any
	Relationships     map[string]float64
	NormWeights       map[string]float64
	NormsInternalized []string
	NormsContested    []string
}

// #endregion actor

// #region validation-error

// ValidationError reports a proposed relationship or norm value outside
// [-1, 1]. The stored value is left unchanged.
type ValidationError struct {
	Actor    string
	Field    string // "relationship:<other>" or "norm:<name>"
	Proposed float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("actor %s: %s value %.4f outside [-1, 1]", e.Actor, e.Field, e.Proposed)
}

// #endregion validation-error
