package actor

// #region imports
import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// #endregion

// Smoothing constants for relationship updates. A proposed value never
// overwrites the stored one raw: stored = 0.7*old + 0.3*proposed. Scenario
// expectations depend on these exact weights.
const (
	RelationshipCarry = 0.7
	RelationshipGain  = 0.3
)

// #region registry

// Registry holds the run's actors in registration order. Registration order is
// the canonical iteration order everywhere (resolution, learning, persistence).
type Registry struct {
	actors map[string]*Actor
	order  []string
}

// NewRegistry builds a registry from the given actors. Duplicate names are a
// startup-fatal misconfiguration.
func NewRegistry(actors []*Actor) (*Registry, error) {
	if len(actors) == 0 {
		return nil, fmt.Errorf("registry: no actors configured")
	}
	r := &Registry{actors: make(map[string]*Actor, len(actors))}
	for _, a := range actors {
		if _, ok := r.actors[a.Name]; ok {
			return nil, fmt.Errorf("registry: duplicate actor %q", a.Name)
		}
		if a.Relationships == nil {
			a.Relationships = make(map[string]float64)
		}
		if a.NormWeights == nil {
			a.NormWeights = make(map[string]float64)
		}
		r.actors[a.Name] = a
		r.order = append(r.order, a.Name)
	}
	return r, nil
}

// Get returns the actor with the given name.
func (r *Registry) Get(name string) (*Actor, bool) {
	a, ok := r.actors[name]
	return a, ok
}

// All returns the actors in registration order.
func (r *Registry) All() []*Actor {
	out := make([]*Actor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.actors[name])
	}
	return out
}

// Names returns actor names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// #endregion registry

// #region update-relationship

// UpdateRelationship validates proposed against [-1, 1] and, when valid,
// applies the smoothed update. An unknown pair is created with old = 0.
// Returns the stored value after smoothing.
func (r *Registry) UpdateRelationship(actorName, other string, proposed float64) (float64, error) {
	a, ok := r.actors[actorName]
	if !ok {
		return 0, fmt.Errorf("registry: unknown actor %q", actorName)
	}
	if proposed < -1.0 || proposed > 1.0 {
		err := &ValidationError{Actor: actorName, Field: "relationship:" + other, Proposed: proposed}
		log.Printf("[ACTORS] rejected: %v", err)
		return a.Relationships[other], err
	}

	old := a.Relationships[other]
	stored := RelationshipCarry*old + RelationshipGain*proposed
	a.Relationships[other] = stored
	return stored, nil
}

// #endregion update-relationship

// #region update-norm

// UpdateNorm validates value against [-1, 1] and stores it raw. Only
// relationship updates smooth; norm weights are set directly.
func (r *Registry) UpdateNorm(actorName, normName string, value float64) error {
	a, ok := r.actors[actorName]
	if !ok {
		return fmt.Errorf("registry: unknown actor %q", actorName)
	}
	if value < -1.0 || value > 1.0 {
		err := &ValidationError{Actor: actorName, Field: "norm:" + normName, Proposed: value}
		log.Printf("[ACTORS] rejected: %v", err)
		return err
	}
	a.NormWeights[normName] = value
	return nil
}

// #endregion update-norm

// #region session-blob

// Snapshot flattens all mutable actor state into session-blob keys:
// {actor}_norm_{name} for norm weights and {actor}_rel_{other} for
// relationships.
func (r *Registry) Snapshot() map[string]float64 {
	blob := make(map[string]float64)
	for _, name := range r.order {
		a := r.actors[name]
		for norm, v := range a.NormWeights {
			blob[name+"_norm_"+norm] = v
		}
		for other, v := range a.Relationships {
			blob[name+"_rel_"+other] = v
		}
	}
	return blob
}

// RestoreFrom loads actor state from a session blob. Keys for unregistered
// actors are ignored so a blob can outlive a scenario change.
func (r *Registry) RestoreFrom(blob map[string]float64) {
	for key, v := range blob {
		for _, name := range r.order {
			a := r.actors[name]
			if rest, ok := strings.CutPrefix(key, name+"_norm_"); ok {
				a.NormWeights[rest] = v
			} else if rest, ok := strings.CutPrefix(key, name+"_rel_"); ok {
				a.Relationships[rest] = v
			}
		}
	}
}

// NormVector returns an actor's norm weights ordered by the given catalog
// names, for the per-version vector rows.
func (r *Registry) NormVector(actorName string, catalog []string) []float64 {
	a, ok := r.actors[actorName]
	if !ok {
		return nil
	}
	vec := make([]float64, len(catalog))
	for i, norm := range catalog {
		vec[i] = a.NormWeights[norm]
	}
	return vec
}

// SortedPartners returns an actor's relationship partners in sorted order,
// for deterministic reporting.
func SortedPartners(a *Actor) []string {
	out := make([]string, 0, len(a.Relationships))
	for other := range a.Relationships {
		out = append(out, other)
	}
	sort.Strings(out)
	return out
}

// #endregion session-blob
