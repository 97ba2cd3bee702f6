package world

// #region imports
import (
	"fmt"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/norm"
)

// #endregion

// snapshotEvents bounds how many recent events a snapshot exposes.
const snapshotEvents = 5

// #region types

// ActorAction pairs an actor with its selected action for batch resolution.
type ActorAction struct {
	Actor  string
	Action string
}

// Outcome is the deterministic result of one actor's action.
type Outcome struct {
	ActionTaken  string                   `json:"action_taken"`
	Success      bool                     `json:"success"`
	Consequences []string                 `json:"consequences"`
	NormBehavior map[string]norm.Behavior `json:"norm_behavior,omitempty"`
}

// Snapshot is the read-only world view fanned out to actors each turn.
type Snapshot struct {
	Crises       []string `json:"crises"`
	Negotiations []string `json:"negotiations"`
	RecentEvents []string `json:"recent_events"`
	Disputes     []string `json:"disputes"`
}

// State holds the shared world bookkeeping. Only the turn coordinator mutates
// it, at resolution time.
type State struct {
	crises              []string
	ongoingNegotiations []string
	recentEvents        []string
	resourceDisputes    []string
}

// #endregion types

// #region constructor

// New creates an empty world, optionally pre-loaded with seed events.
func New(seedEvents ...string) *State {
	return &State{recentEvents: seedEvents}
}

// #endregion constructor

// #region snapshot

// Snapshot copies the current world view. Recent events are bounded to the
// last 5; everything else is returned whole.
func (s *State) Snapshot() Snapshot {
	events := s.recentEvents
	if len(events) > snapshotEvents {
		events = events[len(events)-snapshotEvents:]
	}
	return Snapshot{
		Crises:       append([]string(nil), s.crises...),
		Negotiations: append([]string(nil), s.ongoingNegotiations...),
		RecentEvents: append([]string(nil), events...),
		Disputes:     append([]string(nil), s.resourceDisputes...),
	}
}

// #endregion snapshot

// #region resolve

// ResolveActions maps the batch of selected actions to outcomes using the
// fixed table: sanction/intervene violate sovereignty and non_intervention,
// cooperate complies with free_trade and multilateralism, everything else
// carries no norm tag. The mapping is a test contract; resolution also records
// the deterministic world mutations for each action.
func (s *State) ResolveActions(actions []ActorAction) map[string]Outcome {
	outcomes := make(map[string]Outcome, len(actions))

	for _, aa := range actions {
		outcome := Outcome{
			ActionTaken: aa.Action,
			Success:     true,
		}

		switch aa.Action {
		case "sanction", "intervene":
			outcome.NormBehavior = map[string]norm.Behavior{
				"sovereignty":      norm.Violate,
				"non_intervention": norm.Violate,
			}
		case "cooperate":
			outcome.NormBehavior = map[string]norm.Behavior{
				"free_trade":      norm.Comply,
				"multilateralism": norm.Comply,
			}
		}

		s.applyWorldEffects(aa)
		outcomes[aa.Actor] = outcome
	}

	return outcomes
}

// applyWorldEffects records the world-side traces of one action.
func (s *State) applyWorldEffects(aa ActorAction) {
	s.recentEvents = append(s.recentEvents, fmt.Sprintf("%s chose %s", aa.Actor, aa.Action))

	switch aa.Action {
	case "negotiate", "build_coalition":
		s.refreshNegotiation(fmt.Sprintf("%s-led talks", aa.Actor))
	case "sanction":
		s.resourceDisputes = append(s.resourceDisputes, fmt.Sprintf("sanctions imposed by %s", aa.Actor))
	}
}

// refreshNegotiation moves an existing entry to the tail or appends a new one.
func (s *State) refreshNegotiation(entry string) {
	for i, n := range s.ongoingNegotiations {
		if n == entry {
			s.ongoingNegotiations = append(s.ongoingNegotiations[:i], s.ongoingNegotiations[i+1:]...)
			break
		}
	}
	s.ongoingNegotiations = append(s.ongoingNegotiations, entry)
}

// AddCrisis records an externally injected crisis (scenario seed events).
func (s *State) AddCrisis(crisis string) {
	s.crises = append(s.crises, crisis)
}

// EventCount returns the total events recorded, not just the snapshot window.
func (s *State) EventCount() int {
	return len(s.recentEvents)
}

// #endregion resolve
