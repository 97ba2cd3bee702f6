package turn

// #region imports
import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/actor"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/analyst"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/gate"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/graph"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/interior"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/interpret"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/logging"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/memory"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/norm"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/observe"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/projection"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/responder"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/session"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/signals"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/transcript"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/world"
)

// #endregion

// #region deps

// Deps wires the coordinator to its collaborators. Registry, Ledger, World,
// and Responder are required; everything else is optional and skipped when
// nil.
type Deps struct {
	Registry  *actor.Registry
	Ledger    *norm.Ledger
	World     *world.State
	Responder responder.Responder

	Sessions   *session.Store
	SessionKey session.Key
	Interior   *interior.Store
	Graph      *graph.Store
	Gate       *gate.Gate

	Analyst       *analyst.Analyst
	AnalystConfig analyst.Config
	Recall        *memory.Recall
	Transcript    *transcript.Writer
	Observer      *observe.Server
}

// #endregion deps

// #region coordinator

// Coordinator drives the turn state machine: Perceiving → Negotiating →
// ActingSelection → Resolving → Learning → MemoryUpdate, repeated for the
// configured iteration count. All shared-state mutation happens on the
// coordinator's goroutine after each phase's concurrent gather completes.
type Coordinator struct {
	config Config
	deps   Deps

	identity map[string]string // cached per-actor system contexts

	mu            sync.Mutex
	turn          int
	history       []TurnRecord
	lastCommitted map[string]float64
}

// NewCoordinator validates deps and builds a coordinator.
func NewCoordinator(config Config, deps Deps) (*Coordinator, error) {
	if deps.Registry == nil || deps.Ledger == nil || deps.World == nil || deps.Responder == nil {
		return nil, fmt.Errorf("coordinator: registry, ledger, world, and responder are required")
	}
	if config.Iterations <= 0 {
		return nil, fmt.Errorf("coordinator: iterations must be positive, got %d", config.Iterations)
	}
	if len(config.ActionMenu) == 0 {
		return nil, fmt.Errorf("coordinator: empty action menu")
	}

	c := &Coordinator{
		config:   config,
		deps:     deps,
		identity: make(map[string]string),
	}
	for _, a := range deps.Registry.All() {
		c.identity[a.Name] = projection.IdentityContext(a)
	}
	if deps.Sessions != nil {
		c.lastCommitted = deps.Registry.Snapshot()
	}
	return c, nil
}

// CurrentTurn returns the last completed turn number.
func (c *Coordinator) CurrentTurn() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.turn
}

// History returns the completed turn records in order.
func (c *Coordinator) History() []TurnRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]TurnRecord, len(c.history))
	copy(out, c.history)
	return out
}

// NormStatus reports the ledger's current per-norm status.
func (c *Coordinator) NormStatus() map[string]norm.Status {
	return c.deps.Ledger.Status()
}

// #endregion coordinator

// #region run

// Run executes the configured number of turns. Errors from a single actor's
// phase are contained; only context cancellation or a persistence failure
// stops the run early.
func (c *Coordinator) Run(ctx context.Context) ([]TurnRecord, error) {
	for i := 1; i <= c.config.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return c.History(), fmt.Errorf("run cancelled before turn %d: %w", i, err)
		}
		log.Printf("[TURN] ==== turn %d/%d ====", i, c.config.Iterations)
		record, err := c.runTurn(ctx, i)
		if err != nil {
			return c.History(), fmt.Errorf("turn %d: %w", i, err)
		}

		c.mu.Lock()
		c.turn = i
		c.history = append(c.history, record)
		c.mu.Unlock()

		c.publish(ctx, record)
	}
	return c.History(), nil
}

// runTurn drives one full phase cycle and returns its record.
func (c *Coordinator) runTurn(ctx context.Context, turnNumber int) (TurnRecord, error) {
	started := time.Now().UTC()
	actors := c.deps.Registry.All()
	snap := c.deps.World.Snapshot()
	degraded := make(map[string][]Phase)

	perceptions := c.perceiving(ctx, turnNumber, actors, snap, degraded)
	messages := c.negotiating(ctx, turnNumber, actors)
	actions := c.actingSelection(ctx, turnNumber, actors, snap, degraded)
	outcomes := c.resolving(actors, actions)
	statusBefore := c.deps.Ledger.Status()
	relationshipChanges := c.learning(ctx, turnNumber, actors, outcomes)
	statusAfter := c.deps.Ledger.Status()
	c.memoryUpdate(turnNumber, actors, actions, outcomes, perceptions)

	record := TurnRecord{
		TurnNumber:          turnNumber,
		StartedAt:           started,
		Perceptions:         perceptions,
		Messages:            messages,
		Actions:             actions,
		Outcomes:            outcomes,
		RelationshipChanges: relationshipChanges,
		NormStatus:          statusAfter,
		Indicators:          signals.Produce(outcomes, actors, statusBefore, statusAfter),
		CreatedAt:           time.Now().UTC(),
	}
	if len(degraded) > 0 {
		record.Degraded = degraded
	}

	if c.deps.Sessions != nil {
		version, err := c.commit(turnNumber)
		if err != nil {
			return record, err
		}
		record.Version = version
	}

	if c.deps.Analyst != nil && c.deps.AnalystConfig.ShouldRun(turnNumber) {
		c.runAnalyst(ctx, turnNumber, record)
	}

	return record, nil
}

// #endregion run

// #region gather

type phaseResult[T any] struct {
	actorName string
	value     T
	err       error
}

// gather fans call out to every actor concurrently with a per-call timeout,
// then collects until all return or the phase budget elapses. Missing actors
// are reported in the PhaseTimeoutError; completed results are kept either
// way. No call is retried.
func gather[T any](
	ctx context.Context,
	c *Coordinator,
	phase Phase,
	actors []*actor.Actor,
	call func(ctx context.Context, a *actor.Actor) (T, error),
) (map[string]T, map[string]error, *PhaseTimeoutError) {
	budgetCtx, cancel := context.WithTimeout(ctx, c.config.PhaseBudget)
	defer cancel()

	ch := make(chan phaseResult[T], len(actors))
	for _, a := range actors {
		go func(a *actor.Actor) {
			callCtx, callCancel := context.WithTimeout(budgetCtx, c.config.CallTimeout)
			defer callCancel()
			v, err := call(callCtx, a)
			ch <- phaseResult[T]{actorName: a.Name, value: v, err: err}
		}(a)
	}

	values := make(map[string]T, len(actors))
	errs := make(map[string]error)
	done := make(map[string]bool, len(actors))

collect:
	for range actors {
		select {
		case res := <-ch:
			done[res.actorName] = true
			if res.err != nil {
				errs[res.actorName] = res.err
			} else {
				values[res.actorName] = res.value
			}
		case <-budgetCtx.Done():
			break collect
		}
	}

	var missing []string
	for _, a := range actors {
		if !done[a.Name] {
			missing = append(missing, a.Name)
		}
	}
	if len(missing) > 0 {
		timeoutErr := &PhaseTimeoutError{Phase: phase, Missing: missing}
		log.Printf("[TURN] %v", timeoutErr)
		return values, errs, timeoutErr
	}
	return values, errs, nil
}

// #endregion gather

// #region perceiving

// perceiving fans the world snapshot out and collects typed perceptions. A
// malformed or missing result degrades to the null perception and marks the
// actor degraded, which forces its action to the no-op this turn.
func (c *Coordinator) perceiving(
	ctx context.Context, turnNumber int, actors []*actor.Actor, snap world.Snapshot,
	degraded map[string][]Phase,
) map[string]interpret.Perception {
	values, errs, timeoutErr := gather(ctx, c, PhasePerceiving, actors,
		func(ctx context.Context, a *actor.Actor) (interpret.Perception, error) {
			var recent []string
			if c.deps.Interior != nil {
				recent, _ = c.deps.Interior.Recent(a.Name, 3)
			}
			raw, err := c.deps.Responder.Respond(ctx, responder.Request{
				Actor:          a.Name,
				SystemContext:  c.identity[a.Name],
				Prompt:         projection.PerceptionPrompt(a.Name, snap, recent),
				ResponseSchema: interpret.PerceptionSchema,
			})
			if err != nil {
				return interpret.Perception{}, err
			}
			return interpret.ParsePerception(raw)
		})
	if timeoutErr != nil {
		c.logDecision(logging.ProvenanceEntry{
			Turn: turnNumber, Phase: string(PhasePerceiving),
			Decision: logging.DecisionTimeout, Rationale: timeoutErr.Error(),
		})
	}

	perceptions := make(map[string]interpret.Perception, len(actors))
	for _, a := range actors {
		p, ok := values[a.Name]
		if !ok {
			p = interpret.NullPerception()
			reason := "no result before phase budget"
			if err, failed := errs[a.Name]; failed {
				reason = err.Error()
			}
			log.Printf("[TURN] %s perception defaulted: %s", a.Name, reason)
			degraded[a.Name] = append(degraded[a.Name], PhasePerceiving)
			c.logDecision(logging.ProvenanceEntry{
				Turn: turnNumber, Phase: string(PhasePerceiving), Actor: a.Name,
				Decision: logging.DecisionDefaulted, Output: "null_perception", Rationale: reason,
			})
		}
		perceptions[a.Name] = p
	}
	return perceptions
}

// #endregion perceiving

// #region negotiating

// negotiating runs the fixed number of diplomatic sub-rounds and returns the
// delivered messages per sub-round. Messages go only to their declared
// recipients, and each recipient may emit an interpretation. The whole phase
// is advisory: nothing here feeds the deterministic resolution path.
func (c *Coordinator) negotiating(ctx context.Context, turnNumber int, actors []*actor.Actor) []RoundMessages {
	rounds := make([]RoundMessages, 0, c.config.DiplomaticRounds)
	for round := 1; round <= c.config.DiplomaticRounds; round++ {
		values, errs, timeoutErr := gather(ctx, c, PhaseNegotiating, actors,
			func(ctx context.Context, a *actor.Actor) (interpret.Messages, error) {
				recipients := otherNames(c.deps.Registry.Names(), a.Name)
				raw, err := c.deps.Responder.Respond(ctx, responder.Request{
					Actor:          a.Name,
					SystemContext:  c.identity[a.Name],
					Prompt:         projection.MessagesPrompt(recipients),
					ResponseSchema: interpret.MessagesSchema,
				})
				if err != nil {
					return nil, err
				}
				return interpret.ParseMessages(raw, c.deps.Registry.Names())
			})
		if timeoutErr != nil {
			c.logDecision(logging.ProvenanceEntry{
				Turn: turnNumber, Phase: string(PhaseNegotiating),
				Decision: logging.DecisionTimeout, Rationale: timeoutErr.Error(),
			})
		}
		for actorName, err := range errs {
			log.Printf("[TURN] %s messages dropped round %d: %v", actorName, round, err)
		}

		sent := make(RoundMessages)
		for _, a := range actors {
			if msgs := values[a.Name]; len(msgs) > 0 {
				sent[a.Name] = msgs
			}
		}
		rounds = append(rounds, sent)

		// Deliver to declared recipients only.
		inboxes := make(map[string]map[string]string)
		for _, a := range actors {
			msgs := values[a.Name]
			for recipient, text := range msgs {
				if inboxes[recipient] == nil {
					inboxes[recipient] = make(map[string]string)
				}
				inboxes[recipient][a.Name] = text
			}
		}
		if len(inboxes) == 0 {
			continue
		}

		var recipients []*actor.Actor
		for _, a := range actors {
			if len(inboxes[a.Name]) > 0 {
				recipients = append(recipients, a)
			}
		}
		_, _, _ = gather(ctx, c, PhaseNegotiating, recipients,
			func(ctx context.Context, a *actor.Actor) (string, error) {
				raw, err := c.deps.Responder.Respond(ctx, responder.Request{
					Actor:          a.Name,
					SystemContext:  c.identity[a.Name],
					Prompt:         projection.InterpretationPrompt(inboxes[a.Name]),
					ResponseSchema: interpret.InterpretationSchema,
				})
				if err != nil {
					return "", err
				}
				return interpret.ParseInterpretation(raw)
			})
	}
	return rounds
}

// #endregion negotiating

// #region acting

// actingSelection collects one action per actor. Off-menu or malformed
// selections substitute the no-op default, and actors whose perception
// degraded this turn are not asked at all: they abstain.
func (c *Coordinator) actingSelection(
	ctx context.Context, turnNumber int, actors []*actor.Actor, snap world.Snapshot,
	degraded map[string][]Phase,
) map[string]string {
	actions := make(map[string]string, len(actors))
	eligible := make([]*actor.Actor, 0, len(actors))
	for _, a := range actors {
		if phaseFailed(degraded, a.Name, PhasePerceiving) {
			log.Printf("[TURN] %s action defaulted to %s: perception degraded this turn",
				a.Name, interpret.AbstainAction)
			c.logDecision(logging.ProvenanceEntry{
				Turn: turnNumber, Phase: string(PhaseActingSelection), Actor: a.Name,
				Decision: logging.DecisionDefaulted, Output: interpret.AbstainAction,
				Rationale: "perception degraded this turn",
			})
			actions[a.Name] = interpret.AbstainAction
			continue
		}
		eligible = append(eligible, a)
	}

	values, errs, timeoutErr := gather(ctx, c, PhaseActingSelection, eligible,
		func(ctx context.Context, a *actor.Actor) (interpret.ActionChoice, error) {
			raw, err := c.deps.Responder.Respond(ctx, responder.Request{
				Actor:          a.Name,
				SystemContext:  c.identity[a.Name],
				Prompt:         projection.ActionPrompt(a.Name, snap, c.config.ActionMenu),
				ResponseSchema: interpret.ActionSchema,
			})
			if err != nil {
				return interpret.ActionChoice{}, err
			}
			return interpret.ParseAction(raw, c.config.ActionMenu)
		})
	if timeoutErr != nil {
		c.logDecision(logging.ProvenanceEntry{
			Turn: turnNumber, Phase: string(PhaseActingSelection),
			Decision: logging.DecisionTimeout, Rationale: timeoutErr.Error(),
		})
	}

	for _, a := range eligible {
		choice, ok := values[a.Name]
		if !ok || choice.SelectedAction == "" {
			reason := "no result before phase budget"
			if err, failed := errs[a.Name]; failed {
				reason = err.Error()
			}
			log.Printf("[TURN] %s action defaulted to %s: %s", a.Name, interpret.AbstainAction, reason)
			degraded[a.Name] = append(degraded[a.Name], PhaseActingSelection)
			c.logDecision(logging.ProvenanceEntry{
				Turn: turnNumber, Phase: string(PhaseActingSelection), Actor: a.Name,
				Decision: logging.DecisionDefaulted, Output: interpret.AbstainAction, Rationale: reason,
			})
			actions[a.Name] = interpret.AbstainAction
			continue
		}
		actions[a.Name] = choice.SelectedAction
	}
	return actions
}

// #endregion acting

// #region resolving

// resolving applies the deterministic resolution table over the batch in
// registration order.
func (c *Coordinator) resolving(actors []*actor.Actor, actions map[string]string) map[string]world.Outcome {
	batch := make([]world.ActorAction, 0, len(actors))
	for _, a := range actors {
		batch = append(batch, world.ActorAction{Actor: a.Name, Action: actions[a.Name]})
	}
	return c.deps.World.ResolveActions(batch)
}

// #endregion resolving

// #region learning

// learning folds outcomes into the ledger, records turn outcomes, then asks
// each actor for relationship proposals and applies them through the
// registry's validation and smoothing. Proposals for partners the actor does
// not already track are ignored. Returns the applied relationship changes.
func (c *Coordinator) learning(
	ctx context.Context, turnNumber int, actors []*actor.Actor, outcomes map[string]world.Outcome,
) []RelationshipChange {
	for _, a := range actors {
		outcome := outcomes[a.Name]
		if len(outcome.NormBehavior) > 0 {
			c.deps.Ledger.RecordOutcome(a.Name, outcome.NormBehavior)
			c.logDecision(logging.ProvenanceEntry{
				Turn: turnNumber, Phase: string(PhaseLearning), Actor: a.Name,
				Decision: logging.DecisionLedgerNudge,
				Input:    outcome.ActionTaken,
				Output:   behaviorJSON(outcome.NormBehavior),
			})
		}
		if c.deps.Sessions != nil {
			err := c.deps.Sessions.RecordTurnOutcome(
				turnNumber, a.Name, outcome.ActionTaken, behaviorJSON(outcome.NormBehavior))
			if err != nil {
				log.Printf("[TURN] record outcome %s: %v", a.Name, err)
			}
		}
	}

	values, errs, timeoutErr := gather(ctx, c, PhaseLearning, actors,
		func(ctx context.Context, a *actor.Actor) (interpret.RelationshipProposal, error) {
			raw, err := c.deps.Responder.Respond(ctx, responder.Request{
				Actor:          a.Name,
				SystemContext:  c.identity[a.Name],
				Prompt:         projection.RelationshipPrompt(outcomes),
				ResponseSchema: interpret.RelationshipsSchema,
			})
			if err != nil {
				return nil, err
			}
			return interpret.ParseRelationships(raw)
		})
	if timeoutErr != nil {
		c.logDecision(logging.ProvenanceEntry{
			Turn: turnNumber, Phase: string(PhaseLearning),
			Decision: logging.DecisionTimeout, Rationale: timeoutErr.Error(),
		})
	}
	for actorName, err := range errs {
		log.Printf("[TURN] %s relationship proposals dropped: %v", actorName, err)
	}

	var changes []RelationshipChange
	for _, a := range actors {
		proposal := values[a.Name]
		if len(proposal) == 0 {
			continue
		}
		others := make([]string, 0, len(proposal))
		for other := range proposal {
			others = append(others, other)
		}
		sort.Strings(others)
		for _, other := range others {
			before, known := a.Relationships[other]
			if !known {
				continue
			}
			proposed := proposal[other]
			stored, err := c.deps.Registry.UpdateRelationship(a.Name, other, proposed)
			if err != nil {
				c.logDecision(logging.ProvenanceEntry{
					Turn: turnNumber, Phase: string(PhaseLearning), Actor: a.Name,
					Decision:  logging.DecisionRejected,
					Input:     fmt.Sprintf("%s=%.4f", other, proposed),
					Rationale: err.Error(),
				})
				continue
			}
			changes = append(changes, RelationshipChange{
				Actor:    a.Name,
				Other:    other,
				Proposed: proposed,
				Before:   before,
				After:    stored,
			})
			c.logDecision(logging.ProvenanceEntry{
				Turn: turnNumber, Phase: string(PhaseLearning), Actor: a.Name,
				Decision: logging.DecisionSmoothed,
				Input:    fmt.Sprintf("%s=%.4f", other, proposed),
				Output:   fmt.Sprintf("%s=%.4f", other, stored),
			})
		}
	}
	return changes
}

// #endregion learning

// #region memory-update

// memoryUpdate appends each actor's private record of the turn and the
// relationship graph edges.
func (c *Coordinator) memoryUpdate(
	turnNumber int, actors []*actor.Actor,
	actions map[string]string, outcomes map[string]world.Outcome,
	perceptions map[string]interpret.Perception,
) {
	if c.deps.Interior != nil {
		for _, a := range actors {
			record := map[string]any{
				"turn":         turnNumber,
				"own_action":   actions[a.Name],
				"threat_level": perceptions[a.Name].ThreatLevel,
				"outcomes":     outcomes,
			}
			b, err := json.Marshal(record)
			if err != nil {
				continue
			}
			if err := c.deps.Interior.Save(turnNumber, a.Name, string(b)); err != nil {
				log.Printf("[TURN] save memory %s: %v", a.Name, err)
			}
		}
	}

	if c.deps.Graph != nil {
		var edges []graph.Edge
		for _, a := range actors {
			for _, other := range actor.SortedPartners(a) {
				edges = append(edges, graph.Edge{
					Turn:   turnNumber,
					Source: a.Name,
					Target: other,
					Value:  a.Relationships[other],
				})
			}
		}
		if err := c.deps.Graph.RecordTurn(turnNumber, edges); err != nil {
			log.Printf("[TURN] record graph: %v", err)
		}
	}
}

// #endregion memory-update

// #region commit

// commit runs the gate over the new session blob and, when it passes, writes
// one immutable version plus the per-actor norm vectors. A veto keeps the
// previous version live.
func (c *Coordinator) commit(turnNumber int) (int, error) {
	blob := c.deps.Registry.Snapshot()

	if c.deps.Gate != nil {
		decision := c.deps.Gate.Evaluate(c.lastCommitted, blob, c.deps.Registry.Names(), turnNumber-1, turnNumber)
		if decision.Vetoed {
			log.Printf("[TURN] commit vetoed: %s", decision.Reason)
			c.logDecision(logging.ProvenanceEntry{
				Turn: turnNumber, Phase: string(PhaseMemoryUpdate),
				Decision: logging.DecisionVetoed, Rationale: decision.Reason,
			})
			return 0, nil
		}
	}

	catalog := norm.CatalogNames()
	vectors := make(map[string][]float64)
	for _, name := range c.deps.Registry.Names() {
		vectors[name] = c.deps.Registry.NormVector(name, catalog)
	}

	version, err := c.deps.Sessions.CommitVersion(c.deps.SessionKey, turnNumber, blob, vectors)
	if err != nil {
		return 0, fmt.Errorf("commit version: %w", err)
	}
	c.lastCommitted = blob
	c.logDecision(logging.ProvenanceEntry{
		Turn: turnNumber, Phase: string(PhaseMemoryUpdate),
		Decision: logging.DecisionCommit, Output: fmt.Sprintf("version %d", version),
	})
	log.Printf("[TURN] committed version %d for turn %d", version, turnNumber)
	return version, nil
}

// #endregion commit

// #region analyst-pass

// runAnalyst feeds recent history to the analyst and applies vetted proposals
// through registry validation.
func (c *Coordinator) runAnalyst(ctx context.Context, turnNumber int, record TurnRecord) {
	var summaries []string
	for _, r := range c.History() {
		summaries = append(summaries, r.Summary())
	}
	summaries = append(summaries, record.Summary())

	profiles := make(map[string]string)
	if c.deps.Sessions != nil {
		for _, name := range c.deps.Registry.Names() {
			profile, err := c.deps.Sessions.ActionProfile(name)
			if err != nil || len(profile) == 0 {
				continue
			}
			b, err := json.Marshal(profile)
			if err != nil {
				continue
			}
			profiles[name] = string(b)
		}
	}

	var recallHits []string
	if c.deps.Recall != nil {
		hits, err := c.deps.Recall.Similar(ctx, record.Summary(), 3)
		if err != nil {
			log.Printf("[TURN] recall: %v", err)
		}
		for _, h := range hits {
			recallHits = append(recallHits, h.Text)
		}
	}

	proposals, err := c.deps.Analyst.Propose(ctx, summaries, profiles, recallHits)
	if err != nil {
		log.Printf("[TURN] analyst pass skipped: %v", err)
		return
	}
	for _, p := range proposals {
		a, ok := c.deps.Registry.Get(p.Actor)
		if !ok {
			continue
		}
		next := a.NormWeights[p.Norm] + p.Delta
		if err := c.deps.Registry.UpdateNorm(p.Actor, p.Norm, next); err != nil {
			c.logDecision(logging.ProvenanceEntry{
				Turn: turnNumber, Phase: string(PhaseMemoryUpdate), Actor: p.Actor,
				Decision:  logging.DecisionRejected,
				Input:     fmt.Sprintf("%s delta %.4f", p.Norm, p.Delta),
				Rationale: err.Error(),
			})
			continue
		}
		c.logDecision(logging.ProvenanceEntry{
			Turn: turnNumber, Phase: string(PhaseMemoryUpdate), Actor: p.Actor,
			Decision:  logging.DecisionNormSet,
			Input:     fmt.Sprintf("%s delta %.4f", p.Norm, p.Delta),
			Output:    fmt.Sprintf("%s=%.4f", p.Norm, next),
			Rationale: p.Rationale,
		})
	}
}

// #endregion analyst-pass

// #region publish

// publish pushes a completed record to the transcript archive, the recall
// index, and the observer feed. All best-effort.
func (c *Coordinator) publish(ctx context.Context, record TurnRecord) {
	if c.deps.Transcript != nil {
		if err := c.deps.Transcript.Append(record); err != nil {
			log.Printf("[TURN] transcript append: %v", err)
		}
	}
	if c.deps.Recall != nil {
		if err := c.deps.Recall.IndexTurn(ctx, record.TurnNumber, record.Summary()); err != nil {
			log.Printf("[TURN] recall index: %v", err)
		}
	}
	if c.deps.Observer != nil {
		c.deps.Observer.Broadcast(record)
	}
}

// #endregion publish

// #region helpers

func (c *Coordinator) logDecision(entry logging.ProvenanceEntry) {
	if c.deps.Sessions == nil {
		return
	}
	if err := logging.LogDecision(c.deps.Sessions.DB(), entry); err != nil {
		log.Printf("[TURN] provenance: %v", err)
	}
}

func behaviorJSON(behavior map[string]norm.Behavior) string {
	if len(behavior) == 0 {
		return ""
	}
	b, err := json.Marshal(behavior)
	if err != nil {
		return ""
	}
	return string(b)
}

func phaseFailed(degraded map[string][]Phase, actorName string, phase Phase) bool {
	for _, p := range degraded[actorName] {
		if p == phase {
			return true
		}
	}
	return false
}

func otherNames(names []string, self string) []string {
	out := make([]string, 0, len(names)-1)
	for _, n := range names {
		if n != self {
			out = append(out, n)
		}
	}
	return out
}

// #endregion helpers
