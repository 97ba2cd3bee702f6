package turn

import (
	"context"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/actor"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/gate"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/graph"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/interior"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/interpret"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/memory"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/norm"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/responder"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/session"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/world"
)

const (
	calmPerception = `{"interpretation": "calm waters", "threat_level": "low"}`
	noMessages     = `{}`
	emptyProposal  = `{}`
	// steadyReply satisfies perception and action shapes in one object, for
	// tests that script the same reply for every phase.
	steadyReply = `{"interpretation": "steady", "threat_level": "moderate", "selected_action": "cooperate"}`
)

func actionReply(action string) string {
	return `{"selected_action": "` + action + `", "justification": "test"}`
}

func testRegistry(t *testing.T, names ...string) *actor.Registry {
	t.Helper()
	actors := make([]*actor.Actor, 0, len(names))
	for _, name := range names {
		a := &actor.Actor{
			Name:          name,
			Relationships: make(map[string]float64),
			NormWeights:   map[string]float64{"multilateral_cooperation": 0.2},
		}
		for _, other := range names {
			if other != name {
				a.Relationships[other] = 0.5
			}
		}
		actors = append(actors, a)
	}
	registry, err := actor.NewRegistry(actors)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return registry
}

func testConfig(iterations int) Config {
	config := DefaultConfig()
	config.Iterations = iterations
	config.DiplomaticRounds = 1
	return config
}

func baseDeps(registry *actor.Registry, scripted *responder.Scripted) Deps {
	return Deps{
		Registry:  registry,
		Ledger:    norm.NewLedger(norm.DefaultSeeds()),
		World:     world.New(),
		Responder: scripted,
	}
}

func TestNewCoordinatorValidation(t *testing.T) {
	registry := testRegistry(t, "Alpha", "Beta")
	scripted := responder.NewScripted()

	if _, err := NewCoordinator(testConfig(1), Deps{Registry: registry}); err == nil {
		t.Error("expected error for missing required deps")
	}
	if _, err := NewCoordinator(testConfig(0), baseDeps(registry, scripted)); err == nil {
		t.Error("expected error for zero iterations")
	}
	bad := testConfig(1)
	bad.ActionMenu = nil
	if _, err := NewCoordinator(bad, baseDeps(registry, scripted)); err == nil {
		t.Error("expected error for empty menu")
	}
}

func TestCooperationNudgesLedgerAndLeavesRelationships(t *testing.T) {
	registry := testRegistry(t, "Alpha", "Beta")
	scripted := responder.NewScripted()
	for _, name := range []string{"Alpha", "Beta"} {
		scripted.Queue(name, calmPerception, noMessages, actionReply("cooperate"), emptyProposal)
	}
	deps := baseDeps(registry, scripted)

	c, err := NewCoordinator(testConfig(1), deps)
	if err != nil {
		t.Fatalf("NewCoordinator: %v", err)
	}
	history, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}

	record := history[0]
	if record.Actions["Alpha"] != "cooperate" || record.Actions["Beta"] != "cooperate" {
		t.Errorf("actions = %v", record.Actions)
	}

	// Two compliances each on free_trade and multilateralism.
	status := deps.Ledger.Status()
	if math.Abs(status["free_trade"].Strength-0.72) > 1e-9 {
		t.Errorf("free_trade strength = %v, want 0.72", status["free_trade"].Strength)
	}
	if math.Abs(status["multilateralism"].Strength-0.62) > 1e-9 {
		t.Errorf("multilateralism strength = %v, want 0.62", status["multilateralism"].Strength)
	}
	if status["free_trade"].AdoptionRate != 1.0 {
		t.Errorf("free_trade adoption = %v, want 1.0", status["free_trade"].AdoptionRate)
	}
	// Sovereignty untouched by cooperation.
	if status["sovereignty"].Strength != 0.9 {
		t.Errorf("sovereignty strength = %v, want 0.9", status["sovereignty"].Strength)
	}

	// Empty proposals leave relationships at their seeds.
	a, _ := registry.Get("Alpha")
	if a.Relationships["Beta"] != 0.5 {
		t.Errorf("Alpha-Beta = %v, want unchanged 0.5", a.Relationships["Beta"])
	}

	if record.Indicators.CooperationRate != 1.0 || record.Indicators.CoercionRate != 0 {
		t.Errorf("indicators = %+v", record.Indicators)
	}
}

func TestRelationshipProposalsSmoothedAndScoped(t *testing.T) {
	registry := testRegistry(t, "Alpha", "Beta")
	scripted := responder.NewScripted()
	// Alpha proposes a jump to 1.0 for Beta and a value for an untracked state.
	scripted.Queue("Alpha", calmPerception, noMessages, actionReply("signal"),
		`{"Beta": 1.0, "Gamma": 0.8}`)
	scripted.Queue("Beta", calmPerception, noMessages, actionReply("signal"), emptyProposal)
	deps := baseDeps(registry, scripted)

	c, err := NewCoordinator(testConfig(1), deps)
	if err != nil {
		t.Fatalf("NewCoordinator: %v", err)
	}
	if _, err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	a, _ := registry.Get("Alpha")
	// 0.7*0.5 + 0.3*1.0
	if math.Abs(a.Relationships["Beta"]-0.65) > 1e-12 {
		t.Errorf("Alpha-Beta = %v, want smoothed 0.65", a.Relationships["Beta"])
	}
	if _, ok := a.Relationships["Gamma"]; ok {
		t.Error("proposal created a relationship with an untracked state")
	}
}

func TestMalformedRepliesDegradeToDefaults(t *testing.T) {
	registry := testRegistry(t, "Alpha", "Beta", "Gamma")
	scripted := responder.NewScripted()
	scripted.Queue("Alpha", calmPerception, noMessages, actionReply("cooperate"), emptyProposal)
	// Beta picks an off-menu action.
	scripted.Queue("Beta", calmPerception, noMessages, actionReply("annex"), emptyProposal)
	// Gamma's perception is garbage. A valid on-menu pick is queued behind
	// it, but a perception-degraded actor must not be asked for one.
	scripted.Queue("Gamma", "no structure here", noMessages, actionReply("defect"), emptyProposal)
	deps := baseDeps(registry, scripted)

	c, err := NewCoordinator(testConfig(1), deps)
	if err != nil {
		t.Fatalf("NewCoordinator: %v", err)
	}
	history, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	record := history[0]
	if record.Actions["Alpha"] != "cooperate" {
		t.Errorf("Alpha action = %s", record.Actions["Alpha"])
	}
	if record.Actions["Beta"] != interpret.AbstainAction {
		t.Errorf("Beta action = %s, want abstain for off-menu pick", record.Actions["Beta"])
	}
	if record.Actions["Gamma"] != interpret.AbstainAction {
		t.Errorf("Gamma action = %s, want abstain after malformed perception", record.Actions["Gamma"])
	}
	for _, name := range []string{"Beta", "Gamma"} {
		if !record.Outcomes[name].Success || record.Outcomes[name].ActionTaken != interpret.AbstainAction {
			t.Errorf("%s outcome = %+v", name, record.Outcomes[name])
		}
	}

	if !phaseFailed(record.Degraded, "Gamma", PhasePerceiving) {
		t.Errorf("Degraded[Gamma] = %v, want perceiving", record.Degraded["Gamma"])
	}
	if !phaseFailed(record.Degraded, "Beta", PhaseActingSelection) {
		t.Errorf("Degraded[Beta] = %v, want acting_selection", record.Degraded["Beta"])
	}
	if len(record.Degraded["Alpha"]) != 0 {
		t.Errorf("Degraded[Alpha] = %v, want none", record.Degraded["Alpha"])
	}

	// Gamma was called for perception, messages, and learning only.
	gammaCalls := 0
	for _, call := range scripted.Calls() {
		if call.Actor == "Gamma" {
			gammaCalls++
		}
	}
	if gammaCalls != 3 {
		t.Errorf("Gamma responder calls = %d, want 3 (no action call)", gammaCalls)
	}
}

func TestTurnRecordCarriesPhaseDetail(t *testing.T) {
	registry := testRegistry(t, "Alpha", "Beta")
	scripted := responder.NewScripted()
	scripted.Queue("Alpha", calmPerception,
		`{"Beta": "open a corridor"}`,
		actionReply("negotiate"), `{"Beta": 1.0}`)
	scripted.Queue("Beta", calmPerception, noMessages,
		`{"reading": "an overture"}`,
		actionReply("signal"), emptyProposal)
	deps := baseDeps(registry, scripted)

	c, err := NewCoordinator(testConfig(1), deps)
	if err != nil {
		t.Fatalf("NewCoordinator: %v", err)
	}
	history, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	record := history[0]
	if record.StartedAt.IsZero() || record.CreatedAt.Before(record.StartedAt) {
		t.Errorf("timestamps: started %v, created %v", record.StartedAt, record.CreatedAt)
	}
	if record.Perceptions["Alpha"].ThreatLevel != "low" {
		t.Errorf("Alpha perception = %+v", record.Perceptions["Alpha"])
	}
	if len(record.Messages) != 1 {
		t.Fatalf("message rounds = %d, want 1", len(record.Messages))
	}
	if record.Messages[0]["Alpha"]["Beta"] != "open a corridor" {
		t.Errorf("round 1 messages = %v", record.Messages[0])
	}

	if len(record.RelationshipChanges) != 1 {
		t.Fatalf("relationship changes = %v, want 1", record.RelationshipChanges)
	}
	ch := record.RelationshipChanges[0]
	if ch.Actor != "Alpha" || ch.Other != "Beta" || ch.Proposed != 1.0 || ch.Before != 0.5 {
		t.Errorf("change = %+v", ch)
	}
	if math.Abs(ch.After-0.65) > 1e-12 {
		t.Errorf("change.After = %v, want smoothed 0.65", ch.After)
	}

	if len(record.Degraded) != 0 {
		t.Errorf("Degraded = %v, want empty on a clean turn", record.Degraded)
	}
}

func TestRecallIndexesTurnsWithoutAnalyst(t *testing.T) {
	registry := testRegistry(t, "Alpha", "Beta")
	scripted := responder.NewScripted()
	scripted.Always("Alpha", steadyReply)
	scripted.Always("Beta", steadyReply)
	deps := baseDeps(registry, scripted)
	recall, err := memory.NewRecall("", nil)
	if err != nil {
		t.Fatalf("NewRecall: %v", err)
	}
	deps.Recall = recall

	c, err := NewCoordinator(testConfig(2), deps)
	if err != nil {
		t.Fatalf("NewCoordinator: %v", err)
	}
	if _, err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	hits, err := recall.Similar(context.Background(), "cooperate actions", 5)
	if err != nil {
		t.Fatalf("Similar: %v", err)
	}
	if len(hits) != 2 {
		t.Errorf("recall hits = %d, want both turns indexed", len(hits))
	}
}

func TestMessagesDeliveredToDeclaredRecipientsOnly(t *testing.T) {
	registry := testRegistry(t, "Alpha", "Beta", "Gamma")
	scripted := responder.NewScripted()
	scripted.Queue("Alpha", calmPerception,
		`{"Beta": "let us coordinate"}`,
		actionReply("signal"), emptyProposal)
	// Beta gets an extra call for the interpretation sub-step.
	scripted.Queue("Beta", calmPerception, noMessages,
		`{"reading": "Alpha seeks alignment"}`,
		actionReply("signal"), emptyProposal)
	scripted.Queue("Gamma", calmPerception, noMessages, actionReply("signal"), emptyProposal)
	deps := baseDeps(registry, scripted)

	c, err := NewCoordinator(testConfig(1), deps)
	if err != nil {
		t.Fatalf("NewCoordinator: %v", err)
	}
	if _, err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var betaSawMessage, gammaSawMessage bool
	for _, call := range scripted.Calls() {
		if strings.Contains(call.Prompt, "let us coordinate") {
			switch call.Actor {
			case "Beta":
				betaSawMessage = true
			case "Gamma":
				gammaSawMessage = true
			}
		}
	}
	if !betaSawMessage {
		t.Error("declared recipient never saw the message")
	}
	if gammaSawMessage {
		t.Error("message leaked to an undeclared recipient")
	}
}

func TestRunNumbersTurnsSequentially(t *testing.T) {
	registry := testRegistry(t, "Alpha", "Beta")
	scripted := responder.NewScripted()
	scripted.Always("Alpha", steadyReply)
	scripted.Always("Beta", steadyReply)
	deps := baseDeps(registry, scripted)

	c, err := NewCoordinator(testConfig(3), deps)
	if err != nil {
		t.Fatalf("NewCoordinator: %v", err)
	}
	history, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}
	for i, record := range history {
		if record.TurnNumber != i+1 {
			t.Errorf("history[%d].TurnNumber = %d, want %d", i, record.TurnNumber, i+1)
		}
	}
	if c.CurrentTurn() != 3 {
		t.Errorf("CurrentTurn = %d, want 3", c.CurrentTurn())
	}
}

func TestRunCancelledContext(t *testing.T) {
	registry := testRegistry(t, "Alpha", "Beta")
	scripted := responder.NewScripted()
	scripted.Always("Alpha", steadyReply)
	scripted.Always("Beta", steadyReply)
	deps := baseDeps(registry, scripted)

	c, err := NewCoordinator(testConfig(3), deps)
	if err != nil {
		t.Fatalf("NewCoordinator: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	history, err := c.Run(ctx)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if len(history) != 0 {
		t.Errorf("history = %d records, want none", len(history))
	}
}

func TestPhaseTimeoutDegradesToDefaults(t *testing.T) {
	registry := testRegistry(t, "Alpha", "Beta")
	scripted := responder.NewScripted()
	scripted.Always("Alpha", steadyReply)
	scripted.Always("Beta", steadyReply)
	scripted.Delay(200 * time.Millisecond)
	deps := baseDeps(registry, scripted)

	config := testConfig(1)
	config.CallTimeout = 10 * time.Millisecond
	config.PhaseBudget = 30 * time.Millisecond

	c, err := NewCoordinator(config, deps)
	if err != nil {
		t.Fatalf("NewCoordinator: %v", err)
	}
	history, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1 (timeouts degrade, never abort)", len(history))
	}
	record := history[0]
	for _, name := range []string{"Alpha", "Beta"} {
		if record.Actions[name] != interpret.AbstainAction {
			t.Errorf("%s action = %s, want abstain after timeout", name, record.Actions[name])
		}
	}
}

func TestCommitVersionsWithFullPersistence(t *testing.T) {
	registry := testRegistry(t, "Alpha", "Beta")
	scripted := responder.NewScripted()
	scripted.Always("Alpha", steadyReply)
	scripted.Always("Beta", steadyReply)

	store, err := session.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer store.Close()
	key := session.Key{AppName: "test", UserID: "user1", SessionID: "s1"}
	if err := store.Ensure(key, registry.Snapshot()); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	interiorStore, err := interior.NewStore(store.DB())
	if err != nil {
		t.Fatalf("interior: %v", err)
	}
	graphStore, err := graph.NewStore(store.DB())
	if err != nil {
		t.Fatalf("graph: %v", err)
	}

	deps := baseDeps(registry, scripted)
	deps.Sessions = store
	deps.SessionKey = key
	deps.Interior = interiorStore
	deps.Graph = graphStore
	deps.Gate = gate.NewGate(gate.DefaultGateConfig())

	c, err := NewCoordinator(testConfig(2), deps)
	if err != nil {
		t.Fatalf("NewCoordinator: %v", err)
	}
	history, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if history[0].Version == 0 || history[1].Version <= history[0].Version {
		t.Errorf("versions = %d, %d, want increasing and non-zero",
			history[0].Version, history[1].Version)
	}

	versions, err := store.History(10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(versions) != 2 {
		t.Fatalf("stored versions = %d, want 2", len(versions))
	}

	vec, err := store.ActorVector(history[0].Version, "Alpha")
	if err != nil {
		t.Fatalf("ActorVector: %v", err)
	}
	if len(vec) != len(norm.Catalog) {
		t.Errorf("vector length = %d, want %d", len(vec), len(norm.Catalog))
	}

	outcomes, err := store.TurnOutcomes()
	if err != nil {
		t.Fatalf("TurnOutcomes: %v", err)
	}
	if len(outcomes) != 4 {
		t.Errorf("outcome rows = %d, want 4 (2 actors x 2 turns)", len(outcomes))
	}

	memories, err := interiorStore.Recent("Alpha", 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(memories) != 2 {
		t.Errorf("memory rows = %d, want 2", len(memories))
	}

	edges, err := graphStore.LatestEdges()
	if err != nil {
		t.Fatalf("LatestEdges: %v", err)
	}
	if len(edges) != 2 {
		t.Errorf("latest edges = %d, want 2 directed pairs", len(edges))
	}

	// Live session blob matches the registry after the run.
	blob, err := store.Load(key)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for k, v := range registry.Snapshot() {
		if blob[k] != v {
			t.Errorf("blob[%s] = %v, want %v", k, blob[k], v)
		}
	}
}

func TestTurnRecordSummary(t *testing.T) {
	record := TurnRecord{
		TurnNumber: 4,
		Actions:    map[string]string{"Beta": "sanction", "Alpha": "cooperate"},
	}
	got := record.Summary()
	if !strings.Contains(got, "turn 4 actions Alpha:cooperate Beta:sanction") {
		t.Errorf("summary = %q, want sorted actor order", got)
	}
}
