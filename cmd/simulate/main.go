package main

// #region imports
import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/actor"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/analyst"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/eval"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/gate"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/graph"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/interior"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/memory"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/norm"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/observe"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/responder"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/scenario"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/session"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/transcript"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/turn"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/world"
)

// #endregion

// #region main
func main() {
	_ = godotenv.Load()

	scenarioPath := flag.String("scenario", envOr("SIM_SCENARIO", ""), "scenario YAML path (empty = built-in four-power scenario)")
	dbPath := flag.String("db", envOr("SIM_DB", "session.db"), "path to session.db")
	responderAddr := flag.String("responder", envOr("SIM_RESPONDER_ADDR", "localhost:50051"), "responder gRPC address")
	sessionID := flag.String("session", envOr("SIM_SESSION_ID", ""), "session id (empty = new uuid)")
	iterations := flag.Int("iterations", 0, "override scenario iteration count")
	transcriptDir := flag.String("transcripts", envOr("SIM_TRANSCRIPT_DIR", ""), "transcript archive dir (empty disables)")
	observeAddr := flag.String("observe", envOr("SIM_OBSERVE_ADDR", ""), "observer feed address (empty disables)")
	recallDir := flag.String("recall", envOr("SIM_RECALL_DIR", ""), "recall index dir (empty = keyword fallback)")
	flag.Parse()

	scn, err := loadScenario(*scenarioPath)
	if err != nil {
		log.Fatalf("scenario: %v", err)
	}
	if *iterations > 0 {
		scn.Iterations = *iterations
	}
	if err := scn.Validate(); err != nil {
		log.Fatalf("invalid scenario: %v", err)
	}

	registry, err := actor.NewRegistry(scn.BuildActors())
	if err != nil {
		log.Fatalf("registry: %v", err)
	}
	ledger := norm.NewLedger(norm.DefaultSeeds())
	state := world.New(scn.SeedEvents...)

	store, err := session.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	key := session.Key{
		AppName:   scn.AppName,
		UserID:    "user1",
		SessionID: *sessionID,
	}
	if key.SessionID == "" {
		key.SessionID = uuid.New().String()
		log.Printf("[SESSION] new session %s", key.SessionID)
	}
	if err := store.Ensure(key, registry.Snapshot()); err != nil {
		log.Fatalf("ensure session: %v", err)
	}
	blob, err := store.Load(key)
	if err != nil {
		log.Fatalf("load session: %v", err)
	}
	registry.RestoreFrom(blob)

	interiorStore, err := interior.NewStore(store.DB())
	if err != nil {
		log.Fatalf("interior store: %v", err)
	}
	graphStore, err := graph.NewStore(store.DB())
	if err != nil {
		log.Fatalf("graph store: %v", err)
	}

	client, err := responder.New(*responderAddr)
	if err != nil {
		log.Fatalf("responder: %v", err)
	}
	defer client.Close()

	deps := turn.Deps{
		Registry:   registry,
		Ledger:     ledger,
		World:      state,
		Responder:  client,
		Sessions:   store,
		SessionKey: key,
		Interior:   interiorStore,
		Graph:      graphStore,
		Gate:       gate.NewGate(gate.DefaultGateConfig()),
	}

	if scn.Analyst.Enabled {
		vetter := eval.NewVetter(eval.Config{MaxDelta: scn.Analyst.MaxDelta}, registry)
		deps.Analyst = analyst.New(analyst.Config{
			Enabled: true,
			Cadence: scn.Analyst.Cadence,
		}, client, vetter)
		deps.AnalystConfig = analyst.Config{Enabled: true, Cadence: scn.Analyst.Cadence}
	}

	// Recall is useful on its own: turns are indexed even when no analyst
	// consumes them this run.
	if scn.Analyst.Enabled || *recallDir != "" {
		recall, err := memory.NewRecall(*recallDir, client)
		if err != nil {
			log.Fatalf("recall index: %v", err)
		}
		deps.Recall = recall
	}

	if *transcriptDir != "" {
		w := transcript.NewWriter(*transcriptDir)
		defer w.Close()
		deps.Transcript = w
	}

	config := turn.DefaultConfig()
	config.Iterations = scn.Iterations
	config.DiplomaticRounds = scn.DiplomaticRounds
	config.ActionMenu = scn.ActionMenu

	var coordinator *turn.Coordinator
	if *observeAddr != "" {
		server := observe.NewServer(*observeAddr, func() any {
			payload := map[string]any{
				"app_name":    scn.AppName,
				"actors":      registry.Names(),
				"norm_status": ledger.Status(),
			}
			if coordinator != nil {
				payload["turn"] = coordinator.CurrentTurn()
			}
			return payload
		})
		if err := server.Start(); err != nil {
			log.Fatalf("observer: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = server.Close(ctx)
		}()
		deps.Observer = server
	}

	coordinator, err = turn.NewCoordinator(config, deps)
	if err != nil {
		log.Fatalf("coordinator: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	history, err := coordinator.Run(ctx)
	if err != nil {
		log.Printf("run ended early: %v", err)
	}

	printSummary(registry, ledger, history)
}

// #endregion main

// #region report

func printSummary(registry *actor.Registry, ledger *norm.Ledger, history []turn.TurnRecord) {
	fmt.Printf("\nCompleted %d turn(s).\n\n", len(history))

	fmt.Println("NORM STATUS:")
	status := ledger.Status()
	for _, name := range ledger.Names() {
		s := status[name]
		fmt.Printf("  %-18s strength=%.4f adoption=%.2f adopters=%v contesters=%v\n",
			name, s.Strength, s.AdoptionRate, ledger.Adopters(name), ledger.Contesters(name))
	}

	fmt.Println("\nRELATIONSHIPS:")
	for _, a := range registry.All() {
		fmt.Printf("  %s:\n", a.Name)
		for _, other := range actor.SortedPartners(a) {
			fmt.Printf("    %-14s %+.4f\n", other, a.Relationships[other])
		}
	}
}

// #endregion report

// #region helpers

func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Default(), nil
	}
	return scenario.Load(path)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
