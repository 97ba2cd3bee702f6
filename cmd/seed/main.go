package main

// #region imports
import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/actor"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/scenario"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/session"
)

// #endregion

// #region main
func main() {
	_ = godotenv.Load()

	scenarioPath := flag.String("scenario", envOr("SIM_SCENARIO", ""), "scenario YAML path (empty = built-in four-power scenario)")
	dbPath := flag.String("db", envOr("SIM_DB", "session.db"), "path to session.db")
	sessionID := flag.String("session", envOr("SIM_SESSION_ID", ""), "session id (empty = new uuid)")
	flag.Parse()

	scn := scenario.Default()
	if *scenarioPath != "" {
		loaded, err := scenario.Load(*scenarioPath)
		if err != nil {
			log.Fatalf("scenario: %v", err)
		}
		scn = loaded
	}
	if err := scn.Validate(); err != nil {
		log.Fatalf("invalid scenario: %v", err)
	}

	registry, err := actor.NewRegistry(scn.BuildActors())
	if err != nil {
		log.Fatalf("registry: %v", err)
	}
	blob := registry.Snapshot()

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
	}

	// Create-if-absent and backfill-empty: existing non-empty state is kept.
	if err := store.Ensure(key, blob); err != nil {
		log.Fatalf("seed session: %v", err)
	}

	fmt.Println("Session database initialized with initial state!")
	fmt.Printf("  db=%s app=%s session=%s\n", *dbPath, key.AppName, key.SessionID)
	fmt.Printf("  state keys: %d\n", len(blob))
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
