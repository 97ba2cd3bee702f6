package main

// #region imports
import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/graph"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/norm"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/session"
)

// #endregion

// #region main

func main() {
	dbPath := flag.String("db", "", "path to session.db")
	showBlob := flag.Bool("blob", false, "show latest session blob grouped per actor")
	showNorms := flag.Bool("norms", false, "show norm status replayed from turn outcomes")
	showGraph := flag.Bool("graph", false, "show relationship graph and blocs")
	profileActor := flag.String("profile", "", "show recency-weighted action profile for one actor")
	history := flag.Int("history", 0, "show N most recent committed versions")
	blocMin := flag.Float64("bloc-min", 0.3, "minimum edge value for bloc membership")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/session.db [--blob] [--norms] [--graph] [--profile actor] [--history N]")
		os.Exit(2)
	}

	store, err := session.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *showBlob:
		err = runBlobMode(store)
	case *showNorms:
		err = runNormsMode(store)
	case *showGraph:
		err = runGraphMode(store, *blocMin)
	case *profileActor != "":
		err = runProfileMode(store, *profileActor)
	case *history > 0:
		err = runHistoryMode(store, *history)
	default:
		err = runSessionsMode(store)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region sessions-mode

func runSessionsMode(store *session.Store) error {
	rows, err := store.Sessions()
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "no sessions found")
		return nil
	}

	fmt.Printf("%-20s  %-8s  %-36s  %6s  %s\n", "App", "User", "Session", "Keys", "Updated")
	for _, r := range rows {
		fmt.Printf("%-20s  %-8s  %-36s  %6d  %s\n",
			r.AppName, r.UserID, r.SessionID, len(r.State),
			r.UpdatedAt.Format("2006-01-02T15:04:05Z"))
	}
	return nil
}

// #endregion sessions-mode

// #region blob-mode

func runBlobMode(store *session.Store) error {
	rows, err := store.Sessions()
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no sessions found")
	}
	blob := rows[len(rows)-1].State

	// Group keys as {actor}_norm_{name} / {actor}_rel_{other}.
	perActor := make(map[string]map[string]float64)
	for key, v := range blob {
		actorName, rest, kind := splitBlobKey(key)
		if kind == "" {
			continue
		}
		if perActor[actorName] == nil {
			perActor[actorName] = make(map[string]float64)
		}
		perActor[actorName][kind+":"+rest] = v
	}

	actors := make([]string, 0, len(perActor))
	for name := range perActor {
		actors = append(actors, name)
	}
	sort.Strings(actors)

	for _, name := range actors {
		fmt.Printf("%s:\n", name)
		keys := make([]string, 0, len(perActor[name]))
		for k := range perActor[name] {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %-45s %+.4f\n", k, perActor[name][k])
		}
	}
	return nil
}

func splitBlobKey(key string) (actorName, rest, kind string) {
	if i := strings.Index(key, "_norm_"); i > 0 {
		return key[:i], key[i+len("_norm_"):], "norm"
	}
	if i := strings.Index(key, "_rel_"); i > 0 {
		return key[:i], key[i+len("_rel_"):], "rel"
	}
	return "", "", ""
}

// #endregion blob-mode

// #region norms-mode

func runNormsMode(store *session.Store) error {
	outcomes, err := store.TurnOutcomes()
	if err != nil {
		return err
	}

	ledger := norm.NewLedger(norm.DefaultSeeds())
	for _, row := range outcomes {
		if row.NormBehavior == "" {
			continue
		}
		behavior := make(map[string]norm.Behavior)
		if err := json.Unmarshal([]byte(row.NormBehavior), &behavior); err != nil {
			continue
		}
		ledger.RecordOutcome(row.Actor, behavior)
	}

	status := ledger.Status()
	fmt.Printf("%-18s  %9s  %9s  %s\n", "Norm", "Strength", "Adoption", "Adopters / Contesters")
	for _, name := range ledger.Names() {
		s := status[name]
		fmt.Printf("%-18s  %9.4f  %9.2f  %v / %v\n",
			name, s.Strength, s.AdoptionRate, ledger.Adopters(name), ledger.Contesters(name))
	}
	fmt.Printf("\n(%d outcome rows replayed)\n", len(outcomes))
	return nil
}

// #endregion norms-mode

// #region graph-mode

func runGraphMode(store *session.Store, blocMin float64) error {
	graphStore, err := graph.NewStore(store.DB())
	if err != nil {
		return err
	}

	edges, err := graphStore.LatestEdges()
	if err != nil {
		return err
	}
	if len(edges) == 0 {
		fmt.Fprintln(os.Stderr, "no relationship edges recorded")
		return nil
	}

	fmt.Println("LATEST EDGES:")
	for _, e := range edges {
		fmt.Printf("  %-10s -> %-14s %+.4f (turn %d)\n", e.Source, e.Target, e.Value, e.Turn)
	}

	blocs, err := graphStore.Blocs(blocMin)
	if err != nil {
		return err
	}
	fmt.Printf("\nBLOCS (min edge %.2f):\n", blocMin)
	for i, bloc := range blocs {
		fmt.Printf("  %d: %s\n", i+1, strings.Join(bloc, ", "))
	}
	return nil
}

// #endregion graph-mode

// #region profile-mode

func runProfileMode(store *session.Store, actorName string) error {
	profile, err := store.ActionProfile(actorName)
	if err != nil {
		return err
	}
	if len(profile) == 0 {
		fmt.Fprintf(os.Stderr, "no outcomes recorded for %s\n", actorName)
		return nil
	}

	actions := make([]string, 0, len(profile))
	for a := range profile {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return profile[actions[i]] > profile[actions[j]] })

	fmt.Printf("Action profile for %s (recency-weighted):\n", actorName)
	for _, a := range actions {
		fmt.Printf("  %-16s %.4f\n", a, profile[a])
	}
	return nil
}

// #endregion profile-mode

// #region history-mode

func runHistoryMode(store *session.Store, n int) error {
	versions, err := store.History(n)
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		fmt.Fprintln(os.Stderr, "no versions found")
		return nil
	}

	fmt.Printf("%-8s  %-8s  %-6s  %6s  %s\n", "Version", "Parent", "Turn", "Keys", "Created")
	for _, v := range versions {
		fmt.Printf("%-8d  %-8d  %-6d  %6d  %s\n",
			v.Version, v.Parent, v.Turn, len(v.Blob),
			v.CreatedAt.Format("2006-01-02T15:04:05Z"))
	}
	return nil
}

// #endregion history-mode
