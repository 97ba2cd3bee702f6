package graph

import (
	"database/sql"
	"fmt"
	"sort"
	"time"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS relationship_edges (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    turn        INTEGER NOT NULL,
    source      TEXT NOT NULL,
    target      TEXT NOT NULL,
    value       REAL NOT NULL,
    created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_edges_turn ON relationship_edges(turn);
CREATE INDEX IF NOT EXISTS idx_edges_pair ON relationship_edges(source, target);
`

// #endregion schema

// #region types
// Edge is one directed relationship reading at one turn.
type Edge struct {
	Turn      int
	Source    string
	Target    string
	Value     float64
	CreatedAt time.Time
}

// Store appends relationship edges every Learning phase and answers alliance
// queries over the latest readings.
type Store struct {
	db *sql.DB
}

// #endregion types

// #region constructor
// NewStore creates tables and returns a Store.
func NewStore(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("graph schema: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region record
// RecordTurn appends one edge row per (source, target) relationship value.
func (g *Store) RecordTurn(turn int, edges []Edge) error {
	now := time.Now().UTC().Format(time.RFC3339)
	tx, err := g.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, e := range edges {
		_, err := tx.Exec(
			`INSERT INTO relationship_edges (turn, source, target, value, created_at) VALUES (?, ?, ?, ?, ?)`,
			turn, e.Source, e.Target, e.Value, now,
		)
		if err != nil {
			return fmt.Errorf("insert edge %s→%s: %w", e.Source, e.Target, err)
		}
	}
	return tx.Commit()
}

// #endregion record

// #region latest
// LatestEdges returns each (source, target) pair's most recent reading.
func (g *Store) LatestEdges() ([]Edge, error) {
	rows, err := g.db.Query(
		`SELECT e.turn, e.source, e.target, e.value, e.created_at
		 FROM relationship_edges e
		 JOIN (SELECT source, target, MAX(turn) AS max_turn
		       FROM relationship_edges GROUP BY source, target) latest
		 ON e.source = latest.source AND e.target = latest.target AND e.turn = latest.max_turn
		 ORDER BY e.source, e.target`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEdges(rows)
}

// PairHistory returns every reading for one directed pair, oldest first.
func (g *Store) PairHistory(source, target string) ([]Edge, error) {
	rows, err := g.db.Query(
		`SELECT turn, source, target, value, created_at
		 FROM relationship_edges WHERE source = ? AND target = ? ORDER BY turn`,
		source, target,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEdges(rows)
}

// #endregion latest

// #region allies
// Allies returns the actors an actor currently rates at or above minValue,
// best first.
func (g *Store) Allies(actorName string, minValue float64) ([]Edge, error) {
	edges, err := g.LatestEdges()
	if err != nil {
		return nil, err
	}
	var out []Edge
	for _, e := range edges {
		if e.Source == actorName && e.Value >= minValue {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out, nil
}

// Blocs groups actors into connected components over edges with value >=
// minValue, BFS in visit order. Only registered sources/targets appear; the
// result is sorted by bloc size then lead actor for determinism.
func (g *Store) Blocs(minValue float64) ([][]string, error) {
	edges, err := g.LatestEdges()
	if err != nil {
		return nil, err
	}

	adj := make(map[string][]string)
	nodes := make(map[string]bool)
	for _, e := range edges {
		nodes[e.Source] = true
		nodes[e.Target] = true
		if e.Value >= minValue {
			adj[e.Source] = append(adj[e.Source], e.Target)
			adj[e.Target] = append(adj[e.Target], e.Source)
		}
	}

	names := make([]string, 0, len(nodes))
	for n := range nodes {
		names = append(names, n)
	}
	sort.Strings(names)

	visited := make(map[string]bool)
	var blocs [][]string
	for _, start := range names {
		if visited[start] {
			continue
		}
		visited[start] = true
		bloc := []string{start}
		queue := []string{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			neighbors := append([]string(nil), adj[cur]...)
			sort.Strings(neighbors)
			for _, n := range neighbors {
				if visited[n] {
					continue
				}
				visited[n] = true
				bloc = append(bloc, n)
				queue = append(queue, n)
			}
		}
		blocs = append(blocs, bloc)
	}

	sort.Slice(blocs, func(i, j int) bool {
		if len(blocs[i]) != len(blocs[j]) {
			return len(blocs[i]) > len(blocs[j])
		}
		return blocs[i][0] < blocs[j][0]
	})
	return blocs, nil
}

// #endregion allies

// #region helpers
func scanEdges(rows *sql.Rows) ([]Edge, error) {
	var edges []Edge
	for rows.Next() {
		var e Edge
		var createdAt string
		if err := rows.Scan(&e.Turn, &e.Source, &e.Target, &e.Value, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// #endregion helpers
