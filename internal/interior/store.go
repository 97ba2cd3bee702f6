package interior

// #region imports
import (
	"database/sql"
	"time"
)

// #endregion imports

// #region types

// Memory holds one turn's private record for one actor — what it did and what
// the batch outcome looked like, in the actor's own frame.
type Memory struct {
	TurnNumber int
	Actor      string
	MemoryText string
	CreatedAt  time.Time
}

// #endregion types

// #region store

// Store persists per-actor private turn memory in SQLite. Append-only: the
// coordinator writes one row per actor per turn and never deletes.
type Store struct {
	db *sql.DB
}

// NewStore creates the actor_memory table if needed and returns a store.
func NewStore(db *sql.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS actor_memory (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		turn_number INTEGER NOT NULL,
		actor TEXT NOT NULL,
		memory TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`)
	return err
}

// Save stores one actor's memory record for a turn.
func (s *Store) Save(turnNumber int, actorName, memoryText string) error {
	_, err := s.db.Exec(
		`INSERT INTO actor_memory (turn_number, actor, memory, created_at) VALUES (?, ?, ?, ?)`,
		turnNumber, actorName, memoryText, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Recent returns an actor's most recent n memory texts, oldest first, for the
// next turn's perception context.
func (s *Store) Recent(actorName string, n int) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT memory FROM (
			SELECT id, memory FROM actor_memory WHERE actor = ? ORDER BY id DESC LIMIT ?
		 ) ORDER BY id ASC`,
		actorName, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// #endregion store
