package session

// #region imports
import (
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id          TEXT PRIMARY KEY,
	app_name    TEXT,
	user_id     TEXT,
	session_id  TEXT,
	state       TEXT,
	created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS state_versions (
	version     INTEGER PRIMARY KEY AUTOINCREMENT,
	parent      INTEGER NOT NULL DEFAULT 0,
	turn        INTEGER NOT NULL,
	state       TEXT NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS actor_vectors (
	version     INTEGER NOT NULL,
	actor       TEXT NOT NULL,
	vector      BLOB NOT NULL,
	PRIMARY KEY (version, actor),
	FOREIGN KEY (version) REFERENCES state_versions(version)
);

CREATE TABLE IF NOT EXISTS turn_outcomes (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	turn           INTEGER NOT NULL,
	actor          TEXT NOT NULL,
	action         TEXT NOT NULL,
	norm_behavior  TEXT,
	created_at     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_turn_outcomes_actor ON turn_outcomes(actor, action);

CREATE TABLE IF NOT EXISTS provenance_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	turn        INTEGER NOT NULL,
	phase       TEXT NOT NULL,
	actor       TEXT,
	decision    TEXT NOT NULL,
	input       TEXT,
	output      TEXT,
	rationale   TEXT,
	created_at  TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct
// Store manages session blobs, per-turn versions, norm vectors, and turn
// outcomes in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (logging,
// graph, interior).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region load
// Load reads the session blob for the given key. A missing session returns
// sql.ErrNoRows wrapped.
func (s *Store) Load(key Key) (map[string]float64, error) {
	var stateJSON string
	err := s.db.QueryRow(
		`SELECT state FROM sessions WHERE app_name = ? AND user_id = ? AND session_id = ?`,
		key.AppName, key.UserID, key.SessionID,
	).Scan(&stateJSON)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return decodeBlob(stateJSON)
}

// #endregion load

// #region save
// Save upserts the session blob. New sessions get a fresh uuid row id.
func (s *Store) Save(key Key, blob map[string]float64) error {
	stateJSON, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	res, err := s.db.Exec(
		`UPDATE sessions SET state = ?, updated_at = ?
		 WHERE app_name = ? AND user_id = ? AND session_id = ?`,
		string(stateJSON), now, key.AppName, key.UserID, key.SessionID,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		_, err = s.db.Exec(
			`INSERT INTO sessions (id, app_name, user_id, session_id, state, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), key.AppName, key.UserID, key.SessionID, string(stateJSON), now, now,
		)
		if err != nil {
			return fmt.Errorf("insert session: %w", err)
		}
	}
	return nil
}

// Ensure creates the session with blob if absent, and backfills sessions whose
// state is empty. Existing non-empty state is left alone.
func (s *Store) Ensure(key Key, blob map[string]float64) error {
	stateJSON, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	_, err = s.db.Exec(
		`UPDATE sessions SET state = ?
		 WHERE (state IS NULL OR state = '{}')
		   AND app_name = ? AND user_id = ? AND session_id = ?`,
		string(stateJSON), key.AppName, key.UserID, key.SessionID,
	)
	if err != nil {
		return fmt.Errorf("backfill session: %w", err)
	}

	var count int
	err = s.db.QueryRow(
		`SELECT COUNT(*) FROM sessions WHERE app_name = ? AND user_id = ? AND session_id = ?`,
		key.AppName, key.UserID, key.SessionID,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("count sessions: %w", err)
	}
	if count == 0 {
		now := time.Now().UTC().Format(time.RFC3339Nano)
		_, err = s.db.Exec(
			`INSERT INTO sessions (id, app_name, user_id, session_id, state, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), key.AppName, key.UserID, key.SessionID, string(stateJSON), now, now,
		)
		if err != nil {
			return fmt.Errorf("insert session: %w", err)
		}
	}
	return nil
}

// #endregion save

// #region commit-version
// CommitVersion writes one immutable version row for a completed turn plus
// the per-actor norm vectors, and updates the live session blob, atomically.
func (s *Store) CommitVersion(key Key, turn int, blob map[string]float64, vectors map[string][]float64) (int, error) {
	stateJSON, err := json.Marshal(blob)
	if err != nil {
		return 0, fmt.Errorf("marshal state: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var parent int
	if err := tx.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM state_versions`).Scan(&parent); err != nil {
		return 0, fmt.Errorf("max version: %w", err)
	}

	res, err := tx.Exec(
		`INSERT INTO state_versions (parent, turn, state, created_at) VALUES (?, ?, ?, ?)`,
		parent, turn, string(stateJSON), now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert version: %w", err)
	}
	versionID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("version id: %w", err)
	}

	for actorName, vec := range vectors {
		_, err = tx.Exec(
			`INSERT INTO actor_vectors (version, actor, vector) VALUES (?, ?, ?)`,
			versionID, actorName, encodeVector(vec),
		)
		if err != nil {
			return 0, fmt.Errorf("insert vector %s: %w", actorName, err)
		}
	}

	_, err = tx.Exec(
		`UPDATE sessions SET state = ?, updated_at = ?
		 WHERE app_name = ? AND user_id = ? AND session_id = ?`,
		string(stateJSON), now, key.AppName, key.UserID, key.SessionID,
	)
	if err != nil {
		return 0, fmt.Errorf("update session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return int(versionID), nil
}

// #endregion commit-version

// #region history
// History returns the most recent version rows, newest first.
func (s *Store) History(limit int) ([]Version, error) {
	rows, err := s.db.Query(
		`SELECT version, parent, turn, state, created_at
		 FROM state_versions ORDER BY version DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var versions []Version
	for rows.Next() {
		var v Version
		var stateJSON, createdStr string
		if err := rows.Scan(&v.Version, &v.Parent, &v.Turn, &stateJSON, &createdStr); err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		v.Blob, err = decodeBlob(stateJSON)
		if err != nil {
			return nil, err
		}
		v.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// Rollback points the live session blob back at a previous version. Version
// rows themselves are immutable and stay put.
func (s *Store) Rollback(key Key, version int) error {
	var stateJSON string
	err := s.db.QueryRow(`SELECT state FROM state_versions WHERE version = ?`, version).Scan(&stateJSON)
	if err != nil {
		return fmt.Errorf("version %d not found: %w", version, err)
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.Exec(
		`UPDATE sessions SET state = ?, updated_at = ?
		 WHERE app_name = ? AND user_id = ? AND session_id = ?`,
		stateJSON, now, key.AppName, key.UserID, key.SessionID,
	)
	if err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}

// ActorVector reads one actor's norm vector at a given version.
func (s *Store) ActorVector(version int, actorName string) ([]float64, error) {
	var blob []byte
	err := s.db.QueryRow(
		`SELECT vector FROM actor_vectors WHERE version = ? AND actor = ?`, version, actorName,
	).Scan(&blob)
	if err != nil {
		return nil, fmt.Errorf("actor vector: %w", err)
	}
	return decodeVector(blob), nil
}

// #endregion history

// #region turn-outcomes
// RecordTurnOutcome appends one (turn, actor, action) row with its norm
// behavior tags, written each Learning phase.
func (s *Store) RecordTurnOutcome(turn int, actorName, action, normBehaviorJSON string) error {
	_, err := s.db.Exec(
		`INSERT INTO turn_outcomes (turn, actor, action, norm_behavior, created_at) VALUES (?, ?, ?, ?, ?)`,
		turn, actorName, action, normBehaviorJSON, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record outcome: %w", err)
	}
	return nil
}

// ActionProfile aggregates an actor's recency-weighted action frequencies
// with a 7-day half-life. Weights are normalized to sum to 1.
func (s *Store) ActionProfile(actorName string) (map[string]float64, error) {
	rows, err := s.db.Query(
		`SELECT action, created_at FROM turn_outcomes WHERE actor = ?`, actorName,
	)
	if err != nil {
		return nil, fmt.Errorf("action profile: %w", err)
	}
	defer rows.Close()

	now := time.Now()
	halfLife := 7.0 * 24.0 // 7 days in hours
	weights := make(map[string]float64)
	var total float64

	for rows.Next() {
		var action, createdAtStr string
		if err := rows.Scan(&action, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		createdAt, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			continue
		}
		ageHours := now.Sub(createdAt).Hours()
		if ageHours < 0 {
			ageHours = 0
		}
		w := math.Exp(-ageHours * math.Ln2 / halfLife)
		weights[action] += w
		total += w
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if total > 0 {
		for action := range weights {
			weights[action] /= total
		}
	}
	return weights, nil
}

// TurnOutcomes returns every recorded outcome row, oldest first, for
// inspection tooling.
func (s *Store) TurnOutcomes() ([]OutcomeRow, error) {
	rows, err := s.db.Query(
		`SELECT turn, actor, action, COALESCE(norm_behavior, '') FROM turn_outcomes ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list outcomes: %w", err)
	}
	defer rows.Close()

	var out []OutcomeRow
	for rows.Next() {
		var r OutcomeRow
		if err := rows.Scan(&r.Turn, &r.Actor, &r.Action, &r.NormBehavior); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// #endregion turn-outcomes

// #region sessions-list
// Sessions returns all session rows, for inspection tooling.
func (s *Store) Sessions() ([]Row, error) {
	rows, err := s.db.Query(
		`SELECT id, app_name, user_id, session_id, state, created_at, updated_at
		 FROM sessions ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var stateJSON sql.NullString
		var createdStr, updatedStr string
		if err := rows.Scan(&r.ID, &r.AppName, &r.UserID, &r.SessionID, &stateJSON, &createdStr, &updatedStr); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if stateJSON.Valid && stateJSON.String != "" {
			r.State, err = decodeBlob(stateJSON.String)
			if err != nil {
				return nil, err
			}
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		r.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
		out = append(out, r)
	}
	return out, rows.Err()
}

// #endregion sessions-list

// #region vector-encoding
// Vectors are stored as little-endian float32, one per catalog norm.
func encodeVector(v []float64) []byte {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(float32(f)))
	}
	return buf
}

func decodeVector(b []byte) []float64 {
	v := make([]float64, len(b)/4)
	for i := range v {
		v[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:])))
	}
	return v
}

func decodeBlob(stateJSON string) (map[string]float64, error) {
	blob := make(map[string]float64)
	if err := json.Unmarshal([]byte(stateJSON), &blob); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	return blob, nil
}

// #endregion vector-encoding
