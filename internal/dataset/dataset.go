// Package dataset persists generated instances in a SQLite database so that
// batches of instances can be accumulated and replayed by downstream
// training runs.
package dataset

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/cratelab/packgen/internal/model"
)

// Meta is the summary row returned by List.
type Meta struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Seed          uint64    `json:"seed"`
	NumItems      int       `json:"num_items"`
	ContainerDims [3]int32  `json:"container_dims"`
}

// Store is a SQLite-backed instance store.
type Store struct {
	db      *sql.DB
	entropy *rand.Rand
}

// Open opens or creates the database at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS instances (
		id          TEXT PRIMARY KEY,
		created_at  TEXT NOT NULL,
		seed        INTEGER NOT NULL,
		num_items   INTEGER NOT NULL,
		dim_x       INTEGER NOT NULL,
		dim_y       INTEGER NOT NULL,
		dim_z       INTEGER NOT NULL,
		state       TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_instances_created ON instances(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_instances_seed ON instances(seed);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Put stores an instance record and returns its id.
func (s *Store) Put(ctx context.Context, state model.State) (string, error) {
	blob, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("marshal state: %w", err)
	}
	id := s.newID()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO instances (id, created_at, seed, num_items, dim_x, dim_y, dim_z, state)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		time.Now().UTC().Format(time.RFC3339Nano),
		int64(state.Seed),
		state.NumItems(),
		state.Container.X2,
		state.Container.Y2,
		state.Container.Z2,
		string(blob),
	)
	if err != nil {
		return "", fmt.Errorf("insert instance: %w", err)
	}
	return id, nil
}

// Get retrieves a stored instance by id.
func (s *Store) Get(ctx context.Context, id string) (model.State, error) {
	var blob string
	err := s.db.QueryRowContext(ctx,
		`SELECT state FROM instances WHERE id = ?`, id).Scan(&blob)
	if err == sql.ErrNoRows {
		return model.State{}, fmt.Errorf("instance %s: not found", id)
	}
	if err != nil {
		return model.State{}, fmt.Errorf("query instance %s: %w", id, err)
	}
	var state model.State
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		return model.State{}, fmt.Errorf("unmarshal instance %s: %w", id, err)
	}
	return state, nil
}

// List returns metadata for the most recent instances, newest first.
// limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, limit int) ([]Meta, error) {
	query := `SELECT id, created_at, seed, num_items, dim_x, dim_y, dim_z
	          FROM instances ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list instances: %w", err)
	}
	defer rows.Close()

	var metas []Meta
	for rows.Next() {
		var (
			m       Meta
			created string
			seed    int64
		)
		if err := rows.Scan(&m.ID, &created, &seed, &m.NumItems,
			&m.ContainerDims[0], &m.ContainerDims[1], &m.ContainerDims[2]); err != nil {
			return nil, fmt.Errorf("scan instance row: %w", err)
		}
		m.Seed = uint64(seed)
		if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
			m.CreatedAt = t
		}
		metas = append(metas, m)
	}
	return metas, rows.Err()
}
