package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dws-console/internal/model"

	_ "modernc.org/sqlite"
)

// Journal is an append-only SQLite log of console mutations.
// It is an audit trail only: state is never rebuilt from it.
type Journal struct {
	path string
	db   *sql.DB
}

func OpenJournal(ctx context.Context, path string) (*Journal, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("journal: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS events (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		event_id TEXT NOT NULL UNIQUE,
		ts_unixms INTEGER NOT NULL,
		actor TEXT NOT NULL,
		type TEXT NOT NULL,
		entity_id TEXT NOT NULL,
		payload_json TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Journal{path: path, db: db}, nil
}

func (j *Journal) Path() string { return j.path }

// Append writes ev, filling ID and TS when empty.
func (j *Journal) Append(ctx context.Context, ev model.Event) error {
	if j == nil || j.db == nil {
		return errors.New("journal: closed")
	}
	if strings.TrimSpace(ev.ID) == "" {
		ev.ID = NewID("evt")
	}
	if ev.TS.IsZero() {
		ev.TS = time.Now().UTC()
	}
	b, err := json.Marshal(ev.Payload)
	if err != nil {
		return err
	}
	_, err = j.db.ExecContext(ctx,
		`INSERT INTO events(event_id, ts_unixms, actor, type, entity_id, payload_json) VALUES(?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.TS.UnixMilli(), ev.Actor, ev.Type, ev.EntityID, string(b),
	)
	return err
}

// Tail returns the last n events, oldest first.
func (j *Journal) Tail(ctx context.Context, n int) ([]model.Event, error) {
	if j == nil || j.db == nil {
		return nil, errors.New("journal: closed")
	}
	if n <= 0 {
		return nil, nil
	}
	rows, err := j.db.QueryContext(ctx, `SELECT event_id, ts_unixms, actor, type, entity_id, payload_json
		FROM (SELECT * FROM events ORDER BY seq DESC LIMIT ?) ORDER BY seq ASC`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		var (
			ev      model.Event
			tsMS    int64
			payload string
		)
		if err := rows.Scan(&ev.ID, &tsMS, &ev.Actor, &ev.Type, &ev.EntityID, &payload); err != nil {
			return nil, err
		}
		ev.TS = time.UnixMilli(tsMS).UTC()
		var p any
		if err := json.Unmarshal([]byte(payload), &p); err == nil {
			ev.Payload = p
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}
