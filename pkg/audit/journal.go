// Package audit keeps a local journal of login activity in SQLite.
// Everything is best-effort: a broken journal logs and degrades to a
// no-op, it never blocks a login.
package audit

import (
	"context"
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Event kinds recorded by the auth handlers.
const (
	EventLoginOK     = "login_ok"
	EventLoginFailed = "login_failed"
	EventDenied      = "denied"
)

type Journal struct {
	db *sql.DB
}

type Entry struct {
	Event  string
	Email  string
	Detail string
	Time   time.Time
}

// Open creates (or opens) the journal database at path. On any error a
// usable no-op Journal is returned.
func Open(path string) *Journal {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("audit: mkdir failed: %v", err)
		return &Journal{}
	}
	dsn := "file:" + path + "?_pragma=busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Printf("audit: open failed: %v", err)
		return &Journal{}
	}
	db.SetMaxOpenConns(1)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Printf("audit: ping failed: %v", err)
		_ = db.Close()
		return &Journal{}
	}
	if _, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS login_events(event TEXT, email TEXT, detail TEXT, ts INTEGER);
		 CREATE INDEX IF NOT EXISTS idx_login_events_ts ON login_events(ts);`); err != nil {
		log.Printf("audit: init schema failed: %v", err)
		_ = db.Close()
		return &Journal{}
	}
	return &Journal{db: db}
}

// Record appends one event. Failures are logged and swallowed.
func (j *Journal) Record(event, email, detail string) {
	if j == nil || j.db == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := j.db.ExecContext(ctx,
		`INSERT INTO login_events(event, email, detail, ts) VALUES(?,?,?,?)`,
		event, email, detail, time.Now().Unix()); err != nil {
		log.Printf("audit: record failed: %v", err)
	}
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if j == nil || j.db == nil {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	rows, err := j.db.QueryContext(ctx,
		`SELECT event, email, detail, ts FROM login_events ORDER BY ts DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&e.Event, &e.Email, &e.Detail, &ts); err != nil {
			return nil, err
		}
		e.Time = time.Unix(ts, 0)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (j *Journal) Close() {
	if j != nil && j.db != nil {
		_ = j.db.Close()
	}
}
