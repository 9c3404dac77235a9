package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type DBOptions struct {
	Path        string
	BusyTimeout int // milliseconds
	PingTO      time.Duration
}

// OpenDB opens (creating if needed) the SQLite database file and
// ensures the schema exists.
func OpenDB(ctx context.Context, opt DBOptions) (*sql.DB, error) {
	if opt.Path == "" {
		return nil, fmt.Errorf("DB_PATH is not set")
	}
	if opt.BusyTimeout == 0 {
		opt.BusyTimeout = 5000
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)",
		opt.Path, opt.BusyTimeout)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	pctx, cancel := context.WithTimeout(ctx, opt.PingTO)
	defer cancel()

	if err := db.PingContext(pctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	if err := createSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("db schema: %w", err)
	}

	return db, nil
}

func createSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS blog_posts (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	content TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS contact_info (
	id INTEGER PRIMARY KEY,
	email TEXT NOT NULL,
	phone TEXT NOT NULL,
	address TEXT NOT NULL
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}
