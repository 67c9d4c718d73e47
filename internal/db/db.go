package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open opens the catalog database and applies the connection pragmas.
// WAL keeps long photo writes from blocking catalog reads, and the busy
// timeout absorbs contention when concurrent bids hit the same listing.
func Open(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	for _, pragma := range []string{
		"journal_mode=WAL",
		"busy_timeout=5000",
		"foreign_keys=ON",
		"synchronous=NORMAL",
	} {
		if _, err := conn.Exec("PRAGMA " + pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("applying pragma %s: %w", pragma, err)
		}
	}

	return conn, nil
}
