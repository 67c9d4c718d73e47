package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Properties carry nullable auction
// columns so bank-sale listings live in the same table as everything else.
const schema = `
CREATE TABLE IF NOT EXISTS properties (
    id             INTEGER PRIMARY KEY,
    title          TEXT NOT NULL,
    location       TEXT NOT NULL,
    price          INTEGER NOT NULL CHECK (price >= 0),
    description    TEXT,
    bedrooms       INTEGER NOT NULL DEFAULT 0 CHECK (bedrooms >= 0),
    bathrooms      REAL NOT NULL DEFAULT 0 CHECK (bathrooms >= 0),
    square_feet    INTEGER NOT NULL DEFAULT 0 CHECK (square_feet >= 0),
    image_url      TEXT,
    rating         TEXT NOT NULL DEFAULT '0.0',
    review_count   INTEGER NOT NULL DEFAULT 0 CHECK (review_count >= 0),
    property_type  TEXT NOT NULL,
    category       TEXT NOT NULL CHECK (category IN ('rental_units', 'furnished_houses', 'for_sale', 'bank_sales')),
    is_featured    INTEGER NOT NULL DEFAULT 0,
    has_tour       INTEGER NOT NULL DEFAULT 1,
    tour_url       TEXT,
    amenities      TEXT NOT NULL DEFAULT '[]',
    photo          BLOB,
    photo_mime     TEXT,
    bank_name      TEXT,
    auction_date   DATETIME,
    starting_bid   INTEGER CHECK (starting_bid IS NULL OR starting_bid >= 0),
    current_bid    INTEGER CHECK (current_bid IS NULL OR current_bid >= 0),
    bid_increment  INTEGER CHECK (bid_increment IS NULL OR bid_increment >= 0),
    auction_status TEXT CHECK (auction_status IS NULL OR auction_status IN ('active', 'ended')),
    created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_properties_category ON properties(category);

CREATE TABLE IF NOT EXISTS amenities (
    id          INTEGER PRIMARY KEY,
    name        TEXT NOT NULL,
    icon        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS property_types (
    id   INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    icon TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    username      TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    email         TEXT,
    full_name     TEXT,
    role          TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('admin', 'manager', 'user')),
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at    DATETIME
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_active
    ON users(username) WHERE deleted_at IS NULL;

CREATE TABLE IF NOT EXISTS bids (
    id          INTEGER PRIMARY KEY,
    receipt     TEXT NOT NULL UNIQUE,
    property_id INTEGER NOT NULL REFERENCES properties(id),
    amount      INTEGER NOT NULL CHECK (amount >= 0),
    placed_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_bids_property ON bids(property_id);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at
// the end.
var migrations = []string{}

// EnsureSchema creates all tables and indexes if they don't already exist,
// then applies any pending migrations.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
