package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Bid is one accepted auction bid, recorded with its receipt identifier.
type Bid struct {
	ID         int64     `json:"id"`
	Receipt    string    `json:"receipt"`
	PropertyID int64     `json:"property_id"`
	Amount     int64     `json:"amount"`
	PlacedAt   time.Time `json:"placed_at"`
}

// RecordBid updates the property's current bid and appends a ledger entry,
// atomically. The amount must already have been validated by the auction
// rules.
func RecordBid(ctx context.Context, db *sql.DB, propertyID, amount int64, receipt string) (*Bid, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting bid transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE properties SET current_bid = ? WHERE id = ?`,
		amount, propertyID,
	); err != nil {
		return nil, fmt.Errorf("updating current bid: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO bids (receipt, property_id, amount) VALUES (?, ?, ?)`,
		receipt, propertyID, amount,
	)
	if err != nil {
		return nil, fmt.Errorf("recording bid: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting bid id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing bid: %w", err)
	}

	return GetBid(ctx, db, id)
}

// GetBid returns a bid by ID.
func GetBid(ctx context.Context, db *sql.DB, id int64) (*Bid, error) {
	b := &Bid{}
	err := db.QueryRowContext(ctx,
		`SELECT id, receipt, property_id, amount, placed_at FROM bids WHERE id = ?`, id,
	).Scan(&b.ID, &b.Receipt, &b.PropertyID, &b.Amount, &b.PlacedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting bid: %w", err)
	}
	return b, nil
}

// ListBids returns all bids for a property, most recent first.
func ListBids(ctx context.Context, db *sql.DB, propertyID int64) ([]Bid, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, receipt, property_id, amount, placed_at
		 FROM bids WHERE property_id = ?
		 ORDER BY placed_at DESC, id DESC`, propertyID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing bids: %w", err)
	}
	defer rows.Close()

	var bids []Bid
	for rows.Next() {
		var b Bid
		if err := rows.Scan(&b.ID, &b.Receipt, &b.PropertyID, &b.Amount, &b.PlacedAt); err != nil {
			return nil, fmt.Errorf("scanning bid: %w", err)
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}
