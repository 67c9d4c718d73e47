package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kasozi/homefind/internal/model"
)

// CreateAmenity creates a new amenity (bootstrap reference data).
func CreateAmenity(ctx context.Context, db *sql.DB, name, icon, description string) (*model.Amenity, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO amenities (name, icon, description) VALUES (?, ?, ?)`,
		name, icon, description,
	)
	if err != nil {
		return nil, fmt.Errorf("creating amenity: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting amenity id: %w", err)
	}

	return GetAmenity(ctx, db, id)
}

// GetAmenity returns an amenity by ID.
func GetAmenity(ctx context.Context, db *sql.DB, id int64) (*model.Amenity, error) {
	a := &model.Amenity{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, icon, description FROM amenities WHERE id = ?`, id,
	).Scan(&a.ID, &a.Name, &a.Icon, &a.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting amenity: %w", err)
	}
	return a, nil
}

// ListAmenities returns all amenities in creation order.
func ListAmenities(ctx context.Context, db *sql.DB) ([]model.Amenity, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, icon, description FROM amenities ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing amenities: %w", err)
	}
	defer rows.Close()

	var amenities []model.Amenity
	for rows.Next() {
		var a model.Amenity
		if err := rows.Scan(&a.ID, &a.Name, &a.Icon, &a.Description); err != nil {
			return nil, fmt.Errorf("scanning amenity: %w", err)
		}
		amenities = append(amenities, a)
	}
	return amenities, rows.Err()
}
