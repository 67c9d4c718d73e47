package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kasozi/homefind/internal/model"
)

// CreatePropertyType creates a new property type (bootstrap reference data).
func CreatePropertyType(ctx context.Context, db *sql.DB, name, icon string) (*model.PropertyType, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO property_types (name, icon) VALUES (?, ?)`,
		name, icon,
	)
	if err != nil {
		return nil, fmt.Errorf("creating property type: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting property type id: %w", err)
	}

	return GetPropertyType(ctx, db, id)
}

// GetPropertyType returns a property type by ID.
func GetPropertyType(ctx context.Context, db *sql.DB, id int64) (*model.PropertyType, error) {
	pt := &model.PropertyType{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, icon FROM property_types WHERE id = ?`, id,
	).Scan(&pt.ID, &pt.Name, &pt.Icon)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting property type: %w", err)
	}
	return pt, nil
}

// ListPropertyTypes returns all property types in creation order.
func ListPropertyTypes(ctx context.Context, db *sql.DB) ([]model.PropertyType, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, icon FROM property_types ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing property types: %w", err)
	}
	defer rows.Close()

	var types []model.PropertyType
	for rows.Next() {
		var pt model.PropertyType
		if err := rows.Scan(&pt.ID, &pt.Name, &pt.Icon); err != nil {
			return nil, fmt.Errorf("scanning property type: %w", err)
		}
		types = append(types, pt)
	}
	return types, rows.Err()
}
