package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/kasozi/homefind/internal/model"
)

const propertyColumns = `id, title, location, price, description, bedrooms, bathrooms,
	square_feet, image_url, rating, review_count, property_type, category,
	is_featured, has_tour, tour_url, amenities, photo_mime,
	bank_name, auction_date, starting_bid, current_bid, bid_increment, auction_status,
	created_at`

// CreateProperty creates a new listing. The id is assigned by the database
// (monotonically increasing, starting at 1, never reused).
func CreateProperty(ctx context.Context, db *sql.DB, p model.Property) (*model.Property, error) {
	amenities, err := json.Marshal(p.Amenities)
	if err != nil {
		return nil, fmt.Errorf("encoding amenities: %w", err)
	}
	if p.Amenities == nil {
		amenities = []byte("[]")
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO properties (title, location, price, description, bedrooms, bathrooms,
			square_feet, image_url, rating, review_count, property_type, category,
			is_featured, has_tour, tour_url, amenities,
			bank_name, auction_date, starting_bid, current_bid, bid_increment, auction_status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.Location, p.Price, p.Description, p.Bedrooms, p.Bathrooms,
		p.SquareFeet, p.ImageURL, p.Rating, p.ReviewCount, p.PropertyType, p.Category,
		p.IsFeatured, p.HasTour, p.TourURL, string(amenities),
		nullString(p.BankName), p.AuctionDate,
		nullInt(p.StartingBid, p.IsAuction()), nullInt(p.CurrentBid, p.IsAuction()),
		nullInt(p.BidIncrement, p.IsAuction()), nullString(p.AuctionStatus),
	)
	if err != nil {
		return nil, fmt.Errorf("creating property: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting property id: %w", err)
	}

	return GetProperty(ctx, db, id)
}

// GetProperty returns a property by ID.
func GetProperty(ctx context.Context, db *sql.DB, id int64) (*model.Property, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE id = ?`, id,
	)
	p, err := scanProperty(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting property: %w", err)
	}
	return p, nil
}

// ListProperties returns all properties in creation order.
func ListProperties(ctx context.Context, db *sql.DB) ([]model.Property, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+propertyColumns+` FROM properties ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}
	defer rows.Close()

	var props []model.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}
		props = append(props, *p)
	}
	return props, rows.Err()
}

// CountProperties returns the number of listings in the catalog.
func CountProperties(ctx context.Context, db *sql.DB) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting properties: %w", err)
	}
	return count, nil
}

// UpdateCurrentBid sets a property's current bid.
func UpdateCurrentBid(ctx context.Context, db *sql.DB, id, amount int64) error {
	_, err := db.ExecContext(ctx,
		`UPDATE properties SET current_bid = ? WHERE id = ?`,
		amount, id,
	)
	if err != nil {
		return fmt.Errorf("updating current bid: %w", err)
	}
	return nil
}

// SetPropertyPhoto stores a property's photo data.
func SetPropertyPhoto(ctx context.Context, db *sql.DB, id int64, photo []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE properties SET photo = ?, photo_mime = ? WHERE id = ?`,
		photo, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting property photo: %w", err)
	}
	return nil
}

// GetPropertyPhoto returns a property's photo data and MIME type.
func GetPropertyPhoto(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var photo []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT photo, photo_mime FROM properties WHERE id = ?`, id,
	).Scan(&photo, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting property photo: %w", err)
	}
	return photo, mime.String, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProperty(s scanner) (*model.Property, error) {
	p := &model.Property{}
	var description, imageURL, tourURL, amenities, photoMime sql.NullString
	var bankName, auctionStatus sql.NullString
	var auctionDate sql.NullTime
	var startingBid, currentBid, bidIncrement sql.NullInt64

	err := s.Scan(&p.ID, &p.Title, &p.Location, &p.Price, &description, &p.Bedrooms,
		&p.Bathrooms, &p.SquareFeet, &imageURL, &p.Rating, &p.ReviewCount,
		&p.PropertyType, &p.Category, &p.IsFeatured, &p.HasTour, &tourURL,
		&amenities, &photoMime, &bankName, &auctionDate, &startingBid, &currentBid,
		&bidIncrement, &auctionStatus, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	p.Description = description.String
	p.ImageURL = imageURL.String
	p.TourURL = tourURL.String
	p.PhotoMime = photoMime.String
	p.BankName = bankName.String
	p.AuctionStatus = auctionStatus.String
	p.StartingBid = startingBid.Int64
	p.CurrentBid = currentBid.Int64
	p.BidIncrement = bidIncrement.Int64
	if auctionDate.Valid {
		d := auctionDate.Time
		p.AuctionDate = &d
	}

	p.Amenities = []string{}
	if amenities.Valid && amenities.String != "" {
		if err := json.Unmarshal([]byte(amenities.String), &p.Amenities); err != nil {
			return nil, fmt.Errorf("decoding amenities: %w", err)
		}
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}

	return p, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullInt stores zero bid values as NULL for non-auction listings so that
// the auction columns stay unset outside bank_sales.
func nullInt(v int64, auction bool) any {
	if !auction && v == 0 {
		return nil
	}
	return v
}
