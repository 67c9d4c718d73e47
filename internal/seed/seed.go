// Package seed bootstraps an empty catalog with sample listings so a
// fresh install has something to browse. A deployment can point
// HOMEFIND_SEED at its own YAML file; otherwise the embedded default
// set of Kampala listings is used.
package seed

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kasozi/homefind/internal/model"
	"github.com/kasozi/homefind/internal/store"
)

//go:embed seed.yaml
var defaultSeed []byte

// File is the parsed contents of a seed file.
type File struct {
	PropertyTypes []PropertyType `yaml:"property_types"`
	Amenities     []Amenity      `yaml:"amenities"`
	Properties    []Property     `yaml:"properties"`
}

type PropertyType struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

type Amenity struct {
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

type Property struct {
	Title        string   `yaml:"title"`
	Location     string   `yaml:"location"`
	Price        int64    `yaml:"price"`
	Description  string   `yaml:"description"`
	Bedrooms     int      `yaml:"bedrooms"`
	Bathrooms    float64  `yaml:"bathrooms"`
	SquareFeet   int      `yaml:"square_feet"`
	ImageURL     string   `yaml:"image_url"`
	Rating       string   `yaml:"rating"`
	ReviewCount  int      `yaml:"review_count"`
	PropertyType string   `yaml:"property_type"`
	Category     string   `yaml:"category"`
	IsFeatured   bool     `yaml:"is_featured"`
	HasTour      bool     `yaml:"has_tour"`
	TourURL      string   `yaml:"tour_url"`
	Amenities    []string `yaml:"amenities"`

	BankName      string `yaml:"bank_name"`
	AuctionDate   string `yaml:"auction_date"`
	StartingBid   int64  `yaml:"starting_bid"`
	CurrentBid    int64  `yaml:"current_bid"`
	BidIncrement  int64  `yaml:"bid_increment"`
	AuctionStatus string `yaml:"auction_status"`
}

// Parse decodes a seed file.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &f, nil
}

// Default returns the embedded sample catalog.
func Default() (*File, error) {
	return Parse(defaultSeed)
}

// FromPath reads and parses a seed file from disk.
func FromPath(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

// Apply inserts the seed data into an empty catalog. If any properties
// already exist it does nothing, so restarting the server never
// duplicates listings.
func Apply(ctx context.Context, db *sql.DB, f *File) error {
	count, err := store.CountProperties(ctx, db)
	if err != nil {
		return fmt.Errorf("checking catalog: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, pt := range f.PropertyTypes {
		if _, err := store.CreatePropertyType(ctx, db, pt.Name, pt.Icon); err != nil {
			return fmt.Errorf("seeding property type %q: %w", pt.Name, err)
		}
	}
	for _, a := range f.Amenities {
		if _, err := store.CreateAmenity(ctx, db, a.Name, a.Icon, a.Description); err != nil {
			return fmt.Errorf("seeding amenity %q: %w", a.Name, err)
		}
	}
	for _, sp := range f.Properties {
		p, err := sp.toModel()
		if err != nil {
			return fmt.Errorf("seeding property %q: %w", sp.Title, err)
		}
		if _, err := store.CreateProperty(ctx, db, p); err != nil {
			return fmt.Errorf("seeding property %q: %w", sp.Title, err)
		}
	}
	return nil
}

func (sp Property) toModel() (model.Property, error) {
	if !model.ValidCategory(sp.Category) {
		return model.Property{}, fmt.Errorf("unknown category %q", sp.Category)
	}

	p := model.Property{
		Title:         sp.Title,
		Location:      sp.Location,
		Price:         sp.Price,
		Description:   sp.Description,
		Bedrooms:      sp.Bedrooms,
		Bathrooms:     sp.Bathrooms,
		SquareFeet:    sp.SquareFeet,
		ImageURL:      sp.ImageURL,
		Rating:        sp.Rating,
		ReviewCount:   sp.ReviewCount,
		PropertyType:  sp.PropertyType,
		Category:      sp.Category,
		IsFeatured:    sp.IsFeatured,
		HasTour:       sp.HasTour,
		TourURL:       sp.TourURL,
		Amenities:     sp.Amenities,
		BankName:      sp.BankName,
		StartingBid:   sp.StartingBid,
		CurrentBid:    sp.CurrentBid,
		BidIncrement:  sp.BidIncrement,
		AuctionStatus: sp.AuctionStatus,
	}

	if sp.AuctionDate != "" {
		date, err := time.Parse(time.RFC3339, sp.AuctionDate)
		if err != nil {
			return model.Property{}, fmt.Errorf("invalid auction_date %q: %w", sp.AuctionDate, err)
		}
		p.AuctionDate = &date
	}

	return p, nil
}
