package seed

import (
	"context"
	"testing"

	"github.com/kasozi/homefind/internal/db"
	"github.com/kasozi/homefind/internal/model"
	"github.com/kasozi/homefind/internal/store"
)

func TestDefaultSeedParses(t *testing.T) {
	f, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(f.Properties) == 0 || len(f.Amenities) == 0 || len(f.PropertyTypes) == 0 {
		t.Fatal("expected embedded seed to contain properties, amenities and property types")
	}

	categories := make(map[string]bool)
	for _, p := range f.Properties {
		if !model.ValidCategory(p.Category) {
			t.Errorf("property %q has invalid category %q", p.Title, p.Category)
		}
		categories[p.Category] = true
		if p.Category == model.CategoryBankSales && p.AuctionDate != "" {
			if p.BidIncrement <= 0 {
				t.Errorf("auction %q has no bid increment", p.Title)
			}
			if p.CurrentBid < p.StartingBid {
				t.Errorf("auction %q current bid below starting bid", p.Title)
			}
		}
	}
	for _, c := range model.AllCategories {
		if !categories[c] {
			t.Errorf("embedded seed has no properties in category %q", c)
		}
	}
}

func TestApplyPopulatesEmptyCatalog(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	f, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if err := Apply(ctx, database, f); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	count, err := store.CountProperties(ctx, database)
	if err != nil {
		t.Fatalf("CountProperties: %v", err)
	}
	if count != len(f.Properties) {
		t.Errorf("expected %d properties, got %d", len(f.Properties), count)
	}

	amenities, err := store.ListAmenities(ctx, database)
	if err != nil {
		t.Fatalf("ListAmenities: %v", err)
	}
	if len(amenities) != len(f.Amenities) {
		t.Errorf("expected %d amenities, got %d", len(f.Amenities), len(amenities))
	}

	// Auction columns survive the round trip.
	props, err := store.ListProperties(ctx, database)
	if err != nil {
		t.Fatalf("ListProperties: %v", err)
	}
	var auctions int
	for _, p := range props {
		if p.IsAuction() {
			auctions++
			if p.BankName == "" || p.AuctionStatus != model.AuctionActive {
				t.Errorf("auction %q missing bank or status", p.Title)
			}
		}
	}
	if auctions == 0 {
		t.Error("expected seeded auctions")
	}
}

func TestApplySkipsNonEmptyCatalog(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := store.CreateProperty(ctx, database, model.Property{
		Title:    "Existing Listing",
		Location: "Ntinda, Kampala, Uganda",
		Price:    900,
		Category: model.CategoryRentalUnits,
	}); err != nil {
		t.Fatalf("CreateProperty: %v", err)
	}

	f, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if err := Apply(ctx, database, f); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	count, err := store.CountProperties(ctx, database)
	if err != nil {
		t.Fatalf("CountProperties: %v", err)
	}
	if count != 1 {
		t.Errorf("seeding a non-empty catalog should be a no-op, got %d properties", count)
	}
}

func TestParseRejectsBadAuctionDate(t *testing.T) {
	f := &File{Properties: []Property{{
		Title:       "Broken Auction",
		Category:    model.CategoryBankSales,
		AuctionDate: "next tuesday",
	}}}

	database := db.NewTestDB(t)
	if err := Apply(context.Background(), database, f); err == nil {
		t.Error("expected error for malformed auction date")
	}
}
