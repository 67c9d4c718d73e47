package model

import "time"

// Property represents a single listing in the catalog.
// Auction fields are only set for bank_sales properties.
type Property struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Price        int64    `json:"price"`
	Description  string   `json:"description,omitempty"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    float64  `json:"bathrooms"`
	SquareFeet   int      `json:"square_feet"`
	ImageURL     string   `json:"image_url,omitempty"`
	Rating       string   `json:"rating"`
	ReviewCount  int      `json:"review_count"`
	PropertyType string   `json:"property_type"`
	Category     string   `json:"category"`
	IsFeatured   bool     `json:"is_featured"`
	HasTour      bool     `json:"has_tour"`
	TourURL      string   `json:"tour_url,omitempty"`
	Amenities    []string `json:"amenities"`
	PhotoMime    string   `json:"photo_mime,omitempty"`

	BankName      string     `json:"bank_name,omitempty"`
	AuctionDate   *time.Time `json:"auction_date,omitempty"`
	StartingBid   int64      `json:"starting_bid,omitempty"`
	CurrentBid    int64      `json:"current_bid,omitempty"`
	BidIncrement  int64      `json:"bid_increment,omitempty"`
	AuctionStatus string     `json:"auction_status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Categories. The category set is closed; propertyType stays free text
// since new property types are data, not code.
const (
	CategoryRentalUnits     = "rental_units"
	CategoryFurnishedHouses = "furnished_houses"
	CategoryForSale         = "for_sale"
	CategoryBankSales       = "bank_sales"
)

// AllCategories lists the valid categories in their fixed display order.
var AllCategories = []string{
	CategoryRentalUnits,
	CategoryFurnishedHouses,
	CategoryForSale,
	CategoryBankSales,
}

// ValidCategory reports whether category is one of the closed set.
func ValidCategory(category string) bool {
	for _, c := range AllCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Auction statuses.
const (
	AuctionActive = "active"
	AuctionEnded  = "ended"
)

// IsAuction reports whether the property is a bank-sale auction with
// scheduling data attached.
func (p Property) IsAuction() bool {
	return p.Category == CategoryBankSales && p.AuctionDate != nil
}

// HasAmenity reports whether the property lists the given amenity.
// Matches are case-sensitive and exact.
func (p Property) HasAmenity(name string) bool {
	for _, a := range p.Amenities {
		if a == name {
			return true
		}
	}
	return false
}
