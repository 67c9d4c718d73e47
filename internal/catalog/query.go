// Package catalog implements the property query engine: category
// filtering, free-text search, structured filtering, and the featured
// homepage selection. All functions are pure transformations of an
// already-loaded property slice and preserve store order.
package catalog

import (
	"strings"

	"github.com/kasozi/homefind/internal/model"
)

// FeaturedLimit is the maximum number of properties in the homepage
// showcase.
const FeaturedLimit = 4

// ByCategory returns all properties in the given category. An unknown
// category yields an empty result, not an error.
func ByCategory(props []model.Property, category string) []model.Property {
	var out []model.Property
	for _, p := range props {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search returns properties whose title, location, or property type
// contains the query, case-insensitively. An empty query matches
// everything, since the empty string is a substring of every field.
func Search(props []model.Property, query string) []model.Property {
	q := strings.ToLower(query)
	var out []model.Property
	for _, p := range props {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Location), q) ||
			strings.Contains(strings.ToLower(p.PropertyType), q) {
			out = append(out, p)
		}
	}
	return out
}

// Filter is a partial predicate over properties. Nil fields impose no
// constraint; set fields are AND-combined.
type Filter struct {
	PropertyType *string  `json:"propertyType,omitempty"`
	MinPrice     *int64   `json:"minPrice,omitempty"`
	MaxPrice     *int64   `json:"maxPrice,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	Bathrooms    *float64 `json:"bathrooms,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	HasTour      *bool    `json:"hasTour,omitempty"`
}

// Matches reports whether the property satisfies every set clause.
// Bedrooms and bathrooms are at-least constraints; amenities require
// the property to carry every requested amenity (case-sensitive exact
// names, order-independent).
func (f Filter) Matches(p model.Property) bool {
	if f.PropertyType != nil && p.PropertyType != *f.PropertyType {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Bedrooms != nil && p.Bedrooms < *f.Bedrooms {
		return false
	}
	if f.Bathrooms != nil && p.Bathrooms < *f.Bathrooms {
		return false
	}
	if f.HasTour != nil && p.HasTour != *f.HasTour {
		return false
	}
	for _, a := range f.Amenities {
		if !p.HasAmenity(a) {
			return false
		}
	}
	return true
}

// Apply returns the properties satisfying the filter, preserving order.
func (f Filter) Apply(props []model.Property) []model.Property {
	var out []model.Property
	for _, p := range props {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Featured selects up to FeaturedLimit featured properties for the
// homepage showcase. It first tries to pick one featured property per
// category, in the fixed category order, then fills remaining slots from
// the leftover featured pool in store order. Non-featured properties are
// never returned.
func Featured(props []model.Property) []model.Property {
	var pool []model.Property
	for _, p := range props {
		if p.IsFeatured {
			pool = append(pool, p)
		}
	}

	var showcase []model.Property
	taken := make(map[int64]bool)

	for _, category := range model.AllCategories {
		for _, p := range pool {
			if p.Category == category && !taken[p.ID] {
				showcase = append(showcase, p)
				taken[p.ID] = true
				break
			}
		}
	}

	for _, p := range pool {
		if len(showcase) >= FeaturedLimit {
			break
		}
		if !taken[p.ID] {
			showcase = append(showcase, p)
			taken[p.ID] = true
		}
	}

	if len(showcase) > FeaturedLimit {
		showcase = showcase[:FeaturedLimit]
	}
	return showcase
}
