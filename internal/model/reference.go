package model

// Amenity is static reference data describing a bookable feature.
// Created once at bootstrap, never mutated.
type Amenity struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// PropertyType is static reference data for the browsable type taxonomy.
type PropertyType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
