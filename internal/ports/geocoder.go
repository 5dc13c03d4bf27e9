package ports

import "context"

// PlaceData is a human readable label for a coordinate
type PlaceData struct {
	DisplayName string `json:"display_name"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
}

// Geocoder resolves coordinates to place labels
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (*PlaceData, error)
}
