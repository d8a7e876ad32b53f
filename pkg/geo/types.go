// Package geo provides common geographic types and validation shared by
// the Camino tool handlers.
package geo

import "fmt"

// Location represents a geographic coordinate pair using the field names
// the Camino API expects in request bodies.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ValidateLat checks that a latitude is within [-90, 90].
func ValidateLat(lat float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("invalid latitude value: %f (must be between -90 and 90)", lat)
	}
	return nil
}

// ValidateLon checks that a longitude is within [-180, 180].
func ValidateLon(lon float64) error {
	if lon < -180 || lon > 180 {
		return fmt.Errorf("invalid longitude value: %f (must be between -180 and 180)", lon)
	}
	return nil
}

// ValidateCoords checks a latitude/longitude pair.
func ValidateCoords(lat, lon float64) error {
	if err := ValidateLat(lat); err != nil {
		return err
	}
	return ValidateLon(lon)
}
