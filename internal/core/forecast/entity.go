package forecast

import (
	"fmt"
	"strings"
	"time"

	"coolassistant.app/pkg/validation"
)

const (
	dustOutlookDays = 4
	heatOutlookDays = 5
)

// Coordinates of a forecast point
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// IsValid checks the point is on the globe
func (c Coordinates) IsValid() error {
	if !validation.IsValidLatitude(c.Latitude) {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if !validation.IsValidLongitude(c.Longitude) {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

func (c Coordinates) cacheKey(prefix string) string {
	return fmt.Sprintf("forecast:%s:%.4f:%.4f", prefix, c.Latitude, c.Longitude)
}

// PointRequest asks for a forecast at a point; nil uses the configured default
type PointRequest struct {
	Point *Coordinates
}

// CityRequest asks for a city forecast; empty uses the configured default
type CityRequest struct {
	City string
}

// PollutantReading is one classified pollutant value
type PollutantReading struct {
	Key   string   `json:"key"`
	Name  string   `json:"name"`
	Unit  string   `json:"unit"`
	Value *float64 `json:"value"`
	Level Level    `json:"level"`
}

// AirQualityReport is the current air quality at a point
type AirQualityReport struct {
	Location   Coordinates        `json:"location"`
	Provider   string             `json:"provider"`
	ObservedAt time.Time          `json:"observed_at"`
	Readings   []PollutantReading `json:"readings"`
}

// DailyValue is a per-day maximum with its risk level
type DailyValue struct {
	Date    string  `json:"date"`
	Weekday string  `json:"weekday"`
	Value   float64 `json:"value"`
	Level   Level   `json:"level"`
}

// DustOutlook is the PM10 daily maxima for the coming days
type DustOutlook struct {
	Location Coordinates  `json:"location"`
	Unit     string       `json:"unit"`
	Days     []DailyValue `json:"days"`
}

// HeatOutlook is the daily temperature maxima for the coming days
type HeatOutlook struct {
	City string       `json:"city"`
	Unit string       `json:"unit"`
	Days []DailyValue `json:"days"`
}

func normalizeCity(city string) string {
	return strings.TrimSpace(city)
}
