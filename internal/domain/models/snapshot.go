package models

import (
	"time"

	"orientation/internal/domain"
)

// WeatherImpact describes how weather affects airport operations.
type WeatherImpact struct {
	ReducedHourlyCapacity float64  `json:"reduced_hourly_capacity"`
	AverageDelay          int      `json:"average_delay"`
	MainRunwaysAvailable  int      `json:"main_runways_available"`
	CongestedSectors      []string `json:"congested_sectors"`
	Conditions            []string `json:"conditions"`
}

// WeatherSummary is the snapshot returned by the weather source.
type WeatherSummary struct {
	AlertLevel domain.WeatherAlertLevel `json:"alert_level"`
	Impact     WeatherImpact            `json:"impact"`
}

// DefaultWeatherSummary is substituted when the weather source is unavailable.
func DefaultWeatherSummary() WeatherSummary {
	return WeatherSummary{
		AlertLevel: domain.WeatherLow,
		Impact: WeatherImpact{
			MainRunwaysAvailable: 3,
			CongestedSectors:     []string{},
			Conditions:           []string{},
		},
	}
}

// BaggageSnapshot is the snapshot returned by the baggage source.
type BaggageSnapshot struct {
	ID        string               `json:"id"`
	Status    domain.BaggageStatus `json:"status"`
	Location  string               `json:"location"`
	Timestamp string               `json:"timestamp"`
}

// DefaultBaggageSnapshot is substituted when the baggage source is unavailable.
func DefaultBaggageSnapshot(id string, now time.Time) BaggageSnapshot {
	return BaggageSnapshot{
		ID:        id,
		Status:    domain.BaggageRegistered,
		Location:  "Unknown",
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}

// FlightInfo is the snapshot returned by the flight source.
// DepartureTime is kept as the raw ISO-8601 string and parsed by the analyzer.
type FlightInfo struct {
	Number        string `json:"number"`
	Destination   string `json:"destination,omitempty"`
	DepartureTime string `json:"departure_time"`
	OriginalGate  string `json:"original_gate"`
	CurrentGate   string `json:"current_gate"`
	Delay         int    `json:"delay"`
	Status        string `json:"status"`
	Terminal      string `json:"terminal"`
}
