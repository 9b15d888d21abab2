// Package engine turns weather, baggage and flight snapshots into traveler guidance.
//
// Every function here is pure: it reads an immutable Config and the snapshots it is
// given and returns fresh values. Nothing is cached between calls.
package engine

import (
	"unicode/utf8"

	"orientation/internal/domain/models"
)

// Config holds the static airport tables and time thresholds. It is built once at
// startup and must not be mutated afterwards.
type Config struct {
	Checkpoints         []models.Checkpoint
	LeisureSpots        map[string]models.LeisureSpot
	FallbackLeisureZone string

	DefaultGate          string
	DefaultTerminal      string
	DefaultTimeAvailable int

	CriticalBelowMinutes int
	UrgentBelowMinutes   int

	SecurityOverheadMinutes          int
	LeisureThresholdMinutes          int
	LeisureGateReserveMinutes        int
	LeisureInstructionReserveMinutes int
	BoardingLeadCriticalMinutes      int
	BoardingLeadMinutes              int
	BaggageDeskMinutes               int

	BaggageDesk      string
	BaggageDeskPhone string
	BaggageDeskHours string
}

// DefaultConfig returns the reference deployment tables.
func DefaultConfig() Config {
	return Config{
		Checkpoints: []models.Checkpoint{
			{ID: "A", MeanWaitMinutes: 15, Position: "Terminal 1 - East Wing", Zones: []string{"A", "B"}},
			{ID: "B", MeanWaitMinutes: 20, Position: "Terminal 1 - Center", Zones: []string{"B", "C"}},
			{ID: "C", MeanWaitMinutes: 10, Position: "Terminal 2 - West", Zones: []string{"C", "F", "G"}},
		},
		LeisureSpots: map[string]models.LeisureSpot{
			"A": {ID: "lounge-a", Name: "Business Lounge A", Description: "Enjoy the lounge with a view of the runways."},
			"B": {ID: "shops-b", Name: "Shopping Gallery B", Description: "Restaurants and shops close by."},
			"C": {ID: "rest-c", Name: "Rest Area C", Description: "Quiet space with comfortable seating."},
			"F": {ID: "cafe-f", Name: "Panorama Cafe F", Description: "Have a coffee with a panoramic view."},
			"G": {ID: "restaurant-g", Name: "Terminal G Restaurant", Description: "Dining right next to your gate."},
		},
		FallbackLeisureZone: "C",

		DefaultGate:          "A1",
		DefaultTerminal:      "2",
		DefaultTimeAvailable: 90,

		CriticalBelowMinutes: 30,
		UrgentBelowMinutes:   60,

		SecurityOverheadMinutes:          5,
		LeisureThresholdMinutes:          45,
		LeisureGateReserveMinutes:        20,
		LeisureInstructionReserveMinutes: 25,
		BoardingLeadCriticalMinutes:      15,
		BoardingLeadMinutes:              20,
		BaggageDeskMinutes:               10,

		BaggageDesk:      "Baggage Service Desk - Terminal 2, Zone C",
		BaggageDeskPhone: "+33 1 XX XX XX XX",
		BaggageDeskHours: "24/7",
	}
}

// leisureSpot picks the waiting area for a gate zone, falling back to the default zone.
func (c Config) leisureSpot(zone string) models.LeisureSpot {
	if spot, ok := c.LeisureSpots[zone]; ok {
		return spot
	}
	return c.LeisureSpots[c.FallbackLeisureZone]
}

// currentGate returns the flight's current gate or the configured default.
func (c Config) currentGate(f models.FlightInfo) string {
	if f.CurrentGate != "" {
		return f.CurrentGate
	}
	return c.DefaultGate
}

// gateZone is the leading letter of the current gate.
func (c Config) gateZone(f models.FlightInfo) string {
	r, size := utf8.DecodeRuneInString(c.currentGate(f))
	if size == 0 {
		return ""
	}
	return string(r)
}

func (c Config) boardingLead(critical bool) int {
	if critical {
		return c.BoardingLeadCriticalMinutes
	}
	return c.BoardingLeadMinutes
}
