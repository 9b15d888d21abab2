package models

import (
	"time"

	"orientation/internal/domain"
)

// OrientationRequest is the validated input of one orientation computation.
type OrientationRequest struct {
	FlightNumber string
	BaggageID    string
	Position     domain.Position
}

// OrientationResult is the response body of the orientation endpoints.
type OrientationResult struct {
	Success      bool            `json:"success"`
	FlightNumber string          `json:"flight_number"`
	Timestamp    time.Time       `json:"timestamp"`
	Situation    Situation       `json:"situation"`
	Instructions []Instruction   `json:"instructions"`
	Alerts       []Alert         `json:"alerts"`
	Itinerary    []ItineraryStep `json:"itinerary"`

	// Kept for audit and PDF rendering only.
	Flight  FlightInfo      `json:"-"`
	Baggage BaggageSnapshot `json:"-"`
	Weather WeatherSummary  `json:"-"`
}

// AuditRecord is handed to the audit sink after the response is assembled.
type AuditRecord struct {
	RequestID     string
	FlightNumber  string
	BaggageID     string
	Position      domain.Position
	Situation     Situation
	BaggageStatus domain.BaggageStatus
	Instructions  []Instruction
	Itinerary     []ItineraryStep
	Alerts        []Alert
	WeatherImpact WeatherImpact
	CreatedAt     time.Time
}
