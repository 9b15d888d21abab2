package engine

import (
	"time"

	"orientation/internal/domain"
	"orientation/internal/domain/models"
)

// Guidance bundles everything the engine derives for one request.
type Guidance struct {
	Situation    models.Situation
	Checkpoint   models.CheckpointSelection
	Instructions []models.Instruction
	Alerts       []models.Alert
	Itinerary    []models.ItineraryStep
}

// Evaluate runs the analyzer and all composers over resolved snapshots.
func (c Config) Evaluate(w models.WeatherSummary, b models.BaggageSnapshot, f models.FlightInfo, pos domain.Position, now time.Time) Guidance {
	s := c.Analyze(w, b, f, now)
	sel := c.SelectCheckpoint(s, f)
	return Guidance{
		Situation:    s,
		Checkpoint:   sel,
		Instructions: c.ComposeInstructions(s, sel, pos, f, b),
		Alerts:       c.ComposeAlerts(s, w, f),
		Itinerary:    c.PlanItinerary(s, f, pos),
	}
}
