package engine

import (
	"fmt"

	"orientation/internal/domain"
	"orientation/internal/domain/models"
)

// PlanItinerary builds the just-in-time boarding path. The boarding step is always last.
//
// The leisure check runs against the budget left after security, unlike
// ComposeInstructions which checks the full budget; the two can disagree near 45 minutes.
func (c Config) PlanItinerary(s models.Situation, f models.FlightInfo, pos domain.Position) []models.ItineraryStep {
	steps := make([]models.ItineraryStep, 0, 3)
	add := func(step models.ItineraryStep) {
		step.Order = len(steps) + 1
		step.Status = domain.StepPending
		steps = append(steps, step)
	}

	critical := s.Urgency == domain.UrgencyCritical
	remaining := s.TimeAvailableMinutes

	if !pos.PastSecurity() {
		cp := c.SelectCheckpoint(s, f).Best
		minutes := cp.MeanWaitMinutes + c.SecurityOverheadMinutes
		add(models.ItineraryStep{
			Name:             "Security Checkpoint " + cp.ID,
			Description:      fmt.Sprintf("Clear security (%dmin wait)", cp.MeanWaitMinutes),
			Zone:             "Security-" + cp.ID,
			EstimatedMinutes: minutes,
		})
		remaining -= minutes
	}

	if remaining > c.LeisureThresholdMinutes && !critical {
		spot := c.leisureSpot(c.gateZone(f))
		add(models.ItineraryStep{
			Name:             "Waiting Area - " + spot.Name,
			Description:      spot.Description,
			Zone:             spot.ID,
			EstimatedMinutes: remaining - c.LeisureGateReserveMinutes,
		})
	}

	lead := c.boardingLead(critical)
	add(models.ItineraryStep{
		Name:             "Gate " + c.currentGate(f),
		Description:      fmt.Sprintf("Boarding scheduled - arrive %dmin before", lead),
		Zone:             c.gateZone(f),
		EstimatedMinutes: lead,
	})

	return steps
}
