package engine

import (
	"fmt"
	"strings"

	"orientation/internal/domain"
	"orientation/internal/domain/models"
	"orientation/internal/utils"
)

var leisureAmenities = []string{"Free WiFi", "Power outlets", "Restrooms"}

// ComposeInstructions turns the situation into a prioritized instruction list.
// A baggage problem yields a single contact-service instruction and nothing else.
func (c Config) ComposeInstructions(s models.Situation, sel models.CheckpointSelection, pos domain.Position, f models.FlightInfo, b models.BaggageSnapshot) []models.Instruction {
	if s.BaggageProblem {
		return []models.Instruction{{
			Priority:    1,
			Type:        domain.InstructionCritical,
			Action:      domain.ActionContactService,
			Destination: c.BaggageDesk,
			Description: fmt.Sprintf("Your baggage is %s. Please go to the baggage service desk immediately.",
				b.Status),
			EstimatedMinutes: c.BaggageDeskMinutes,
			Icon:             "alert-circle",
			Details: map[string]any{
				"phone": c.BaggageDeskPhone,
				"hours": c.BaggageDeskHours,
			},
		}}
	}

	out := make([]models.Instruction, 0, 3)
	add := func(in models.Instruction) {
		in.Priority = len(out) + 1
		out = append(out, in)
	}

	critical := s.Urgency == domain.UrgencyCritical

	if !pos.PastSecurity() {
		typ := domain.InstructionNormal
		if critical {
			typ = domain.InstructionUrgent
		}
		var alternative any
		if sel.Alternative != nil {
			alternative = sel.Alternative.ID
		}
		add(models.Instruction{
			Type:        typ,
			Action:      domain.ActionPassSecurity,
			Destination: "Security Checkpoint " + sel.Best.ID,
			Description: strings.TrimSpace(fmt.Sprintf("Estimated wait: %d minutes. %s",
				sel.Best.MeanWaitMinutes, sel.Advice)),
			EstimatedMinutes: sel.Best.MeanWaitMinutes + c.SecurityOverheadMinutes,
			Icon:             "shield-check",
			Details: map[string]any{
				"position":    sel.Best.Position,
				"alternative": alternative,
			},
		})
	}

	if s.TimeAvailableMinutes > c.LeisureThresholdMinutes && !critical {
		spot := c.leisureSpot(c.gateZone(f))
		amenities := make([]string, len(leisureAmenities))
		copy(amenities, leisureAmenities)
		add(models.Instruction{
			Type:             domain.InstructionInfo,
			Action:           domain.ActionWait,
			Destination:      spot.Name,
			Description:      spot.Description + " You will be notified when it is time to head to the gate.",
			EstimatedMinutes: s.TimeAvailableMinutes - c.LeisureInstructionReserveMinutes,
			Icon:             "coffee",
			Details: map[string]any{
				"zone_id":   spot.ID,
				"amenities": amenities,
			},
		})
	}

	gate := c.currentGate(f)
	lead := c.boardingLead(critical)
	typ := domain.InstructionNormal
	if s.Urgency >= domain.UrgencyHigh {
		typ = domain.InstructionUrgent
	}
	add(models.Instruction{
		Type:             typ,
		Action:           domain.ActionBoard,
		Destination:      "Gate " + gate,
		Description:      fmt.Sprintf("Be at the gate %d minutes before departure.", lead),
		EstimatedMinutes: lead,
		Icon:             "plane",
		Details: map[string]any{
			"gate":                gate,
			"terminal":            utils.Fallback(f.Terminal, c.DefaultTerminal),
			"scheduled_departure": f.DepartureTime,
		},
	})

	return out
}
