package engine

import (
	"fmt"
	"time"

	"orientation/internal/domain"
	"orientation/internal/domain/models"
	"orientation/internal/utils"
)

// Analyze fuses the three snapshots into a Situation. Each rule can only raise urgency.
func (c Config) Analyze(w models.WeatherSummary, b models.BaggageSnapshot, f models.FlightInfo, now time.Time) models.Situation {
	s := models.Situation{
		TripType:        domain.TripNormal,
		Urgency:         domain.UrgencyLow,
		Recommendations: []string{},
	}

	if b.Status.IsProblem() {
		s.BaggageProblem = true
		s.TripType = domain.TripBaggageProblem
		s.Urgency = s.Urgency.Max(domain.UrgencyHigh)
	}

	if w.AlertLevel != domain.WeatherLow && w.AlertLevel != "" {
		s.WeatherDisruption = true
		if w.AlertLevel == domain.WeatherCritical {
			s.Urgency = s.Urgency.Max(domain.UrgencyCritical)
		} else {
			s.Urgency = s.Urgency.Max(domain.UrgencyMedium)
		}
	}

	if f.OriginalGate != "" && f.CurrentGate != "" && f.OriginalGate != f.CurrentGate {
		s.GateChanged = true
		s.Recommendations = append(s.Recommendations,
			fmt.Sprintf("Attention: gate change %s → %s", f.OriginalGate, f.CurrentGate))
	}

	s.TimeAvailableMinutes = c.timeAvailable(f, now)

	switch {
	case s.TimeAvailableMinutes < c.CriticalBelowMinutes:
		s.Urgency = s.Urgency.Max(domain.UrgencyCritical)
	case s.TimeAvailableMinutes < c.UrgentBelowMinutes:
		s.Urgency = s.Urgency.Max(domain.UrgencyHigh)
	}

	return s
}

// timeAvailable is the whole number of minutes until departure, never negative.
// A missing or unreadable departure time yields the configured default.
func (c Config) timeAvailable(f models.FlightInfo, now time.Time) int {
	if f.DepartureTime == "" {
		return c.DefaultTimeAvailable
	}
	dep, err := utils.ParseISOTime(f.DepartureTime)
	if err != nil {
		return c.DefaultTimeAvailable
	}
	return utils.MinutesUntil(dep, now)
}
