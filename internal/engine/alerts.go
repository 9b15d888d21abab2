package engine

import (
	"fmt"
	"strings"

	"orientation/internal/domain"
	"orientation/internal/domain/models"
)

func action(s string) *string { return &s }

// ComposeAlerts derives user-facing alerts from the situation flags.
func (c Config) ComposeAlerts(s models.Situation, w models.WeatherSummary, f models.FlightInfo) []models.Alert {
	alerts := []models.Alert{}

	if s.GateChanged {
		alerts = append(alerts, models.Alert{
			Level:             domain.AlertWarning,
			Message:           fmt.Sprintf("Gate change: %s → %s", f.OriginalGate, f.CurrentGate),
			Icon:              "alert-triangle",
			RecommendedAction: action("Check the information displays"),
		})
	}

	if s.WeatherDisruption {
		conditions := strings.Join(w.Impact.Conditions, ", ")
		if w.AlertLevel == domain.WeatherCritical {
			alerts = append(alerts, models.Alert{
				Level:             domain.AlertDanger,
				Message:           fmt.Sprintf("Critical weather alert: %s. Significant delays expected.", conditions),
				Icon:              "cloud-lightning",
				RecommendedAction: action("Stay informed through the app"),
			})
		} else {
			alerts = append(alerts, models.Alert{
				Level:   domain.AlertInfo,
				Message: fmt.Sprintf("Degraded weather conditions: %s. Minor delays possible.", conditions),
				Icon:    "cloud",
			})
		}
	}

	switch s.Urgency {
	case domain.UrgencyCritical:
		alerts = append(alerts, models.Alert{
			Level:             domain.AlertDanger,
			Message:           fmt.Sprintf("Limited time: %d minutes before departure!", s.TimeAvailableMinutes),
			Icon:              "clock",
			RecommendedAction: action("Head to your gate immediately"),
		})
	case domain.UrgencyHigh:
		alerts = append(alerts, models.Alert{
			Level:             domain.AlertWarning,
			Message:           fmt.Sprintf("Boarding soon: %d minutes left", s.TimeAvailableMinutes),
			Icon:              "clock",
			RecommendedAction: action("Do not delay"),
		})
	}

	return alerts
}
