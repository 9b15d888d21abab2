package models

import "orientation/internal/domain"

// Situation is the fused assessment for a single request. Treat it as a value.
type Situation struct {
	TripType             domain.TripType `json:"trip_type"`
	Urgency              domain.Urgency  `json:"urgency"`
	BaggageProblem       bool            `json:"baggage_problem"`
	WeatherDisruption    bool            `json:"weather_disruption"`
	GateChanged          bool            `json:"gate_changed"`
	TimeAvailableMinutes int             `json:"time_available_minutes"`
	Recommendations      []string        `json:"recommendations"`
}

// Checkpoint is a security-control station serving one or more gate zones.
type Checkpoint struct {
	ID              string   `json:"id"`
	MeanWaitMinutes int      `json:"mean_wait_minutes"`
	Position        string   `json:"position"`
	Zones           []string `json:"zones"`
}

// Serves reports whether the checkpoint covers the gate zone.
func (c Checkpoint) Serves(zone string) bool {
	for _, z := range c.Zones {
		if z == zone {
			return true
		}
	}
	return false
}

// CheckpointSelection is the result of choosing a checkpoint for a gate zone.
type CheckpointSelection struct {
	Best        Checkpoint  `json:"best"`
	Alternative *Checkpoint `json:"alternative,omitempty"`
	Advice      string      `json:"advice"`
}

// LeisureSpot is a waiting area near a gate zone.
type LeisureSpot struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ItineraryStep struct {
	Order            int               `json:"order"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	Zone             string            `json:"zone"`
	EstimatedMinutes int               `json:"estimated_minutes"`
	Status           domain.StepStatus `json:"status"`
}

type Instruction struct {
	Priority         int                    `json:"priority"`
	Type             domain.InstructionType `json:"type"`
	Action           domain.Action          `json:"action"`
	Destination      string                 `json:"destination"`
	Description      string                 `json:"description"`
	EstimatedMinutes int                    `json:"estimated_minutes"`
	Icon             string                 `json:"icon"`
	Details          map[string]any         `json:"details,omitempty"`
}

type Alert struct {
	Level             domain.AlertLevel `json:"level"`
	Message           string            `json:"message"`
	Icon              string            `json:"icon"`
	RecommendedAction *string           `json:"recommended_action"`
}
