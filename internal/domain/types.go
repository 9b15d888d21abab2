package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Urgency is a totally ordered severity tier. Higher values are more urgent.
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyMedium
	UrgencyHigh
	UrgencyCritical
)

var urgencyNames = [...]string{"low", "medium", "high", "critical"}

func (u Urgency) String() string {
	if u < UrgencyLow || u > UrgencyCritical {
		return fmt.Sprintf("urgency(%d)", int(u))
	}
	return urgencyNames[u]
}

// Max returns the more urgent of the two tiers.
func (u Urgency) Max(other Urgency) Urgency {
	if other > u {
		return other
	}
	return u
}

func ParseUrgency(s string) (Urgency, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range urgencyNames {
		if name == s {
			return Urgency(i), nil
		}
	}
	return UrgencyLow, fmt.Errorf("unknown urgency %q", s)
}

func (u Urgency) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *Urgency) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseUrgency(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// TripType classifies the traveler's journey.
type TripType string

const (
	TripNormal         TripType = "normal"
	TripBaggageProblem TripType = "baggage_problem"
)

// BaggageStatus is reported by the baggage source. Unknown values are kept verbatim.
type BaggageStatus string

const (
	BaggageRegistered        BaggageStatus = "REGISTERED"
	BaggageLoaded            BaggageStatus = "LOADED"
	BaggageMisrouted         BaggageStatus = "MISROUTED"
	BaggageUnderVerification BaggageStatus = "UNDER_VERIFICATION"
)

// IsProblem reports whether the status overrides all other guidance.
func (s BaggageStatus) IsProblem() bool {
	return s == BaggageMisrouted || s == BaggageUnderVerification
}

// WeatherAlertLevel is the airport-wide weather alert published by the weather source.
type WeatherAlertLevel string

const (
	WeatherLow      WeatherAlertLevel = "low"
	WeatherMedium   WeatherAlertLevel = "medium"
	WeatherCritical WeatherAlertLevel = "critical"
)

// Position is where the traveler says they currently are. The zero value means unknown.
type Position string

const (
	PositionUnknown      Position = ""
	PositionEntry        Position = "entry"
	PositionSecurity     Position = "security"
	PositionBoardingZone Position = "boarding_zone"
	PositionGate         Position = "gate"
)

var validPositions = []Position{PositionEntry, PositionSecurity, PositionBoardingZone, PositionGate}

// ValidPositions lists the accepted non-empty positions in display order.
func ValidPositions() []Position {
	out := make([]Position, len(validPositions))
	copy(out, validPositions)
	return out
}

// PastSecurity reports whether the traveler has already cleared security.
func (p Position) PastSecurity() bool {
	return p == PositionBoardingZone || p == PositionGate
}

type InstructionType string

const (
	InstructionNormal   InstructionType = "normal"
	InstructionUrgent   InstructionType = "urgent"
	InstructionCritical InstructionType = "critical"
	InstructionInfo     InstructionType = "info"
)

type Action string

const (
	ActionGoTo           Action = "go_to"
	ActionPassSecurity   Action = "pass_security"
	ActionWait           Action = "wait"
	ActionBoard          Action = "board"
	ActionContactService Action = "contact_service"
)

type AlertLevel string

const (
	AlertInfo    AlertLevel = "info"
	AlertWarning AlertLevel = "warning"
	AlertDanger  AlertLevel = "danger"
)

type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepInProgress StepStatus = "in_progress"
	StepDone       StepStatus = "done"
)
