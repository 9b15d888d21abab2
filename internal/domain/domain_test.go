package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestUrgencyOrderingAndMax(t *testing.T) {
	if !(UrgencyLow < UrgencyMedium && UrgencyMedium < UrgencyHigh && UrgencyHigh < UrgencyCritical) {
		t.Fatalf("urgency tiers are not ordered")
	}
	if got := UrgencyCritical.Max(UrgencyHigh); got != UrgencyCritical {
		t.Fatalf("Max never lowers urgency, got %s", got)
	}
	if got := UrgencyLow.Max(UrgencyMedium); got != UrgencyMedium {
		t.Fatalf("Max = %s, want medium", got)
	}
}

func TestUrgencyJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		U Urgency `json:"u"`
	}{UrgencyHigh})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"u":"high"}` {
		t.Fatalf("marshal = %s", b)
	}

	var u Urgency
	if err := json.Unmarshal([]byte(`"Critical"`), &u); err != nil || u != UrgencyCritical {
		t.Fatalf("unmarshal = %v, %v", u, err)
	}
	if err := json.Unmarshal([]byte(`"extreme"`), &u); err == nil {
		t.Fatalf("expected error for unknown urgency")
	}
	if _, err := ParseUrgency("medium"); err != nil {
		t.Fatalf("ParseUrgency: %v", err)
	}
}

func TestBaggageStatusIsProblem(t *testing.T) {
	for status, want := range map[BaggageStatus]bool{
		BaggageRegistered:        false,
		BaggageLoaded:            false,
		BaggageMisrouted:         true,
		BaggageUnderVerification: true,
		"IN_TRANSIT":             false,
	} {
		if got := status.IsProblem(); got != want {
			t.Fatalf("%s.IsProblem() = %v, want %v", status, got, want)
		}
	}
}

func TestPositionPastSecurity(t *testing.T) {
	for pos, want := range map[Position]bool{
		PositionUnknown:      false,
		PositionEntry:        false,
		PositionSecurity:     false,
		PositionBoardingZone: true,
		PositionGate:         true,
	} {
		if got := pos.PastSecurity(); got != want {
			t.Fatalf("%q.PastSecurity() = %v, want %v", pos, got, want)
		}
	}
}

func TestErrorClassification(t *testing.T) {
	nf := NotFoundError{Resource: "flight", ID: "AF1234", Err: ErrFlightNotFound}
	if !IsNotFound(nf) || !errors.Is(nf, ErrFlightNotFound) || nf.Error() != "flight AF1234 not found" {
		t.Fatalf("not found error = %v", nf)
	}

	up := UpstreamError{Source: "weather", Err: errors.New("timeout")}
	if !errors.Is(up, ErrUpstreamUnavailable) {
		t.Fatalf("upstream error = %v", up)
	}

	wrapped := InternalError{Msg: "render", Err: up}
	var target UpstreamError
	if !errors.As(wrapped, &target) || target.Source != "weather" || IsNotFound(wrapped) {
		t.Fatalf("internal error classification failed")
	}

	v := ValidationError{Field: "position", Msg: "invalid position", Err: ErrInvalidPosition}
	var verr ValidationError
	if !errors.As(error(v), &verr) || verr.Field != "position" || !errors.Is(v, ErrInvalidPosition) {
		t.Fatalf("validation error = %v", v)
	}
}
