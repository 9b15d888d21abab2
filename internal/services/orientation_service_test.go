package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"orientation/internal/domain"
	"orientation/internal/domain/models"
	"orientation/internal/engine"
)

var fixedNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

type stubWeather struct {
	summary models.WeatherSummary
	delay   time.Duration
}

func (s stubWeather) Summary(ctx context.Context) models.WeatherSummary {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return models.DefaultWeatherSummary()
		}
	}
	return s.summary
}

type stubBaggage struct {
	status domain.BaggageStatus
	calls  *callCounter
}

func (s stubBaggage) Status(_ context.Context, id string) models.BaggageSnapshot {
	if s.calls != nil {
		s.calls.inc()
	}
	return models.BaggageSnapshot{ID: id, Status: s.status}
}

type stubFlight struct {
	info models.FlightInfo
	err  error
}

func (s stubFlight) Info(_ context.Context, number string) (models.FlightInfo, error) {
	if s.err != nil {
		return models.FlightInfo{}, s.err
	}
	info := s.info
	info.Number = number
	return info, nil
}

type callCounter struct {
	mu sync.Mutex
	n  int
}

func (c *callCounter) inc() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

func (c *callCounter) value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

type chanSink chan models.AuditRecord

func (c chanSink) Record(_ context.Context, rec models.AuditRecord) error {
	c <- rec
	return nil
}

type failingSink struct{ done chan struct{} }

func (f failingSink) Record(context.Context, models.AuditRecord) error {
	defer close(f.done)
	return errors.New("audit store down")
}

func newService(w WeatherSource, b BaggageSource, f FlightSource, sink AuditSink) OrientationService {
	return OrientationService{
		Engine:        engine.DefaultConfig(),
		Weather:       w,
		Baggage:       b,
		Flight:        f,
		Audit:         sink,
		SourceTimeout: time.Second,
		Now:           func() time.Time { return fixedNow },
		RequestID:     "test-req",
	}
}

func flightIn(minutes int, original, current string) models.FlightInfo {
	return models.FlightInfo{
		DepartureTime: fixedNow.Add(time.Duration(minutes) * time.Minute).Format(time.RFC3339),
		OriginalGate:  original,
		CurrentGate:   current,
		Terminal:      "2",
	}
}

func TestOrientSuccess(t *testing.T) {
	sink := make(chanSink, 1)
	svc := newService(
		stubWeather{summary: models.DefaultWeatherSummary()},
		stubBaggage{status: domain.BaggageLoaded},
		stubFlight{info: flightIn(120, "A1", "A1")},
		sink,
	)

	res, err := svc.Orient(context.Background(), OrientationRawRequest{FlightNumber: "af1234", BaggageID: "BAG123456", Position: "entry"})
	if err != nil {
		t.Fatalf("Orient returned error: %v", err)
	}
	if !res.Success || res.FlightNumber != "AF1234" || !res.Timestamp.Equal(fixedNow) {
		t.Fatalf("result header = %+v", res)
	}
	if res.Situation.Urgency != domain.UrgencyLow || len(res.Itinerary) != 3 || len(res.Instructions) != 3 {
		t.Fatalf("result = %+v", res)
	}

	select {
	case rec := <-sink:
		if rec.FlightNumber != "AF1234" || rec.BaggageID != "BAG123456" || rec.RequestID != "test-req" {
			t.Fatalf("audit record = %+v", rec)
		}
		if len(rec.Instructions) != len(res.Instructions) {
			t.Fatalf("audit instructions = %d, want %d", len(rec.Instructions), len(res.Instructions))
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("audit record was not dispatched")
	}
}

func TestOrientValidationShortCircuits(t *testing.T) {
	calls := &callCounter{}
	svc := newService(
		stubWeather{summary: models.DefaultWeatherSummary()},
		stubBaggage{status: domain.BaggageLoaded, calls: calls},
		stubFlight{info: flightIn(120, "A1", "A1")},
		nil,
	)

	tests := []struct {
		req  OrientationRawRequest
		want error
	}{
		{OrientationRawRequest{FlightNumber: "AB", BaggageID: "BAG123456"}, domain.ErrInvalidFlightNumber},
		{OrientationRawRequest{FlightNumber: "AF1234", BaggageID: "AB"}, domain.ErrInvalidBaggageID},
		{OrientationRawRequest{FlightNumber: "AF1234", BaggageID: "BAG123456", Position: "runway"}, domain.ErrInvalidPosition},
	}
	for _, tt := range tests {
		_, err := svc.Orient(context.Background(), tt.req)
		if !errors.Is(err, tt.want) || !errors.As(err, new(domain.ValidationError)) {
			t.Fatalf("%+v: err = %v, want %v", tt.req, err, tt.want)
		}
	}
	if calls.value() != 0 {
		t.Fatalf("upstream called %d times for invalid input", calls.value())
	}
}

func TestOrientFlightNotFound(t *testing.T) {
	notFound := domain.NotFoundError{Resource: "flight", ID: "AF1234", Err: domain.ErrFlightNotFound}
	svc := newService(
		stubWeather{summary: models.DefaultWeatherSummary(), delay: 5 * time.Second},
		stubBaggage{status: domain.BaggageLoaded},
		stubFlight{err: notFound},
		nil,
	)

	start := time.Now()
	_, err := svc.Orient(context.Background(), OrientationRawRequest{FlightNumber: "AF1234", BaggageID: "BAG123456"})
	if !domain.IsNotFound(err) || !errors.Is(err, domain.ErrFlightNotFound) {
		t.Fatalf("err = %v, want flight not found", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("flight failure did not cancel sibling fetches (took %s)", elapsed)
	}
}

func TestOrientSlowWeatherDegrades(t *testing.T) {
	svc := newService(
		stubWeather{summary: models.WeatherSummary{AlertLevel: domain.WeatherCritical}, delay: 5 * time.Second},
		stubBaggage{status: domain.BaggageLoaded},
		stubFlight{info: flightIn(120, "A1", "A1")},
		nil,
	)
	svc.SourceTimeout = 50 * time.Millisecond

	res, err := svc.Orient(context.Background(), OrientationRawRequest{FlightNumber: "AF1234", BaggageID: "BAG123456"})
	if err != nil {
		t.Fatalf("Orient returned error: %v", err)
	}
	if res.Situation.WeatherDisruption || res.Situation.Urgency != domain.UrgencyLow {
		t.Fatalf("slow weather should degrade to the default snapshot: %+v", res.Situation)
	}
}

func TestOrientCanceledRequest(t *testing.T) {
	svc := newService(
		stubWeather{summary: models.DefaultWeatherSummary()},
		stubBaggage{status: domain.BaggageLoaded},
		stubFlight{info: flightIn(120, "A1", "A1")},
		nil,
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Orient(ctx, OrientationRawRequest{FlightNumber: "AF1234", BaggageID: "BAG123456"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestOrientBaggageProblem(t *testing.T) {
	svc := newService(
		stubWeather{summary: models.WeatherSummary{AlertLevel: domain.WeatherCritical, Impact: models.WeatherImpact{Conditions: []string{"storm"}}}},
		stubBaggage{status: domain.BaggageMisrouted},
		stubFlight{info: flightIn(10, "A1", "A1")},
		nil,
	)

	res, err := svc.Orient(context.Background(), OrientationRawRequest{FlightNumber: "AF1234", BaggageID: "BAG123456"})
	if err != nil {
		t.Fatalf("Orient returned error: %v", err)
	}
	if len(res.Instructions) != 1 || res.Instructions[0].Action != domain.ActionContactService {
		t.Fatalf("instructions = %+v", res.Instructions)
	}
}

func TestDispatchAuditSwallowsErrors(t *testing.T) {
	done := make(chan struct{})
	DispatchAudit(failingSink{done: done}, models.AuditRecord{RequestID: "r"})
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("sink was not called")
	}
	DispatchAudit(nil, models.AuditRecord{})
}

func TestMultiAuditSink(t *testing.T) {
	a := make(chanSink, 1)
	b := make(chanSink, 1)
	done := make(chan struct{})
	sink := MultiAuditSink{a, failingSink{done: done}, b}

	err := sink.Record(context.Background(), models.AuditRecord{FlightNumber: "AF1234"})
	if err == nil {
		t.Fatalf("expected the failing sink error")
	}
	if (<-a).FlightNumber != "AF1234" || (<-b).FlightNumber != "AF1234" {
		t.Fatalf("records not delivered to every sink")
	}
}
