package services

import (
	"context"
	"fmt"
	"time"

	"orientation/internal/domain/models"
	"orientation/internal/engine"
	"orientation/internal/utils"

	"golang.org/x/sync/errgroup"
)

// WeatherSource never fails; it substitutes a default snapshot itself.
type WeatherSource interface {
	Summary(ctx context.Context) models.WeatherSummary
}

// BaggageSource never fails; it substitutes a default snapshot itself.
type BaggageSource interface {
	Status(ctx context.Context, baggageID string) models.BaggageSnapshot
}

// FlightSource fails with domain.NotFoundError when the flight cannot be resolved.
type FlightSource interface {
	Info(ctx context.Context, flightNumber string) (models.FlightInfo, error)
}

// OrientationRawRequest carries identifiers as received from the client.
type OrientationRawRequest struct {
	FlightNumber string
	BaggageID    string
	Position     string
}

// OrientationService validates input, fetches the three snapshots concurrently and
// runs the engine over them.
type OrientationService struct {
	Engine        engine.Config
	Weather       WeatherSource
	Baggage       BaggageSource
	Flight        FlightSource
	Audit         AuditSink
	SourceTimeout time.Duration
	Now           func() time.Time
	RequestID     string
}

type snapshots struct {
	weather models.WeatherSummary
	baggage models.BaggageSnapshot
	flight  models.FlightInfo
}

// Orient computes the full guidance for one traveler.
func (s OrientationService) Orient(ctx context.Context, raw OrientationRawRequest) (models.OrientationResult, error) {
	req, err := Validate(raw)
	if err != nil {
		return models.OrientationResult{}, err
	}
	utils.LogEvent(s.RequestID, "orientation", "start",
		fmt.Sprintf("flight_number=%s baggage_id=%s position=%s", req.FlightNumber, req.BaggageID, req.Position))

	snap, err := s.fetch(utils.WithRequestID(ctx, s.RequestID), req)
	if err != nil {
		return models.OrientationResult{}, err
	}

	now := s.now()
	g := s.Engine.Evaluate(snap.weather, snap.baggage, snap.flight, req.Position, now)
	utils.LogEvent(s.RequestID, "orientation", "analyze",
		fmt.Sprintf("urgency=%s time_available=%d baggage_problem=%t", g.Situation.Urgency, g.Situation.TimeAvailableMinutes, g.Situation.BaggageProblem))

	result := models.OrientationResult{
		Success:      true,
		FlightNumber: req.FlightNumber,
		Timestamp:    now,
		Situation:    g.Situation,
		Instructions: g.Instructions,
		Alerts:       g.Alerts,
		Itinerary:    g.Itinerary,
		Flight:       snap.flight,
		Baggage:      snap.baggage,
		Weather:      snap.weather,
	}

	DispatchAudit(s.Audit, models.AuditRecord{
		RequestID:     s.RequestID,
		FlightNumber:  req.FlightNumber,
		BaggageID:     req.BaggageID,
		Position:      req.Position,
		Situation:     g.Situation,
		BaggageStatus: snap.baggage.Status,
		Instructions:  g.Instructions,
		Itinerary:     g.Itinerary,
		Alerts:        g.Alerts,
		WeatherImpact: snap.weather.Impact,
		CreatedAt:     now,
	})

	return result, nil
}

// Validate normalizes the raw identifiers or returns a domain.ValidationError.
func Validate(raw OrientationRawRequest) (models.OrientationRequest, error) {
	flight, err := engine.ValidateFlightNumber(raw.FlightNumber)
	if err != nil {
		return models.OrientationRequest{}, err
	}
	baggage, err := engine.ValidateBaggageID(raw.BaggageID)
	if err != nil {
		return models.OrientationRequest{}, err
	}
	pos, err := engine.ValidatePosition(raw.Position)
	if err != nil {
		return models.OrientationRequest{}, err
	}
	return models.OrientationRequest{FlightNumber: flight, BaggageID: baggage, Position: pos}, nil
}

// fetch issues the three upstream calls concurrently, each under its own timeout.
// A flight failure cancels the siblings.
func (s OrientationService) fetch(ctx context.Context, req models.OrientationRequest) (snapshots, error) {
	var out snapshots
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c, cancel := s.sourceContext(gctx)
		defer cancel()
		out.weather = s.Weather.Summary(c)
		return nil
	})
	g.Go(func() error {
		c, cancel := s.sourceContext(gctx)
		defer cancel()
		out.baggage = s.Baggage.Status(c, req.BaggageID)
		return nil
	})
	g.Go(func() error {
		c, cancel := s.sourceContext(gctx)
		defer cancel()
		f, err := s.Flight.Info(c, req.FlightNumber)
		if err != nil {
			return err
		}
		out.flight = f
		return nil
	})

	if err := g.Wait(); err != nil {
		return snapshots{}, err
	}
	if err := ctx.Err(); err != nil {
		return snapshots{}, err
	}
	return out, nil
}

func (s OrientationService) sourceContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.SourceTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.SourceTimeout)
}

func (s OrientationService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return utils.NowUTC()
}
