package clients

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"orientation/internal/domain"
	"orientation/internal/domain/models"
	"orientation/internal/utils"
)

// FlightClient reads flight schedule state.
type FlightClient struct {
	BaseURL string
	HTTP    *http.Client
}

// Info returns domain.NotFoundError when the flight service is unreachable or
// does not know the flight. Cancellation of the caller's context is returned as is.
func (c FlightClient) Info(ctx context.Context, flightNumber string) (models.FlightInfo, error) {
	var out models.FlightInfo
	err := getJSON(ctx, c.HTTP, "flight", joinURL(c.BaseURL, "api", "flight", url.PathEscape(flightNumber)), &out)
	if err == nil {
		if out.Number == "" {
			out.Number = flightNumber
		}
		return out, nil
	}

	if errors.Is(err, context.Canceled) {
		return out, err
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "flight", "lookup_failed", "flight_number="+flightNumber+" err="+err.Error())
	return out, domain.NotFoundError{Resource: "flight", ID: flightNumber, Err: errors.Join(domain.ErrFlightNotFound, err)}
}
