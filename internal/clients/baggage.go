package clients

import (
	"context"
	"net/http"
	"net/url"

	"orientation/internal/domain/models"
	"orientation/internal/utils"
)

// BaggageClient reads baggage tracking status.
type BaggageClient struct {
	BaseURL string
	HTTP    *http.Client
}

// Status never fails: an unavailable source yields a REGISTERED snapshot.
func (c BaggageClient) Status(ctx context.Context, baggageID string) models.BaggageSnapshot {
	var out models.BaggageSnapshot
	if err := getJSON(ctx, c.HTTP, "baggage", joinURL(c.BaseURL, "api", "baggage", url.PathEscape(baggageID)), &out); err != nil {
		utils.LogEvent(utils.RequestIDFrom(ctx), "baggage", "fallback", "baggage_id="+baggageID+" err="+err.Error())
		return models.DefaultBaggageSnapshot(baggageID, utils.NowUTC())
	}
	if out.ID == "" {
		out.ID = baggageID
	}
	return out
}
