package clients

import (
	"context"
	"net/http"

	"orientation/internal/domain/models"
	"orientation/internal/utils"
)

// WeatherClient reads the airport weather summary.
type WeatherClient struct {
	BaseURL string
	HTTP    *http.Client
}

// Summary never fails: an unavailable source yields the low-alert default.
func (c WeatherClient) Summary(ctx context.Context) models.WeatherSummary {
	var out models.WeatherSummary
	if err := getJSON(ctx, c.HTTP, "weather", joinURL(c.BaseURL, "api", "weather", "summary"), &out); err != nil {
		utils.LogEvent(utils.RequestIDFrom(ctx), "weather", "fallback", err.Error())
		return models.DefaultWeatherSummary()
	}
	if out.Impact.Conditions == nil {
		out.Impact.Conditions = []string{}
	}
	if out.Impact.CongestedSectors == nil {
		out.Impact.CongestedSectors = []string{}
	}
	return out
}
