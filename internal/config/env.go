package config

import (
	"log"
	"os"
	"strings"
	"time"

	"orientation/internal/utils"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	ServiceName    string
	ServiceVersion string
	AirportCode    string

	WeatherServiceURL string
	BaggageServiceURL string
	FlightServiceURL  string
	UpstreamTimeout   time.Duration

	AuditDBDriver string
	AuditDBDSN    string

	JWTSecret          string
	CORSAllowedOrigins []string
	DefaultTerminal    string
}

// LoadEnv reads configuration from the process environment. A .env file in the
// working directory is loaded first when present; real environment variables win.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[CONFIG] cannot read .env: %v", err)
	}

	return Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: getenv("GIN_MODE", ""),

		ServiceName:    getenv("SERVICE_NAME", "orientation-service"),
		ServiceVersion: getenv("SERVICE_VERSION", "1.0.0"),
		AirportCode:    getenv("AIRPORT_CODE", "CDG"),

		WeatherServiceURL: getenv("WEATHER_SERVICE_URL", "http://weather-service:8000"),
		BaggageServiceURL: getenv("BAGGAGE_SERVICE_URL", "http://baggage-service:8000"),
		FlightServiceURL:  getenv("FLIGHT_SERVICE_URL", "http://flight-service:8000"),
		UpstreamTimeout:   getduration("UPSTREAM_TIMEOUT", 10*time.Second),

		AuditDBDriver: strings.ToLower(getenv("AUDIT_DB_DRIVER", "")),
		AuditDBDSN:    getenv("AUDIT_DB_DSN", ""),

		JWTSecret:          getenv("JWT_SECRET", ""),
		CORSAllowedOrigins: utils.SplitCSV(os.Getenv("CORS_ALLOWED_ORIGINS")),
		DefaultTerminal:    getenv("DEFAULT_TERMINAL", "2"),
	}
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[CONFIG] %s=%q is invalid, using %s", key, v, fallback)
		return fallback
	}
	return d
}
