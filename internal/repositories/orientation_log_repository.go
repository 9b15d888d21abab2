package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	intconfig "orientation/internal/config"
	intdb "orientation/internal/db"
	"orientation/internal/domain/models"
)

const orientationLogsTable = "orientation_logs"

// OrientationLogRepository stores audit rows for computed orientations.
type OrientationLogRepository struct {
	DB      *sql.DB
	Dialect string
}

func (r OrientationLogRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert writes one audit row and returns its id.
func (r OrientationLogRepository) Insert(ctx context.Context, rec models.AuditRecord) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, fmt.Errorf("db not available for orientation_logs")
	}
	if !intdb.HasTable(ctx, db, r.Dialect, orientationLogsTable) {
		return 0, fmt.Errorf("table %s missing, run migration first", orientationLogsTable)
	}

	instructions, err := marshalColumn(rec.Instructions)
	if err != nil {
		return 0, fmt.Errorf("encode instructions: %w", err)
	}
	itinerary, err := marshalColumn(rec.Itinerary)
	if err != nil {
		return 0, fmt.Errorf("encode itinerary: %w", err)
	}
	alerts, err := marshalColumn(rec.Alerts)
	if err != nil {
		return 0, fmt.Errorf("encode alerts: %w", err)
	}
	impact, err := marshalColumn(rec.WeatherImpact)
	if err != nil {
		return 0, fmt.Errorf("encode weather impact: %w", err)
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO orientation_logs
			(request_id, flight_number, baggage_id, position, urgency, trip_type, baggage_status,
			 time_available, instructions, itinerary, alerts, weather_impact, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		intdb.NullIfEmpty(rec.RequestID),
		rec.FlightNumber,
		rec.BaggageID,
		intdb.NullIfEmpty(string(rec.Position)),
		rec.Situation.Urgency.String(),
		string(rec.Situation.TripType),
		string(rec.BaggageStatus),
		rec.Situation.TimeAvailableMinutes,
		instructions,
		itinerary,
		alerts,
		impact,
		rec.CreatedAt.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert orientation_logs: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, nil
	}
	return id, nil
}

// CountByFlight returns how many orientations were logged for a flight.
func (r OrientationLogRepository) CountByFlight(ctx context.Context, flightNumber string) (int, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(ctx, db, r.Dialect, orientationLogsTable) {
		return 0, nil
	}
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orientation_logs WHERE flight_number = ?`, flightNumber).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orientation_logs: %w", err)
	}
	return n, nil
}

func marshalColumn(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
