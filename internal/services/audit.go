package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"orientation/internal/domain/models"
	"orientation/internal/repositories"
	"orientation/internal/utils"
)

const auditTimeout = 5 * time.Second

// AuditSink receives computed orientations after the response is assembled.
type AuditSink interface {
	Record(ctx context.Context, rec models.AuditRecord) error
}

// LogAuditSink writes a single summary line per orientation.
type LogAuditSink struct{}

func (LogAuditSink) Record(_ context.Context, rec models.AuditRecord) error {
	utils.LogEvent(rec.RequestID, "audit", "orientation",
		fmt.Sprintf("flight_number=%s baggage_id=%s urgency=%s instructions=%d",
			rec.FlightNumber, rec.BaggageID, rec.Situation.Urgency, len(rec.Instructions)))
	return nil
}

// RepositoryAuditSink persists orientations in orientation_logs.
type RepositoryAuditSink struct {
	Repo repositories.OrientationLogRepository
}

func (s RepositoryAuditSink) Record(ctx context.Context, rec models.AuditRecord) error {
	_, err := s.Repo.Insert(ctx, rec)
	return err
}

// MultiAuditSink fans a record out to several sinks and reports the first error.
type MultiAuditSink []AuditSink

func (m MultiAuditSink) Record(ctx context.Context, rec models.AuditRecord) error {
	var first error
	for _, sink := range m {
		if err := sink.Record(ctx, rec); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// DispatchAudit hands rec to sink in the background. Errors and panics are logged
// and never reach the caller.
func DispatchAudit(sink AuditSink, rec models.AuditRecord) {
	if sink == nil {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[AUDIT] panic request_id=%s: %v", rec.RequestID, r)
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()
		if err := sink.Record(ctx, rec); err != nil {
			utils.LogEvent(rec.RequestID, "audit", "record_failed", err.Error())
		}
	}()
}
