package services

import (
	"bytes"
	"fmt"
	"strings"

	"orientation/internal/domain/models"
	"orientation/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders printable guidance documents.
type DocsService struct {
	RequestID string
}

// GenerateItineraryPDF renders the situation, itinerary and instructions of a result.
func (s DocsService) GenerateItineraryPDF(res models.OrientationResult) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generate_itinerary", "flight_number="+res.FlightNumber)
	return buildItineraryPDF(res)
}

func buildItineraryPDF(res models.OrientationResult) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Boarding Itinerary", false)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOARDING ITINERARY")
	pdf.Ln(12)

	sit := res.Situation
	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Flight         : %s", utils.Fallback(res.FlightNumber, "-")),
		fmt.Sprintf("Departure      : %s", utils.Fallback(res.Flight.DepartureTime, "-")),
		fmt.Sprintf("Gate           : %s (terminal %s)", utils.Fallback(res.Flight.CurrentGate, "-"), utils.Fallback(res.Flight.Terminal, "-")),
		fmt.Sprintf("Baggage        : %s (%s)", utils.Fallback(res.Baggage.ID, "-"), utils.Fallback(string(res.Baggage.Status), "-")),
		fmt.Sprintf("Urgency        : %s", sit.Urgency),
		fmt.Sprintf("Time available : %d min", sit.TimeAvailableMinutes),
		fmt.Sprintf("Generated      : %s UTC", utils.FormatDateTime(res.Timestamp)),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, tr(l))
		pdf.Ln(7)
	}

	if len(res.Alerts) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Alerts")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, a := range res.Alerts {
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("[%s] %s", strings.ToUpper(string(a.Level)), a.Message)), "", "", false)
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Itinerary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, step := range res.Itinerary {
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s (%d min) - %s", step.Order, step.Name, step.EstimatedMinutes, step.Description)), "", "", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Instructions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, in := range res.Instructions {
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. [%s] %s: %s", in.Priority, strings.ToUpper(string(in.Type)), in.Destination, in.Description)), "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ITINERARY_%s_%s.pdf", safeFilenamePart(res.FlightNumber), safeFilenamePart(res.Baggage.ID))
	return buf.Bytes(), filename, nil
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
