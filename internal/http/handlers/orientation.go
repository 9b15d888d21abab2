package handlers

import (
	"net/http"
	"strings"

	"orientation/internal/domain"
	"orientation/internal/http/middleware"
	"orientation/internal/services"

	"github.com/gin-gonic/gin"
)

// OrientationHandler serves the traveler orientation endpoints. Service is a
// template copied per request so the request id can be attached.
type OrientationHandler struct {
	Service services.OrientationService
}

func NewOrientationHandler(svc services.OrientationService) OrientationHandler {
	return OrientationHandler{Service: svc}
}

type orientationBody struct {
	FlightNumber string `json:"flight_number" binding:"required,min=5,max=10"`
	BaggageID    string `json:"baggage_id" binding:"required"`
	Position     string `json:"position"`
}

func (h OrientationHandler) service(c *gin.Context) services.OrientationService {
	svc := h.Service
	svc.RequestID = middleware.GetRequestID(c)
	return svc
}

func rawFromPath(c *gin.Context) services.OrientationRawRequest {
	return services.OrientationRawRequest{
		FlightNumber: c.Param("flight_number"),
		BaggageID:    c.Param("baggage_id"),
		Position:     c.Query("position"),
	}
}

// GetOrientation computes guidance from path parameters and the optional position query.
func (h OrientationHandler) GetOrientation(c *gin.Context) {
	res, err := h.service(c).Orient(c.Request.Context(), rawFromPath(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PostOrientation is the JSON body variant of GetOrientation.
func (h OrientationHandler) PostOrientation(c *gin.Context) {
	var body orientationBody
	if !BindJSONOrError(c, &body) {
		return
	}
	if !isFlightCode(body.FlightNumber) {
		RespondDomainError(c, domain.ValidationError{
			Field: "flight_number",
			Msg:   "flight number must be alphanumeric",
			Err:   domain.ErrInvalidFlightNumber,
		})
		return
	}

	res, err := h.service(c).Orient(c.Request.Context(), services.OrientationRawRequest{
		FlightNumber: body.FlightNumber,
		BaggageID:    body.BaggageID,
		Position:     body.Position,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetItineraryPDF renders the computed itinerary as an inline PDF.
// Downloads are not audited; the orientation itself was recorded when it was served.
func (h OrientationHandler) GetItineraryPDF(c *gin.Context) {
	svc := h.service(c)
	svc.Audit = nil
	res, err := svc.Orient(c.Request.Context(), rawFromPath(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	docs := services.DocsService{RequestID: svc.RequestID}
	pdfBytes, filename, err := docs.GenerateItineraryPDF(res)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "render itinerary", Err: err})
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// isFlightCode accepts ASCII letters and digits once '-' and '_' are removed.
func isFlightCode(s string) bool {
	s = strings.NewReplacer("-", "", "_", "").Replace(strings.TrimSpace(s))
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
