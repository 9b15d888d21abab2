package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"orientation/internal/domain"
)

const minIdentifierLength = 5

// ValidateFlightNumber rejects short flight numbers and returns the normalized value.
func ValidateFlightNumber(s string) (string, error) {
	if s == "" || utf8.RuneCountInString(s) < minIdentifierLength {
		return "", domain.ValidationError{Field: "flight_number", Msg: "invalid flight number", Err: domain.ErrInvalidFlightNumber}
	}
	return strings.TrimSpace(strings.ToUpper(s)), nil
}

// ValidateBaggageID rejects short baggage identifiers and returns the trimmed value.
func ValidateBaggageID(s string) (string, error) {
	if s == "" || utf8.RuneCountInString(s) < minIdentifierLength {
		return "", domain.ValidationError{Field: "baggage_id", Msg: "invalid baggage id", Err: domain.ErrInvalidBaggageID}
	}
	return strings.TrimSpace(s), nil
}

// ValidatePosition accepts an empty position or one of the known positions.
func ValidatePosition(s string) (domain.Position, error) {
	if s == "" {
		return domain.PositionUnknown, nil
	}
	valid := domain.ValidPositions()
	for _, p := range valid {
		if string(p) == s {
			return p, nil
		}
	}
	names := make([]string, 0, len(valid))
	for _, p := range valid {
		names = append(names, string(p))
	}
	return domain.PositionUnknown, domain.ValidationError{
		Field: "position",
		Msg:   fmt.Sprintf("invalid position, accepted values: %s", strings.Join(names, ", ")),
		Err:   domain.ErrInvalidPosition,
	}
}
