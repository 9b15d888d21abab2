package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFlightNumber = errors.New("invalid flight number")
	ErrInvalidBaggageID    = errors.New("invalid baggage id")
	ErrInvalidPosition     = errors.New("invalid position")
	ErrFlightNotFound      = errors.New("flight not found")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// NotFoundError is surfaced to clients as 404.
type NotFoundError struct {
	Resource string
	ID       string
	Err      error
}

func (e NotFoundError) Error() string {
	switch {
	case e.Resource != "" && e.ID != "":
		return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
	case e.Resource != "":
		return fmt.Sprintf("%s not found", e.Resource)
	default:
		return "not found"
	}
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError rejects client input before any upstream call is made.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// UpstreamError describes a failed call to a weather, baggage or flight source.
// Weather and baggage clients recover from it locally; it never reaches the engine.
type UpstreamError struct {
	Source string
	Err    error
}

func (e UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Source, ErrUpstreamUnavailable)
	}
	return fmt.Sprintf("%s: %v: %v", e.Source, ErrUpstreamUnavailable, e.Err)
}

func (e UpstreamError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstreamUnavailable}
	}
	return []error{ErrUpstreamUnavailable, e.Err}
}

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}
