package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a search did not produce a weather record.
type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindConnectivity      ErrorKind = "connectivity"
	KindNotFound          ErrorKind = "not_found"
	KindMalformedResponse ErrorKind = "malformed_response"
	KindGeneric           ErrorKind = "generic"
)

const (
	MsgConnectivity = "Unable to connect to weather service. Please check your internet connection."
	MsgGeneric      = "Unable to fetch weather data. Please try again later."
	msgNotFound     = "City '%s' not found. Please check the spelling and try again."
)

// ErrSuperseded is returned for a search whose result arrived after a newer
// search had started. Such results are never rendered.
var ErrSuperseded = errors.New("search superseded by a newer query")

// SearchError is the single failure type that crosses the adapter boundary.
type SearchError struct {
	Kind    ErrorKind
	City    string
	Message string
	Err     error
}

func (e *SearchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// UserMessage is the text shown to the user.
func (e *SearchError) UserMessage() string {
	return e.Message
}

// NewValidationError wraps a failed validation result.
func NewValidationError(city, message string) *SearchError {
	return &SearchError{Kind: KindValidation, City: city, Message: message}
}

// NewConnectivityError is used when the provider could not be reached.
func NewConnectivityError(city string, err error) *SearchError {
	return &SearchError{Kind: KindConnectivity, City: city, Message: MsgConnectivity, Err: err}
}

// NewNotFoundError is used when the provider cannot resolve the location.
func NewNotFoundError(city string, err error) *SearchError {
	return &SearchError{Kind: KindNotFound, City: city, Message: fmt.Sprintf(msgNotFound, city), Err: err}
}

// NewMalformedResponseError is used when a reply lacks required fields.
func NewMalformedResponseError(city string, err error) *SearchError {
	return &SearchError{Kind: KindMalformedResponse, City: city, Message: MsgGeneric, Err: err}
}

// NewGenericError covers every other failure.
func NewGenericError(city string, err error) *SearchError {
	return &SearchError{Kind: KindGeneric, City: city, Message: MsgGeneric, Err: err}
}

// KindOf returns the kind of err, or KindGeneric when err is not a SearchError.
func KindOf(err error) ErrorKind {
	var se *SearchError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindGeneric
}
