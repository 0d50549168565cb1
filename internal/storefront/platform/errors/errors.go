// Package errors defines storefront typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindUnavailable  Kind = "unavailable"
	KindNotFound     Kind = "not_found"
)

// Error is a typed storefront application failure.
type Error struct {
	Kind    Kind
	Message string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// statusCarrier is implemented by transport errors that already know the
// HTTP status of the upstream failure (e.g. backend gateway errors).
type statusCarrier interface {
	HTTPStatus() int
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		var carrier statusCarrier
		if stderrors.As(err, &carrier) {
			return carrierHTTPStatus(carrier, http.StatusInternalServerError)
		}
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func carrierHTTPStatus(carrier statusCarrier, fallback int) int {
	status := carrier.HTTPStatus()
	if status < http.StatusBadRequest || status > 599 {
		return fallback
	}
	// Upstream 5xx means the backend collaborator failed, which the
	// storefront reports as unavailability rather than its own fault.
	if status >= http.StatusInternalServerError {
		return http.StatusBadGateway
	}
	return status
}

// IsKind reports whether err is a typed Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return false
	}
	return appErr.Kind == kind
}
