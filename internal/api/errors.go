package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed call by what the caller should do about it, not by
// which endpoint produced it.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindAuthRequired Kind = "auth_required"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindServer       Kind = "server"
	KindNetwork      Kind = "network"
)

// Error is the classified form of any non-2xx response or transport failure.
// Status is zero for network errors.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api: %s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("api: %s: %s", e.Kind, e.Message)
}

func classify(status int) Kind {
	switch {
	case status == http.StatusBadRequest:
		return KindValidation
	case status == http.StatusUnauthorized:
		return KindAuthRequired
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 500:
		return KindServer
	default:
		return KindServer
	}
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: err.Error()}
}

// IsKind reports whether err is an api.Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// UserMessage maps an error to the text shown to the shopper.
func UserMessage(err error) string {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return "Something went wrong. Please try again."
	}
	switch apiErr.Kind {
	case KindValidation:
		return "The submitted data is invalid. Please review and try again."
	case KindAuthRequired:
		return "Your session has expired. Please log in again."
	case KindForbidden:
		return "You do not have permission to perform this action."
	case KindNotFound:
		return "The requested resource was not found."
	case KindNetwork:
		return "Check your internet connection and try again."
	default:
		return "Server error. Please try again later."
	}
}
