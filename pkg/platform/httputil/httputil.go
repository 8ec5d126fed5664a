// Package httputil maps domain errors onto HTTP semantics for the transport layer.
package httputil

import (
	"net/http"

	dErrors "fastdrc/pkg/domain-errors"
)

// StatusFor returns the HTTP status for err. Unknown errors are internal.
func StatusFor(err error) int {
	de, ok := dErrors.As(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch de.Code {
	case dErrors.CodeBadRequest:
		return http.StatusBadRequest
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeUnavailable:
		return http.StatusBadGateway
	case dErrors.CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the machine-readable code for err.
func ErrorCode(err error) string {
	if de, ok := dErrors.As(err); ok {
		return string(de.Code)
	}
	return string(dErrors.CodeInternal)
}

// Describe returns the text safe to show a caller. Internal errors are not
// described; converter failures keep their detail so they can be diagnosed
// without rerunning the request.
func Describe(err error) string {
	de, ok := dErrors.As(err)
	if !ok || de.Code == dErrors.CodeInternal {
		return ""
	}
	return de.Error()
}
