// Package sentinel holds plain errors for facts reported by remote systems and
// stores. Clients wrap them in a domain error so callers can test with
// errors.Is without caring which layer produced the failure.
package sentinel

import "errors"

var (
	// ErrNotFound: the registry or store has no such object.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable: the registry, database or parameter store could not be reached.
	ErrUnavailable = errors.New("unavailable")
)
