// Package errorspkg provides common app errors.
package errorspkg

import "errors"

var (
	// ErrInternal indicates internal server error.
	ErrInternal = errors.New("internal")
	// ErrRouteNotFound indicates that no handler serves the requested path.
	ErrRouteNotFound = errors.New("route not found")
)
