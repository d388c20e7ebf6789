package api

import (
	"errors"
	"net/http"

	"towerboard/internal/strips"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var (
		vErr  *strips.ValidationError
		itErr *strips.InvalidTransitionError
	)
	switch {
	case errors.Is(err, strips.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.As(err, &itErr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
