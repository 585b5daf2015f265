package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-type-keeper/internal/service"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:  http.StatusBadRequest,
	ErrBodyTooLarge: http.StatusRequestEntityTooLarge,

	service.ErrTypeNotFound:          http.StatusNotFound,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
