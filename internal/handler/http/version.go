package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-type-keeper/internal/logger"
)

// getServerVersion answers GET /api/version/ with the bare version string so
// that clients can compare it without decoding JSON.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, version); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing version")
	}
}
