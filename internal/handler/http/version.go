package http

import "net/http"

// getServerVersion reports the server build version as plain text.
// The client shows it next to its own build info in the about overlay.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
