package v1alpha1

import (
	"net/http"

	api "github.com/rackops/rackprep/api/v1alpha1"
)

// (GET /health)
func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.Health{Status: "healthy"})
}

// (GET /ready)
// The service has no external collaborators, so readiness equals liveness.
func (h *ServiceHandler) Ready(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.Health{Status: "ready"})
}
