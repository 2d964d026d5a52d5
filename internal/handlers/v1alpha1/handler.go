// Package v1alpha1 contains the HTTP handlers of the public API.
package v1alpha1

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	api "github.com/rackops/rackprep/api/v1alpha1"
	"github.com/rackops/rackprep/internal/service"
	"github.com/rackops/rackprep/pkg/requestid"
)

// ServiceHandler routes API requests to the business services.
type ServiceHandler struct {
	estimationSrv *service.EstimationService
}

func NewServiceHandler(estimationSrv *service.EstimationService) *ServiceHandler {
	return &ServiceHandler{
		estimationSrv: estimationSrv,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.S().Named("handlers").Warnw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, api.Error{
		Message:   message,
		RequestId: requestid.FromContextPtr(r.Context()),
	})
}

// WriteMethodNotAllowed emits the error envelope for requests using an
// unsupported method on a known route. Registered on the router as the
// MethodNotAllowed handler.
func WriteMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

// WriteNotFound emits the error envelope for unknown routes.
func WriteNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found")
}
