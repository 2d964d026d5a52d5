package v1alpha1

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/rackops/rackprep/internal/handlers/v1alpha1/mappers"
	"github.com/rackops/rackprep/internal/service"
	"github.com/rackops/rackprep/pkg/requestid"
)

// (POST /api/v1/estimate)
func (h *ServiceHandler) CalculateRackingEstimate(w http.ResponseWriter, r *http.Request) {
	logger := zap.S().Named("estimation_handler").With("request_id", requestid.FromRequest(r))

	// The boundary owns the structural check: the body must be a JSON array
	// of server records. Anything else never reaches the engine.
	var records []any
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		logger.Warnw("malformed request body", "error", err)
		writeError(w, r, http.StatusBadRequest, service.NewErrMalformedBatch("request body must be a JSON array of server records").Error())
		return
	}
	if records == nil {
		logger.Warnw("request body is not an array")
		writeError(w, r, http.StatusBadRequest, service.NewErrMalformedBatch("request body must be a JSON array of server records").Error())
		return
	}

	result, err := h.estimationSrv.EstimateBatch(r.Context(), records)
	if err != nil {
		var invalid *service.ErrInvalidServerRecord
		if errors.As(err, &invalid) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		logger.Errorw("estimation failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "failed to calculate estimation")
		return
	}

	writeJSON(w, http.StatusOK, mappers.EstimationResultToAPI(result))
}
