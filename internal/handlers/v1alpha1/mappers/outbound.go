// Package mappers converts domain results to API response types.
package mappers

import (
	api "github.com/rackops/rackprep/api/v1alpha1"
	"github.com/rackops/rackprep/internal/estimation"
)

// EstimationResultToAPI converts an engine result to the wire representation.
func EstimationResultToAPI(result *estimation.Result) api.EstimationResult {
	breakdown := make([]api.ServerEstimate, len(result.Breakdown))
	for i, est := range result.Breakdown {
		breakdown[i] = api.ServerEstimate{
			Type:          string(est.Type),
			Manufacturer:  est.Manufacturer,
			Model:         est.Model,
			Quantity:      est.Quantity,
			EstimatedTime: est.EstimatedTime,
		}
	}

	return api.EstimationResult{
		TotalTime:         result.TotalTime,
		BreakdownByServer: breakdown,
		Complexity:        string(result.Complexity),
	}
}
