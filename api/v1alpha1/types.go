// Package v1alpha1 contains the public API types of the rackprep service.
// These structs are the wire contract; changes here are breaking changes.
package v1alpha1

// ServerEstimate echoes one submitted server record together with its
// estimated racking time in hours.
type ServerEstimate struct {
	Type          string  `json:"type"`
	Manufacturer  string  `json:"manufacturer"`
	Model         string  `json:"model"`
	Quantity      float64 `json:"quantity"`
	EstimatedTime float64 `json:"estimatedTime"`
}

// EstimationResult is the response body for a successful estimation request.
type EstimationResult struct {
	TotalTime         float64          `json:"totalTime"`
	BreakdownByServer []ServerEstimate `json:"breakdownByServer"`
	Complexity        string           `json:"complexity"`
}

// Error is the envelope returned for every failed request.
type Error struct {
	Message   string  `json:"message"`
	RequestId *string `json:"request_id,omitempty"`
}

// Health is the response body of the health and readiness probes.
type Health struct {
	Status string `json:"status"`
}
