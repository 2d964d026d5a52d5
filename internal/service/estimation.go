package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/rackops/rackprep/internal/estimation"
	"github.com/rackops/rackprep/pkg/metrics"
	"github.com/rackops/rackprep/pkg/requestid"
)

// EstimationService orchestrates the racking time estimation workflow: it
// runs a batch of raw server records through the estimation Engine, records
// metrics and logs the outcome. It keeps no per-request state.
type EstimationService struct {
	engine *estimation.Engine
	logger *zap.SugaredLogger
}

// NewEstimationService creates an EstimationService backed by the default
// factor table. Engine options can be supplied to override it.
func NewEstimationService(opts ...estimation.Option) *EstimationService {
	return &EstimationService{
		engine: estimation.NewEngine(opts...),
		logger: zap.S().Named("estimation_service"),
	}
}

// EstimateBatch estimates the racking time of a batch of server records.
// A single invalid record fails the whole batch with ErrInvalidServerRecord;
// no partial results are produced.
func (s *EstimationService) EstimateBatch(ctx context.Context, records []any) (*estimation.Result, error) {
	logger := s.logger.With("request_id", requestid.FromContext(ctx), "record_count", len(records))

	result, err := s.engine.Estimate(records)
	if err != nil {
		metrics.IncreaseEstimatesTotalMetric(metrics.EstimateStatusFailed)

		var invalid *estimation.InvalidInputError
		if errors.As(err, &invalid) {
			logger.Warnw("batch rejected", "record_index", invalid.Index, "reason", invalid.Reason)
			return nil, NewErrInvalidServerRecord(err)
		}
		logger.Errorw("estimation failed", "error", err)
		return nil, err
	}

	metrics.IncreaseEstimatesTotalMetric(metrics.EstimateStatusSucceeded)
	metrics.ObserveEstimatedBatch(len(result.Breakdown), result.TotalTime, string(result.Complexity))

	logger.Infow("batch estimated",
		"total_time_hours", result.TotalTime,
		"complexity", result.Complexity,
	)

	return result, nil
}
