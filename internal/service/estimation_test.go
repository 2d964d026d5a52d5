package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rackops/rackprep/internal/estimation"
	"github.com/rackops/rackprep/internal/service"
)

func testServerRecord(serverType, manufacturer, model string, quantity float64) map[string]any {
	return map[string]any{
		"type":         serverType,
		"manufacturer": manufacturer,
		"model":        model,
		"quantity":     quantity,
	}
}

var _ = Describe("EstimationService", func() {
	var (
		estimationSrv *service.EstimationService
		ctx           context.Context
	)

	BeforeEach(func() {
		estimationSrv = service.NewEstimationService()
		ctx = context.Background()
	})

	Describe("EstimateBatch", func() {
		Context("successful estimation", func() {
			It("estimates a valid batch", func() {
				result, err := estimationSrv.EstimateBatch(ctx, []any{
					testServerRecord("rack", "Dell", "R740", 1),
				})

				Expect(err).To(BeNil())
				Expect(result).NotTo(BeNil())
				Expect(result.TotalTime).To(BeNumerically("~", 2.16, 1e-9))
				Expect(result.Complexity).To(Equal(estimation.ComplexityLow))
				Expect(result.Breakdown).To(HaveLen(1))
			})

			It("returns the total as the sum of the breakdown", func() {
				result, err := estimationSrv.EstimateBatch(ctx, []any{
					testServerRecord("rack", "Dell", "R740", 2),
					testServerRecord("blade", "HPE", "BL460c", 3),
				})

				Expect(err).To(BeNil())

				var expectedTotal float64
				for _, est := range result.Breakdown {
					expectedTotal += est.EstimatedTime
				}
				Expect(result.TotalTime).To(Equal(expectedTotal))
			})

			It("handles an empty batch", func() {
				result, err := estimationSrv.EstimateBatch(ctx, []any{})

				Expect(err).To(BeNil())
				Expect(result.TotalTime).To(BeZero())
				Expect(result.Breakdown).To(BeEmpty())
				Expect(result.Complexity).To(Equal(estimation.ComplexityLow))
			})

			It("applies the default factor for unknown manufacturers", func() {
				result, err := estimationSrv.EstimateBatch(ctx, []any{
					testServerRecord("blade", "Unknown", "X", 5),
				})

				Expect(err).To(BeNil())
				Expect(result.TotalTime).To(BeNumerically("~", 22.5, 1e-9))
				Expect(result.Complexity).To(Equal(estimation.ComplexityHigh))
			})
		})

		Context("invalid batches", func() {
			It("fails the whole batch when one record is invalid", func() {
				result, err := estimationSrv.EstimateBatch(ctx, []any{
					testServerRecord("rack", "Dell", "R740", 1),
					map[string]any{"type": "rack", "manufacturer": "Dell", "model": "R640"},
				})

				Expect(result).To(BeNil())
				Expect(err).NotTo(BeNil())
				_, ok := err.(*service.ErrInvalidServerRecord)
				Expect(ok).To(BeTrue(), "expected ErrInvalidServerRecord")
				Expect(err.Error()).To(ContainSubstring(`missing field "quantity"`))
			})

			It("names the offending record in the error", func() {
				result, err := estimationSrv.EstimateBatch(ctx, []any{
					testServerRecord("rack", "Dell", "R740", 1),
					testServerRecord("blade", "HPE", "BL460c", 1),
					testServerRecord("tower", "Dell", "T640", 1),
				})

				Expect(result).To(BeNil())
				Expect(err.Error()).To(ContainSubstring("server record 2"))
			})

			It("rejects a non-positive quantity", func() {
				result, err := estimationSrv.EstimateBatch(ctx, []any{
					testServerRecord("rack", "Dell", "R740", -1),
				})

				Expect(result).To(BeNil())
				Expect(err.Error()).To(ContainSubstring("quantity"))
			})

			It("rejects non-object batch elements", func() {
				result, err := estimationSrv.EstimateBatch(ctx, []any{"not a record"})

				Expect(result).To(BeNil())
				_, ok := err.(*service.ErrInvalidServerRecord)
				Expect(ok).To(BeTrue(), "expected ErrInvalidServerRecord")
			})
		})
	})
})
