package stats

import (
	"errors"
	"net/http"

	"gwas/api/contexts"
	am "gwas/api/models/association"
	"gwas/api/models/dtos"
	e "gwas/api/models/dtos/errors"
	"gwas/api/services/metrics"

	"github.com/labstack/echo"
	"go.uber.org/zap"
)

// GetStats expects the request middleware to have
// decoded and validated the association request
func GetStats(c echo.Context) error {
	gc := c.(*contexts.AssociationContext)
	gc.ZapLogger.Info("GetStats hit", zap.String("requestId", gc.RequestId.String()))

	req := gc.AssociationRequest
	outcome, err := gc.AssociationService.Run(c.Request().Context(), req)
	if err != nil {
		var requestErr *am.Error
		if errors.As(err, &requestErr) {
			gc.ZapLogger.Info("association request failed",
				zap.String("requestId", gc.RequestId.String()),
				zap.String("kind", string(requestErr.Kind)),
				zap.String("reason", requestErr.Message))
			metrics.RecordRejection()
			return c.JSON(http.StatusBadRequest, e.CreateErrorResult(requestErr.Message, gc.Passback))
		}

		gc.ZapLogger.Error("association request errored",
			zap.String("requestId", gc.RequestId.String()),
			zap.Error(err))
		metrics.RecordFailure()
		return c.JSON(http.StatusInternalServerError, e.CreateErrorResult("Something went wrong.. Please contact the administrator!", gc.Passback))
	}

	gc.ZapLogger.Info("GetStats done",
		zap.String("requestId", gc.RequestId.String()),
		zap.String("resolution", string(outcome.Plan.Resolution)),
		zap.Int("width", outcome.Plan.Width),
		zap.Int("candidates", outcome.Plan.Candidates),
		zap.Int("results", len(outcome.Stats)))

	return c.JSON(http.StatusOK, e.CreateSuccessResult(toDtos(outcome.Stats), req.Count, gc.Passback))
}

func toDtos(stats []am.VariantStat) []dtos.VariantStatDto {
	out := make([]dtos.VariantStatDto, 0, len(stats))
	for _, s := range stats {
		out = append(out, dtos.VariantStatDto{
			Chrom:  s.Chrom,
			Pos:    s.Pos,
			Ref:    s.Ref,
			Alt:    s.Alt,
			PValue: s.PValue,
		})
	}
	return out
}
