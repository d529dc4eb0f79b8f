package contexts

import (
	"gwas/api/models"
	am "gwas/api/models/association"
	"gwas/api/models/dtos"
	"gwas/api/services/association"

	"github.com/google/uuid"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

type (
	// "Helper" Context to pass into routes that need the
	// association service, config and per-request state
	// accumulated by the middleware chain
	AssociationContext struct {
		echo.Context
		Config             *models.Config
		ZapLogger          *zap.Logger
		AssociationService *association.AssociationService

		RequestId uuid.UUID

		// set by the request middleware, in order
		Passback           *string
		AssociationDto     *dtos.AssociationRequestDto
		AssociationRequest am.Request
	}
)
