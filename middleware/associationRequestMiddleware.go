package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gwas/api/contexts"
	"gwas/api/models/dtos"
	"gwas/api/models/dtos/errors"
	"gwas/api/services/association"
	"gwas/api/services/metrics"

	"github.com/labstack/echo"
	"go.uber.org/zap"
)

/*
Echo middleware decoding the association request body. The passback is
extracted on its own first so that it can be echoed even when the rest
of the body does not decode.
*/
func DecodeAssociationRequest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.AssociationContext)

		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return reject(gc, fmt.Sprintf("unable to read request body: %v", err))
		}

		var raw map[string]json.RawMessage
		if err := json.Unmarshal(body, &raw); err != nil {
			return reject(gc, fmt.Sprintf("malformed request body: %v", err))
		}
		if rawPassback, ok := raw["passback"]; ok {
			var passback string
			if json.Unmarshal(rawPassback, &passback) == nil {
				gc.Passback = &passback
			}
		}

		var dto dtos.AssociationRequestDto
		if err := json.Unmarshal(body, &dto); err != nil {
			return reject(gc, fmt.Sprintf("malformed request body: %v", err))
		}

		// forward a type-safe value down the pipeline
		gc.AssociationDto = &dto
		return next(gc)
	}
}

/*
Echo middleware to ensure the request speaks a supported
api_version / md_version and carries a valid limit
*/
func MandateSupportedProtocol(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.AssociationContext)

		if err := association.ValidateProtocol(*gc.AssociationDto, gc.Config); err != nil {
			return reject(gc, err.Error())
		}

		return next(gc)
	}
}

/*
Echo middleware converting covariates, variant filters and sort keys
into their typed forms, rejecting the first malformed one
*/
func MandateWellFormedRequest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.AssociationContext)

		req, err := association.ParseRequest(*gc.AssociationDto, gc.Config)
		if err != nil {
			return reject(gc, err.Error())
		}

		gc.AssociationRequest = req
		return next(gc)
	}
}

// -- helper functions
func reject(gc *contexts.AssociationContext, message string) error {
	gc.ZapLogger.Info("rejected association request",
		zap.String("requestId", gc.RequestId.String()),
		zap.String("reason", message))
	metrics.RecordRejection()

	return gc.JSON(http.StatusBadRequest, errors.CreateErrorResult(message, gc.Passback))
}
