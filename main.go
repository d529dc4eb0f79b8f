package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"gwas/api/contexts"
	gam "gwas/api/middleware"
	"gwas/api/models"
	serviceInfo "gwas/api/models/constants/service-info"
	serviceInfoMvc "gwas/api/mvc/service-info"
	statsMvc "gwas/api/mvc/stats"
	"gwas/api/repositories/dataset"
	"gwas/api/services/association"
	"gwas/api/services/housekeeping"
	"gwas/api/services/regression"
	"gwas/api/utils"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	defer logger.Sync()

	logger.Info("Using",
		zap.Bool("debug", cfg.Debug),
		zap.String("manifest", cfg.Data.ManifestPath),
		zap.Int("apiVersion", cfg.Api.SupportedApiVersion),
		zap.String("mdVersion", cfg.Api.SupportedMdVersion),
		zap.String("defaultPhenotype", cfg.Api.DefaultPhenotype),
		zap.Int("intermediateWidthThreshold", cfg.Query.IntermediateWidthThreshold),
		zap.Int("largeWidthThreshold", cfg.Query.LargeWidthThreshold),
		zap.Int("defaultMinMac", cfg.Regression.DefaultMinMac),
		zap.Int("regressionConcurrency", cfg.Regression.ConcurrencyLevel),
		zap.String("port", cfg.Api.Port))

	// Load the dataset once; stores are read-only from here on
	ds, err := dataset.Load(cfg.Data.ManifestPath, time.Duration(cfg.Data.LoadMaxElapsedMinutes)*time.Minute)
	if err != nil {
		logger.Fatal("failed to load dataset", zap.Error(err))
	}

	// Service Singletons
	as := association.NewAssociationService(&cfg, ds, regression.New(), logger)
	hs := housekeeping.NewHousekeepingService(&cfg, ds, logger)
	defer hs.Stop()

	e := newServer(&cfg, logger, as)

	logger.Info(string(serviceInfo.SERVICE_NAME) + " starting")

	// Run
	if err := e.Start(":" + cfg.Api.Port); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// newServer configures middleware and routes
func newServer(cfg *models.Config, logger *zap.Logger, as *association.AssociationService) *echo.Echo {
	// Instantiate Server
	e := echo.New()
	e.HideBanner = true

	// Configure Server
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST},
	}))

	// -- Override handlers with the association context
	//		to be able to provide variables and global singletons
	e.Use(NewContextMiddleware(cfg, logger, as))

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		logger.Info("Root hit")
		return echo.ErrMethodNotAllowed
	})

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Metrics
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// -- Stats
	e.POST("/getStats", statsMvc.GetStats,
		// middleware
		gam.DecodeAssociationRequest,
		gam.MandateSupportedProtocol,
		gam.MandateWellFormedRequest)

	return e
}

// NewContextMiddleware wraps every request in an AssociationContext
// tagged with a fresh request id
func NewContextMiddleware(cfg *models.Config, logger *zap.Logger, as *association.AssociationService) echo.MiddlewareFunc {
	return func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestId := uuid.New()
			c.Response().Header().Set(echo.HeaderXRequestID, requestId.String())

			cc := &contexts.AssociationContext{
				Context:            c,
				Config:             cfg,
				ZapLogger:          logger,
				AssociationService: as,
				RequestId:          requestId,
			}
			return h(cc)
		}
	}
}
