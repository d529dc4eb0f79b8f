package association

import (
	"context"
	"time"

	"gwas/api/models"
	am "gwas/api/models/association"
	"gwas/api/models/constants"
	"gwas/api/repositories/dataset"
	"gwas/api/services/metrics"
	"gwas/api/services/regression"

	"go.uber.org/zap"
)

type (
	AssociationService struct {
		Config  *models.Config
		Dataset *dataset.Dataset
		Engine  regression.Engine
		Logger  *zap.Logger
	}

	// Plan is how a request was executed
	Plan struct {
		Resolution constants.Resolution
		Width      int
		Bounds     am.Bounds
		Candidates int
		N0         int
	}

	Outcome struct {
		Stats []am.VariantStat
		Plan  Plan
	}
)

func NewAssociationService(cfg *models.Config, ds *dataset.Dataset, engine regression.Engine, logger *zap.Logger) *AssociationService {
	return &AssociationService{
		Config:  cfg,
		Dataset: ds,
		Engine:  engine,
		Logger:  logger,
	}
}

/*
Run compiles a parsed request into an execution plan and executes it.
Covariate resolution, sample subsetting and design matrix construction
fail fast, before any store is scanned.
*/
func (s *AssociationService) Run(ctx context.Context, req am.Request) (*Outcome, error) {
	startTime := time.Now()
	table := s.Dataset.Phenotypes

	covariates, err := ResolveCovariates(req.Phenotype, req.Covariates, table)
	if err != nil {
		return nil, err
	}

	columns := [][]float64{table.Column(req.Phenotype)}
	for _, name := range covariates.PhenotypeNames {
		columns = append(columns, table.Column(name))
	}
	subset := BuildSampleSubset(len(table.Samples()), columns...)

	fine, err := s.Dataset.Stores.Fine()
	if err != nil {
		return nil, err
	}
	y, design, err := BuildDesignMatrix(req.Phenotype, covariates, table, subset, fine)
	if err != nil {
		return nil, err
	}

	compiled := CompileFilters(req.Filters, s.Config.Api.DefaultChrom)
	plan := Plan{
		Width:  compiled.Bounds.Width(),
		Bounds: compiled.Bounds,
		N0:     subset.N0,
	}
	plan.Resolution = SelectResolution(plan.Width, Thresholds{
		Intermediate: s.Config.Query.IntermediateWidthThreshold,
		Large:        s.Config.Query.LargeWidthThreshold,
	})

	store, err := s.Dataset.Stores.Get(plan.Resolution)
	if err != nil {
		return nil, err
	}
	view, err := store.Narrow(compiled.Predicates)
	if err != nil {
		return nil, err
	}
	plan.Candidates = view.Len()

	s.Logger.Debug("compiled association request",
		zap.String("resolution", string(plan.Resolution)),
		zap.Int("width", plan.Width),
		zap.Bool("singleVariant", plan.Bounds.IsSingleVariant),
		zap.Int("candidates", plan.Candidates),
		zap.Int("samples", subset.N0))

	minMAC := compiled.Bounds.MinMAC
	if compiled.Bounds.UseDefaultMAC {
		minMAC = s.Config.Regression.DefaultMinMac
	}
	stats, err := Dispatch(ctx, s.Engine, view, DispatchInput{
		Y:      y,
		Design: design,
		Subset: subset,
		MinMAC: minMAC,
		MaxMAC: compiled.Bounds.MaxMAC,
		Limit:  req.Limit,
	}, s.Config.Regression.ConcurrencyLevel, s.Config.Regression.BatchSize)
	if err != nil {
		return nil, err
	}

	SortStats(stats, req.SortBy)

	metrics.RecordSuccess(string(plan.Resolution), time.Since(startTime).Seconds(), len(stats))
	return &Outcome{Stats: stats, Plan: plan}, nil
}
