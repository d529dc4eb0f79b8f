package housekeeping

import (
	"time"

	"gwas/api/models"
	"gwas/api/models/constants/resolution"
	"gwas/api/repositories/dataset"
	"gwas/api/services/metrics"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

type (
	HousekeepingService struct {
		Initialized bool
		Config      *models.Config
		Dataset     *dataset.Dataset
		Logger      *zap.Logger

		scheduler *gocron.Scheduler
	}

	// Summary is what every housekeeping run reports
	Summary struct {
		Samples    int
		Phenotypes int
		StoreRows  map[string]int
		Served     uint64
		Rejected   uint64
	}
)

func NewHousekeepingService(cfg *models.Config, ds *dataset.Dataset, logger *zap.Logger) *HousekeepingService {
	hs := &HousekeepingService{
		Initialized: false,
		Config:      cfg,
		Dataset:     ds,
		Logger:      logger,
	}

	hs.Init()

	return hs
}

func (hs *HousekeepingService) Init() {
	if hs.Initialized {
		return
	}

	interval := hs.Config.Housekeeping.IntervalMinutes
	if interval <= 0 {
		interval = 60
	}

	// periodically report what the service holds in memory
	// and how many requests it has answered so far
	hs.scheduler = gocron.NewScheduler(time.UTC)
	hs.scheduler.Every(interval).Minutes().Do(func() {
		hs.logSummary(hs.Summarize())
	})
	hs.scheduler.StartAsync()

	hs.Initialized = true
	hs.Logger.Info("Housekeeping Service Initialized ..", zap.Int("intervalMinutes", interval))
}

func (hs *HousekeepingService) Stop() {
	if hs.scheduler != nil {
		hs.scheduler.Stop()
	}
}

func (hs *HousekeepingService) Summarize() Summary {
	served, rejected := metrics.Totals()
	summary := Summary{
		StoreRows: map[string]int{},
		Served:    served,
		Rejected:  rejected,
	}
	if hs.Dataset == nil {
		return summary
	}

	if hs.Dataset.Phenotypes != nil {
		summary.Samples = len(hs.Dataset.Phenotypes.Samples())
		summary.Phenotypes = len(hs.Dataset.Phenotypes.Names())
	}
	for _, res := range resolution.All {
		if store, err := hs.Dataset.Stores.Get(res); err == nil {
			summary.StoreRows[string(res)] = store.Nrow()
		}
	}
	return summary
}

func (hs *HousekeepingService) logSummary(s Summary) {
	hs.Logger.Info("housekeeping summary",
		zap.Int("samples", s.Samples),
		zap.Int("phenotypes", s.Phenotypes),
		zap.Any("storeRows", s.StoreRows),
		zap.Uint64("served", s.Served),
		zap.Uint64("rejected", s.Rejected))
}
