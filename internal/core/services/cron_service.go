package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// timeNow is swapped in tests
var timeNow = time.Now

const sweepTimeout = 2 * time.Minute

// CronService runs scheduled maintenance jobs
type CronService struct {
	cron          *cron.Cron
	discounts     *DiscountService
	spec          string
	retentionDays int
	logger        *zap.Logger
}

// NewCronService creates the scheduler. spec is a standard five field cron
// expression for the expired discount sweep.
func NewCronService(discounts *DiscountService, spec string, retentionDays int, logger *zap.Logger) *CronService {
	return &CronService{
		cron:          cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
		discounts:     discounts,
		spec:          spec,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// Start registers the jobs and starts the scheduler
func (s *CronService) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.SweepExpiredDiscounts); err != nil {
		return err
	}
	s.cron.Start()

	s.logger.Info("🚀 Cron started", zap.String("discount_sweep", s.spec))
	return nil
}

// Stop stops the scheduler and waits for a running job to finish
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("🛑 Cron stopped")
}

// SweepExpiredDiscounts purges discounts past the retention window
func (s *CronService) SweepExpiredDiscounts() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	if _, err := s.discounts.PurgeExpired(ctx, s.retentionDays); err != nil {
		s.logger.Error("❌ Expired discount sweep failed", zap.Error(err))
	}
}
