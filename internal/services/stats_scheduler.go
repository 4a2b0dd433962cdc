package services

import (
	"context"
	"fmt"

	"favliz/pkg/logger"

	"github.com/robfig/cron/v3"
)

// StatsScheduler keeps the dashboard counters warm so the landing page
// never pays for seven count queries.
type StatsScheduler struct {
	cron      *cron.Cron
	dashboard *DashboardService
	spec      string
}

// NewStatsScheduler creates the scheduler. spec is a standard 5-field
// cron expression; empty means every 5 minutes.
func NewStatsScheduler(dashboard *DashboardService, spec string) *StatsScheduler {
	if spec == "" {
		spec = "*/5 * * * *"
	}
	return &StatsScheduler{
		cron:      cron.New(),
		dashboard: dashboard,
		spec:      spec,
	}
}

// Start refreshes once immediately, then on the cron schedule.
func (s *StatsScheduler) Start() error {
	appLogger := logger.GetLogger()

	if _, err := s.dashboard.Refresh(context.Background()); err != nil {
		// The database may lag behind at boot; the cron ticks retry.
		appLogger.Warnf("initial dashboard refresh failed: %v", err)
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		if _, err := s.dashboard.Refresh(context.Background()); err != nil {
			appLogger.Errorf("dashboard refresh failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid cron spec %q: %v", s.spec, err)
	}

	s.cron.Start()
	appLogger.Infof("Stats scheduler started, spec: %s", s.spec)
	return nil
}

// Stop halts the scheduler.
func (s *StatsScheduler) Stop() {
	s.cron.Stop()
	logger.GetLogger().Info("Stats scheduler stopped")
}
