package services

import (
	"context"
	"time"

	"favliz/internal/database"
	"favliz/internal/models"
	"favliz/pkg/cache"
	"favliz/pkg/logger"

	"gorm.io/gorm"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 10 * time.Minute
)

// DashboardStats aggregate counters shown on the back-office landing page.
type DashboardStats struct {
	Users       int64     `json:"users"`
	ActiveUsers int64     `json:"active_users"`
	Items       int64     `json:"items"`
	Lists       int64     `json:"lists"`
	PublicLists int64     `json:"public_lists"`
	Tags        int64     `json:"tags"`
	Admins      int64     `json:"admins"`
	GeneratedAt time.Time `json:"generated_at"`
}

type DashboardService struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDashboardService() *DashboardService {
	return &DashboardService{
		db:    database.GetDB(),
		cache: database.GetCache(),
	}
}

// NewDashboardServiceWith wires explicit handles; used by tests.
func NewDashboardServiceWith(db *gorm.DB, c *cache.Cache) *DashboardService {
	return &DashboardService{db: db, cache: c}
}

// Get returns the cached counters, recomputing on a cache miss.
func (s *DashboardService) Get(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	err := s.cache.GetJSON(ctx, statsCacheKey, &stats)
	if err == nil {
		return &stats, nil
	}
	if !cache.IsMiss(err) {
		// Redis being down should not break the dashboard.
		logger.GetLogger().Warnf("dashboard cache read failed: %v", err)
	}

	return s.Refresh(ctx)
}

// Refresh recomputes the counters and stores them in the cache.
func (s *DashboardService) Refresh(ctx context.Context) (*DashboardStats, error) {
	stats, err := s.compute()
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, statsCacheKey, stats, statsCacheTTL); err != nil {
		logger.GetLogger().Warnf("dashboard cache write failed: %v", err)
	}

	return stats, nil
}

func (s *DashboardService) compute() (*DashboardStats, error) {
	stats := &DashboardStats{GeneratedAt: time.Now()}

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.Users, s.db.Model(&models.User{})},
		{&stats.ActiveUsers, s.db.Model(&models.User{}).Where("is_active = ?", true)},
		{&stats.Items, s.db.Model(&models.Item{})},
		{&stats.Lists, s.db.Model(&models.List{})},
		{&stats.PublicLists, s.db.Model(&models.List{}).Where("is_public = ?", true)},
		{&stats.Tags, s.db.Model(&models.Tag{})},
		{&stats.Admins, s.db.Model(&models.Admin{})},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	return stats, nil
}
