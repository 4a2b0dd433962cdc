package database

import (
	"sync"

	"favliz/pkg/cache"
	"favliz/pkg/config"
	"favliz/pkg/logger"
)

var (
	cacheInstance *cache.Cache
	cacheOnce     sync.Once
)

// GetCache returns the shared redis cache instance.
func GetCache() *cache.Cache {
	cacheOnce.Do(func() {
		cfg := config.GetConfig()
		cacheInstance = cache.NewCache(&cache.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})

		// Redis being unreachable is not fatal, the dashboard recomputes
		// on demand. Surface it once at startup.
		if err := cacheInstance.Ping(); err != nil {
			logger.GetLogger().Warnf("Redis unreachable: %v", err)
		}
	})
	return cacheInstance
}

// CloseCache closes the redis connection.
func CloseCache() error {
	if cacheInstance != nil {
		return cacheInstance.Close()
	}
	return nil
}
