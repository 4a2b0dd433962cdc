package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is a thin JSON cache over redis, used for dashboard counters.
type Cache struct {
	client *redis.Client
	prefix string
}

// Config redis connection settings
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	Prefix   string
}

// NewCache creates a cache instance.
func NewCache(config *Config) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	prefix := config.Prefix
	if prefix == "" {
		prefix = "favliz:admin"
	}

	return &Cache{
		client: client,
		prefix: prefix,
	}
}

// Close closes the redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Ping checks the redis connection.
func (c *Cache) Ping() error {
	ctx := context.Background()
	return c.client.Ping(ctx).Err()
}

func (c *Cache) key(name string) string {
	return c.prefix + ":" + name
}

// SetJSON marshals value and stores it under name with a TTL.
func (c *Cache) SetJSON(ctx context.Context, name string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(name), data, ttl).Err()
}

// GetJSON loads name into dest. Returns redis.Nil when the key is missing.
func (c *Cache) GetJSON(ctx context.Context, name string, dest interface{}) error {
	data, err := c.client.Get(ctx, c.key(name)).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Delete removes name from the cache.
func (c *Cache) Delete(ctx context.Context, name string) error {
	return c.client.Del(ctx, c.key(name)).Err()
}

// IsMiss reports whether err means a cache miss.
func IsMiss(err error) bool {
	return err == redis.Nil
}
