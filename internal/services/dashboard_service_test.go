package services

import (
	"context"
	"strconv"
	"testing"

	"favliz/pkg/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	c := cache.NewCache(&cache.Config{
		Host:   mr.Host(),
		Port:   port,
		Prefix: "test",
	})
	t.Cleanup(func() { c.Close() })
	require.NoError(t, c.Ping())
	return c
}

func TestDashboardGetComputesOnMissThenServesFromCache(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewDashboardServiceWith(db, newTestCache(t))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).WillReturnRows(countRows(120))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE is_active`).WillReturnRows(countRows(98))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "items"`).WillReturnRows(countRows(540))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "lists"`).WillReturnRows(countRows(33))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "lists" WHERE is_public`).WillReturnRows(countRows(7))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "tags"`).WillReturnRows(countRows(61))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "admins"`).WillReturnRows(countRows(4))

	ctx := context.Background()

	stats, err := service.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.Users)
	assert.Equal(t, int64(98), stats.ActiveUsers)
	assert.Equal(t, int64(540), stats.Items)
	assert.Equal(t, int64(33), stats.Lists)
	assert.Equal(t, int64(7), stats.PublicLists)
	assert.Equal(t, int64(61), stats.Tags)
	assert.Equal(t, int64(4), stats.Admins)
	assert.NoError(t, mock.ExpectationsWereMet())

	// Second read must come from the cache: no DB expectations remain.
	cached, err := service.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats.Users, cached.Users)
	assert.Equal(t, stats.Admins, cached.Admins)
}

func TestCacheMissDetection(t *testing.T) {
	c := newTestCache(t)

	var out DashboardStats
	err := c.GetJSON(context.Background(), "dashboard:stats", &out)
	assert.True(t, cache.IsMiss(err))
}
