package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/analytics"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/config"
)

func TestBuildReportKey(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	base := buildReportKey(1, analytics.Filter{})
	assert.True(t, strings.HasPrefix(base, reportKeyPrefix+":"))

	// Identical inputs hash identically; any changed input changes the key.
	assert.Equal(t, base, buildReportKey(1, analytics.Filter{}))
	assert.NotEqual(t, base, buildReportKey(2, analytics.Filter{}))
	assert.NotEqual(t, base, buildReportKey(1, analytics.Filter{Range: analytics.RangeLast7Days}))
	assert.NotEqual(t, base, buildReportKey(1, analytics.Filter{Pincode: "411001"}))
	assert.NotEqual(t, base, buildReportKey(1, analytics.Filter{Products: []string{"Bottle"}}))
	assert.NotEqual(t, base, buildReportKey(1, analytics.Filter{From: &from, To: &to}))
}

func TestNewReportCacheDisabled(t *testing.T) {
	c, err := NewReportCache(config.CacheConfig{Enabled: false})
	require.NoError(t, err)

	ctx := context.Background()
	_, hit, err := c.GetReport(ctx, 1, analytics.Filter{})
	require.NoError(t, err)
	assert.False(t, hit)

	report := analytics.Report{}
	assert.NoError(t, c.SetReport(ctx, 1, analytics.Filter{}, &report))
	assert.NoError(t, c.InvalidateAll(ctx))
}

func TestBuildRedisOptions(t *testing.T) {
	opts, err := buildRedisOptions(config.CacheConfig{RedisHost: "redis.internal", RedisPort: "6380", RedisDB: 2})
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)

	opts, err = buildRedisOptions(config.CacheConfig{})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:6379", opts.Addr)

	opts, err = buildRedisOptions(config.CacheConfig{RedisURL: "redis://:secret@cache:6390/1"})
	require.NoError(t, err)
	assert.Equal(t, "cache:6390", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 1, opts.DB)

	_, err = buildRedisOptions(config.CacheConfig{RedisURL: "::/bad"})
	assert.Error(t, err)
}
