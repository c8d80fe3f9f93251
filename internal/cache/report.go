// Package cache memoizes derived dashboard views in redis, keyed on the
// exact inputs that produced them: snapshot version plus filter state.
// Aggregations are recomputed in full whenever either changes; this layer
// only short-circuits byte-identical requests.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/analytics"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/config"
)

const (
	reportKeyPrefix  = "analytics:report"
	scanBatchSize    = 100
	defaultReportTTL = time.Minute
)

// ReportCache memoizes full dashboard reports.
type ReportCache interface {
	GetReport(ctx context.Context, version uint64, filter analytics.Filter) (*analytics.Report, bool, error)
	SetReport(ctx context.Context, version uint64, filter analytics.Filter, report *analytics.Report) error
	InvalidateAll(ctx context.Context) error
}

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopReportCache struct{}

func NewReportCache(cfg config.CacheConfig) (ReportCache, error) {
	if !cfg.Enabled {
		return &noopReportCache{}, nil
	}

	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	ttl := time.Duration(cfg.ReportTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultReportTTL
	}

	return &redisReportCache{client: client, ttl: ttl}, nil
}

func NewNoopReportCache() ReportCache {
	return &noopReportCache{}
}

func (c *redisReportCache) GetReport(ctx context.Context, version uint64, filter analytics.Filter) (*analytics.Report, bool, error) {
	key := buildReportKey(version, filter)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var report analytics.Report
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, false, fmt.Errorf("decode report cache: %w", err)
	}

	return &report, true, nil
}

func (c *redisReportCache) SetReport(ctx context.Context, version uint64, filter analytics.Filter, report *analytics.Report) error {
	key := buildReportKey(version, filter)
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report cache: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisReportCache) InvalidateAll(ctx context.Context) error {
	var cursor uint64
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, reportKeyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("redis scan failed: %w", err)
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis delete failed: %w", err)
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return nil
}

func (n *noopReportCache) GetReport(ctx context.Context, version uint64, filter analytics.Filter) (*analytics.Report, bool, error) {
	return nil, false, nil
}

func (n *noopReportCache) SetReport(ctx context.Context, version uint64, filter analytics.Filter, report *analytics.Report) error {
	return nil
}

func (n *noopReportCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func buildRedisOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opt, nil
	}

	host := cfg.RedisHost
	if host == "" {
		host = "127.0.0.1"
	}

	port := cfg.RedisPort
	if port == "" {
		port = "6379"
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}

// buildReportKey hashes the inputs of a report. Snapshot version is part of
// the key, so replacing the dataset naturally orphans all older entries even
// before InvalidateAll sweeps them.
func buildReportKey(version uint64, filter analytics.Filter) string {
	parts := []string{fmt.Sprintf("v=%d", version)}
	if filter.Range != "" {
		parts = append(parts, "range="+string(filter.Range))
	}
	if filter.From != nil {
		parts = append(parts, "from="+filter.From.Format("2006-01-02"))
	}
	if filter.To != nil {
		parts = append(parts, "to="+filter.To.Format("2006-01-02"))
	}
	if len(filter.Products) > 0 {
		parts = append(parts, "products="+strings.Join(filter.Products, ","))
	}
	if filter.Pincode != "" {
		parts = append(parts, "pincode="+filter.Pincode)
	}

	raw := strings.Join(parts, "|")
	hash := sha1.Sum([]byte(raw))
	return fmt.Sprintf("%s:%s", reportKeyPrefix, hex.EncodeToString(hash[:]))
}
