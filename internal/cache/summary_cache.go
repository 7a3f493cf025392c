// Package cache provides the optional Redis-backed summary cache. Whole-store
// summaries are the hottest read path; caching them for a short TTL keeps
// dashboard polling cheap. Every cache failure degrades to recomputation, so
// the cache can never make a summary wrong, only slower.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/domain"
	"github.com/yashraj24007/ROOTSnROUTES-sub001/internal/metrics"
)

const summaryKey = "feedback:summary"

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// SummaryCache caches the whole-store FeedbackSummary under a short TTL.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a summary cache with the given TTL.
func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{client: client, ttl: ttl}
}

// Get returns the cached summary and whether it was present. Any error is
// treated as a miss.
func (c *SummaryCache) Get(ctx context.Context) (domain.FeedbackSummary, bool) {
	var summary domain.FeedbackSummary

	data, err := c.client.Get(ctx, summaryKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("Summary cache read failed", "error", err)
		}
		metrics.SummaryCacheMisses.Inc()
		return summary, false
	}

	if err := json.Unmarshal(data, &summary); err != nil {
		slog.Warn("Summary cache entry corrupt, dropping", "error", err)
		c.Invalidate(ctx)
		metrics.SummaryCacheMisses.Inc()
		return domain.FeedbackSummary{}, false
	}

	metrics.SummaryCacheHits.Inc()
	return summary, true
}

// Set stores the summary. Failures are logged and swallowed.
func (c *SummaryCache) Set(ctx context.Context, summary domain.FeedbackSummary) {
	data, err := json.Marshal(summary)
	if err != nil {
		slog.Warn("Summary cache marshal failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, summaryKey, data, c.ttl).Err(); err != nil {
		slog.Warn("Summary cache write failed", "error", err)
	}
}

// Invalidate drops the cached summary. Called on every write so readers
// never see a summary that excludes a stored record beyond the TTL.
func (c *SummaryCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, summaryKey).Err(); err != nil {
		slog.Warn("Summary cache invalidation failed", "error", err)
	}
}
