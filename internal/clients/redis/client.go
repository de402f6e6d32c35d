package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"adventure-server/internal/config"
	"adventure-server/internal/observability"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// WindowResult is the state of a sliding window after a hit was attempted
type WindowResult struct {
	// Count is the number of hits in the window before this one
	Count   int
	Allowed bool
	// Oldest is the time of the oldest hit still in the window, the current
	// hit when the window was empty
	Oldest time.Time
}

// NewClient creates a new Redis client. It returns nil when Redis is disabled.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "host", Value: cfg.Host},
		observability.Field{Key: "port", Value: cfg.Port},
		observability.Field{Key: "db", Value: cfg.DB},
	), "successfully connected to Redis")

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// IsEnabled returns whether Redis is enabled
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}

// slideWindowScript trims the log at KEYS[1], then adds the hit when the window
// has room. ARGV: now ms, window start ms, limit, member, ttl ms.
// Returns {count before the hit, allowed 0/1, oldest score}.
var slideWindowScript = redis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', ARGV[2])
local count = redis.call('ZCARD', KEYS[1])
local allowed = 0
if count < tonumber(ARGV[3]) then
	redis.call('ZADD', KEYS[1], ARGV[1], ARGV[4])
	redis.call('PEXPIRE', KEYS[1], ARGV[5])
	allowed = 1
end
local oldest = redis.call('ZRANGE', KEYS[1], 0, 0, 'WITHSCORES')
local oldestScore = ARGV[1]
if #oldest > 0 then
	oldestScore = oldest[2]
end
return {count, allowed, oldestScore}
`)

// SlideWindow records a hit on the sliding window log stored in the sorted set
// at key, unless the window already holds limit hits. Scores are unix millis.
// The check and the write run as one script, so concurrent hits cannot overshoot.
func (c *Client) SlideWindow(ctx context.Context, key string, now time.Time, window time.Duration, limit int) (WindowResult, error) {
	if !c.IsEnabled() {
		return WindowResult{}, fmt.Errorf("Redis client not initialized")
	}

	nowMs := now.UnixMilli()
	windowStartMs := now.Add(-window).UnixMilli()
	member := fmt.Sprintf("%d-%s", nowMs, uuid.NewString())
	ttlMs := (window + time.Minute).Milliseconds()

	values, err := slideWindowScript.Run(ctx, c.client, []string{key},
		nowMs, windowStartMs, limit, member, ttlMs).Slice()
	if err != nil {
		return WindowResult{}, fmt.Errorf("failed to slide window: %w", err)
	}
	if len(values) != 3 {
		return WindowResult{}, fmt.Errorf("unexpected window reply: %v", values)
	}

	count, ok := values[0].(int64)
	if !ok {
		return WindowResult{}, fmt.Errorf("unexpected window count: %v", values[0])
	}
	allowed, ok := values[1].(int64)
	if !ok {
		return WindowResult{}, fmt.Errorf("unexpected window verdict: %v", values[1])
	}
	oldestRaw, ok := values[2].(string)
	if !ok {
		return WindowResult{}, fmt.Errorf("unexpected window oldest: %v", values[2])
	}
	oldestMs, err := strconv.ParseFloat(oldestRaw, 64)
	if err != nil {
		return WindowResult{}, fmt.Errorf("failed to parse window oldest: %w", err)
	}

	return WindowResult{
		Count:   int(count),
		Allowed: allowed == 1,
		Oldest:  time.UnixMilli(int64(oldestMs)),
	}, nil
}
