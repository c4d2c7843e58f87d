package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
)

const _revokedKeyPrefix = "licensing:revoked:"

// MemoryRevocations keeps revoked token ids in process memory.
type MemoryRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryRevocations() *MemoryRevocations {
	return &MemoryRevocations{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (m *MemoryRevocations) Revoke(_ context.Context, tokenID string, until time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.revoked[tokenID] = until
	return nil
}

func (m *MemoryRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	until, ok := m.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if m.now().After(until) {
		delete(m.revoked, tokenID)
		return false, nil
	}
	return true, nil
}

// RedisRevocations stores revoked token ids in Redis with a TTL matching the
// token's remaining lifetime. Every call goes through a circuit breaker.
type RedisRevocations struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker
}

func NewRedisRevocations(logger *slog.Logger, client *redis.Client) *RedisRevocations {
	return &RedisRevocations{
		client:  client,
		breaker: NewCircuitBreaker(logger, "redis-revocations"),
	}
}

func (r *RedisRevocations) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}

	_, err := r.breaker.Execute(func() (any, error) {
		return nil, r.client.Set(ctx, _revokedKeyPrefix+tokenID, "1", ttl).Err()
	})
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (r *RedisRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	res, err := r.breaker.Execute(func() (any, error) {
		err := r.client.Get(ctx, _revokedKeyPrefix+tokenID).Err()
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return false, fmt.Errorf("check token revocation: %w", err)
	}
	return res.(bool), nil
}

func NewCircuitBreaker(logger *slog.Logger, name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
}
