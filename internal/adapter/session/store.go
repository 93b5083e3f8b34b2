package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/example/customer-page-service/internal/domain"
)

const keyPrefix = "customer-session:"

// RedisStore keeps customer sessions as JSON values with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore parses url and pings the server before returning.
func NewRedisStore(ctx context.Context, url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) CurrentCustomer(ctx context.Context, sessionID string) (domain.Customer, error) {
	if sessionID == "" {
		return domain.Customer{}, domain.ErrNotLoggedIn
	}
	raw, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Customer{}, domain.ErrNotLoggedIn
	}
	if err != nil {
		return domain.Customer{}, fmt.Errorf("load session: %w", err)
	}
	var c domain.Customer
	if err := json.Unmarshal(raw, &c); err != nil {
		return domain.Customer{}, fmt.Errorf("decode session: %w", err)
	}
	return c, nil
}

func (s *RedisStore) Create(ctx context.Context, c domain.Customer) (string, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	token := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+token, raw, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, keyPrefix+sessionID).Err()
}

func (s *RedisStore) Health(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ domain.CustomerClient = (*RedisStore)(nil)

type memoryEntry struct {
	customer  domain.Customer
	expiresAt time.Time
}

// MemoryStore is an in-process session store for development and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry), ttl: ttl, now: time.Now}
}

func (s *MemoryStore) CurrentCustomer(_ context.Context, sessionID string) (domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[sessionID]
	if !ok || (s.ttl > 0 && !s.now().Before(e.expiresAt)) {
		return domain.Customer{}, domain.ErrNotLoggedIn
	}
	return e.customer, nil
}

func (s *MemoryStore) Create(_ context.Context, c domain.Customer) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = memoryEntry{customer: c, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}

var _ domain.CustomerClient = (*MemoryStore)(nil)
