// Package redis provides a Redis-backed SessionStore for deployments where
// the console runs on shared or ephemeral machines and the session has to
// outlive the local filesystem.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/learnstack/demo-console/internal/core/domain"
	"github.com/learnstack/demo-console/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

// Storage keys under the prefix, same contract as the file store.
const (
	keyToken = "jwtToken"
	keyUser  = "currentUser"
)

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
// A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// Store is a Redis-backed SessionStore. All keys live under a prefix so
// several consoles can share one instance.
type Store struct {
	client *redis.Client
	prefix string
}

var _ ports.SessionStore = (*Store)(nil)

// New returns a Store wrapping the given client.
func New(client *redis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

func (s *Store) Load(ctx context.Context) (*domain.Session, error) {
	token, err := s.client.Get(ctx, s.prefix+keyToken).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}

	raw, err := s.client.Get(ctx, s.prefix+keyUser).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("parse stored user: %w", err)
	}
	return &domain.Session{Token: token, User: user}, nil
}

func (s *Store) Save(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.prefix+keyToken, session.Token, 0)
	pipe.Set(ctx, s.prefix+keyUser, raw, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.prefix+keyToken, s.prefix+keyUser).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
