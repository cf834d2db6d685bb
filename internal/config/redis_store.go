package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aleksamarkoni/uva-command-line/client"
)

// RedisStore shares one judge login between machines through a redis hash.
type RedisStore struct {
	client  *redis.Client
	key     string
	timeout time.Duration
}

func NewRedisStore(addr, password string, db int, profile string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		key:     "uva:session:" + profile,
		timeout: 5 * time.Second,
	}
}

func (s *RedisStore) Load() (*client.Credentials, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("read credentials from redis: %w", err)
	}
	if fields["session"] == "" {
		return nil, nil
	}
	return decodeCredentials(storedCredentials{
		Username: fields["username"],
		UserID:   fields["uhunt_uid"],
		Session:  fields["session"],
	})
}

func (s *RedisStore) Save(creds *client.Credentials) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	sc := encodeCredentials(creds)
	return s.client.HSet(ctx, s.key, map[string]any{
		"username":  sc.Username,
		"uhunt_uid": sc.UserID,
		"session":   sc.Session,
	}).Err()
}

func (s *RedisStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.client.Del(ctx, s.key).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
