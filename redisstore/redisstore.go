package redisstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Addr     string
	DB       int
	Password string
}

// RedisStore is the network-backed storage backend. Every operation is
// a blocking call to the redis server; failures surface as errors and
// leave the caller free to retry.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

// New connects to the redis server and verifies the connection with a
// PING before returning.
func New(options Options) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     options.Addr,
		DB:       options.DB,
		Password: options.Password,
	})

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	log.Info().
		Str("addr", options.Addr).
		Int("db", options.DB).
		Msg("redisstore: connected")

	return &RedisStore{
		client: client,
		ctx:    ctx,
	}, nil
}

func (s *RedisStore) Get(key string) (string, bool, error) {
	value, err := s.client.Get(s.ctx, key).Result()

	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

func (s *RedisStore) Set(key string, value string) error {
	return s.client.Set(s.ctx, key, value, 0).Err()
}

func (s *RedisStore) Delete(key string) error {
	return s.client.Del(s.ctx, key).Err()
}

// ScanByValue walks the whole keyspace with SCAN and reads each key.
// Linear in the number of keys; acceptable for an interactive session.
func (s *RedisStore) ScanByValue(value string) ([]string, error) {
	var keys []string

	iter := s.client.Scan(s.ctx, 0, "", 0).Iterator()

	for iter.Next(s.ctx) {
		key := iter.Val()

		stored, found, err := s.Get(key)

		if err != nil {
			return nil, err
		}

		if found && stored == value {
			keys = append(keys, key)
		}
	}

	if err := iter.Err(); err != nil {
		return nil, err
	}

	return keys, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
