package project

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

const redisMaxRetries = 3

// RedisStore keeps the current snapshot and the recent list as JSON
// documents under "<prefix>:current" and "<prefix>:recent".
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore returns a store using client. An empty prefix defaults to
// "newsletter".
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "newsletter"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) currentKey() string { return s.prefix + ":current" }
func (s *RedisStore) recentKey() string  { return s.prefix + ":recent" }

// SaveCurrent writes both keys in one MULTI block. The recent list is read
// under WATCH and the write is retried when another writer got there first.
func (s *RedisStore) SaveCurrent(ctx context.Context, p Project) error {
	current, err := json.Marshal(p)
	if err != nil {
		return errors.Join(ErrSaveFailed, err)
	}

	txf := func(tx *redis.Tx) error {
		recent, err := s.readRecent(ctx, tx)
		if err != nil {
			return err
		}
		list, err := json.Marshal(Remember(recent, p))
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.currentKey(), current, 0)
			pipe.Set(ctx, s.recentKey(), list, 0)
			return nil
		})
		return err
	}

	for range redisMaxRetries {
		err = s.client.Watch(ctx, txf, s.recentKey())
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}

func (s *RedisStore) Current(ctx context.Context) (Project, error) {
	data, err := s.client.Get(ctx, s.currentKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return Project{}, ErrNotFound
	}
	if err != nil {
		return Project{}, errors.Join(ErrLoadFailed, err)
	}
	return decodeProject(data)
}

func (s *RedisStore) ClearCurrent(ctx context.Context) error {
	return s.client.Del(ctx, s.currentKey()).Err()
}

func (s *RedisStore) Recent(ctx context.Context) ([]Project, error) {
	return s.readRecent(ctx, s.client)
}

func (s *RedisStore) readRecent(ctx context.Context, c redis.Cmdable) ([]Project, error) {
	data, err := c.Get(ctx, s.recentKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return []Project{}, nil
	}
	if err != nil {
		return nil, errors.Join(ErrLoadFailed, err)
	}
	return decodeProjects(data)
}
