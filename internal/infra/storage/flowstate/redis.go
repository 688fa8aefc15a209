package flowstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/Truckify-BookingService/internal/flow"
)

const keyPrefix = "truckify:flow:"

// RedisStore хранилище сессий в Redis.
// Save использует WATCH/MULTI: параллельная запись той же сессии даёт flow.ErrConflict.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создает хранилище поверх клиента Redis
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func key(id string) string {
	return keyPrefix + id
}

func (s *RedisStore) Create(ctx context.Context, state *flow.State) error {
	state.Version = 1
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("flowstate: marshal state: %w", err)
	}

	ok, err := s.client.SetNX(ctx, key(state.ID), data, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("flowstate: create %s: %w", state.ID, err)
	}
	if !ok {
		return flow.ErrConflict
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*flow.State, error) {
	data, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, flow.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("flowstate: get %s: %w", id, err)
	}
	return decode(data)
}

func (s *RedisStore) Save(ctx context.Context, state *flow.State) error {
	k := key(state.ID)
	expected := state.Version

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, k).Bytes()
		if errors.Is(err, redis.Nil) {
			return flow.ErrNotFound
		}
		if err != nil {
			return err
		}

		stored, err := decode(data)
		if err != nil {
			return err
		}
		if stored.Version != expected {
			return flow.ErrConflict
		}

		state.Version = expected + 1
		next, err := json.Marshal(state)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, next, s.ttl)
			return nil
		})
		return err
	}, k)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, redis.TxFailedErr):
		state.Version = expected
		return flow.ErrConflict
	case errors.Is(err, flow.ErrNotFound), errors.Is(err, flow.ErrConflict):
		state.Version = expected
		return err
	default:
		state.Version = expected
		return fmt.Errorf("flowstate: save %s: %w", state.ID, err)
	}
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, key(id)).Result()
	if err != nil {
		return fmt.Errorf("flowstate: delete %s: %w", id, err)
	}
	if n == 0 {
		return flow.ErrNotFound
	}
	return nil
}

func decode(data []byte) (*flow.State, error) {
	var state flow.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("flowstate: decode state: %w", err)
	}
	return &state, nil
}
