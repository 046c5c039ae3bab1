/*
 * Copyright (C) 2024 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/nuts-foundation/nuts-demo-credentials/core"
	"github.com/nuts-foundation/nuts-demo-credentials/storage/log"
	"github.com/redis/go-redis/v9"
)

var _ SessionDatabase = (*redisSessionDatabase)(nil)
var _ SessionStore = (*redisSessionStore)(nil)

// redisOperationTimeout bounds every call to the Redis server, so a hanging server does not block HTTP handlers.
var redisOperationTimeout = 5 * time.Second

type redisSessionDatabase struct {
	client *redis.Client
	prefix string
}

// NewRedisSessionDatabase creates a SessionDatabase backed by the given Redis client.
// All keys are prefixed with the given prefix (if not empty).
func NewRedisSessionDatabase(client *redis.Client, prefix string) SessionDatabase {
	return redisSessionDatabase{
		client: client,
		prefix: prefix,
	}
}

func createRedisClient(config RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Address,
		Username: config.Username,
		Password: config.Password,
		DB:       config.Database,
	})
	ctx, cancel := context.WithTimeout(context.Background(), redisOperationTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (s redisSessionDatabase) GetStore(ttl time.Duration, keys ...string) SessionStore {
	var prefixes []string
	if len(s.prefix) > 0 {
		prefixes = append(prefixes, s.prefix)
	}
	return redisSessionStore{
		client:   s.client,
		ttl:      ttl,
		storeKey: strings.Join(append(prefixes, keys...), "."),
	}
}

func (s redisSessionDatabase) Close() {
	if err := s.client.Close(); err != nil {
		log.Logger().WithError(err).Error("Failed to close Redis client")
	}
}

type redisSessionStore struct {
	client   *redis.Client
	ttl      time.Duration
	storeKey string
}

func (s redisSessionStore) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOperationTimeout)
	defer cancel()
	return s.client.Del(ctx, s.getFullKey(key)).Err()
}

func (s redisSessionStore) Exists(key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), redisOperationTimeout)
	defer cancel()
	result, err := s.client.Exists(ctx, s.getFullKey(key)).Result()
	if err != nil {
		log.Logger().
			WithError(err).
			WithField(core.LogFieldStore, s.storeKey).
			Error("Failed to check whether value exists in Redis session store")
		return false
	}
	return result > 0
}

func (s redisSessionStore) Get(key string, target interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOperationTimeout)
	defer cancel()
	data, err := s.client.Get(ctx, s.getFullKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

func (s redisSessionStore) Put(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisOperationTimeout)
	defer cancel()
	return s.client.Set(ctx, s.getFullKey(key), data, s.ttl).Err()
}

func (s redisSessionStore) getFullKey(key string) string {
	if len(s.storeKey) == 0 {
		return key
	}
	return s.storeKey + "." + key
}
