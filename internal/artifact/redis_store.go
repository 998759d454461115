package artifact

import (
	"context"
	"errors"
	"strings"

	"ChatbotGolang/pkg/redis"
)

type RedisStore struct {
	client redis.IRedis
	prefix string
}

func NewRedisStore(client redis.IRedis, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Name() string {
	return "redis:" + s.prefix
}

func (s *RedisStore) Load(ctx context.Context, names []string) (map[string][]byte, error) {
	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = s.prefix + name
	}

	values, err := s.client.GetMany(ctx, keys)
	if errors.Is(err, redis.ErrKeyNotFound) {
		return nil, missing(strings.Join(names, ", "))
	}
	if err != nil {
		return nil, err
	}

	out := make(map[string][]byte, len(names))
	for _, name := range names {
		out[name] = values[s.prefix+name]
	}
	return out, nil
}

func (s *RedisStore) Save(ctx context.Context, blobs map[string][]byte) error {
	values := make(map[string][]byte, len(blobs))
	for name, data := range blobs {
		values[s.prefix+name] = data
	}
	return s.client.SetMany(ctx, values)
}
