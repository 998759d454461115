package redis

import (
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"os"
	"strconv"
	"time"
)

var ErrKeyNotFound = errors.New("redis key not found")

type IRedis interface {
	GetMany(ctx context.Context, keys []string) (map[string][]byte, error)
	SetMany(ctx context.Context, values map[string][]byte) error
	Close() error
}

type redisClient struct {
	client *redis.Client
}

func New() (IRedis, error) {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", redisAddr, err)
	}
	logrus.Info("Successfully connected to Redis")

	return &redisClient{client: client}, nil
}

// GetMany fails with ErrKeyNotFound unless every key exists.
func (r *redisClient) GetMany(ctx context.Context, keys []string) (map[string][]byte, error) {
	logrus.Debug(fmt.Sprintf("Getting %d keys", len(keys)))

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	out := make(map[string][]byte, len(keys))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, keys[i])
		}
		out[keys[i]] = []byte(s)
	}
	return out, nil
}

// SetMany writes all values in one MULTI/EXEC transaction.
func (r *redisClient) SetMany(ctx context.Context, values map[string][]byte) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for key, value := range values {
			pipe.Set(ctx, key, value, 0)
		}
		return nil
	})
	if err != nil {
		logrus.Error(fmt.Sprintf("Error setting %d keys: %v", len(values), err))
		return err
	}

	logrus.Debug(fmt.Sprintf("Successfully set %d keys", len(values)))
	return nil
}

func (r *redisClient) Close() error {
	return r.client.Close()
}
