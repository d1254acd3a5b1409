package db

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// KVRedisClient wraps a go-redis client behind the RedisClient interface.
type KVRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewKVRedisClient initializes the client and verifies the connection.
func NewKVRedisClient(ctx context.Context, client *redis.Client) *KVRedisClient {
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Connected to Redis")

	return &KVRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *KVRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *KVRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// Keys lists keys matching the given pattern.
func (r *KVRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del removes a key.
func (r *KVRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *KVRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *KVRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}
