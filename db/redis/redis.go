package redis

import (
	"context"
	"errors"
	"fmt"
	"showtracker/configs"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func ConnectRedis() {
	time.Sleep(time.Duration(configs.GetConfigs().WaitForRedisConnectionSec) * time.Second)
	redisClient = redis.NewClient(&redis.Options{
		Addr:     configs.GetConfigs().RedisUrl,
		Password: configs.GetConfigs().RedisPassword,
		DB:       0,
	})
	ctx := context.Background()
	pong, err := redisClient.Ping(ctx).Result()
	fmt.Println("====> [[ShowTracker Redis Client:", pong, err, "]]")
}

var errNotConnected = errors.New("redis: client not connected")

func GetRedis(ctx context.Context, key string) (string, error) {
	if redisClient == nil {
		return "", errNotConnected
	}
	return redisClient.Get(ctx, key).Result()
}

func ExistsRedis(ctx context.Context, key string) (bool, error) {
	if redisClient == nil {
		return false, errNotConnected
	}
	n, err := redisClient.Exists(ctx, key).Result()
	return n > 0, err
}

func SetRedis(ctx context.Context, key string, value interface{}, duration time.Duration) error {
	if redisClient == nil {
		return errNotConnected
	}
	return redisClient.Set(ctx, key, value, duration).Err()
}

func DelRedis(ctx context.Context, keys ...string) error {
	if redisClient == nil {
		return errNotConnected
	}
	return redisClient.Del(ctx, keys...).Err()
}

// IsNil reports a cache miss.
func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}
