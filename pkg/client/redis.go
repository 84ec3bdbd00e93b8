package client

import (
	"context"

	"Savora/config"
	"Savora/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func NewRedisClient(conf *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr(),
		Password: conf.Redis.Password,
		Username: conf.Redis.Username,
		DB:       conf.Redis.Database,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.L.Warn("redis ping failed, count cache degraded", zap.Error(err))
	}
	return client
}
