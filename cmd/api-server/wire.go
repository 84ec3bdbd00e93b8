//go:build wireinject
// +build wireinject

package main

import (
	"Savora/config"
	"Savora/dao"
	"Savora/dao/cache"
	"Savora/handler"
	"Savora/pkg/client"
	"Savora/pkg/database"
	"Savora/pkg/metrics"
	"Savora/pkg/oracle"
	"Savora/pkg/server"
	"Savora/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		database.NewDB,
		client.NewRedisClient,
		cache.ProviderSet,
		oracle.New,
		wire.Bind(new(oracle.Checker), new(*oracle.Client)),
		metrics.NewRecorder,

		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.CommentsHandler), "*"),
		wire.Struct(new(handler.LikesHandler), "*"),
		wire.Struct(new(handler.FollowHandler), "*"),
		wire.Struct(new(handler.SavedHandler), "*"),

		wire.Struct(new(server.Handlers), "*"),
		server.NewGinEngine,
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
