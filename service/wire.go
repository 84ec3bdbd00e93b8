package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(CommentsService), "*"),
	wire.Bind(new(ICommentsService), new(*CommentsService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(SavedService), "*"),
	wire.Bind(new(ISavedService), new(*SavedService)),
)
