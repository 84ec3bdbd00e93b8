package server

import (
	"Savora/handler"
)

type Handlers struct {
	Comments *handler.CommentsHandler
	Likes    *handler.LikesHandler
	Follow   *handler.FollowHandler
	Saved    *handler.SavedHandler
}
