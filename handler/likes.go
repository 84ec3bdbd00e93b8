package handler

import (
	"net/http"
	"strconv"

	"Savora/config"
	"Savora/middleware"
	"Savora/pkg/context"
	"Savora/pkg/response"
	"Savora/service"
	"Savora/types"

	"github.com/gin-gonic/gin"
)

type LikesHandler struct {
	Config      *config.Config
	LikeService service.ILikeService
}

func (lh *LikesHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(lh.Config.Jwt.Secret))
	likes := r.Group("/likes")
	likes.POST("/:recipe_id", authorize, context.Wrap(lh.CreateLike))
	likes.GET("/like/:like_id", context.Wrap(lh.ReadLike))
	likes.GET("/recipe/:recipe_id", context.Wrap(lh.ListLikes))
	likes.GET("/recipe/:recipe_id/me", authorize, context.Wrap(lh.GetMyLike))
	likes.GET("/count/:recipe_id", context.Wrap(lh.CountLikes))
	likes.DELETE("/:like_id", authorize, context.Wrap(lh.DeleteLike))
}

// CreateLike 点赞菜谱
func (lh *LikesHandler) CreateLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.KindAuth, "Not authenticated")
	}

	recipeID, err := strconv.ParseUint(c.Param("recipe_id"), 10, 64)
	if err != nil || recipeID == 0 {
		return response.NewError(response.KindValidation, "Invalid recipe_id")
	}

	like, err := lh.LikeService.CreateLike(c.Request.Context(), userID, recipeID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusCreated, like)
	return nil
}

// ReadLike 按ID查点赞
func (lh *LikesHandler) ReadLike(c *gin.Context) error {
	likeID, err := strconv.ParseUint(c.Param("like_id"), 10, 64)
	if err != nil || likeID == 0 {
		return response.NewError(response.KindValidation, "Invalid like_id")
	}

	like, err := lh.LikeService.GetLike(c.Request.Context(), likeID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, like)
	return nil
}

// ListLikes 某菜谱的点赞列表（旧的在前）
func (lh *LikesHandler) ListLikes(c *gin.Context) error {
	recipeID, err := strconv.ParseUint(c.Param("recipe_id"), 10, 64)
	if err != nil || recipeID == 0 {
		return response.NewError(response.KindValidation, "Invalid recipe_id")
	}

	likes, err := lh.LikeService.ListLikes(c.Request.Context(), recipeID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, likes)
	return nil
}

// GetMyLike 当前用户对某菜谱的点赞，没有则返回 null
func (lh *LikesHandler) GetMyLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.KindAuth, "Not authenticated")
	}

	recipeID, err := strconv.ParseUint(c.Param("recipe_id"), 10, 64)
	if err != nil || recipeID == 0 {
		return response.NewError(response.KindValidation, "Invalid recipe_id")
	}

	like, err := lh.LikeService.GetMyLike(c.Request.Context(), userID, recipeID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, like)
	return nil
}

// CountLikes 某菜谱的点赞计数
func (lh *LikesHandler) CountLikes(c *gin.Context) error {
	recipeID, err := strconv.ParseUint(c.Param("recipe_id"), 10, 64)
	if err != nil || recipeID == 0 {
		return response.NewError(response.KindValidation, "Invalid recipe_id")
	}

	count, err := lh.LikeService.CountLikes(c.Request.Context(), recipeID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, types.LikeCountResponse{
		RecipeID:  recipeID,
		LikeCount: count,
	})
	return nil
}

// DeleteLike 取消自己的点赞
func (lh *LikesHandler) DeleteLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.KindAuth, "Not authenticated")
	}

	likeID, err := strconv.ParseUint(c.Param("like_id"), 10, 64)
	if err != nil || likeID == 0 {
		return response.NewError(response.KindValidation, "Invalid like_id")
	}

	if err := lh.LikeService.DeleteLike(c.Request.Context(), userID, likeID); err != nil {
		return err
	}

	c.Status(http.StatusNoContent)
	return nil
}
