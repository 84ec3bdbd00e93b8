package handler

import (
	"net/http"
	"strconv"

	"Savora/config"
	"Savora/middleware"
	"Savora/pkg/context"
	"Savora/pkg/response"
	"Savora/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (fh *FollowHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(fh.Config.Jwt.Secret))
	follows := r.Group("/follows")
	follows.POST("/:following_id", authorize, context.Wrap(fh.CreateFollow))
	follows.DELETE("/:following_id", authorize, context.Wrap(fh.DeleteFollow))
	follows.GET("/followers/me", authorize, context.Wrap(fh.GetMyFollowers))
	follows.GET("/following/me", authorize, context.Wrap(fh.GetMyFollowing))
	follows.GET("/followers/:user_id", context.Wrap(fh.GetUserFollowers))
	follows.GET("/following/:user_id", context.Wrap(fh.GetUserFollowing))
}

// CreateFollow 关注用户
func (fh *FollowHandler) CreateFollow(c *gin.Context) error {
	followerID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.KindAuth, "Not authenticated")
	}

	followingID, err := strconv.ParseUint(c.Param("following_id"), 10, 64)
	if err != nil || followingID == 0 {
		return response.NewError(response.KindValidation, "Invalid following_id")
	}

	follow, err := fh.FollowService.CreateFollow(c.Request.Context(), followerID, followingID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusCreated, follow)
	return nil
}

// DeleteFollow 取消关注
func (fh *FollowHandler) DeleteFollow(c *gin.Context) error {
	followerID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.KindAuth, "Not authenticated")
	}

	followingID, err := strconv.ParseUint(c.Param("following_id"), 10, 64)
	if err != nil || followingID == 0 {
		return response.NewError(response.KindValidation, "Invalid following_id")
	}

	if err := fh.FollowService.DeleteFollow(c.Request.Context(), followerID, followingID); err != nil {
		return err
	}

	c.Status(http.StatusNoContent)
	return nil
}

// GetMyFollowers 我的粉丝列表
func (fh *FollowHandler) GetMyFollowers(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.KindAuth, "Not authenticated")
	}

	followers, err := fh.FollowService.ListFollowers(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, followers)
	return nil
}

// GetMyFollowing 我关注的列表
func (fh *FollowHandler) GetMyFollowing(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.KindAuth, "Not authenticated")
	}

	following, err := fh.FollowService.ListFollowing(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, following)
	return nil
}

// GetUserFollowers 任意用户的粉丝列表
func (fh *FollowHandler) GetUserFollowers(c *gin.Context) error {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || userID == 0 {
		return response.NewError(response.KindValidation, "Invalid user_id")
	}

	followers, err := fh.FollowService.ListFollowers(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, followers)
	return nil
}

// GetUserFollowing 任意用户关注的列表
func (fh *FollowHandler) GetUserFollowing(c *gin.Context) error {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || userID == 0 {
		return response.NewError(response.KindValidation, "Invalid user_id")
	}

	following, err := fh.FollowService.ListFollowing(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, following)
	return nil
}
