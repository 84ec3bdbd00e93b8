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

type CommentsHandler struct {
	Config          *config.Config
	CommentsService service.ICommentsService
}

func (ch *CommentsHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(ch.Config.Jwt.Secret))
	comments := r.Group("/comments")
	comments.POST("/:recipe_id", authorize, context.Wrap(ch.CreateComment))
	comments.GET("/comment/:comment_id", context.Wrap(ch.ReadComment))
	comments.GET("/recipe/:recipe_id", context.Wrap(ch.ListComments))
	comments.GET("/count/:recipe_id", context.Wrap(ch.CountComments))
	comments.DELETE("/:comment_id", authorize, context.Wrap(ch.DeleteComment))
}

// CreateComment 发表评论
func (ch *CommentsHandler) CreateComment(c *gin.Context) error {
	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.KindValidation, err.Error())
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.KindAuth, "Not authenticated")
	}

	recipeID, err := strconv.ParseUint(c.Param("recipe_id"), 10, 64)
	if err != nil || recipeID == 0 {
		return response.NewError(response.KindValidation, "Invalid recipe_id")
	}

	comment, err := ch.CommentsService.CreateComment(c.Request.Context(), userID, recipeID, req.Content)
	if err != nil {
		return err
	}

	c.JSON(http.StatusCreated, comment)
	return nil
}

// ReadComment 按ID查评论
func (ch *CommentsHandler) ReadComment(c *gin.Context) error {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		return response.NewError(response.KindValidation, "Invalid comment_id")
	}

	comment, err := ch.CommentsService.GetComment(c.Request.Context(), commentID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, comment)
	return nil
}

// ListComments 某菜谱的评论列表（旧的在前）
func (ch *CommentsHandler) ListComments(c *gin.Context) error {
	recipeID, err := strconv.ParseUint(c.Param("recipe_id"), 10, 64)
	if err != nil || recipeID == 0 {
		return response.NewError(response.KindValidation, "Invalid recipe_id")
	}

	comments, err := ch.CommentsService.ListComments(c.Request.Context(), recipeID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, comments)
	return nil
}

// CountComments 某菜谱的评论计数
func (ch *CommentsHandler) CountComments(c *gin.Context) error {
	recipeID, err := strconv.ParseUint(c.Param("recipe_id"), 10, 64)
	if err != nil || recipeID == 0 {
		return response.NewError(response.KindValidation, "Invalid recipe_id")
	}

	count, err := ch.CommentsService.CountComments(c.Request.Context(), recipeID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, types.CommentCountResponse{
		RecipeID:     recipeID,
		CommentCount: count,
	})
	return nil
}

// DeleteComment 删除自己的评论
func (ch *CommentsHandler) DeleteComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.KindAuth, "Not authenticated")
	}

	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		return response.NewError(response.KindValidation, "Invalid comment_id")
	}

	if err := ch.CommentsService.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		return err
	}

	c.Status(http.StatusNoContent)
	return nil
}
