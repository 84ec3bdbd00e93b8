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

type SavedHandler struct {
	Config       *config.Config
	SavedService service.ISavedService
}

func (sh *SavedHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(sh.Config.Jwt.Secret))
	saved := r.Group("/saved")
	saved.POST("/:recipe_id", authorize, context.Wrap(sh.SaveRecipe))
	saved.GET("/my", authorize, context.Wrap(sh.GetMySaved))
	saved.GET("/recipe/:recipe_id/me", authorize, context.Wrap(sh.GetMySavedForRecipe))
	saved.DELETE("/:saved_id", authorize, context.Wrap(sh.UnsaveRecipe))
}

// SaveRecipe 收藏菜谱
func (sh *SavedHandler) SaveRecipe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.KindAuth, "Not authenticated")
	}

	recipeID, err := strconv.ParseUint(c.Param("recipe_id"), 10, 64)
	if err != nil || recipeID == 0 {
		return response.NewError(response.KindValidation, "Invalid recipe_id")
	}

	saved, err := sh.SavedService.SaveRecipe(c.Request.Context(), userID, recipeID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusCreated, saved)
	return nil
}

// GetMySaved 我的收藏列表（最新在前，附带失效清理）
func (sh *SavedHandler) GetMySaved(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.KindAuth, "Not authenticated")
	}

	saved, err := sh.SavedService.GetMySaved(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, saved)
	return nil
}

// GetMySavedForRecipe 当前用户对某菜谱的收藏，没有则返回 null
func (sh *SavedHandler) GetMySavedForRecipe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.KindAuth, "Not authenticated")
	}

	recipeID, err := strconv.ParseUint(c.Param("recipe_id"), 10, 64)
	if err != nil || recipeID == 0 {
		return response.NewError(response.KindValidation, "Invalid recipe_id")
	}

	saved, err := sh.SavedService.GetMySavedForRecipe(c.Request.Context(), userID, recipeID)
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, saved)
	return nil
}

// UnsaveRecipe 取消自己的收藏
func (sh *SavedHandler) UnsaveRecipe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.KindAuth, "Not authenticated")
	}

	savedID, err := strconv.ParseUint(c.Param("saved_id"), 10, 64)
	if err != nil || savedID == 0 {
		return response.NewError(response.KindValidation, "Invalid saved_id")
	}

	if err := sh.SavedService.UnsaveRecipe(c.Request.Context(), userID, savedID); err != nil {
		return err
	}

	c.Status(http.StatusNoContent)
	return nil
}
