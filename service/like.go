package service

import (
	"context"
	"errors"

	"Savora/dao"
	"Savora/dao/cache"
	"Savora/models"
	"Savora/pkg/metrics"
	"Savora/pkg/oracle"
	"Savora/pkg/response"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	CreateLike(ctx context.Context, userID, recipeID uint64) (*models.Like, error)
	GetLike(ctx context.Context, likeID uint64) (*models.Like, error)
	GetMyLike(ctx context.Context, userID, recipeID uint64) (*models.Like, error)
	ListLikes(ctx context.Context, recipeID uint64) ([]models.Like, error)
	DeleteLike(ctx context.Context, userID, likeID uint64) error
	CountLikes(ctx context.Context, recipeID uint64) (int64, error)
}

type LikeService struct {
	LikeDAO  *dao.LikeDAO
	Oracle   oracle.Checker
	Cache    *cache.CountCache
	Outcomes *metrics.Recorder
}

func (s *LikeService) CreateLike(ctx context.Context, userID, recipeID uint64) (like *models.Like, err error) {
	defer func() { s.Outcomes.RecordLike(metrics.ActionLike, err) }()

	// 本地唯一性先查，重复就不必再打外部服务
	existing, err := s.LikeDAO.GetByUserRecipe(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, response.NewError(response.KindValidation, "Recipe already liked")
	}

	switch s.Oracle.CheckRecipe(ctx, recipeID) {
	case oracle.NotFound:
		return nil, response.NewError(response.KindNotFound, "Recipe not found")
	case oracle.Unknown:
		return nil, response.NewError(response.KindUpstream, "recipe service unavailable")
	}

	like = &models.Like{
		RecipeID: recipeID,
		UserID:   userID,
	}
	if err = s.LikeDAO.Create(ctx, like); err != nil {
		// 并发下两个请求都能通过上面的预查，唯一索引兜底
		if errors.Is(err, dao.ErrDuplicate) {
			err = response.NewError(response.KindValidation, "Recipe already liked")
		}
		return nil, err
	}

	s.Cache.DelLikeCount(ctx, recipeID)
	return like, nil
}

func (s *LikeService) GetLike(ctx context.Context, likeID uint64) (*models.Like, error) {
	like, err := s.LikeDAO.GetByID(ctx, likeID)
	if err != nil {
		return nil, err
	}
	if like == nil {
		return nil, response.NewError(response.KindNotFound, "Like not found")
	}
	return like, nil
}

// GetMyLike 当前用户对某菜谱的点赞，没有返回 nil
func (s *LikeService) GetMyLike(ctx context.Context, userID, recipeID uint64) (*models.Like, error) {
	return s.LikeDAO.GetByUserRecipe(ctx, userID, recipeID)
}

func (s *LikeService) ListLikes(ctx context.Context, recipeID uint64) ([]models.Like, error) {
	return s.LikeDAO.ListByRecipe(ctx, recipeID)
}

func (s *LikeService) DeleteLike(ctx context.Context, userID, likeID uint64) (err error) {
	defer func() { s.Outcomes.RecordLike(metrics.ActionUnlike, err) }()

	var like *models.Like
	like, err = s.LikeDAO.GetByID(ctx, likeID)
	if err != nil {
		return err
	}
	if like == nil {
		return response.NewError(response.KindNotFound, "Like not found")
	}
	if like.UserID != userID {
		return response.NewError(response.KindForbidden, "You can delete only your own likes")
	}

	if err = s.LikeDAO.DeleteByID(ctx, likeID); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return response.NewError(response.KindNotFound, "Like not found")
		}
		return err
	}

	s.Cache.DelLikeCount(ctx, like.RecipeID)
	return nil
}

func (s *LikeService) CountLikes(ctx context.Context, recipeID uint64) (int64, error) {
	if count, ok := s.Cache.GetLikeCount(ctx, recipeID); ok {
		return count, nil
	}
	count, err := s.LikeDAO.CountByRecipe(ctx, recipeID)
	if err != nil {
		return 0, err
	}
	s.Cache.SetLikeCount(ctx, recipeID, count)
	return count, nil
}
