package service

import (
	"context"
	"errors"

	"Savora/dao"
	"Savora/models"
	"Savora/pkg/log"
	"Savora/pkg/metrics"
	"Savora/pkg/oracle"
	"Savora/pkg/response"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// 清理扫描时并发校验菜谱存在性的上限
const sweepWorkers = 8

var _ ISavedService = (*SavedService)(nil)

type ISavedService interface {
	SaveRecipe(ctx context.Context, userID, recipeID uint64) (*models.SavedRecipe, error)
	GetMySaved(ctx context.Context, userID uint64) ([]models.SavedRecipe, error)
	GetMySavedForRecipe(ctx context.Context, userID, recipeID uint64) (*models.SavedRecipe, error)
	UnsaveRecipe(ctx context.Context, userID, savedID uint64) error
}

type SavedService struct {
	SavedDAO *dao.SavedRecipeDAO
	Oracle   oracle.Checker
	Outcomes *metrics.Recorder
}

func (s *SavedService) SaveRecipe(ctx context.Context, userID, recipeID uint64) (saved *models.SavedRecipe, err error) {
	defer func() { s.Outcomes.RecordSaved(metrics.ActionSave, err) }()

	existing, err := s.SavedDAO.GetByUserRecipe(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, response.NewError(response.KindValidation, "Recipe already saved")
	}

	switch s.Oracle.CheckRecipe(ctx, recipeID) {
	case oracle.NotFound:
		return nil, response.NewError(response.KindNotFound, "Recipe not found")
	case oracle.Unknown:
		return nil, response.NewError(response.KindUpstream, "recipe service unavailable")
	}

	saved = &models.SavedRecipe{
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err = s.SavedDAO.Create(ctx, saved); err != nil {
		if errors.Is(err, dao.ErrDuplicate) {
			err = response.NewError(response.KindValidation, "Recipe already saved")
		}
		return nil, err
	}

	return saved, nil
}

// GetMySaved 用户收藏列表（最新在前）。这是唯一带写副作用的读路径：
// 目标菜谱被 oracle 明确判定不存在的收藏会被顺手删除并从结果里过滤；
// 判定为 unknown 的保留，瞬时故障不能变成批量删数据
func (s *SavedService) GetMySaved(ctx context.Context, userID uint64) ([]models.SavedRecipe, error) {
	items, err := s.SavedDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	results := make([]oracle.Result, len(items))
	p := pool.New().WithMaxGoroutines(sweepWorkers)
	for i, item := range items {
		p.Go(func() {
			results[i] = s.Oracle.CheckRecipe(ctx, item.RecipeID)
		})
	}
	p.Wait()

	kept := make([]models.SavedRecipe, 0, len(items))
	for i, item := range items {
		if results[i] != oracle.NotFound {
			kept = append(kept, item)
			continue
		}
		if err := s.SavedDAO.DeleteByID(ctx, item.ID); err != nil && !errors.Is(err, dao.ErrNotFound) {
			log.L.Warn("failed to prune stale saved recipe",
				zap.Uint64("saved_id", item.ID), zap.Error(err))
			kept = append(kept, item)
			continue
		}
		s.Outcomes.RecordSaved(metrics.ActionUnsave, nil)
	}

	return kept, nil
}

// GetMySavedForRecipe 当前用户对某菜谱的收藏，没有返回 nil
func (s *SavedService) GetMySavedForRecipe(ctx context.Context, userID, recipeID uint64) (*models.SavedRecipe, error) {
	return s.SavedDAO.GetByUserRecipe(ctx, userID, recipeID)
}

func (s *SavedService) UnsaveRecipe(ctx context.Context, userID, savedID uint64) (err error) {
	defer func() { s.Outcomes.RecordSaved(metrics.ActionUnsave, err) }()

	var saved *models.SavedRecipe
	saved, err = s.SavedDAO.GetByID(ctx, savedID)
	if err != nil {
		return err
	}
	if saved == nil {
		return response.NewError(response.KindNotFound, "Saved recipe not found")
	}
	if saved.UserID != userID {
		return response.NewError(response.KindForbidden, "You can only unsave your own saved recipes")
	}

	if err = s.SavedDAO.DeleteByID(ctx, savedID); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return response.NewError(response.KindNotFound, "Saved recipe not found")
		}
		return err
	}

	return nil
}
