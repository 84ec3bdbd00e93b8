package dao

import (
	"context"
	"errors"

	"Savora/models"

	"gorm.io/gorm"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

// GetByID 按主键查点赞，不存在返回 nil
func (d *LikeDAO) GetByID(ctx context.Context, likeID uint64) (*models.Like, error) {
	var item models.Like
	err := d.Db.WithContext(ctx).Where("like_id = ?", likeID).Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// GetByUserRecipe 查指定用户对指定菜谱的点赞记录
func (d *LikeDAO) GetByUserRecipe(ctx context.Context, userID, recipeID uint64) (*models.Like, error) {
	var item models.Like
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// ListByRecipe 某菜谱下的点赞，按创建时间正序
func (d *LikeDAO) ListByRecipe(ctx context.Context, recipeID uint64) ([]models.Like, error) {
	var items []models.Like
	err := d.Db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at ASC, like_id ASC").
		Find(&items).Error
	return items, err
}

// DeleteByID 删除点赞，目标已不存在返回 ErrNotFound
func (d *LikeDAO) DeleteByID(ctx context.Context, likeID uint64) error {
	res := d.Db.WithContext(ctx).Where("like_id = ?", likeID).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByRecipe 某菜谱下的点赞数
func (d *LikeDAO) CountByRecipe(ctx context.Context, recipeID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Like{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error
	return count, err
}
