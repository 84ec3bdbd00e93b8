package dao

import (
	"context"
	"errors"

	"Savora/models"

	"gorm.io/gorm"
)

type SavedRecipeDAO struct {
	Repo[models.SavedRecipe]
}

func NewSavedRecipeDAO(db *gorm.DB) *SavedRecipeDAO {
	return &SavedRecipeDAO{Repo: NewRepo[models.SavedRecipe](db)}
}

// GetByID 按主键查收藏，不存在返回 nil
func (d *SavedRecipeDAO) GetByID(ctx context.Context, savedID uint64) (*models.SavedRecipe, error) {
	var item models.SavedRecipe
	err := d.Db.WithContext(ctx).Where("saved_id = ?", savedID).Limit(1).Find(&item).Error
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

// GetByUserRecipe 查指定用户对指定菜谱的收藏记录
func (d *SavedRecipeDAO) GetByUserRecipe(ctx context.Context, userID, recipeID uint64) (*models.SavedRecipe, error) {
	var item models.SavedRecipe
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

// ListByUser 用户的收藏，按创建时间倒序（最新在前）
func (d *SavedRecipeDAO) ListByUser(ctx context.Context, userID uint64) ([]models.SavedRecipe, error) {
	var items []models.SavedRecipe
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, saved_id DESC").
		Find(&items).Error
	return items, err
}

// DeleteByID 删除收藏，目标已不存在返回 ErrNotFound
func (d *SavedRecipeDAO) DeleteByID(ctx context.Context, savedID uint64) error {
	res := d.Db.WithContext(ctx).Where("saved_id = ?", savedID).Delete(&models.SavedRecipe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
