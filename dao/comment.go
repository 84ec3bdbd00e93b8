package dao

import (
	"context"
	"errors"

	"Savora/models"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.Comment](db)}
}

// GetByID 按主键查评论，不存在返回 nil
func (d *CommentDAO) GetByID(ctx context.Context, commentID uint64) (*models.Comment, error) {
	var item models.Comment
	err := d.Db.WithContext(ctx).Where("comment_id = ?", commentID).Limit(1).Find(&item).Error
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

// ListByRecipe 某菜谱下的评论，按创建时间正序（同刻按主键）
func (d *CommentDAO) ListByRecipe(ctx context.Context, recipeID uint64) ([]models.Comment, error) {
	var items []models.Comment
	err := d.Db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at ASC, comment_id ASC").
		Find(&items).Error
	return items, err
}

// DeleteByID 删除评论，目标已不存在返回 ErrNotFound
func (d *CommentDAO) DeleteByID(ctx context.Context, commentID uint64) error {
	res := d.Db.WithContext(ctx).Where("comment_id = ?", commentID).Delete(&models.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByRecipe 某菜谱下的评论数
func (d *CommentDAO) CountByRecipe(ctx context.Context, recipeID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error
	return count, err
}
