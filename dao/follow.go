package dao

import (
	"context"
	"errors"

	"Savora/models"

	"gorm.io/gorm"
)

type FollowDAO struct {
	Repo[models.Follow]
}

func NewFollowDAO(db *gorm.DB) *FollowDAO {
	return &FollowDAO{Repo: NewRepo[models.Follow](db)}
}

// Get 按复合主键查关注关系，不存在返回 nil
func (d *FollowDAO) Get(ctx context.Context, followerID, followingID uint64) (*models.Follow, error) {
	var item models.Follow
	err := d.Db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.FollowerID == 0 {
		return nil, nil
	}
	return &item, nil
}

// ListFollowers 关注 userID 的关系列表
func (d *FollowDAO) ListFollowers(ctx context.Context, userID uint64) ([]models.Follow, error) {
	var items []models.Follow
	err := d.Db.WithContext(ctx).
		Where("following_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// ListFollowing userID 关注的关系列表
func (d *FollowDAO) ListFollowing(ctx context.Context, userID uint64) ([]models.Follow, error) {
	var items []models.Follow
	err := d.Db.WithContext(ctx).
		Where("follower_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// Delete 删除关注关系，目标已不存在返回 ErrNotFound
func (d *FollowDAO) Delete(ctx context.Context, followerID, followingID uint64) error {
	res := d.Db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
