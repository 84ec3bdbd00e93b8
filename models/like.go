package models

import "time"

// Like 点赞记录，对应表 likes
// 唯一键: user_id + recipe_id，并发重复写靠索引兜底
type Like struct {
	ID        uint64    `gorm:"column:like_id;primaryKey;autoIncrement" json:"like_id"`
	RecipeID  uint64    `gorm:"column:recipe_id;not null;uniqueIndex:uk_user_recipe,priority:2" json:"recipe_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_recipe,priority:1" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Like) TableName() string { return "likes" }
