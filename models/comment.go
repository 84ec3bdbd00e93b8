package models

import "time"

// Comment 菜谱评论，对应表 comments
type Comment struct {
	ID        uint64    `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	RecipeID  uint64    `gorm:"column:recipe_id;not null;index:idx_recipe_id" json:"recipe_id"`
	UserID    uint64    `gorm:"column:user_id;not null" json:"user_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Comment) TableName() string { return "comments" }
