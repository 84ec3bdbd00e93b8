package models

import "time"

// SavedRecipe 收藏记录，对应表 saved_recipes
// 唯一键: user_id + recipe_id
type SavedRecipe struct {
	ID        uint64    `gorm:"column:saved_id;primaryKey;autoIncrement" json:"saved_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_recipe_saved,priority:1" json:"user_id"`
	RecipeID  uint64    `gorm:"column:recipe_id;not null;uniqueIndex:uk_user_recipe_saved,priority:2" json:"recipe_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SavedRecipe) TableName() string { return "saved_recipes" }
