package models

import "time"

// Follow 关注关系，对应表 follows
// (follower_id, following_id) 即主键，天然去重
type Follow struct {
	FollowerID  uint64    `gorm:"column:follower_id;primaryKey;autoIncrement:false" json:"follower_id"`
	FollowingID uint64    `gorm:"column:following_id;primaryKey;autoIncrement:false" json:"following_id"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Follow) TableName() string { return "follows" }
