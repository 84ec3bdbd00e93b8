package types

// 点赞计数响应
type LikeCountResponse struct {
	RecipeID  uint64 `json:"recipe_id"`
	LikeCount int64  `json:"like_count"`
}
