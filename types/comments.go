package types

// 创建评论请求
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

// 评论计数响应
type CommentCountResponse struct {
	RecipeID     uint64 `json:"recipe_id"`
	CommentCount int64  `json:"comment_count"`
}
