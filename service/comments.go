package service

import (
	"context"
	"errors"

	"Savora/dao"
	"Savora/dao/cache"
	"Savora/models"
	"Savora/pkg/metrics"
	"Savora/pkg/oracle"
	"Savora/pkg/response"
)

var _ ICommentsService = (*CommentsService)(nil)

type ICommentsService interface {
	CreateComment(ctx context.Context, userID, recipeID uint64, content string) (*models.Comment, error)
	GetComment(ctx context.Context, commentID uint64) (*models.Comment, error)
	ListComments(ctx context.Context, recipeID uint64) ([]models.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID uint64) error
	CountComments(ctx context.Context, recipeID uint64) (int64, error)
}

type CommentsService struct {
	CommentDAO *dao.CommentDAO
	Oracle     oracle.Checker
	Cache      *cache.CountCache
	Outcomes   *metrics.Recorder
}

func (s *CommentsService) CreateComment(ctx context.Context, userID, recipeID uint64, content string) (comment *models.Comment, err error) {
	// 无论从哪条路径退出都只打一次点
	defer func() { s.Outcomes.RecordComment(err) }()

	// 创建路径对 oracle 从严：拿不到确定答案就拒绝写入
	switch s.Oracle.CheckRecipe(ctx, recipeID) {
	case oracle.NotFound:
		return nil, response.NewError(response.KindNotFound, "Recipe not found")
	case oracle.Unknown:
		return nil, response.NewError(response.KindUpstream, "recipe service unavailable")
	}

	comment = &models.Comment{
		RecipeID: recipeID,
		UserID:   userID,
		Content:  content,
	}
	if err = s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.Cache.DelCommentCount(ctx, recipeID)
	return comment, nil
}

func (s *CommentsService) GetComment(ctx context.Context, commentID uint64) (*models.Comment, error) {
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, response.NewError(response.KindNotFound, "Comment not found")
	}
	return comment, nil
}

func (s *CommentsService) ListComments(ctx context.Context, recipeID uint64) ([]models.Comment, error) {
	return s.CommentDAO.ListByRecipe(ctx, recipeID)
}

func (s *CommentsService) DeleteComment(ctx context.Context, userID, commentID uint64) (err error) {
	defer func() { s.Outcomes.RecordComment(err) }()

	var comment *models.Comment
	comment, err = s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return response.NewError(response.KindNotFound, "Comment not found")
	}
	if comment.UserID != userID {
		return response.NewError(response.KindForbidden, "You can delete only your own comments")
	}

	if err = s.CommentDAO.DeleteByID(ctx, commentID); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return response.NewError(response.KindNotFound, "Comment not found")
		}
		return err
	}

	s.Cache.DelCommentCount(ctx, comment.RecipeID)
	return nil
}

func (s *CommentsService) CountComments(ctx context.Context, recipeID uint64) (int64, error) {
	if count, ok := s.Cache.GetCommentCount(ctx, recipeID); ok {
		return count, nil
	}
	count, err := s.CommentDAO.CountByRecipe(ctx, recipeID)
	if err != nil {
		return 0, err
	}
	s.Cache.SetCommentCount(ctx, recipeID, count)
	return count, nil
}
