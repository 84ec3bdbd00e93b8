package service

import (
	"context"
	"testing"

	"Savora/dao"
	"Savora/pkg/metrics"
	"Savora/pkg/oracle"
	"Savora/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentsService(t *testing.T, o oracle.Checker) *CommentsService {
	t.Helper()
	return &CommentsService{
		CommentDAO: dao.NewCommentDAO(newTestDB(t)),
		Oracle:     o,
		Cache:      newTestCache(t),
		Outcomes:   metrics.NewRecorder(),
	}
}

func TestCreateComment(t *testing.T) {
	s := newCommentsService(t, allExists())
	ctx := context.Background()

	comment, err := s.CreateComment(ctx, 1, 3, "Nice recipe")
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)
	assert.Equal(t, uint64(3), comment.RecipeID)
	assert.Equal(t, uint64(1), comment.UserID)
	assert.Equal(t, "Nice recipe", comment.Content)
	assert.False(t, comment.CreatedAt.IsZero())

	count, err := s.CountComments(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCreateCommentRecipeNotFound(t *testing.T) {
	s := newCommentsService(t, &stubOracle{fallback: oracle.NotFound})

	_, err := s.CreateComment(context.Background(), 1, 3, "hello")
	assertBizError(t, err, response.KindNotFound, "Recipe not found")
}

func TestCreateCommentOracleUnknownFailsStrict(t *testing.T) {
	s := newCommentsService(t, &stubOracle{fallback: oracle.Unknown})

	_, err := s.CreateComment(context.Background(), 1, 3, "hello")
	assertBizError(t, err, response.KindUpstream, "")
}

func TestListCommentsOldestFirst(t *testing.T) {
	s := newCommentsService(t, allExists())
	ctx := context.Background()

	first, err := s.CreateComment(ctx, 1, 3, "first")
	require.NoError(t, err)
	second, err := s.CreateComment(ctx, 1, 3, "second")
	require.NoError(t, err)

	items, err := s.ListComments(ctx, 3)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
}

func TestDeleteCommentOwnership(t *testing.T) {
	s := newCommentsService(t, allExists())
	ctx := context.Background()

	comment, err := s.CreateComment(ctx, 1, 3, "mine")
	require.NoError(t, err)

	err = s.DeleteComment(ctx, 2, comment.ID)
	assertBizError(t, err, response.KindForbidden, "You can delete only your own comments")

	got, err := s.GetComment(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Content)

	require.NoError(t, s.DeleteComment(ctx, 1, comment.ID))
	_, err = s.GetComment(ctx, comment.ID)
	assertBizError(t, err, response.KindNotFound, "Comment not found")
}

func TestCommentOutcomeRecordedOncePerCall(t *testing.T) {
	s := newCommentsService(t, &stubOracle{
		recipes:  map[uint64]oracle.Result{9: oracle.NotFound},
		fallback: oracle.Exists,
	})
	ctx := context.Background()

	successBefore := counterValue(metrics.CommentsTotal.WithLabelValues("api", "success"))
	errorBefore := counterValue(metrics.CommentsTotal.WithLabelValues("api", "error"))

	_, err := s.CreateComment(ctx, 1, 3, "ok")
	require.NoError(t, err)
	_, err = s.CreateComment(ctx, 1, 9, "nope")
	require.Error(t, err)

	assert.Equal(t, successBefore+1,
		counterValue(metrics.CommentsTotal.WithLabelValues("api", "success")))
	assert.Equal(t, errorBefore+1,
		counterValue(metrics.CommentsTotal.WithLabelValues("api", "error")))
}
