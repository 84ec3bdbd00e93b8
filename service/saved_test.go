package service

import (
	"context"
	"testing"
	"time"

	"Savora/dao"
	"Savora/models"
	"Savora/pkg/metrics"
	"Savora/pkg/oracle"
	"Savora/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSavedService(t *testing.T, o oracle.Checker) *SavedService {
	t.Helper()
	return &SavedService{
		SavedDAO: dao.NewSavedRecipeDAO(newTestDB(t)),
		Oracle:   o,
		Outcomes: metrics.NewRecorder(),
	}
}

func TestSaveRecipeTwice(t *testing.T) {
	s := newSavedService(t, allExists())
	ctx := context.Background()

	saved, err := s.SaveRecipe(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), saved.RecipeID)

	_, err = s.SaveRecipe(ctx, 1, 5)
	assertBizError(t, err, response.KindValidation, "Recipe already saved")
}

func TestSaveRecipeOracleUnknownFailsStrict(t *testing.T) {
	s := newSavedService(t, &stubOracle{fallback: oracle.Unknown})

	_, err := s.SaveRecipe(context.Background(), 1, 5)
	assertBizError(t, err, response.KindUpstream, "")
}

func TestGetMySavedSweepPrunesDefiniteNotFound(t *testing.T) {
	o := &stubOracle{
		recipes: map[uint64]oracle.Result{
			5: oracle.Exists,
			6: oracle.NotFound,
			7: oracle.Unknown,
		},
	}
	s := newSavedService(t, o)
	ctx := context.Background()

	base := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	rows := []models.SavedRecipe{
		{UserID: 1, RecipeID: 5, CreatedAt: base},
		{UserID: 1, RecipeID: 6, CreatedAt: base.Add(time.Minute)},
		{UserID: 1, RecipeID: 7, CreatedAt: base.Add(2 * time.Minute)},
	}
	for i := range rows {
		require.NoError(t, s.SavedDAO.Create(ctx, &rows[i]))
	}

	items, err := s.GetMySaved(ctx, 1)
	require.NoError(t, err)

	// 6 被明确判定不存在：从结果和库里都清掉；7 是 unknown，保留
	require.Len(t, items, 2)
	assert.Equal(t, uint64(7), items[0].RecipeID)
	assert.Equal(t, uint64(5), items[1].RecipeID)

	pruned, err := s.SavedDAO.GetByID(ctx, rows[1].ID)
	require.NoError(t, err)
	assert.Nil(t, pruned)

	kept, err := s.SavedDAO.GetByID(ctx, rows[2].ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestGetMySavedNewestFirst(t *testing.T) {
	s := newSavedService(t, allExists())
	ctx := context.Background()

	base := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	older := models.SavedRecipe{UserID: 1, RecipeID: 5, CreatedAt: base}
	newer := models.SavedRecipe{UserID: 1, RecipeID: 6, CreatedAt: base.Add(time.Minute)}
	require.NoError(t, s.SavedDAO.Create(ctx, &older))
	require.NoError(t, s.SavedDAO.Create(ctx, &newer))

	items, err := s.GetMySaved(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, uint64(6), items[0].RecipeID)
	assert.Equal(t, uint64(5), items[1].RecipeID)
}

func TestUnsaveRecipeOwnership(t *testing.T) {
	s := newSavedService(t, allExists())
	ctx := context.Background()

	saved, err := s.SaveRecipe(ctx, 1, 5)
	require.NoError(t, err)

	err = s.UnsaveRecipe(ctx, 2, saved.ID)
	assertBizError(t, err, response.KindForbidden, "You can only unsave your own saved recipes")

	still, err := s.SavedDAO.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)

	require.NoError(t, s.UnsaveRecipe(ctx, 1, saved.ID))

	err = s.UnsaveRecipe(ctx, 1, saved.ID)
	assertBizError(t, err, response.KindNotFound, "Saved recipe not found")
}

func TestGetMySavedForRecipe(t *testing.T) {
	s := newSavedService(t, allExists())
	ctx := context.Background()

	mine, err := s.GetMySavedForRecipe(ctx, 1, 5)
	require.NoError(t, err)
	assert.Nil(t, mine)

	_, err = s.SaveRecipe(ctx, 1, 5)
	require.NoError(t, err)

	mine, err = s.GetMySavedForRecipe(ctx, 1, 5)
	require.NoError(t, err)
	require.NotNil(t, mine)
	assert.Equal(t, uint64(5), mine.RecipeID)
}

func TestSavedOutcomeRecordedOncePerCall(t *testing.T) {
	s := newSavedService(t, allExists())
	ctx := context.Background()

	saveBefore := counterValue(metrics.SavedItemsTotal.WithLabelValues(metrics.ActionSave, "api", "success"))
	errBefore := counterValue(metrics.SavedItemsTotal.WithLabelValues(metrics.ActionSave, "api", "error"))

	_, err := s.SaveRecipe(ctx, 1, 5)
	require.NoError(t, err)
	_, err = s.SaveRecipe(ctx, 1, 5)
	require.Error(t, err)

	assert.Equal(t, saveBefore+1,
		counterValue(metrics.SavedItemsTotal.WithLabelValues(metrics.ActionSave, "api", "success")))
	assert.Equal(t, errBefore+1,
		counterValue(metrics.SavedItemsTotal.WithLabelValues(metrics.ActionSave, "api", "error")))
}
