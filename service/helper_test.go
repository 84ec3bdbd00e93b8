package service

import (
	"context"
	"fmt"
	"testing"

	"Savora/dao/cache"
	"Savora/models"
	"Savora/pkg/oracle"
	"Savora/pkg/response"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubOracle 固定应答的存在性校验
type stubOracle struct {
	recipes  map[uint64]oracle.Result
	users    map[uint64]oracle.Result
	fallback oracle.Result
}

func (s *stubOracle) CheckRecipe(_ context.Context, id uint64) oracle.Result {
	if r, ok := s.recipes[id]; ok {
		return r
	}
	return s.fallback
}

func (s *stubOracle) CheckUser(_ context.Context, id uint64) oracle.Result {
	if r, ok := s.users[id]; ok {
		return r
	}
	return s.fallback
}

func allExists() *stubOracle {
	return &stubOracle{fallback: oracle.Exists}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.SavedRecipe{},
	))
	return db
}

func newTestCache(t *testing.T) *cache.CountCache {
	t.Helper()
	mr := miniredis.RunT(t)
	return cache.NewCountCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func counterValue(c prometheus.Counter) float64 {
	return testutil.ToFloat64(c)
}

func assertBizError(t *testing.T, err error, kind response.Kind, msg string) {
	t.Helper()
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, kind, be.Kind)
	if msg != "" {
		assert.Equal(t, msg, be.Msg)
	}
}
