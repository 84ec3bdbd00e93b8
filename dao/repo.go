package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrDuplicate 唯一约束冲突（含并发下的重复插入）
	ErrDuplicate = errors.New("record already exists")
	// ErrNotFound 目标记录不存在
	ErrNotFound = errors.New("record not found")
)

type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// Create 插入记录，唯一索引冲突翻译成 ErrDuplicate
func (r Repo[T]) Create(ctx context.Context, m *T) error {
	err := r.Db.WithContext(ctx).Create(m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// IsExist 条件查询是否存在记录
func (r Repo[T]) IsExist(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var m T
	var count int64
	err := r.Db.WithContext(ctx).Model(&m).Where(query, args...).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
