package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用 DAO 基类
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) IsExist(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	err := r.Db.WithContext(ctx).
		Model(new(T)).
		Where(query, args...).
		Count(&count).Error
	return count > 0, err
}
