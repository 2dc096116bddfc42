// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"tastebuds/internal/database"
	"tastebuds/internal/models"

	"gorm.io/gorm"
)

// store holds the GORM plumbing shared by every single-key repository.
// resource names the entity in error messages.
type store[T any] struct {
	db       *gorm.DB
	resource string
}

func newStore[T any](db *gorm.DB, resource string) store[T] {
	return store[T]{db: db, resource: resource}
}

func (s store[T]) list(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	items := make([]T, 0)
	if err := s.db.WithContext(ctx).Scopes(scopes...).Order("id ASC").Find(&items).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (s store[T]) get(ctx context.Context, id uint) (*T, error) {
	var item T
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError(s.resource, id)
		}
		return nil, models.NewInternalError(err)
	}
	return &item, nil
}

func (s store[T]) exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (s store[T]) create(ctx context.Context, item *T) error {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return database.ClassifyError(s.resource, err)
	}
	return nil
}

// update writes the named columns of item, zero values included, to the row
// matching item's primary key.
func (s store[T]) update(ctx context.Context, id uint, item *T, columns ...string) error {
	res := s.db.WithContext(ctx).Model(item).Select(columns).Updates(item)
	if res.Error != nil {
		return database.ClassifyError(s.resource, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError(s.resource, id)
	}
	return nil
}

func (s store[T]) delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return database.ClassifyError(s.resource, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError(s.resource, id)
	}
	return nil
}

func byUser(userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
