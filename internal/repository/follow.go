package repository

import (
	"context"
	"fmt"

	"tastebuds/internal/database"
	"tastebuds/internal/models"

	"gorm.io/gorm"
)

// FollowRepository stores the directed follower -> followed edges.
type FollowRepository interface {
	List(ctx context.Context) ([]models.Follow, error)
	ListFollowers(ctx context.Context, userID uint) ([]models.Follow, error)
	ListFollowing(ctx context.Context, userID uint) ([]models.Follow, error)
	Exists(ctx context.Context, followerID, followedID uint) (bool, error)
	Create(ctx context.Context, follow *models.Follow, note *models.Notification) error
	Delete(ctx context.Context, followerID, followedID uint) error
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) find(ctx context.Context, query string, args ...any) ([]models.Follow, error) {
	follows := make([]models.Follow, 0)
	q := r.db.WithContext(ctx)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Order("follower_id ASC, followed_id ASC").Find(&follows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return follows, nil
}

func (r *followRepository) List(ctx context.Context) ([]models.Follow, error) {
	return r.find(ctx, "")
}

func (r *followRepository) ListFollowers(ctx context.Context, userID uint) ([]models.Follow, error) {
	return r.find(ctx, "followed_id = ?", userID)
}

func (r *followRepository) ListFollowing(ctx context.Context, userID uint) ([]models.Follow, error) {
	return r.find(ctx, "follower_id = ?", userID)
}

func (r *followRepository) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// Create inserts the edge and, when note is non-nil, the new_follower
// notification in one transaction.
func (r *followRepository) Create(ctx context.Context, follow *models.Follow, note *models.Notification) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(follow).Error; err != nil {
			return err
		}
		if note != nil {
			return tx.Create(note).Error
		}
		return nil
	})
	if err == nil {
		return nil
	}
	if database.IsUniqueViolation(err) {
		return models.NewConflictError(fmt.Sprintf("User %d already follows user %d", follow.FollowerID, follow.FollowedID))
	}
	return database.ClassifyError("Follow", err)
}

func (r *followRepository) Delete(ctx context.Context, followerID, followedID uint) error {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Follow", fmt.Sprintf("%d,%d", followerID, followedID))
	}
	return nil
}
