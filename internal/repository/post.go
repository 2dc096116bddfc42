package repository

import (
	"context"

	"tastebuds/internal/database"
	"tastebuds/internal/models"

	"gorm.io/gorm"
)

type PostRepository interface {
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	store[models.Post]
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{newStore[models.Post](db, "Post")}
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	return r.list(ctx)
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return r.get(ctx, id)
}

func (r *postRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, id)
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.create(ctx, post)
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.update(ctx, post.ID, post, "content")
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, id)
}

type CommentRepository interface {
	List(ctx context.Context) ([]models.Comment, error)
	ListByPost(ctx context.Context, postID uint) ([]models.Comment, error)
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	// Create inserts comment and, when note is non-nil, the notification
	// announcing it, atomically.
	Create(ctx context.Context, comment *models.Comment, note *models.Notification) error
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	store[models.Comment]
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{newStore[models.Comment](db, "Comment")}
}

func (r *commentRepository) List(ctx context.Context) ([]models.Comment, error) {
	return r.list(ctx)
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return r.list(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("post_id = ?", postID)
	})
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return r.get(ctx, id)
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment, note *models.Notification) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		if note != nil {
			return tx.Create(note).Error
		}
		return nil
	})
	return database.ClassifyError("Comment", err)
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	return r.update(ctx, comment.ID, comment, "content")
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, id)
}
