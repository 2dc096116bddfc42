package repository

import (
	"context"

	"tastebuds/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	List(ctx context.Context) ([]models.Notification, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Notification, error)
	GetByID(ctx context.Context, id uint) (*models.Notification, error)
	Create(ctx context.Context, note *models.Notification) error
	Update(ctx context.Context, note *models.Notification) error
	Delete(ctx context.Context, id uint) error
}

type notificationRepository struct {
	store[models.Notification]
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{newStore[models.Notification](db, "Notification")}
}

func (r *notificationRepository) List(ctx context.Context) ([]models.Notification, error) {
	return r.list(ctx)
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	return r.list(ctx, byUser(userID))
}

func (r *notificationRepository) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	return r.get(ctx, id)
}

func (r *notificationRepository) Create(ctx context.Context, note *models.Notification) error {
	return r.create(ctx, note)
}

func (r *notificationRepository) Update(ctx context.Context, note *models.Notification) error {
	return r.update(ctx, note.ID, note, "type", "content", "read")
}

func (r *notificationRepository) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, id)
}
