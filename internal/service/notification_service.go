package service

import (
	"context"
	"fmt"

	"tastebuds/internal/models"
	"tastebuds/internal/observability"
	"tastebuds/internal/repository"
)

type NotificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
}

type CreateNotificationInput struct {
	UserID  uint                    `json:"user_id"`
	Type    models.NotificationType `json:"type"`
	Content string                  `json:"content"`
}

type UpdateNotificationInput struct {
	Type    *models.NotificationType `json:"type"`
	Content *string                  `json:"content"`
	Read    *bool                    `json:"read"`
}

func NewNotificationService(notificationRepo repository.NotificationRepository, userRepo repository.UserRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo, userRepo: userRepo}
}

func validateNotificationType(t models.NotificationType) error {
	if !t.Valid() {
		return models.NewValidationError(fmt.Sprintf("type must be one of: %s",
			models.EnumList(models.NotificationTypes)))
	}
	return nil
}

// ListNotifications returns every notification, or only those addressed to
// userID when it is non-nil.
func (s *NotificationService) ListNotifications(ctx context.Context, userID *uint) (_ []models.Notification, err error) {
	ctx, span := observability.StartSpan(ctx, "NotificationService.ListNotifications")
	defer func() { observability.EndSpan(span, err) }()

	if userID == nil {
		return s.notificationRepo.List(ctx)
	}
	if err := requireFound(ctx, s.userRepo.Exists, "User", *userID); err != nil {
		return nil, err
	}
	return s.notificationRepo.ListByUser(ctx, *userID)
}

func (s *NotificationService) GetNotification(ctx context.Context, id uint) (_ *models.Notification, err error) {
	ctx, span := observability.StartSpan(ctx, "NotificationService.GetNotification")
	defer func() { observability.EndSpan(span, err) }()

	return s.notificationRepo.GetByID(ctx, id)
}

func (s *NotificationService) CreateNotification(ctx context.Context, in CreateNotificationInput) (_ *models.Notification, err error) {
	ctx, span := observability.StartSpan(ctx, "NotificationService.CreateNotification")
	defer func() { observability.EndSpan(span, err) }()

	if err := requireReference(ctx, s.userRepo.Exists, "user_id", "User", in.UserID); err != nil {
		return nil, err
	}
	if err := validateNotificationType(in.Type); err != nil {
		return nil, err
	}
	note := &models.Notification{UserID: in.UserID, Type: in.Type, Content: in.Content}
	if err := s.notificationRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NotificationService) UpdateNotification(ctx context.Context, id uint, in UpdateNotificationInput) (_ *models.Notification, err error) {
	ctx, span := observability.StartSpan(ctx, "NotificationService.UpdateNotification")
	defer func() { observability.EndSpan(span, err) }()

	note, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Type != nil {
		if err := validateNotificationType(*in.Type); err != nil {
			return nil, err
		}
		note.Type = *in.Type
	}
	if in.Content != nil {
		note.Content = *in.Content
	}
	if in.Read != nil {
		note.Read = *in.Read
	}
	if err := s.notificationRepo.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NotificationService) DeleteNotification(ctx context.Context, id uint) (err error) {
	ctx, span := observability.StartSpan(ctx, "NotificationService.DeleteNotification")
	defer func() { observability.EndSpan(span, err) }()

	return s.notificationRepo.Delete(ctx, id)
}
