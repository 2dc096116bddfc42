package repository

import (
	"context"
	"fmt"

	"tastebuds/internal/database"
	"tastebuds/internal/models"

	"gorm.io/gorm"
)

// ChatRepository defines persistence operations for chats and their membership.
type ChatRepository interface {
	List(ctx context.Context) ([]models.Chat, error)
	GetByID(ctx context.Context, id uint) (*models.Chat, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, chat *models.Chat, participantIDs []uint) error
	Update(ctx context.Context, chat *models.Chat) error
	Delete(ctx context.Context, id uint) error

	ListParticipants(ctx context.Context, chatID uint) ([]models.ChatParticipant, error)
	IsParticipant(ctx context.Context, chatID, userID uint) (bool, error)
	AddParticipant(ctx context.Context, participant *models.ChatParticipant) error
	RemoveParticipant(ctx context.Context, chatID, userID uint) error
}

type chatRepository struct {
	store[models.Chat]
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{newStore[models.Chat](db, "Chat")}
}

func (r *chatRepository) List(ctx context.Context) ([]models.Chat, error) {
	return r.list(ctx)
}

func (r *chatRepository) GetByID(ctx context.Context, id uint) (*models.Chat, error) {
	return r.get(ctx, id)
}

func (r *chatRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, id)
}

// Create inserts the chat and its initial participants in one transaction.
func (r *chatRepository) Create(ctx context.Context, chat *models.Chat, participantIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(chat).Error; err != nil {
			return err
		}
		if len(participantIDs) == 0 {
			return nil
		}
		participants := make([]models.ChatParticipant, len(participantIDs))
		for i, userID := range participantIDs {
			participants[i] = models.ChatParticipant{ChatID: chat.ID, UserID: userID}
		}
		return tx.Create(&participants).Error
	})
	return database.ClassifyError("Chat", err)
}

func (r *chatRepository) Update(ctx context.Context, chat *models.Chat) error {
	return r.update(ctx, chat.ID, chat, "name", "is_group")
}

func (r *chatRepository) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, id)
}

func (r *chatRepository) ListParticipants(ctx context.Context, chatID uint) ([]models.ChatParticipant, error) {
	participants := make([]models.ChatParticipant, 0)
	if err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("user_id ASC").
		Find(&participants).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return participants, nil
}

func (r *chatRepository) IsParticipant(ctx context.Context, chatID, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ChatParticipant{}).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *chatRepository) AddParticipant(ctx context.Context, participant *models.ChatParticipant) error {
	if err := r.db.WithContext(ctx).Create(participant).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return models.NewConflictError(fmt.Sprintf("User %d is already in chat %d", participant.UserID, participant.ChatID))
		}
		return database.ClassifyError("Chat participant", err)
	}
	return nil
}

func (r *chatRepository) RemoveParticipant(ctx context.Context, chatID, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Delete(&models.ChatParticipant{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Chat participant", fmt.Sprintf("%d,%d", chatID, userID))
	}
	return nil
}

type MessageRepository interface {
	List(ctx context.Context) ([]models.Message, error)
	ListByChat(ctx context.Context, chatID uint) ([]models.Message, error)
	GetByID(ctx context.Context, id uint) (*models.Message, error)
	// Create inserts message together with notes in one transaction.
	Create(ctx context.Context, message *models.Message, notes []models.Notification) error
	Delete(ctx context.Context, id uint) error
}

type messageRepository struct {
	store[models.Message]
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{newStore[models.Message](db, "Message")}
}

func (r *messageRepository) List(ctx context.Context) ([]models.Message, error) {
	return r.list(ctx)
}

func (r *messageRepository) ListByChat(ctx context.Context, chatID uint) ([]models.Message, error) {
	return r.list(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("chat_id = ?", chatID)
	})
}

func (r *messageRepository) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	return r.get(ctx, id)
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message, notes []models.Notification) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		if len(notes) == 0 {
			return nil
		}
		return tx.Create(&notes).Error
	})
	return database.ClassifyError("Message", err)
}

func (r *messageRepository) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, id)
}
