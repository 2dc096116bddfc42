package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"tastebuds/internal/models"
	"tastebuds/internal/observability"
	"tastebuds/internal/repository"
)

// directChatSize is the exact membership of a non-group chat.
const directChatSize = 2

type ChatService struct {
	chatRepo    repository.ChatRepository
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

type CreateChatInput struct {
	Name           string `json:"name"`
	IsGroup        bool   `json:"is_group"`
	ParticipantIDs []uint `json:"participant_ids"`
}

type UpdateChatInput struct {
	Name    *string `json:"name"`
	IsGroup *bool   `json:"is_group"`
}

type AddParticipantInput struct {
	UserID uint `json:"user_id"`
}

type SendMessageInput struct {
	UserID  uint   `json:"user_id"`
	Content string `json:"content"`
}

func NewChatService(
	chatRepo repository.ChatRepository,
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
) *ChatService {
	return &ChatService{chatRepo: chatRepo, messageRepo: messageRepo, userRepo: userRepo}
}

func validateChatName(name string) error {
	if utf8.RuneCountInString(name) > 100 {
		return models.NewValidationError("name must be at most 100 characters")
	}
	return nil
}

func (s *ChatService) ListChats(ctx context.Context) (_ []models.Chat, err error) {
	ctx, span := observability.StartSpan(ctx, "ChatService.ListChats")
	defer func() { observability.EndSpan(span, err) }()

	return s.chatRepo.List(ctx)
}

func (s *ChatService) GetChat(ctx context.Context, id uint) (_ *models.Chat, err error) {
	ctx, span := observability.StartSpan(ctx, "ChatService.GetChat")
	defer func() { observability.EndSpan(span, err) }()

	return s.chatRepo.GetByID(ctx, id)
}

func (s *ChatService) CreateChat(ctx context.Context, in CreateChatInput) (_ *models.Chat, err error) {
	ctx, span := observability.StartSpan(ctx, "ChatService.CreateChat")
	defer func() { observability.EndSpan(span, err) }()

	if err := validateChatName(in.Name); err != nil {
		return nil, err
	}

	seen := make(map[uint]struct{}, len(in.ParticipantIDs))
	ids := make([]uint, 0, len(in.ParticipantIDs))
	for _, id := range in.ParticipantIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if err := requireReference(ctx, s.userRepo.Exists, "participant_ids", "User", id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if !in.IsGroup && len(ids) != directChatSize {
		return nil, models.NewValidationError("A direct chat needs exactly two participants")
	}

	chat := &models.Chat{Name: strings.TrimSpace(in.Name), IsGroup: in.IsGroup}
	if err := s.chatRepo.Create(ctx, chat, ids); err != nil {
		return nil, err
	}
	return chat, nil
}

func (s *ChatService) UpdateChat(ctx context.Context, id uint, in UpdateChatInput) (_ *models.Chat, err error) {
	ctx, span := observability.StartSpan(ctx, "ChatService.UpdateChat")
	defer func() { observability.EndSpan(span, err) }()

	chat, err := s.chatRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if err := validateChatName(*in.Name); err != nil {
			return nil, err
		}
		chat.Name = strings.TrimSpace(*in.Name)
	}
	if in.IsGroup != nil && chat.IsGroup && !*in.IsGroup {
		members, err := s.chatRepo.ListParticipants(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(members) != directChatSize {
			return nil, models.NewValidationError("A direct chat needs exactly two participants")
		}
	}
	if in.IsGroup != nil {
		chat.IsGroup = *in.IsGroup
	}
	if err := s.chatRepo.Update(ctx, chat); err != nil {
		return nil, err
	}
	return chat, nil
}

func (s *ChatService) DeleteChat(ctx context.Context, id uint) (err error) {
	ctx, span := observability.StartSpan(ctx, "ChatService.DeleteChat")
	defer func() { observability.EndSpan(span, err) }()

	return s.chatRepo.Delete(ctx, id)
}

func (s *ChatService) ListParticipants(ctx context.Context, chatID uint) (_ []models.ChatParticipant, err error) {
	ctx, span := observability.StartSpan(ctx, "ChatService.ListParticipants")
	defer func() { observability.EndSpan(span, err) }()

	if err := requireFound(ctx, s.chatRepo.Exists, "Chat", chatID); err != nil {
		return nil, err
	}
	return s.chatRepo.ListParticipants(ctx, chatID)
}

func (s *ChatService) AddParticipant(ctx context.Context, chatID uint, in AddParticipantInput) (_ *models.ChatParticipant, err error) {
	ctx, span := observability.StartSpan(ctx, "ChatService.AddParticipant")
	defer func() { observability.EndSpan(span, err) }()

	chat, err := s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.IsGroup {
		return nil, models.NewValidationError("Participants can only be added to group chats")
	}
	if err := requireReference(ctx, s.userRepo.Exists, "user_id", "User", in.UserID); err != nil {
		return nil, err
	}
	participant := &models.ChatParticipant{ChatID: chatID, UserID: in.UserID}
	if err := s.chatRepo.AddParticipant(ctx, participant); err != nil {
		return nil, err
	}
	return participant, nil
}

func (s *ChatService) RemoveParticipant(ctx context.Context, chatID, userID uint) (err error) {
	ctx, span := observability.StartSpan(ctx, "ChatService.RemoveParticipant")
	defer func() { observability.EndSpan(span, err) }()

	chat, err := s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return err
	}
	if !chat.IsGroup {
		return models.NewValidationError("Participants can only be removed from group chats")
	}
	return s.chatRepo.RemoveParticipant(ctx, chatID, userID)
}

func (s *ChatService) ListMessages(ctx context.Context, chatID uint) (_ []models.Message, err error) {
	ctx, span := observability.StartSpan(ctx, "ChatService.ListMessages")
	defer func() { observability.EndSpan(span, err) }()

	if err := requireFound(ctx, s.chatRepo.Exists, "Chat", chatID); err != nil {
		return nil, err
	}
	return s.messageRepo.ListByChat(ctx, chatID)
}

// SendMessage posts a message from a participant and notifies every other
// member of the chat in the same transaction.
func (s *ChatService) SendMessage(ctx context.Context, chatID uint, in SendMessageInput) (_ *models.Message, err error) {
	ctx, span := observability.StartSpan(ctx, "ChatService.SendMessage")
	defer func() { observability.EndSpan(span, err) }()

	if err := requireFound(ctx, s.chatRepo.Exists, "Chat", chatID); err != nil {
		return nil, err
	}
	if err := requireText("content", in.Content); err != nil {
		return nil, err
	}
	if in.UserID == 0 {
		return nil, models.NewValidationError("user_id is required")
	}

	members, err := s.chatRepo.ListParticipants(ctx, chatID)
	if err != nil {
		return nil, err
	}
	isMember := false
	notes := make([]models.Notification, 0, len(members))
	for _, m := range members {
		if m.UserID == in.UserID {
			isMember = true
			continue
		}
		notes = append(notes, models.Notification{
			UserID:  m.UserID,
			Type:    models.NotificationMessage,
			Content: fmt.Sprintf("New message from user %d in chat %d", in.UserID, chatID),
		})
	}
	if !isMember {
		return nil, models.NewValidationError(fmt.Sprintf("User %d is not a participant in chat %d", in.UserID, chatID))
	}

	msg := &models.Message{ChatID: chatID, UserID: in.UserID, Content: in.Content}
	if err := s.messageRepo.Create(ctx, msg, notes); err != nil {
		return nil, err
	}
	observability.Logger.DebugContext(ctx, "message sent",
		slog.Uint64("chat_id", uint64(chatID)),
		slog.Int("recipients", len(notes)))
	return msg, nil
}

func (s *ChatService) DeleteMessage(ctx context.Context, id uint) (err error) {
	ctx, span := observability.StartSpan(ctx, "ChatService.DeleteMessage")
	defer func() { observability.EndSpan(span, err) }()

	return s.messageRepo.Delete(ctx, id)
}
