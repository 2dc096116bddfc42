package server

import (
	"tastebuds/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListChats handles GET /api/chats.
// @Summary List chats
// @Tags chats
// @Produce json
// @Success 200 {array} models.Chat
// @Router /chats [get]
func (s *Server) ListChats(c *fiber.Ctx) error {
	chats, err := s.chatService.ListChats(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(chats)
}

// GetChat handles GET /api/chats/:id.
// @Summary Get a chat
// @Tags chats
// @Produce json
// @Param id path int true "Chat ID"
// @Success 200 {object} models.Chat
// @Failure 404 {object} models.ErrorResponse
// @Router /chats/{id} [get]
func (s *Server) GetChat(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	chat, err := s.chatService.GetChat(c.UserContext(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(chat)
}

// CreateChat handles POST /api/chats.
// @Summary Start a chat
// @Description A direct chat needs exactly two participants.
// @Tags chats
// @Accept json
// @Produce json
// @Param chat body service.CreateChatInput true "New chat"
// @Success 201 {object} models.Chat
// @Failure 400 {object} models.ErrorResponse
// @Router /chats [post]
func (s *Server) CreateChat(c *fiber.Ctx) error {
	var req service.CreateChatInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	chat, err := s.chatService.CreateChat(c.UserContext(), req)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(chat)
}

// UpdateChat handles PUT /api/chats/:id.
// @Summary Rename a chat or change its kind
// @Tags chats
// @Accept json
// @Produce json
// @Param id path int true "Chat ID"
// @Param chat body service.UpdateChatInput true "Fields to change"
// @Success 200 {object} models.Chat
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /chats/{id} [put]
func (s *Server) UpdateChat(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req service.UpdateChatInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	chat, err := s.chatService.UpdateChat(c.UserContext(), id, req)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(chat)
}

// DeleteChat handles DELETE /api/chats/:id.
// @Summary Delete a chat with its participants and messages
// @Tags chats
// @Param id path int true "Chat ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /chats/{id} [delete]
func (s *Server) DeleteChat(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.chatService.DeleteChat(c.UserContext(), id); err != nil {
		return s.respondError(c, err)
	}
	return s.respondDeleted(c, "Chat")
}

// ListParticipants handles GET /api/chats/:id/participants.
// @Summary List chat participants
// @Tags chats
// @Produce json
// @Param id path int true "Chat ID"
// @Success 200 {array} models.ChatParticipant
// @Failure 404 {object} models.ErrorResponse
// @Router /chats/{id}/participants [get]
func (s *Server) ListParticipants(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	participants, err := s.chatService.ListParticipants(c.UserContext(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(participants)
}

// AddParticipant handles POST /api/chats/:id/participants.
// @Summary Add a user to a group chat
// @Tags chats
// @Accept json
// @Produce json
// @Param id path int true "Chat ID"
// @Param participant body service.AddParticipantInput true "User to add"
// @Success 201 {object} models.ChatParticipant
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /chats/{id}/participants [post]
func (s *Server) AddParticipant(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req service.AddParticipantInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	participant, err := s.chatService.AddParticipant(c.UserContext(), id, req)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(participant)
}

// RemoveParticipant handles DELETE /api/chats/:id/participants/:userId.
// @Summary Remove a user from a chat
// @Tags chats
// @Param id path int true "Chat ID"
// @Param userId path int true "User ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /chats/{id}/participants/{userId} [delete]
func (s *Server) RemoveParticipant(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	if err := s.chatService.RemoveParticipant(c.UserContext(), id, userID); err != nil {
		return s.respondError(c, err)
	}
	return s.respondDeleted(c, "Participant")
}

// ListMessages handles GET /api/chats/:id/messages.
// @Summary List the messages of a chat
// @Tags chats
// @Produce json
// @Param id path int true "Chat ID"
// @Success 200 {array} models.Message
// @Failure 404 {object} models.ErrorResponse
// @Router /chats/{id}/messages [get]
func (s *Server) ListMessages(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	messages, err := s.chatService.ListMessages(c.UserContext(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(messages)
}

// SendMessage handles POST /api/chats/:id/messages.
// @Summary Send a message
// @Description The sender must belong to the chat. Every other participant is notified.
// @Tags chats
// @Accept json
// @Produce json
// @Param id path int true "Chat ID"
// @Param message body service.SendMessageInput true "Message"
// @Success 201 {object} models.Message
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /chats/{id}/messages [post]
func (s *Server) SendMessage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req service.SendMessageInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	message, err := s.chatService.SendMessage(c.UserContext(), id, req)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// DeleteMessage handles DELETE /api/messages/:id.
// @Summary Delete a message
// @Tags chats
// @Param id path int true "Message ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /messages/{id} [delete]
func (s *Server) DeleteMessage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.chatService.DeleteMessage(c.UserContext(), id); err != nil {
		return s.respondError(c, err)
	}
	return s.respondDeleted(c, "Message")
}
