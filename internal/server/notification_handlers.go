package server

import (
	"strconv"

	"tastebuds/internal/models"
	"tastebuds/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListNotifications handles GET /api/notifications.
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param user_id query int false "Only notifications for this user"
// @Success 200 {array} models.Notification
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /notifications [get]
func (s *Server) ListNotifications(c *fiber.Ctx) error {
	var userID *uint
	if raw := c.Query("user_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 0)
		if err != nil || v == 0 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid user_id"))
		}
		id := uint(v)
		userID = &id
	}
	notifications, err := s.notificationService.ListNotifications(c.UserContext(), userID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(notifications)
}

// GetNotification handles GET /api/notifications/:id.
// @Summary Get a notification
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} models.Notification
// @Failure 404 {object} models.ErrorResponse
// @Router /notifications/{id} [get]
func (s *Server) GetNotification(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	notification, err := s.notificationService.GetNotification(c.UserContext(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(notification)
}

// CreateNotification handles POST /api/notifications.
// @Summary Create a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body service.CreateNotificationInput true "New notification"
// @Success 201 {object} models.Notification
// @Failure 400 {object} models.ErrorResponse
// @Router /notifications [post]
func (s *Server) CreateNotification(c *fiber.Ctx) error {
	var req service.CreateNotificationInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	notification, err := s.notificationService.CreateNotification(c.UserContext(), req)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(notification)
}

// UpdateNotification handles PUT /api/notifications/:id.
// @Summary Update a notification
// @Description Send {"read": true} to mark it read.
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path int true "Notification ID"
// @Param notification body service.UpdateNotificationInput true "Fields to change"
// @Success 200 {object} models.Notification
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /notifications/{id} [put]
func (s *Server) UpdateNotification(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req service.UpdateNotificationInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	notification, err := s.notificationService.UpdateNotification(c.UserContext(), id, req)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(notification)
}

// DeleteNotification handles DELETE /api/notifications/:id.
// @Summary Delete a notification
// @Tags notifications
// @Param id path int true "Notification ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /notifications/{id} [delete]
func (s *Server) DeleteNotification(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.notificationService.DeleteNotification(c.UserContext(), id); err != nil {
		return s.respondError(c, err)
	}
	return s.respondDeleted(c, "Notification")
}
