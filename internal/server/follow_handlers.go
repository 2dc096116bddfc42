package server

import (
	"tastebuds/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListFollows handles GET /api/follows.
// @Summary List every follow edge
// @Tags follows
// @Produce json
// @Success 200 {array} models.Follow
// @Router /follows [get]
func (s *Server) ListFollows(c *fiber.Ctx) error {
	follows, err := s.followService.ListFollows(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(follows)
}

// ListFollowers handles GET /api/users/:id/followers.
// @Summary List who follows a user
// @Tags follows
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Follow
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id}/followers [get]
func (s *Server) ListFollowers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	follows, err := s.followService.ListFollowers(c.UserContext(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(follows)
}

// ListFollowing handles GET /api/users/:id/following.
// @Summary List who a user follows
// @Tags follows
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Follow
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id}/following [get]
func (s *Server) ListFollowing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	follows, err := s.followService.ListFollowing(c.UserContext(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(follows)
}

// Follow handles POST /api/follows.
// @Summary Follow a user
// @Description The followed user receives a new_follower notification.
// @Tags follows
// @Accept json
// @Produce json
// @Param follow body service.FollowInput true "Follow edge"
// @Success 201 {object} models.Follow
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /follows [post]
func (s *Server) Follow(c *fiber.Ctx) error {
	var req service.FollowInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	follow, err := s.followService.Follow(c.UserContext(), req)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(follow)
}

// Unfollow handles DELETE /api/follows/:followerId/:followedId.
// @Summary Unfollow a user
// @Tags follows
// @Param followerId path int true "Follower user ID"
// @Param followedId path int true "Followed user ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /follows/{followerId}/{followedId} [delete]
func (s *Server) Unfollow(c *fiber.Ctx) error {
	followerID, err := s.parseID(c, "followerId")
	if err != nil {
		return nil
	}
	followedID, err := s.parseID(c, "followedId")
	if err != nil {
		return nil
	}
	if err := s.followService.Unfollow(c.UserContext(), followerID, followedID); err != nil {
		return s.respondError(c, err)
	}
	return s.respondDeleted(c, "Follow")
}
