package server

import (
	"tastebuds/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListFavorites handles GET /api/favorites.
// @Summary List favorites
// @Tags favorites
// @Produce json
// @Success 200 {array} models.Favorite
// @Router /favorites [get]
func (s *Server) ListFavorites(c *fiber.Ctx) error {
	favorites, err := s.favoriteService.ListFavorites(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(favorites)
}

// ListUserFavorites handles GET /api/users/:id/favorites.
// @Summary List a user's favorites
// @Tags favorites
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Favorite
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id}/favorites [get]
func (s *Server) ListUserFavorites(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	favorites, err := s.favoriteService.ListUserFavorites(c.UserContext(), userID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(favorites)
}

// GetFavorite handles GET /api/favorites/:id.
// @Summary Get a favorite
// @Tags favorites
// @Produce json
// @Param id path int true "Favorite ID"
// @Success 200 {object} models.Favorite
// @Failure 404 {object} models.ErrorResponse
// @Router /favorites/{id} [get]
func (s *Server) GetFavorite(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	favorite, err := s.favoriteService.GetFavorite(c.UserContext(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(favorite)
}

// CreateFavorite handles POST /api/favorites.
// @Summary Favorite a cocktail or a dish
// @Description Exactly one of cocktail_id and dish_id must be set.
// @Tags favorites
// @Accept json
// @Produce json
// @Param favorite body service.CreateFavoriteInput true "New favorite"
// @Success 201 {object} models.Favorite
// @Failure 400 {object} models.ErrorResponse
// @Router /favorites [post]
func (s *Server) CreateFavorite(c *fiber.Ctx) error {
	var req service.CreateFavoriteInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	favorite, err := s.favoriteService.CreateFavorite(c.UserContext(), req)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(favorite)
}

// UpdateFavorite handles PUT /api/favorites/:id.
// @Summary Retarget a favorite
// @Description Exactly one of cocktail_id and dish_id must be set; the other is cleared.
// @Tags favorites
// @Accept json
// @Produce json
// @Param id path int true "Favorite ID"
// @Param favorite body service.UpdateFavoriteInput true "New target"
// @Success 200 {object} models.Favorite
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /favorites/{id} [put]
func (s *Server) UpdateFavorite(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req service.UpdateFavoriteInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	favorite, err := s.favoriteService.UpdateFavorite(c.UserContext(), id, req)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(favorite)
}

// DeleteFavorite handles DELETE /api/favorites/:id.
// @Summary Delete a favorite
// @Tags favorites
// @Param id path int true "Favorite ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /favorites/{id} [delete]
func (s *Server) DeleteFavorite(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.favoriteService.DeleteFavorite(c.UserContext(), id); err != nil {
		return s.respondError(c, err)
	}
	return s.respondDeleted(c, "Favorite")
}

// ListPairings handles GET /api/pairings.
// @Summary List pairings
// @Tags pairings
// @Produce json
// @Success 200 {array} models.Pairing
// @Router /pairings [get]
func (s *Server) ListPairings(c *fiber.Ctx) error {
	pairings, err := s.pairingService.ListPairings(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(pairings)
}

// ListUserPairings handles GET /api/users/:id/pairings.
// @Summary List a user's pairings
// @Tags pairings
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Pairing
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id}/pairings [get]
func (s *Server) ListUserPairings(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	pairings, err := s.pairingService.ListUserPairings(c.UserContext(), userID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(pairings)
}

// GetPairing handles GET /api/pairings/:id.
// @Summary Get a pairing
// @Tags pairings
// @Produce json
// @Param id path int true "Pairing ID"
// @Success 200 {object} models.Pairing
// @Failure 404 {object} models.ErrorResponse
// @Router /pairings/{id} [get]
func (s *Server) GetPairing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	pairing, err := s.pairingService.GetPairing(c.UserContext(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(pairing)
}

// CreatePairing handles POST /api/pairings.
// @Summary Pair a cocktail with a dish
// @Tags pairings
// @Accept json
// @Produce json
// @Param pairing body service.CreatePairingInput true "New pairing"
// @Success 201 {object} models.Pairing
// @Failure 400 {object} models.ErrorResponse
// @Router /pairings [post]
func (s *Server) CreatePairing(c *fiber.Ctx) error {
	var req service.CreatePairingInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	pairing, err := s.pairingService.CreatePairing(c.UserContext(), req)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(pairing)
}

// UpdatePairing handles PUT /api/pairings/:id.
// @Summary Update a pairing
// @Tags pairings
// @Accept json
// @Produce json
// @Param id path int true "Pairing ID"
// @Param pairing body service.UpdatePairingInput true "References to change"
// @Success 200 {object} models.Pairing
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /pairings/{id} [put]
func (s *Server) UpdatePairing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req service.UpdatePairingInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	pairing, err := s.pairingService.UpdatePairing(c.UserContext(), id, req)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(pairing)
}

// DeletePairing handles DELETE /api/pairings/:id.
// @Summary Delete a pairing
// @Tags pairings
// @Param id path int true "Pairing ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /pairings/{id} [delete]
func (s *Server) DeletePairing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.pairingService.DeletePairing(c.UserContext(), id); err != nil {
		return s.respondError(c, err)
	}
	return s.respondDeleted(c, "Pairing")
}
