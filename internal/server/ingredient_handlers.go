package server

import (
	"tastebuds/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListIngredients handles GET /api/ingredients.
// @Summary List ingredients
// @Tags ingredients
// @Produce json
// @Success 200 {array} models.Ingredient
// @Router /ingredients [get]
func (s *Server) ListIngredients(c *fiber.Ctx) error {
	ingredients, err := s.ingredientService.ListIngredients(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(ingredients)
}

// GetIngredient handles GET /api/ingredients/:id.
// @Summary Get an ingredient
// @Tags ingredients
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} models.Ingredient
// @Failure 404 {object} models.ErrorResponse
// @Router /ingredients/{id} [get]
func (s *Server) GetIngredient(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	ingredient, err := s.ingredientService.GetIngredient(c.UserContext(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(ingredient)
}

// CreateIngredient handles POST /api/ingredients.
// @Summary Create an ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Param ingredient body service.CreateIngredientInput true "New ingredient"
// @Success 201 {object} models.Ingredient
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /ingredients [post]
func (s *Server) CreateIngredient(c *fiber.Ctx) error {
	var req service.CreateIngredientInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	ingredient, err := s.ingredientService.CreateIngredient(c.UserContext(), req)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ingredient)
}

// UpdateIngredient handles PUT /api/ingredients/:id.
// @Summary Update an ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Param ingredient body service.UpdateIngredientInput true "Fields to change"
// @Success 200 {object} models.Ingredient
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /ingredients/{id} [put]
func (s *Server) UpdateIngredient(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req service.UpdateIngredientInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	ingredient, err := s.ingredientService.UpdateIngredient(c.UserContext(), id, req)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(ingredient)
}

// DeleteIngredient handles DELETE /api/ingredients/:id.
// @Summary Delete an ingredient
// @Tags ingredients
// @Param id path int true "Ingredient ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /ingredients/{id} [delete]
func (s *Server) DeleteIngredient(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.ingredientService.DeleteIngredient(c.UserContext(), id); err != nil {
		return s.respondError(c, err)
	}
	return s.respondDeleted(c, "Ingredient")
}
