package server

import (
	"tastebuds/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListCocktails handles GET /api/cocktails.
// @Summary List cocktails
// @Tags cocktails
// @Produce json
// @Success 200 {array} models.Cocktail
// @Router /cocktails [get]
func (s *Server) ListCocktails(c *fiber.Ctx) error {
	cocktails, err := s.cocktailService.ListCocktails(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(cocktails)
}

// GetCocktail handles GET /api/cocktails/:id.
// @Summary Get a cocktail
// @Description Served from Redis when the cache is configured.
// @Tags cocktails
// @Produce json
// @Param id path int true "Cocktail ID"
// @Success 200 {object} models.Cocktail
// @Failure 404 {object} models.ErrorResponse
// @Router /cocktails/{id} [get]
func (s *Server) GetCocktail(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	cocktail, err := s.cocktailService.GetCocktail(c.UserContext(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(cocktail)
}

// CreateCocktail handles POST /api/cocktails.
// @Summary Create a cocktail
// @Tags cocktails
// @Accept json
// @Produce json
// @Param cocktail body service.CreateRecipeInput true "New cocktail"
// @Success 201 {object} models.Cocktail
// @Failure 400 {object} models.ErrorResponse
// @Router /cocktails [post]
func (s *Server) CreateCocktail(c *fiber.Ctx) error {
	var req service.CreateRecipeInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	cocktail, err := s.cocktailService.CreateCocktail(c.UserContext(), req)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cocktail)
}

// UpdateCocktail handles PUT /api/cocktails/:id.
// @Summary Update a cocktail
// @Description Fields left out of the body keep their values.
// @Tags cocktails
// @Accept json
// @Produce json
// @Param id path int true "Cocktail ID"
// @Param cocktail body service.UpdateRecipeInput true "Fields to change"
// @Success 200 {object} models.Cocktail
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cocktails/{id} [put]
func (s *Server) UpdateCocktail(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req service.UpdateRecipeInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	cocktail, err := s.cocktailService.UpdateCocktail(c.UserContext(), id, req)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(cocktail)
}

// DeleteCocktail handles DELETE /api/cocktails/:id.
// @Summary Delete a cocktail
// @Tags cocktails
// @Param id path int true "Cocktail ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cocktails/{id} [delete]
func (s *Server) DeleteCocktail(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.cocktailService.DeleteCocktail(c.UserContext(), id); err != nil {
		return s.respondError(c, err)
	}
	return s.respondDeleted(c, "Cocktail")
}

// ListDishes handles GET /api/dishes.
// @Summary List dishes
// @Tags dishes
// @Produce json
// @Success 200 {array} models.Dish
// @Router /dishes [get]
func (s *Server) ListDishes(c *fiber.Ctx) error {
	dishes, err := s.dishService.ListDishes(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(dishes)
}

// GetDish handles GET /api/dishes/:id.
// @Summary Get a dish
// @Tags dishes
// @Produce json
// @Param id path int true "Dish ID"
// @Success 200 {object} models.Dish
// @Failure 404 {object} models.ErrorResponse
// @Router /dishes/{id} [get]
func (s *Server) GetDish(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	dish, err := s.dishService.GetDish(c.UserContext(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(dish)
}

// CreateDish handles POST /api/dishes.
// @Summary Create a dish
// @Tags dishes
// @Accept json
// @Produce json
// @Param dish body service.CreateRecipeInput true "New dish"
// @Success 201 {object} models.Dish
// @Failure 400 {object} models.ErrorResponse
// @Router /dishes [post]
func (s *Server) CreateDish(c *fiber.Ctx) error {
	return s.createDish(c, fiber.StatusCreated)
}

func (s *Server) createDish(c *fiber.Ctx, status int) error {
	var req service.CreateRecipeInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	dish, err := s.dishService.CreateDish(c.UserContext(), req)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(status).JSON(dish)
}

// UpdateDish handles PUT /api/dishes/:id.
// @Summary Update a dish
// @Tags dishes
// @Accept json
// @Produce json
// @Param id path int true "Dish ID"
// @Param dish body service.UpdateRecipeInput true "Fields to change"
// @Success 200 {object} models.Dish
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /dishes/{id} [put]
func (s *Server) UpdateDish(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req service.UpdateRecipeInput
	if err := s.parseBody(c, &req); err != nil {
		return nil
	}
	dish, err := s.dishService.UpdateDish(c.UserContext(), id, req)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(dish)
}

// DeleteDish handles DELETE /api/dishes/:id.
// @Summary Delete a dish
// @Tags dishes
// @Param id path int true "Dish ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /dishes/{id} [delete]
func (s *Server) DeleteDish(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.dishService.DeleteDish(c.UserContext(), id); err != nil {
		return s.respondError(c, err)
	}
	return s.respondDeleted(c, "Dish")
}
