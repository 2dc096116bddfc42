package server

import "github.com/gofiber/fiber/v2"

// setupLegacyRoutes mounts the singular route names older clients still call.
// The plural list routes (/users, /cocktails, ...) already match the
// normalized surface and need no alias. gate runs before every handler.
func (s *Server) setupLegacyRoutes(api fiber.Router, gate fiber.Handler) {
	api.Post("/new-user", gate, func(c *fiber.Ctx) error {
		return s.createUser(c, fiber.StatusOK)
	})
	api.Get("/user/:id", gate, s.GetUser)
	api.Put("/user/:id", gate, s.UpdateUser)
	api.Delete("/user/:id", gate, s.DeleteUser)

	api.Post("/ingredient", gate, s.CreateIngredient)
	api.Get("/ingredient/:id", gate, s.GetIngredient)
	api.Put("/ingredient/:id", gate, s.UpdateIngredient)
	api.Delete("/ingredient/:id", gate, s.DeleteIngredient)

	api.Post("/cocktail", gate, s.CreateCocktail)
	api.Get("/cocktail/:id", gate, s.GetCocktail)
	api.Put("/cocktail/:id", gate, s.UpdateCocktail)
	api.Delete("/cocktail/:id", gate, s.DeleteCocktail)

	api.Post("/dish", gate, func(c *fiber.Ctx) error {
		return s.createDish(c, fiber.StatusOK)
	})
	api.Get("/dish/:id", gate, s.GetDish)
	api.Put("/dish/:id", gate, s.UpdateDish)
	api.Delete("/dish/:id", gate, s.DeleteDish)

	api.Get("/get-favorite/:id", gate, s.GetFavorite)
	api.Post("/favorite", gate, s.CreateFavorite)
	api.Put("/favorite/:id", gate, s.UpdateFavorite)
	api.Delete("/favorite/:id", gate, s.DeleteFavorite)

	api.Post("/pairing", gate, s.CreatePairing)
	api.Get("/pairing/:id", gate, s.GetPairing)
	api.Put("/pairing/:id", gate, s.UpdatePairing)
	api.Delete("/pairing/:id", gate, s.DeletePairing)
}
