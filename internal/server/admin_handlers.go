package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeatureFlags reports the configured flags and how each one resolves.
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"flags":   s.featureFlags.Raw(),
		"enabled": s.featureFlags.Snapshot(),
	})
}

// AdminListTables handles GET /admin/tables.
func (s *Server) AdminListTables(c *fiber.Ctx) error {
	summaries, err := s.admin.Summaries(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(summaries)
}

// AdminListRows handles GET /admin/tables/:table.
func (s *Server) AdminListRows(c *fiber.Ctx) error {
	rows, err := s.admin.List(c.UserContext(), c.Params("table"))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(rows)
}

// AdminGetRow handles GET /admin/tables/:table/:key. key is the id, or "a,b"
// for tables with a composite key.
func (s *Server) AdminGetRow(c *fiber.Ctx) error {
	row, err := s.admin.Get(c.UserContext(), c.Params("table"), c.Params("key"))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(row)
}

// AdminCreateRow handles POST /admin/tables/:table.
// A password supplied for the users table is stored as a bcrypt hash.
func (s *Server) AdminCreateRow(c *fiber.Ctx) error {
	row, err := s.admin.Create(c.UserContext(), c.Params("table"), c.Body())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// AdminUpdateRow handles PUT /admin/tables/:table/:key.
func (s *Server) AdminUpdateRow(c *fiber.Ctx) error {
	row, err := s.admin.Update(c.UserContext(), c.Params("table"), c.Params("key"), c.Body())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(row)
}

// AdminDeleteRow handles DELETE /admin/tables/:table/:key.
func (s *Server) AdminDeleteRow(c *fiber.Ctx) error {
	if err := s.admin.Delete(c.UserContext(), c.Params("table"), c.Params("key")); err != nil {
		return s.respondError(c, err)
	}
	return s.respondDeleted(c, "Row")
}
