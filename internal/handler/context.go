package handler

import (
	"errors"

	"go-wms-admin/internal/apperr"
	"go-wms-admin/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// currentUserID reads the authenticated user id placed in locals by the auth
// middleware.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, errors.New("unauthorized")
	}
	return uuid.Parse(raw)
}

func currentPermissions(c *fiber.Ctx) []string {
	permissions, _ := c.Locals("user_permissions").([]string)
	return permissions
}

// listQuery reads the list-page query params. Missing page/page_size fall
// back to the repository defaults.
func listQuery(c *fiber.Ctx) service.ListQuery {
	return service.ListQuery{
		Search:         c.Query("search"),
		Status:         c.Query("status", "all"),
		OrganizationID: c.Query("organization_id", "all"),
		Page:           c.QueryInt("page", 0),
		PageSize:       c.QueryInt("page_size", 10),
	}
}

// errorJSON maps an error to its HTTP status via the error taxonomy.
func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(apperr.StatusCode(err)).JSON(fiber.Map{"error": err.Error()})
}
