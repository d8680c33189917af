package handler

import (
	"go-wms-admin/internal/menu"
	"go-wms-admin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type MenuHandler struct {
	permissionService service.PermissionService
}

func NewMenuHandler(permissionService service.PermissionService) *MenuHandler {
	return &MenuHandler{permissionService: permissionService}
}

// GetMenu returns the navigation tree filtered to the caller's permissions.
// A parent is shown only when at least one of its children survives, so the
// response never contains empty groups. Permission resolution fails closed,
// so a lookup error yields an empty menu rather than a 500.
// GET /api/v1/menu
func (h *MenuHandler) GetMenu(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	visible := menu.Visible(menu.Items, h.permissionService.PredicateFor(userID))

	response := fiber.Map{"items": visible}
	if path := c.Query("path"); path != "" {
		if root, ok := menu.ActiveRoot(path); ok {
			response["active_root"] = root.Label
		}
	}
	return c.JSON(response)
}
