package handler

import (
	"errors"

	"go-wms-admin/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type DashboardHandler struct {
	dashService service.DashboardService
}

func NewDashboardHandler(dashService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashService: dashService}
}

// GetWarehouses returns the selectable warehouse scopes, ordered by code.
// The first entry is the default scope.
// GET /api/v1/dashboard/warehouses
func (h *DashboardHandler) GetWarehouses(c *fiber.Ctx) error {
	warehouses, err := h.dashService.Warehouses()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch warehouses"})
	}
	return c.JSON(warehouses)
}

// GetOverview loads the dashboard for a warehouse scope. Without a
// warehouse_id param the default scope applies; an empty warehouse list
// yields the no-access payload instead of an error.
// GET /api/v1/dashboard/overview?warehouse_id=<uuid>
func (h *DashboardHandler) GetOverview(c *fiber.Ctx) error {
	var scope *uuid.UUID
	if raw := c.Query("warehouse_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
		}
		scope = &id
	}

	overview, err := h.dashService.Overview(scope)
	if errors.Is(err, service.ErrNoWarehouseAccess) {
		return c.JSON(fiber.Map{"no_access": true})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(overview)
}
