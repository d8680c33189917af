package handler

import (
	"go-wms-admin/internal/model"
	"go-wms-admin/internal/service"
	"go-wms-admin/internal/table"
	"go-wms-admin/pkg/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type WarehouseHandler struct {
	masterData service.MasterDataService
}

func NewWarehouseHandler(masterData service.MasterDataService) *WarehouseHandler {
	return &WarehouseHandler{masterData: masterData}
}

func warehouseColumns() []table.Column[model.Warehouse] {
	return []table.Column[model.Warehouse]{
		{ID: "code", Label: "Code", Visible: true, Value: func(w model.Warehouse) string { return w.Code }},
		{ID: "name", Label: "Name", Visible: true, Value: func(w model.Warehouse) string { return w.Name }},
		{ID: "status", Label: "Status", Visible: true, Value: func(w model.Warehouse) string {
			if w.IsActive {
				return "Active"
			}
			return "Inactive"
		}},
		{ID: "updated_at", Label: "Updated At", Visible: true, Value: func(w model.Warehouse) string {
			return w.UpdatedAt.Format("2006-01-02 15:04")
		}},
	}
}

// List returns one page of warehouses
// GET /api/v1/warehouses
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	q := listQuery(c)
	result, err := h.masterData.ListWarehouses(q)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"rows":       result.Rows,
		"total":      result.Total,
		"page":       q.Page,
		"page_size":  q.PageSize,
		"page_count": pagination.PageCount(result.Total, q.PageSize),
	})
}

// ToggleStatus flips the active flag and returns the stored row
// PATCH /api/v1/warehouses/:id/status
func (h *WarehouseHandler) ToggleStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}

	userID, _ := currentUserID(c)
	warehouse, err := h.masterData.ToggleWarehouseActive(id, userID.String())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(warehouse)
}

// Export streams the current page as CSV
// GET /api/v1/warehouses/export
func (h *WarehouseHandler) Export(c *fiber.Ctx) error {
	result, err := h.masterData.ListWarehouses(listQuery(c))
	if err != nil {
		return errorJSON(c, err)
	}

	columns := applyColumnSelection(warehouseColumns(), c.Query("columns"))

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="warehouses.csv"`)
	return table.WriteCSV(c.Response().BodyWriter(), columns, result.Rows)
}
