package handler

import (
	"go-wms-admin/internal/model"
	"go-wms-admin/internal/service"
	"go-wms-admin/internal/table"
	"go-wms-admin/pkg/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BranchHandler struct {
	masterData service.MasterDataService
}

func NewBranchHandler(masterData service.MasterDataService) *BranchHandler {
	return &BranchHandler{masterData: masterData}
}

func branchColumns() []table.Column[model.Branch] {
	return []table.Column[model.Branch]{
		{ID: "code", Label: "Code", Visible: true, Value: func(b model.Branch) string { return b.Code }},
		{ID: "name", Label: "Name", Visible: true, Value: func(b model.Branch) string { return b.Name }},
		{ID: "organization", Label: "Organization", Visible: true, Value: func(b model.Branch) string {
			if b.Organization != nil {
				return b.Organization.Name
			}
			return ""
		}},
		{ID: "phone", Label: "Phone", Visible: true, Value: func(b model.Branch) string { return b.Phone }},
		{ID: "address", Label: "Address", Visible: false, Value: func(b model.Branch) string { return b.Address }},
		{ID: "status", Label: "Status", Visible: true, Value: func(b model.Branch) string {
			if b.IsActive {
				return "Active"
			}
			return "Inactive"
		}},
		{ID: "updated_at", Label: "Updated At", Visible: true, Value: func(b model.Branch) string {
			return b.UpdatedAt.Format("2006-01-02 15:04")
		}},
		{ID: "updated_by", Label: "Updated By", Visible: false, Value: func(b model.Branch) string {
			if b.UpdatedByUser != nil {
				return b.UpdatedByUser.FullName
			}
			return ""
		}},
	}
}

// List returns one page of branches; supports the organization filter on top
// of the shared search/status params.
// GET /api/v1/branches
func (h *BranchHandler) List(c *fiber.Ctx) error {
	q := listQuery(c)
	result, err := h.masterData.ListBranches(q)
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

// Update edits a branch
// PUT /api/v1/branches/:id
func (h *BranchHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid branch ID"})
	}

	var req service.UpdateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	userID, _ := currentUserID(c)
	branch, err := h.masterData.UpdateBranch(id, &req, userID.String())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(branch)
}

// ToggleStatus flips the active flag and returns the stored row
// PATCH /api/v1/branches/:id/status
func (h *BranchHandler) ToggleStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid branch ID"})
	}

	userID, _ := currentUserID(c)
	branch, err := h.masterData.ToggleBranchActive(id, userID.String())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(branch)
}

// Export streams the current page as CSV
// GET /api/v1/branches/export
func (h *BranchHandler) Export(c *fiber.Ctx) error {
	result, err := h.masterData.ListBranches(listQuery(c))
	if err != nil {
		return errorJSON(c, err)
	}

	columns := applyColumnSelection(branchColumns(), c.Query("columns"))

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="branches.csv"`)
	return table.WriteCSV(c.Response().BodyWriter(), columns, result.Rows)
}
