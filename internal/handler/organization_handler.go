package handler

import (
	"strings"

	"go-wms-admin/internal/model"
	"go-wms-admin/internal/service"
	"go-wms-admin/internal/table"
	"go-wms-admin/pkg/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OrganizationHandler struct {
	masterData service.MasterDataService
}

func NewOrganizationHandler(masterData service.MasterDataService) *OrganizationHandler {
	return &OrganizationHandler{masterData: masterData}
}

// organizationColumns is the list-page column model. Visibility flags are the
// defaults; exports honor a caller-supplied override.
func organizationColumns() []table.Column[model.Organization] {
	return []table.Column[model.Organization]{
		{ID: "code", Label: "Code", Visible: true, Value: func(o model.Organization) string { return o.Code }},
		{ID: "name", Label: "Name", Visible: true, Value: func(o model.Organization) string { return o.Name }},
		{ID: "phone", Label: "Phone", Visible: true, Value: func(o model.Organization) string { return o.Phone }},
		{ID: "email", Label: "Email", Visible: false, Value: func(o model.Organization) string { return o.Email }},
		{ID: "status", Label: "Status", Visible: true, Value: func(o model.Organization) string {
			if o.IsActive {
				return "Active"
			}
			return "Inactive"
		}},
		{ID: "created_at", Label: "Created At", Visible: false, Value: func(o model.Organization) string {
			return o.CreatedAt.Format("2006-01-02 15:04")
		}},
		{ID: "updated_at", Label: "Updated At", Visible: true, Value: func(o model.Organization) string {
			return o.UpdatedAt.Format("2006-01-02 15:04")
		}},
		{ID: "updated_by", Label: "Updated By", Visible: true, Value: func(o model.Organization) string {
			if o.UpdatedByUser != nil {
				return o.UpdatedByUser.FullName
			}
			return ""
		}},
	}
}

// applyColumnSelection overrides column visibility from a comma-separated
// "columns" query param. An empty selection keeps the defaults.
func applyColumnSelection[T any](columns []table.Column[T], selection string) []table.Column[T] {
	if selection == "" {
		return columns
	}
	selected := map[string]bool{}
	for _, id := range strings.Split(selection, ",") {
		selected[strings.TrimSpace(id)] = true
	}
	for i := range columns {
		columns[i].Visible = selected[columns[i].ID]
	}
	return columns
}

// List returns one page of organizations with the exact total count.
// GET /api/v1/organizations
func (h *OrganizationHandler) List(c *fiber.Ctx) error {
	q := listQuery(c)
	result, err := h.masterData.ListOrganizations(q)
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

// Update edits an organization
// PUT /api/v1/organizations/:id
func (h *OrganizationHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid organization ID"})
	}

	var req service.UpdateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	userID, _ := currentUserID(c)
	org, err := h.masterData.UpdateOrganization(id, &req, userID.String())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(org)
}

// ToggleStatus flips the active flag and returns the stored row
// PATCH /api/v1/organizations/:id/status
func (h *OrganizationHandler) ToggleStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid organization ID"})
	}

	userID, _ := currentUserID(c)
	org, err := h.masterData.ToggleOrganizationActive(id, userID.String())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(org)
}

// Export streams the current page as CSV with the visible columns only.
// GET /api/v1/organizations/export
func (h *OrganizationHandler) Export(c *fiber.Ctx) error {
	result, err := h.masterData.ListOrganizations(listQuery(c))
	if err != nil {
		return errorJSON(c, err)
	}

	columns := applyColumnSelection(organizationColumns(), c.Query("columns"))

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="organizations.csv"`)
	return table.WriteCSV(c.Response().BodyWriter(), columns, result.Rows)
}

// Options returns id/name pairs for the branch page's organization filter
// GET /api/v1/organizations/options
func (h *OrganizationHandler) Options(c *fiber.Ctx) error {
	options, err := h.masterData.OrganizationOptions()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(options)
}
