package service

import (
	"errors"
	"fmt"

	"go-wms-admin/internal/apperr"
	"go-wms-admin/internal/model"
	"go-wms-admin/internal/repository"
	"go-wms-admin/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListQuery is the page-facing query state: search text, filter selections,
// and the page window. "all" (or empty) filter values are inactive.
type ListQuery struct {
	Search         string
	Status         string // "all" | "active" | "inactive"
	OrganizationID string // branches only
	Page           int
	PageSize       int
}

// ListResult pairs one page of rows with the exact total count.
type ListResult[T any] struct {
	Rows  []T   `json:"rows"`
	Total int64 `json:"total"`
}

type UpdateOrganizationRequest struct {
	Code  string `json:"code" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
}

type UpdateBranchRequest struct {
	Code           string    `json:"code" validate:"required"`
	Name           string    `json:"name" validate:"required"`
	OrganizationID uuid.UUID `json:"organization_id" validate:"uuid_required"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	Notes          string    `json:"notes"`
}

type MasterDataService interface {
	ListOrganizations(q ListQuery) (*ListResult[model.Organization], error)
	UpdateOrganization(id uuid.UUID, req *UpdateOrganizationRequest, updaterID string) (*model.Organization, error)
	ToggleOrganizationActive(id uuid.UUID, updaterID string) (*model.Organization, error)
	OrganizationOptions() ([]repository.OrganizationOption, error)

	ListBranches(q ListQuery) (*ListResult[model.Branch], error)
	UpdateBranch(id uuid.UUID, req *UpdateBranchRequest, updaterID string) (*model.Branch, error)
	ToggleBranchActive(id uuid.UUID, updaterID string) (*model.Branch, error)

	ListWarehouses(q ListQuery) (*ListResult[model.Warehouse], error)
	ToggleWarehouseActive(id uuid.UUID, updaterID string) (*model.Warehouse, error)
}

type masterDataService struct {
	orgRepo       repository.OrganizationRepository
	branchRepo    repository.BranchRepository
	warehouseRepo repository.WarehouseRepository
}

func NewMasterDataService(
	orgRepo repository.OrganizationRepository,
	branchRepo repository.BranchRepository,
	warehouseRepo repository.WarehouseRepository,
) MasterDataService {
	return &masterDataService{
		orgRepo:       orgRepo,
		branchRepo:    branchRepo,
		warehouseRepo: warehouseRepo,
	}
}

// listParams translates page query state into repository terms. Search always
// covers code and name; only active non-"all" selections become filters.
func (q ListQuery) listParams() repository.ListParams {
	params := repository.ListParams{
		Search:        q.Search,
		SearchColumns: []string{"code", "name"},
		Filters:       map[string]interface{}{},
		Page:          q.Page,
		PageSize:      q.PageSize,
	}
	switch q.Status {
	case "active":
		params.Filters["is_active"] = true
	case "inactive":
		params.Filters["is_active"] = false
	}
	if q.OrganizationID != "" && q.OrganizationID != "all" {
		if orgID, err := uuid.Parse(q.OrganizationID); err == nil {
			params.Filters["organization_id"] = orgID
		}
	}
	return params
}

func (s *masterDataService) ListOrganizations(q ListQuery) (*ListResult[model.Organization], error) {
	rows, total, err := s.orgRepo.List(q.listParams())
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNetwork, "failed to fetch organizations", err)
	}
	return &ListResult[model.Organization]{Rows: rows, Total: total}, nil
}

func (s *masterDataService) UpdateOrganization(id uuid.UUID, req *UpdateOrganizationRequest, updaterID string) (*model.Organization, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, apperr.New(apperr.KindValidation,
			fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag))
	}

	org, err := s.orgRepo.FindByID(id)
	if err != nil {
		return nil, apperr.New(apperr.KindNotFound, "organization not found")
	}

	// Duplicate-code check when the code changes
	if req.Code != org.Code {
		if existing, _ := s.orgRepo.FindByCode(req.Code); existing != nil {
			return nil, apperr.New(apperr.KindValidation, "code already exists")
		}
	}

	org.Code = req.Code
	org.Name = req.Name
	org.Phone = req.Phone
	org.Email = req.Email
	org.UpdatedBy = updaterID
	org.UpdatedByUserID = &updaterID

	if err := s.orgRepo.Update(org); err != nil {
		return nil, apperr.Wrap(apperr.KindUnknown, "failed to update organization", err)
	}
	return s.orgRepo.FindByID(id)
}

func (s *masterDataService) ToggleOrganizationActive(id uuid.UUID, updaterID string) (*model.Organization, error) {
	org, err := s.orgRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "organization not found")
		}
		return nil, apperr.Wrap(apperr.KindNetwork, "failed to fetch organization", err)
	}
	if err := s.orgRepo.SetActive(id, !org.IsActive, updaterID); err != nil {
		return nil, apperr.Wrap(apperr.KindUnknown, "failed to update status", err)
	}
	return s.orgRepo.FindByID(id)
}

func (s *masterDataService) OrganizationOptions() ([]repository.OrganizationOption, error) {
	options, err := s.orgRepo.Options()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNetwork, "failed to fetch organizations", err)
	}
	return options, nil
}

func (s *masterDataService) ListBranches(q ListQuery) (*ListResult[model.Branch], error) {
	rows, total, err := s.branchRepo.List(q.listParams())
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNetwork, "failed to fetch branches", err)
	}
	return &ListResult[model.Branch]{Rows: rows, Total: total}, nil
}

func (s *masterDataService) UpdateBranch(id uuid.UUID, req *UpdateBranchRequest, updaterID string) (*model.Branch, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, apperr.New(apperr.KindValidation,
			fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag))
	}

	branch, err := s.branchRepo.FindByID(id)
	if err != nil {
		return nil, apperr.New(apperr.KindNotFound, "branch not found")
	}

	if req.Code != branch.Code {
		if existing, _ := s.branchRepo.FindByCode(req.Code); existing != nil {
			return nil, apperr.New(apperr.KindValidation, "code already exists")
		}
	}

	branch.Code = req.Code
	branch.Name = req.Name
	branch.OrganizationID = req.OrganizationID
	branch.Phone = req.Phone
	branch.Address = req.Address
	branch.Notes = req.Notes
	branch.UpdatedBy = updaterID
	branch.UpdatedByUserID = &updaterID

	if err := s.branchRepo.Update(branch); err != nil {
		return nil, apperr.Wrap(apperr.KindUnknown, "failed to update branch", err)
	}
	return s.branchRepo.FindByID(id)
}

func (s *masterDataService) ToggleBranchActive(id uuid.UUID, updaterID string) (*model.Branch, error) {
	branch, err := s.branchRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "branch not found")
		}
		return nil, apperr.Wrap(apperr.KindNetwork, "failed to fetch branch", err)
	}
	if err := s.branchRepo.SetActive(id, !branch.IsActive, updaterID); err != nil {
		return nil, apperr.Wrap(apperr.KindUnknown, "failed to update status", err)
	}
	return s.branchRepo.FindByID(id)
}

func (s *masterDataService) ListWarehouses(q ListQuery) (*ListResult[model.Warehouse], error) {
	rows, total, err := s.warehouseRepo.List(q.listParams())
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNetwork, "failed to fetch warehouses", err)
	}
	return &ListResult[model.Warehouse]{Rows: rows, Total: total}, nil
}

func (s *masterDataService) ToggleWarehouseActive(id uuid.UUID, updaterID string) (*model.Warehouse, error) {
	warehouse, err := s.warehouseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "warehouse not found")
		}
		return nil, apperr.Wrap(apperr.KindNetwork, "failed to fetch warehouse", err)
	}
	if err := s.warehouseRepo.SetActive(id, !warehouse.IsActive, updaterID); err != nil {
		return nil, apperr.Wrap(apperr.KindUnknown, "failed to update status", err)
	}
	return s.warehouseRepo.FindByID(id)
}
