package service

import (
	"log"

	"go-wms-admin/internal/model"
	"go-wms-admin/internal/repository"

	"github.com/google/uuid"
)

// HasPermission checks a flat permission set: the wildcard grants everything,
// otherwise exact membership. No permission is ever inferred from structure.
func HasPermission(codes []string, name string) bool {
	for _, code := range codes {
		if code == model.PermissionWildcard || code == name {
			return true
		}
	}
	return false
}

type PermissionService interface {
	// PermissionsForUser returns the user's flat permission list. Fails
	// closed: any resolution error yields the empty set, logged, never
	// surfaced to the caller.
	PermissionsForUser(userID uuid.UUID) []string
	// PredicateFor returns a hasPermission predicate bound to the user.
	PredicateFor(userID uuid.UUID) func(string) bool
}

type permissionService struct {
	permissionRepo repository.PermissionRepository
}

func NewPermissionService(permissionRepo repository.PermissionRepository) PermissionService {
	return &permissionService{permissionRepo: permissionRepo}
}

func (s *permissionService) PermissionsForUser(userID uuid.UUID) []string {
	codes, err := s.permissionRepo.CodesForUser(userID)
	if err != nil {
		log.Printf("Error fetching permissions for %s: %v", userID, err)
		return []string{}
	}
	return codes
}

func (s *permissionService) PredicateFor(userID uuid.UUID) func(string) bool {
	codes := s.PermissionsForUser(userID)
	return func(name string) bool {
		return HasPermission(codes, name)
	}
}
