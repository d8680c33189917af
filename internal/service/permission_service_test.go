package service_test

import (
	"errors"

	"go-wms-admin/internal/model"
	"go-wms-admin/internal/service"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// mockPermissionRepo implements repository.PermissionRepository for testing
type mockPermissionRepo struct {
	codes     map[uuid.UUID][]string
	failError error
}

func (m *mockPermissionRepo) FindByCode(code string) (*model.Permission, error) {
	return nil, errors.New("not found")
}

func (m *mockPermissionRepo) FindByCodes(codes []string) ([]model.Permission, error) {
	return nil, nil
}

func (m *mockPermissionRepo) FindAll() ([]model.Permission, error) { return nil, nil }

func (m *mockPermissionRepo) Create(p *model.Permission) error { return nil }

func (m *mockPermissionRepo) CodesForUser(userID uuid.UUID) ([]string, error) {
	if m.failError != nil {
		return nil, m.failError
	}
	return m.codes[userID], nil
}

func (m *mockPermissionRepo) SeedDefaults() error { return nil }

var _ = Describe("HasPermission", func() {
	It("grants everything to the wildcard", func() {
		codes := []string{model.PermissionWildcard}
		Expect(service.HasPermission(codes, "organizations.read")).To(BeTrue())
		Expect(service.HasPermission(codes, "anything.at.all")).To(BeTrue())
	})

	It("requires exact membership without the wildcard", func() {
		codes := []string{"organizations.read", "branches.read"}
		Expect(service.HasPermission(codes, "organizations.read")).To(BeTrue())
		Expect(service.HasPermission(codes, "organizations.update")).To(BeFalse())
	})

	It("never infers a permission from a related code", func() {
		codes := []string{"organizations.read"}
		Expect(service.HasPermission(codes, "organizations")).To(BeFalse())
		Expect(service.HasPermission(codes, "master_data.read")).To(BeFalse())
	})

	It("denies everything for an empty set", func() {
		Expect(service.HasPermission(nil, "dashboard.read")).To(BeFalse())
	})
})

var _ = Describe("PermissionService", func() {
	var (
		repo *mockPermissionRepo
		svc  service.PermissionService
	)

	BeforeEach(func() {
		repo = &mockPermissionRepo{codes: map[uuid.UUID][]string{}}
		svc = service.NewPermissionService(repo)
	})

	It("returns the resolved codes for a user", func() {
		userID := uuid.New()
		repo.codes[userID] = []string{"dashboard.read", "users.read"}

		Expect(svc.PermissionsForUser(userID)).To(Equal([]string{"dashboard.read", "users.read"}))
	})

	It("fails closed on a resolution error", func() {
		repo.failError = errors.New("connection refused")

		codes := svc.PermissionsForUser(uuid.New())
		Expect(codes).To(BeEmpty())
		Expect(codes).NotTo(BeNil())
	})

	It("binds a predicate to the user's codes", func() {
		userID := uuid.New()
		repo.codes[userID] = []string{model.PermissionWildcard}

		hasPermission := svc.PredicateFor(userID)
		Expect(hasPermission("roles.read")).To(BeTrue())
	})

	It("denies everything through the predicate after an error", func() {
		repo.failError = errors.New("connection refused")

		hasPermission := svc.PredicateFor(uuid.New())
		Expect(hasPermission("dashboard.read")).To(BeFalse())
	})
})
