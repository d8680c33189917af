package service_test

import (
	"go-wms-admin/internal/model"
	"go-wms-admin/internal/repository"
	"go-wms-admin/internal/service"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

// mockUserRepo implements repository.UserRepository for testing
type mockUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[uuid.UUID]*model.User{}}
}

func (m *mockUserRepo) add(user *model.User) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
}

func (m *mockUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *mockUserRepo) Create(user *model.User) error {
	m.add(user)
	return nil
}

func (m *mockUserRepo) Update(user *model.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(id uuid.UUID) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) List(params repository.ListParams) ([]model.User, int64, error) {
	var out []model.User
	for _, user := range m.users {
		out = append(out, *user)
	}
	return out, int64(len(out)), nil
}

func (m *mockUserRepo) UpdateProfile(userID uuid.UUID, fullName, phone string) error {
	user, ok := m.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.FullName = fullName
	user.Phone = phone
	return nil
}

func (m *mockUserRepo) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	user, ok := m.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Password = hashedPassword
	return nil
}

func (m *mockUserRepo) UpdateTokenVersion(userID uuid.UUID, version string) error {
	user, ok := m.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.TokenVersion = version
	return nil
}

var _ = Describe("AuthService", func() {
	var (
		repo *mockUserRepo
		svc  service.AuthService
		user *model.User
	)

	BeforeEach(func() {
		repo = newMockUserRepo()
		svc = service.NewAuthService(repo)

		user = &model.User{
			Email:    "op@example.com",
			FullName: "Operator One",
			IsActive: true,
			Role: &model.Role{
				Code:        model.RoleOperator,
				Permissions: []model.Permission{{Code: "dashboard.read"}},
			},
		}
		Expect(user.SetPassword("secret123")).To(Succeed())
		repo.add(user)
	})

	Describe("Login", func() {
		It("returns a token and the flat permission list", func() {
			resp, err := svc.Login("op@example.com", "secret123")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Token).NotTo(BeEmpty())
			Expect(resp.Permissions).To(Equal([]string{"dashboard.read"}))
			Expect(resp.Profile.FullName).To(Equal("Operator One"))
		})

		It("rejects a wrong password", func() {
			_, err := svc.Login("op@example.com", "wrong")
			Expect(err).To(MatchError(service.ErrInvalidCredentials))
		})

		It("rejects an unknown email with the same error", func() {
			_, err := svc.Login("nobody@example.com", "secret123")
			Expect(err).To(MatchError(service.ErrInvalidCredentials))
		})

		It("rejects an inactive account", func() {
			user.IsActive = false
			_, err := svc.Login("op@example.com", "secret123")
			Expect(err).To(MatchError(service.ErrUserInactive))
		})
	})

	Describe("single session", func() {
		It("restores a session from a valid token", func() {
			resp, err := svc.Login("op@example.com", "secret123")
			Expect(err).NotTo(HaveOccurred())

			session, err := svc.ValidateToken(resp.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(session.User.Email).To(Equal("op@example.com"))
			Expect(session.Permissions).To(Equal([]string{"dashboard.read"}))
		})

		It("invalidates the previous token on a new login", func() {
			first, err := svc.Login("op@example.com", "secret123")
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Login("op@example.com", "secret123")
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.ValidateToken(first.Token)
			Expect(err).To(HaveOccurred())
		})

		It("invalidates the token on logout", func() {
			resp, err := svc.Login("op@example.com", "secret123")
			Expect(err).NotTo(HaveOccurred())

			Expect(svc.Logout(user.ID)).To(Succeed())

			_, err = svc.ValidateToken(resp.Token)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Profile", func() {
		It("treats a missing record as empty profile data", func() {
			profile, err := svc.Profile(uuid.New())
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.FullName).To(BeEmpty())
		})

		It("updates and refetches the stored state", func() {
			profile, err := svc.UpdateProfile(user.ID, &service.UpdateProfileRequest{
				FullName: "Operator Renamed",
				Phone:    "555-0100",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.FullName).To(Equal("Operator Renamed"))
			Expect(profile.Phone).To(Equal("555-0100"))
		})

		It("rejects an empty full name", func() {
			_, err := svc.UpdateProfile(user.ID, &service.UpdateProfileRequest{FullName: ""})
			Expect(err).To(HaveOccurred())
		})
	})
})
