package service

import (
	"errors"
	"fmt"
	"log"

	"go-wms-admin/internal/apperr"
	"go-wms-admin/internal/model"
	"go-wms-admin/internal/repository"
	"go-wms-admin/pkg/jwt"
	"go-wms-admin/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is inactive")
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	Logout(userID uuid.UUID) error
	ValidateToken(tokenString string) (*SessionResponse, error)
	Profile(userID uuid.UUID) (*model.Profile, error)
	UpdateProfile(userID uuid.UUID, req *UpdateProfileRequest) (*model.Profile, error)
}

type LoginResponse struct {
	Token       string             `json:"token"`
	User        model.UserResponse `json:"user"`
	Profile     model.Profile      `json:"profile"`
	Permissions []string           `json:"permissions"` // Flat permission list for the client-side predicate
}

// SessionResponse is returned on session restore (token validation).
type SessionResponse struct {
	User        model.UserResponse `json:"user"`
	Profile     model.Profile      `json:"profile"`
	Permissions []string           `json:"permissions"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	roleCode := ""
	if user.Role != nil {
		roleCode = user.Role.Code
	}

	// Single session: rotate the token version on every login
	newTokenVersion := uuid.New().String()
	if err := s.userRepo.UpdateTokenVersion(user.ID, newTokenVersion); err != nil {
		return nil, errors.New("failed to update session")
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName, roleCode, user.PermissionCodes(), newTokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:       token,
		User:        user.ToResponse(),
		Profile:     user.ToProfile(),
		Permissions: user.PermissionCodes(),
	}, nil
}

func (s *authService) Logout(userID uuid.UUID) error {
	// Rotating the version invalidates every outstanding token for the user
	return s.userRepo.UpdateTokenVersion(userID, uuid.New().String())
}

func (s *authService) ValidateToken(tokenString string) (*SessionResponse, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if user.TokenVersion != claims.TokenVersion {
		return nil, errors.New("session expired (logged in on another device)")
	}

	return &SessionResponse{
		User:        user.ToResponse(),
		Profile:     user.ToProfile(),
		Permissions: user.PermissionCodes(),
	}, nil
}

// Profile fetches the profile fields for a user. A missing record means
// "no profile data", not an error.
func (s *authService) Profile(userID uuid.UUID) (*model.Profile, error) {
	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.Profile{}, nil
	}
	if err != nil {
		log.Printf("Error fetching profile for %s: %v", userID, err)
		return nil, apperr.Wrap(apperr.KindNetwork, "failed to fetch profile", err)
	}
	profile := user.ToProfile()
	return &profile, nil
}

func (s *authService) UpdateProfile(userID uuid.UUID, req *UpdateProfileRequest) (*model.Profile, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, apperr.New(apperr.KindValidation,
			fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag))
	}

	if err := s.userRepo.UpdateProfile(userID, req.FullName, req.Phone); err != nil {
		return nil, apperr.Wrap(apperr.KindUnknown, "failed to update profile", err)
	}

	// Refetch after update so the caller always sees the stored state
	return s.Profile(userID)
}
