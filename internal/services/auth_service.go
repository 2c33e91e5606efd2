package services

import (
	"artizia_backend/internal/auth"
	"artizia_backend/internal/models"
	"artizia_backend/internal/repositories"
	"artizia_backend/internal/services/dto"
	"artizia_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(db *gorm.DB, tokenID string) error
	CurrentUser(db *gorm.DB, userID string) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo   repositories.UserRepository
	vendorRepo repositories.VendorProfileRepository
	tokenRepo  repositories.AccessTokenRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	vendorRepo repositories.VendorProfileRepository,
	tokenRepo repositories.AccessTokenRepository,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		vendorRepo: vendorRepo,
		tokenRepo:  tokenRepo,
	}
}

// Register creates a user with the requested role (customer when omitted).
// Vendor registrations also get a pending VendorProfile; vendors stay
// invisible in the public catalog until an admin approves them.
func (s *authService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	roleName := models.RoleCustomer
	if req.Role != "" {
		roleName = models.RoleName(req.Role)
	}

	role, err := s.userRepo.FindRoleByName(db, roleName)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRoleNotFound) {
			return nil, apperrors.ErrInvalidRole
		}
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		RoleID:       role.ID,
		IsSeller:     roleName == models.RoleVendor,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}

		if roleName == models.RoleVendor {
			profile := &models.VendorProfile{
				UserID:              user.ID,
				BusinessName:        req.BusinessName,
				BusinessDescription: req.BusinessDescription,
				Status:              models.VendorStatusPending,
			}
			return s.vendorRepo.Create(tx, profile)
		}
		return nil
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := s.issueToken(db, user.ID, roleName)
	if err != nil {
		return nil, err
	}

	loaded, err := s.userRepo.FindByID(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		User:         loaded,
		Token:        token,
		DashboardURL: roleName.DashboardURL(),
	}, nil
}

// Login authenticates by email and password. Both the unknown-email and
// wrong-password cases collapse into the same 401 response.
func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	roleName := user.RoleName()

	token, err := s.issueToken(db, user.ID, roleName)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:         user,
		Token:        token,
		DashboardURL: roleName.DashboardURL(),
	}, nil
}

// Logout revokes exactly the presented token by deleting its row. Other
// sessions of the same user stay valid.
func (s *authService) Logout(db *gorm.DB, tokenID string) error {
	err := s.tokenRepo.DeleteByTokenID(db, tokenID)
	if err != nil && !apperrors.Is(err, repositories.ErrAccessTokenNotFound) {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) CurrentUser(db *gorm.DB, userID string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		User:         user,
		DashboardURL: user.RoleName().DashboardURL(),
	}, nil
}

func (s *authService) issueToken(db *gorm.DB, userID string, role models.RoleName) (string, error) {
	token, tokenID, expiresAt, err := auth.GenerateToken(userID, role)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	record := &models.AccessToken{
		UserID:    userID,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}
	if err := s.tokenRepo.Create(db, record); err != nil {
		return "", apperrors.InternalError(err)
	}

	return token, nil
}
