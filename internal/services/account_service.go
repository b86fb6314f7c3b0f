package services

import (
	"context"
	"errors"
	"strings"

	"insurance_backend/internal/auth"
	"insurance_backend/internal/logger"
	"insurance_backend/internal/models"
	"insurance_backend/internal/repositories"
	"insurance_backend/internal/services/dto"
	"insurance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AccountService interface {
	RegisterUser(ctx context.Context, db *gorm.DB, req *dto.RegisterUserRequest) (*models.User, error)
	RegisterAdmin(ctx context.Context, db *gorm.DB, req *dto.RegisterAdminRequest) (*models.Admin, error)
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	// SeedFirstAdmin creates an admin when the table is empty. It is a no-op
	// once any admin exists.
	SeedFirstAdmin(ctx context.Context, db *gorm.DB, email, password, companyName string) error
}

type accountService struct {
	accountRepo repositories.AccountRepository
	tokens      *auth.TokenManager
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens *auth.TokenManager) AccountService {
	return &accountService{
		accountRepo: accountRepo,
		tokens:      tokens,
	}
}

func (s *accountService) RegisterUser(ctx context.Context, db *gorm.DB, req *dto.RegisterUserRequest) (*models.User, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	email := normalizeEmail(req.Email)
	if _, err := s.accountRepo.FindUserByEmail(tx, email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	taken, err := s.accountRepo.UsernameExists(tx, req.Username)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrUsernameTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Name:         req.Name,
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: hash,
	}
	if err := s.accountRepo.CreateUser(tx, user); err != nil {
		if errors.Is(err, repositories.ErrAccountExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "User registered", "user_id", user.ID)
	return user, nil
}

func (s *accountService) RegisterAdmin(ctx context.Context, db *gorm.DB, req *dto.RegisterAdminRequest) (*models.Admin, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	admin := &models.Admin{
		CompanyName:    req.CompanyName,
		Email:          normalizeEmail(req.Email),
		PasswordHash:   hash,
		InsuranceTypes: req.InsuranceTypes,
		Address:        req.Address,
	}
	if err := s.accountRepo.CreateAdmin(db.WithContext(ctx), admin); err != nil {
		if errors.Is(err, repositories.ErrAdminAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Admin registered", "admin_id", admin.ID)
	return admin, nil
}

func (s *accountService) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	db = db.WithContext(ctx)
	email := normalizeEmail(req.Email)

	var subjectID, hash string
	switch models.AccountRole(req.Role) {
	case models.RoleAdmin:
		admin, err := s.accountRepo.FindAdminByEmail(db, email)
		if err != nil {
			return nil, loginLookupError(err)
		}
		subjectID, hash = admin.ID, admin.PasswordHash
	case models.RoleUser:
		user, err := s.accountRepo.FindUserByEmail(db, email)
		if err != nil {
			return nil, loginLookupError(err)
		}
		subjectID, hash = user.ID, user.PasswordHash
	default:
		return nil, apperrors.ValidationError(map[string]string{"role": "Must be one of: user, admin"})
	}

	if !auth.CheckPasswordHash(req.Password, hash) {
		logger.CtxWarn(ctx, "Login failed: wrong password", "role", req.Role)
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(subjectID, email, req.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
		SubjectID:   subjectID,
		Email:       email,
		Role:        req.Role,
	}, nil
}

func (s *accountService) SeedFirstAdmin(ctx context.Context, db *gorm.DB, email, password, companyName string) error {
	if email == "" || password == "" {
		logger.CtxInfo(ctx, "First admin credentials not configured, skipping seed")
		return nil
	}

	db = db.WithContext(ctx)
	count, err := s.accountRepo.CountAdmins(db)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err = s.RegisterAdmin(ctx, db, &dto.RegisterAdminRequest{
		CompanyName: companyName,
		Email:       email,
		Password:    password,
	})
	if err != nil {
		return err
	}
	logger.CtxInfo(ctx, "First admin seeded", "email", normalizeEmail(email))
	return nil
}

func loginLookupError(err error) error {
	if errors.Is(err, repositories.ErrUserNotFound) || errors.Is(err, repositories.ErrAdminNotFound) {
		return apperrors.ErrInvalidCredentials
	}
	return apperrors.InternalError(err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
