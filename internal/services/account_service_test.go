package services_test

import (
	"context"
	"testing"
	"time"

	"insurance_backend/internal/auth"
	"insurance_backend/internal/repositories"
	"insurance_backend/internal/services"
	"insurance_backend/internal/services/dto"
	"insurance_backend/internal/testutil"
	"insurance_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountService() (services.AccountService, *auth.TokenManager) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return services.NewAccountService(repositories.NewAccountRepository(), tokens), tokens
}

func TestRegisterUserAndLogin(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	svc, tokens := newAccountService()

	user, err := svc.RegisterUser(ctx, db, &dto.RegisterUserRequest{
		Username: "jdoe",
		Name:     "Jane Doe",
		Email:    "Jane@Example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)

	res, err := svc.Login(ctx, db, &dto.LoginRequest{Email: "jane@example.com", Password: "correct-horse", Role: "user"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, user.ID, res.SubjectID)
	assert.Equal(t, int64(3600), res.ExpiresIn)

	claims, err := tokens.ParseToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.SubjectID())
	assert.Equal(t, "user", claims.Role)

	_, err = svc.Login(ctx, db, &dto.LoginRequest{Email: "jane@example.com", Password: "wrong-password", Role: "user"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// A user account cannot log in as an admin.
	_, err = svc.Login(ctx, db, &dto.LoginRequest{Email: "jane@example.com", Password: "correct-horse", Role: "admin"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRegisterUser_Conflicts(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	svc, _ := newAccountService()
	testutil.SeedUser(t, db, "taken")

	_, err := svc.RegisterUser(ctx, db, &dto.RegisterUserRequest{Username: "fresh", Name: "x", Email: "taken@example.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	_, err = svc.RegisterUser(ctx, db, &dto.RegisterUserRequest{Username: "taken", Name: "x", Email: "fresh@example.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)

	_, err = svc.RegisterUser(ctx, db, &dto.RegisterUserRequest{Username: "short", Name: "x", Email: "short@example.com", Password: "abc"})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestRegisterAdmin_Duplicate(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	svc, _ := newAccountService()

	req := &dto.RegisterAdminRequest{CompanyName: "Acme", Email: "admin@acme.com", Password: "password123", InsuranceTypes: []string{"health"}}
	_, err := svc.RegisterAdmin(ctx, db, req)
	require.NoError(t, err)

	_, err = svc.RegisterAdmin(ctx, db, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestSeedFirstAdmin(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	svc, _ := newAccountService()
	repo := repositories.NewAccountRepository()

	require.NoError(t, svc.SeedFirstAdmin(ctx, db, "", "", "Acme"))
	count, err := repo.CountAdmins(db)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, svc.SeedFirstAdmin(ctx, db, "Root@Acme.com", "password123", "Acme"))
	require.NoError(t, svc.SeedFirstAdmin(ctx, db, "second@acme.com", "password123", "Acme"))

	count, err = repo.CountAdmins(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	admin, err := repo.FindAdminByEmail(db, "root@acme.com")
	require.NoError(t, err)
	assert.Equal(t, "Acme", admin.CompanyName)
}
