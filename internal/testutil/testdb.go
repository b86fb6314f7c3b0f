// Package testutil holds shared fixtures for package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"insurance_backend/internal/auth"
	"insurance_backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory SQLite database with every table
// migrated. The database lives until the test finishes.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// SeedAdmin inserts an admin with a throwaway password hash.
func SeedAdmin(t *testing.T, db *gorm.DB, email string) *models.Admin {
	t.Helper()
	admin := &models.Admin{
		CompanyName:    "Acme Insurance",
		Email:          email,
		PasswordHash:   mustHash(t, "password123"),
		InsuranceTypes: []string{"health", "life"},
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
	return admin
}

// SeedUser inserts a customer account.
func SeedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Name:         "Test " + username,
		Email:        username + "@example.com",
		PasswordHash: mustHash(t, "password123"),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

// SeedPolicy inserts an active policy owned by adminID.
func SeedPolicy(t *testing.T, db *gorm.DB, adminID, name string) *models.Policy {
	t.Helper()
	policy := &models.Policy{
		Name:              name,
		Category:          "health",
		Provider:          "Acme Insurance",
		CoverageAmount:    500000,
		Premium:           1200,
		Tenure:            "1 year",
		Features:          []string{"cashless hospitals"},
		RequiredDocuments: []string{"identification", "incomeProof"},
		Status:            models.PolicyStatusActive,
		CreatedBy:         adminID,
	}
	if err := db.Create(policy).Error; err != nil {
		t.Fatalf("failed to seed policy: %v", err)
	}
	return policy
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return hash
}
