package repositories

import (
	"errors"
	"time"

	"insurance_backend/internal/models"

	"gorm.io/gorm"
)

var ErrClaimNotFound = errors.New("claim not found")

type ClaimRepository interface {
	Create(db *gorm.DB, claim *models.Claim) error
	FindByClaimID(db *gorm.DB, claimID string) (*models.Claim, error)
	// UpdateReview persists the review fields of claim (status, notes,
	// reviewer, reviewedAt).
	UpdateReview(db *gorm.DB, claim *models.Claim) error
	ListByAdminEmail(db *gorm.DB, adminEmail string) ([]models.Claim, error)
	ListByUserID(db *gorm.DB, userID string) ([]models.Claim, error)
}

type ClaimRepositoryImpl struct{}

func NewClaimRepository() ClaimRepository {
	return &ClaimRepositoryImpl{}
}

func (r *ClaimRepositoryImpl) Create(db *gorm.DB, claim *models.Claim) error {
	return db.Create(claim).Error
}

func (r *ClaimRepositoryImpl) FindByClaimID(db *gorm.DB, claimID string) (*models.Claim, error) {
	var claim models.Claim
	if err := db.Where("claim_id = ?", claimID).First(&claim).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}
	return &claim, nil
}

func (r *ClaimRepositoryImpl) UpdateReview(db *gorm.DB, claim *models.Claim) error {
	result := db.Model(&models.Claim{}).
		Where("claim_id = ?", claim.ClaimID).
		Updates(map[string]interface{}{
			"status":       claim.Status,
			"review_notes": claim.ReviewNotes,
			"reviewer_id":  claim.ReviewerID,
			"reviewed_at":  claim.ReviewedAt,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClaimNotFound
	}
	return nil
}

func (r *ClaimRepositoryImpl) ListByAdminEmail(db *gorm.DB, adminEmail string) ([]models.Claim, error) {
	var claims []models.Claim
	err := db.Where("admin_email = ?", adminEmail).
		Order("submitted_at DESC").
		Find(&claims).Error
	return claims, err
}

func (r *ClaimRepositoryImpl) ListByUserID(db *gorm.DB, userID string) ([]models.Claim, error) {
	var claims []models.Claim
	err := db.Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&claims).Error
	return claims, err
}
