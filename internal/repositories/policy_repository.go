package repositories

import (
	"errors"
	"time"

	"insurance_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPolicyNotFound = errors.New("policy not found")

type PolicyFilter struct {
	Category string
	Status   models.PolicyStatus
	Popular  *bool
}

type PolicyRepository interface {
	Create(db *gorm.DB, policy *models.Policy) error
	FindByID(db *gorm.DB, id string) (*models.Policy, error)
	// FindByIDWithOwner preloads the owning admin.
	FindByIDWithOwner(db *gorm.DB, id string) (*models.Policy, error)
	FindByIDs(db *gorm.DB, ids []string) ([]models.Policy, error)
	List(db *gorm.DB, filter PolicyFilter) ([]models.Policy, error)
	ListByOwner(db *gorm.DB, adminID string) ([]models.Policy, error)
	Update(db *gorm.DB, policy *models.Policy) error
	UpdateStatus(db *gorm.DB, id string, status models.PolicyStatus) error
	UpdateOwner(db *gorm.DB, id, adminID string) error
}

type PolicyRepositoryImpl struct{}

func NewPolicyRepository() PolicyRepository {
	return &PolicyRepositoryImpl{}
}

func (r *PolicyRepositoryImpl) Create(db *gorm.DB, policy *models.Policy) error {
	return db.Create(policy).Error
}

func (r *PolicyRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Policy, error) {
	if !isUUID(id) {
		return nil, ErrPolicyNotFound
	}
	var policy models.Policy
	if err := db.Where("id = ?", id).First(&policy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPolicyNotFound
		}
		return nil, err
	}
	return &policy, nil
}

func (r *PolicyRepositoryImpl) FindByIDWithOwner(db *gorm.DB, id string) (*models.Policy, error) {
	if !isUUID(id) {
		return nil, ErrPolicyNotFound
	}
	var policy models.Policy
	if err := db.Preload("Owner").Where("id = ?", id).First(&policy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPolicyNotFound
		}
		return nil, err
	}
	return &policy, nil
}

func (r *PolicyRepositoryImpl) FindByIDs(db *gorm.DB, ids []string) ([]models.Policy, error) {
	var policies []models.Policy
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if isUUID(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return policies, nil
	}
	err := db.Where("id IN ?", valid).Find(&policies).Error
	return policies, err
}

func (r *PolicyRepositoryImpl) List(db *gorm.DB, filter PolicyFilter) ([]models.Policy, error) {
	var policies []models.Policy
	query := db.Model(&models.Policy{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Popular != nil {
		query = query.Where("popular = ?", *filter.Popular)
	}

	err := query.Order("created_at DESC").Find(&policies).Error
	return policies, err
}

func (r *PolicyRepositoryImpl) ListByOwner(db *gorm.DB, adminID string) ([]models.Policy, error) {
	var policies []models.Policy
	err := db.Where("created_by = ?", adminID).Order("created_at DESC").Find(&policies).Error
	return policies, err
}

func (r *PolicyRepositoryImpl) Update(db *gorm.DB, policy *models.Policy) error {
	if !isUUID(policy.ID) {
		return ErrPolicyNotFound
	}
	result := db.Model(&models.Policy{}).Where("id = ?", policy.ID).Updates(map[string]interface{}{
		"name":               policy.Name,
		"category":           policy.Category,
		"provider":           policy.Provider,
		"coverage_amount":    policy.CoverageAmount,
		"premium":            policy.Premium,
		"tenure":             policy.Tenure,
		"features":           policy.Features,
		"required_documents": policy.RequiredDocuments,
		"terms":              policy.Terms,
		"popular":            policy.Popular,
		"updated_at":         time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPolicyNotFound
	}
	return nil
}

func (r *PolicyRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.PolicyStatus) error {
	return r.updateColumn(db, id, "status", status)
}

func (r *PolicyRepositoryImpl) UpdateOwner(db *gorm.DB, id, adminID string) error {
	return r.updateColumn(db, id, "created_by", adminID)
}

func (r *PolicyRepositoryImpl) updateColumn(db *gorm.DB, id, column string, value interface{}) error {
	if !isUUID(id) {
		return ErrPolicyNotFound
	}
	result := db.Model(&models.Policy{}).Where("id = ?", id).Updates(map[string]interface{}{
		column:       value,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPolicyNotFound
	}
	return nil
}
