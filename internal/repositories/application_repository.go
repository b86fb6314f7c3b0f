package repositories

import (
	"errors"
	"time"

	"insurance_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error
	FindByApplicationID(db *gorm.DB, applicationID string) (*models.Application, error)
	// UpdateStatus writes status and rejection reason of one application.
	UpdateStatus(db *gorm.DB, applicationID string, status models.ApplicationStatus, reason string) error
	ListByAdminEmail(db *gorm.DB, adminEmail string) ([]models.Application, error)
	ListByUserID(db *gorm.DB, userID string) ([]models.Application, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	return db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) FindByApplicationID(db *gorm.DB, applicationID string) (*models.Application, error) {
	var application models.Application
	if err := db.Where("application_id = ?", applicationID).First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(db *gorm.DB, applicationID string, status models.ApplicationStatus, reason string) error {
	result := db.Model(&models.Application{}).
		Where("application_id = ?", applicationID).
		Updates(map[string]interface{}{
			"status":           status,
			"rejection_reason": reason,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) ListByAdminEmail(db *gorm.DB, adminEmail string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Where("admin_email = ?", adminEmail).
		Order("submitted_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) ListByUserID(db *gorm.DB, userID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&applications).Error
	return applications, err
}
