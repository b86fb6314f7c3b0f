package repositories

import (
	"errors"

	"insurance_backend/internal/models"

	"gorm.io/gorm"
)

var ErrVaultDocumentNotFound = errors.New("vault document not found")

type VaultRepository interface {
	Create(db *gorm.DB, doc *models.VaultDocument) error
	FindByID(db *gorm.DB, id string) (*models.VaultDocument, error)
	ListByUser(db *gorm.DB, userID string) ([]models.VaultDocument, error)
	Delete(db *gorm.DB, id string) error
}

type VaultRepositoryImpl struct{}

func NewVaultRepository() VaultRepository {
	return &VaultRepositoryImpl{}
}

func (r *VaultRepositoryImpl) Create(db *gorm.DB, doc *models.VaultDocument) error {
	return db.Create(doc).Error
}

func (r *VaultRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.VaultDocument, error) {
	if !isUUID(id) {
		return nil, ErrVaultDocumentNotFound
	}
	var doc models.VaultDocument
	if err := db.Where("id = ?", id).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVaultDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *VaultRepositoryImpl) ListByUser(db *gorm.DB, userID string) ([]models.VaultDocument, error) {
	var docs []models.VaultDocument
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&docs).Error
	return docs, err
}

func (r *VaultRepositoryImpl) Delete(db *gorm.DB, id string) error {
	if !isUUID(id) {
		return ErrVaultDocumentNotFound
	}
	result := db.Where("id = ?", id).Delete(&models.VaultDocument{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVaultDocumentNotFound
	}
	return nil
}
