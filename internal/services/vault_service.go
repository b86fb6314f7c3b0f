package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"insurance_backend/internal/logger"
	"insurance_backend/internal/models"
	"insurance_backend/internal/repositories"
	"insurance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const defaultVaultCategory = "other"

type VaultService interface {
	UploadDocument(ctx context.Context, db *gorm.DB, userID, category string, file *multipart.FileHeader) (*models.VaultDocument, error)
	ListDocuments(ctx context.Context, db *gorm.DB, userID string) ([]models.VaultDocument, error)
	DeleteDocument(ctx context.Context, db *gorm.DB, userID, documentID string) error
}

type vaultService struct {
	vaultRepo     repositories.VaultRepository
	uploadService UploadService
}

func NewVaultService(vaultRepo repositories.VaultRepository, uploadService UploadService) VaultService {
	return &vaultService{
		vaultRepo:     vaultRepo,
		uploadService: uploadService,
	}
}

func (s *vaultService) UploadDocument(ctx context.Context, db *gorm.DB, userID, category string, file *multipart.FileHeader) (*models.VaultDocument, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		category = defaultVaultCategory
	}

	folder := "vault/" + userID
	stored, err := s.uploadService.UploadFile(ctx, folder, file)
	if err != nil {
		return nil, err
	}
	keys := []string{stored.Key}

	doc := &models.VaultDocument{
		UserID:     userID,
		Category:   category,
		URL:        stored.URL,
		Name:       stored.Name,
		Size:       stored.Size,
		Type:       stored.Type,
		StorageKey: stored.Key,
	}

	// A missing preview never fails the upload.
	thumb, err := s.uploadService.StoreThumbnail(ctx, folder, file)
	if err != nil {
		logger.CtxWithError(ctx, "Failed to create vault thumbnail", err, "key", stored.Key)
	} else if thumb != nil {
		doc.ThumbnailURL, doc.ThumbnailKey = thumb.URL, thumb.Key
		keys = append(keys, thumb.Key)
	}

	if err := s.vaultRepo.Create(db.WithContext(ctx), doc); err != nil {
		// The row never existed, so the objects would be unreachable.
		s.removeObjects(context.WithoutCancel(ctx), keys...)
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Vault document stored", "document_id", doc.ID, "category", category)
	return doc, nil
}

func (s *vaultService) ListDocuments(ctx context.Context, db *gorm.DB, userID string) ([]models.VaultDocument, error) {
	docs, err := s.vaultRepo.ListByUser(db.WithContext(ctx), userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return docs, nil
}

func (s *vaultService) DeleteDocument(ctx context.Context, db *gorm.DB, userID, documentID string) error {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	doc, err := s.vaultRepo.FindByID(tx, documentID)
	if err != nil {
		return handleVaultError(err)
	}

	if doc.UserID != userID {
		return apperrors.NewForbiddenError("access denied")
	}

	if err := s.vaultRepo.Delete(tx, documentID); err != nil {
		return handleVaultError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	// The row is gone; a leftover object is only logged.
	s.removeObjects(ctx, doc.StorageKey, doc.ThumbnailKey)
	return nil
}

func (s *vaultService) removeObjects(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := s.uploadService.DeleteFile(ctx, key); err != nil {
			logger.CtxWithError(ctx, "Failed to delete vault object", err, "key", key)
		}
	}
}

func handleVaultError(err error) error {
	if errors.Is(err, repositories.ErrVaultDocumentNotFound) {
		return apperrors.ErrDocumentNotFound
	}
	return apperrors.InternalError(err)
}
