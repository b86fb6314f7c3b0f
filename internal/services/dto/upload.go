package dto

import "insurance_backend/internal/models"

type UploadResponse struct {
	Document models.DocumentRef `json:"document"`
}

type MultiUploadResponse struct {
	Documents []models.DocumentRef `json:"documents"`
}

type ApplicationDocumentsResponse struct {
	Documents models.ApplicationDocuments `json:"documents"`
}

type VaultListResponse struct {
	Documents []models.VaultDocument `json:"documents"`
}

type VaultUploadResponse struct {
	Document *models.VaultDocument `json:"document"`
}
