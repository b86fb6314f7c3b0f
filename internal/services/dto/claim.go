package dto

import (
	"time"

	"insurance_backend/internal/models"
)

type CreateClaimRequest struct {
	UserID           string `json:"userId" validate:"required"`
	PolicyID         string `json:"policyId" validate:"required"`
	PolicyName       string `json:"policyName"`
	InsuranceCompany string `json:"insuranceCompany"`
	IncidentDate     string `json:"incidentDate" validate:"required"`
	// ClaimAmount travels as a decimal string, e.g. "1500.00".
	ClaimAmount string               `json:"claimAmount" validate:"required,decimal-amount"`
	Description string               `json:"description"`
	Documents   []models.DocumentRef `json:"documents"`
}

type CreateClaimResponse struct {
	ClaimID     string    `json:"claimId"`
	SubmittedOn time.Time `json:"submittedOn"`
}

type UpdateClaimRequest struct {
	ClaimID string `json:"claimId" validate:"required"`
	Status  string `json:"status" validate:"required,is-claim-status"`
	// ReviewNotes is nil when the reviewer left the notes untouched.
	ReviewNotes *string `json:"reviewNotes"`
	ReviewerID  string  `json:"reviewerId" validate:"required"`
}

type UpdateClaimResponse struct {
	Success bool          `json:"success"`
	Claim   *models.Claim `json:"claim"`
}

type ClaimListResponse struct {
	Claims []models.Claim `json:"claims"`
}
