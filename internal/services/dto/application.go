package dto

import (
	"time"

	"insurance_backend/internal/models"
)

type CreateApplicationRequest struct {
	UserID   string `json:"userId" validate:"required"`
	PolicyID string `json:"policyId" validate:"required"`

	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`

	Occupation   string  `json:"occupation"`
	Employer     string  `json:"employer"`
	AnnualIncome float64 `json:"annualIncome" validate:"gte=0"`

	CoverageAmount     float64 `json:"coverageAmount" validate:"gte=0"`
	NomineeName        string  `json:"nomineeName"`
	NomineeRelation    string  `json:"nomineeRelation"`
	ExistingConditions string  `json:"existingConditions"`

	// Presence of the two mandatory slots is checked by the service.
	Documents models.ApplicationDocuments `json:"documents"`
}

type CreateApplicationResponse struct {
	ApplicationID string    `json:"applicationId"`
	SubmittedOn   time.Time `json:"submittedOn"`
}

type ApproveApplicationRequest struct {
	ApplicationID string `json:"applicationId" validate:"required"`
}

type RejectApplicationRequest struct {
	ApplicationID   string `json:"applicationId" validate:"required"`
	RejectionReason string `json:"rejectionReason" validate:"required"`
}

// ApplicationSummary is the row shown in the admin applications table.
type ApplicationSummary struct {
	ApplicationID  string                   `json:"applicationId"`
	UserID         string                   `json:"userId"`
	PolicyID       string                   `json:"policyId"`
	ApplicantName  string                   `json:"applicantName"`
	Email          string                   `json:"email"`
	Phone          string                   `json:"phone"`
	CoverageAmount float64                  `json:"coverageAmount"`
	Status         models.ApplicationStatus `json:"status"`
	AdminEmail     string                   `json:"adminEmail"`
	SubmittedAt    time.Time                `json:"submittedAt"`
}

// UserApplication is a stored application enriched with its policy's
// name and premium. Both stay empty when the policy no longer exists.
type UserApplication struct {
	models.Application
	PolicyName    string  `json:"policyName,omitempty"`
	PolicyPremium float64 `json:"policyPremium,omitempty"`
}

type AdminApplicationsResponse struct {
	Applications []ApplicationSummary `json:"applications"`
}

type UserApplicationsResponse struct {
	Applications []UserApplication `json:"applications"`
}

type AdminEmailQuery struct {
	AdminEmail string `form:"adminEmail" json:"adminEmail" validate:"omitempty,email"`
}

type UserIDQuery struct {
	UserID string `form:"userId" json:"userId" validate:"required"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
