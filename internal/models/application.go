package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ApplicationDocuments holds the named document slots of an application.
type ApplicationDocuments struct {
	Identification DocumentRef   `json:"identification"`
	IncomeProof    DocumentRef   `json:"incomeProof"`
	Additional     []DocumentRef `json:"additional,omitempty"`
}

// HasRequired reports whether both mandatory slots carry a URL.
func (d ApplicationDocuments) HasRequired() bool {
	return !d.Identification.IsZero() && !d.IncomeProof.IsZero()
}

type Application struct {
	ID            string `gorm:"type:uuid;primaryKey" json:"-"`
	ApplicationID string `gorm:"uniqueIndex;not null" json:"applicationId"`
	UserID        string `gorm:"index;not null" json:"userId"`
	PolicyID      string `gorm:"index;not null" json:"policyId"`

	// Personal
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`

	// Employment
	Occupation   string  `json:"occupation"`
	Employer     string  `json:"employer"`
	AnnualIncome float64 `json:"annualIncome"`

	// Insurance
	CoverageAmount     float64 `json:"coverageAmount"`
	NomineeName        string  `json:"nomineeName"`
	NomineeRelation    string  `json:"nomineeRelation"`
	ExistingConditions string  `json:"existingConditions"`

	Documents       datatypes.JSONType[ApplicationDocuments] `json:"documents"`
	Status          ApplicationStatus                        `gorm:"type:varchar(20);not null;index" json:"status"`
	RejectionReason string                                   `json:"rejectionReason,omitempty"`
	AdminEmail      string                                   `gorm:"index" json:"adminEmail"`
	SubmittedAt     time.Time                                `gorm:"index" json:"submittedAt"`
	UpdatedAt       time.Time                                `json:"updatedAt"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
