package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Claim struct {
	ID               string `gorm:"type:uuid;primaryKey" json:"-"`
	ClaimID          string `gorm:"uniqueIndex;not null" json:"claimId"`
	UserID           string `gorm:"index;not null" json:"userId"`
	PolicyID         string `gorm:"index;not null" json:"policyId"`
	PolicyName       string `json:"policyName"`
	InsuranceCompany string `json:"insuranceCompany"`
	IncidentDate     string `json:"incidentDate"`
	// ClaimAmount is kept exactly as submitted, e.g. "1500.00".
	ClaimAmount string                           `gorm:"not null" json:"claimAmount"`
	Description string                           `json:"description"`
	Documents   datatypes.JSONSlice[DocumentRef] `json:"documents"`
	Status      ClaimStatus                      `gorm:"type:varchar(20);not null;index" json:"status"`
	ReviewNotes string                           `json:"reviewNotes,omitempty"`
	ReviewerID  string                           `json:"reviewerId,omitempty"`
	ReviewedAt  *time.Time                       `json:"reviewedAt,omitempty"`
	AdminEmail  string                           `gorm:"index" json:"adminEmail"`
	SubmittedAt time.Time                        `gorm:"index" json:"submittedAt"`
	UpdatedAt   time.Time                        `json:"updatedAt"`
}

func (c *Claim) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
