package dto

import "insurance_backend/internal/models"

type PolicyListQuery struct {
	Category string `form:"category"`
	Status   string `form:"status" validate:"omitempty,is-policy-status"`
	Popular  *bool  `form:"popular"`
}

type CreatePolicyRequest struct {
	Name              string   `json:"name" validate:"required"`
	Category          string   `json:"category" validate:"required"`
	Provider          string   `json:"provider"`
	CoverageAmount    float64  `json:"coverageAmount" validate:"gte=0"`
	Premium           float64  `json:"premium" validate:"gte=0"`
	Tenure            string   `json:"tenure"`
	Features          []string `json:"features"`
	RequiredDocuments []string `json:"requiredDocuments"`
	Terms             []string `json:"terms"`
	Popular           bool     `json:"popular"`
	Status            string   `json:"status" validate:"omitempty,is-policy-status"`
}

// UpdatePolicyRequest carries only the fields the admin changed.
type UpdatePolicyRequest struct {
	Name              *string   `json:"name" validate:"omitempty,min=1"`
	Category          *string   `json:"category" validate:"omitempty,min=1"`
	Provider          *string   `json:"provider"`
	CoverageAmount    *float64  `json:"coverageAmount" validate:"omitempty,gte=0"`
	Premium           *float64  `json:"premium" validate:"omitempty,gte=0"`
	Tenure            *string   `json:"tenure"`
	Features          *[]string `json:"features"`
	RequiredDocuments *[]string `json:"requiredDocuments"`
	Terms             *[]string `json:"terms"`
	Popular           *bool     `json:"popular"`
}

type UpdatePolicyStatusRequest struct {
	Status string `json:"status" validate:"required,is-policy-status"`
}

type ReassignPolicyRequest struct {
	AdminID string `json:"adminId" validate:"required"`
}

type PolicyListResponse struct {
	Policies []models.Policy `json:"policies"`
}
