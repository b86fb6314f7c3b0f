package dto

import "time"

type ApplicationStats struct {
	Total         int     `json:"total"`
	Submitted     int     `json:"submitted"`
	Approved      int     `json:"approved"`
	Rejected      int     `json:"rejected"`
	ThisMonth     int     `json:"thisMonth"`
	LastMonth     int     `json:"lastMonth"`
	ChangePercent float64 `json:"changePercent"`
}

type ClaimStats struct {
	Total              int     `json:"total"`
	Submitted          int     `json:"submitted"`
	InReview           int     `json:"inReview"`
	Approved           int     `json:"approved"`
	Rejected           int     `json:"rejected"`
	Paid               int     `json:"paid"`
	TotalClaimedAmount float64 `json:"totalClaimedAmount"`
	ThisMonth          int     `json:"thisMonth"`
	LastMonth          int     `json:"lastMonth"`
	ChangePercent      float64 `json:"changePercent"`
}

type PolicyStats struct {
	Total       int     `json:"total"`
	Active      int     `json:"active"`
	Draft       int     `json:"draft"`
	Inactive    int     `json:"inactive"`
	Subscribers int     `json:"subscribers"`
	Revenue     float64 `json:"revenue"`
}

type DashboardStats struct {
	AdminEmail   string           `json:"adminEmail"`
	Applications ApplicationStats `json:"applications"`
	Claims       ClaimStats       `json:"claims"`
	Policies     PolicyStats      `json:"policies"`
	// ApprovalRate is the share of decided applications that were approved, in percent.
	ApprovalRate float64   `json:"approvalRate"`
	GeneratedAt  time.Time `json:"generatedAt"`
}
