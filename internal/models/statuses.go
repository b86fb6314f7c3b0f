package models

type ApplicationStatus string
type ClaimStatus string
type PolicyStatus string
type AccountRole string

const (
	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusApproved  ApplicationStatus = "approved"
	ApplicationStatusRejected  ApplicationStatus = "rejected"

	ClaimStatusSubmitted ClaimStatus = "submitted"
	ClaimStatusInReview  ClaimStatus = "in-review"
	ClaimStatusApproved  ClaimStatus = "approved"
	ClaimStatusRejected  ClaimStatus = "rejected"
	ClaimStatusPaid      ClaimStatus = "paid"

	PolicyStatusActive   PolicyStatus = "active"
	PolicyStatusDraft    PolicyStatus = "draft"
	PolicyStatusInactive PolicyStatus = "inactive"

	RoleUser  AccountRole = "user"
	RoleAdmin AccountRole = "admin"
)

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusSubmitted: {ApplicationStatusApproved, ApplicationStatusRejected},
}

var claimTransitions = map[ClaimStatus][]ClaimStatus{
	ClaimStatusSubmitted: {ClaimStatusInReview, ClaimStatusRejected},
	ClaimStatusInReview:  {ClaimStatusApproved, ClaimStatusRejected},
	ClaimStatusApproved:  {ClaimStatusPaid},
}

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether an application in status s may move to next.
// Writing the current status again is always allowed.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusSubmitted, ClaimStatusInReview, ClaimStatusApproved, ClaimStatusRejected, ClaimStatusPaid:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition leaves s.
func (s ClaimStatus) IsTerminal() bool {
	return s == ClaimStatusPaid || s == ClaimStatusRejected
}

// CanTransitionTo reports whether a claim in status s may move to next.
// Same-state writes are allowed so reviewers can amend notes.
func (s ClaimStatus) CanTransitionTo(next ClaimStatus) bool {
	if !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}
	for _, allowed := range claimTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s PolicyStatus) IsValid() bool {
	switch s {
	case PolicyStatusActive, PolicyStatusDraft, PolicyStatusInactive:
		return true
	}
	return false
}

func (r AccountRole) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}
