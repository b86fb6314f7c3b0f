package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"insurance_backend/internal/identifier"
	"insurance_backend/internal/logger"
	"insurance_backend/internal/models"
	"insurance_backend/internal/repositories"
	"insurance_backend/internal/services/dto"
	"insurance_backend/internal/validator"
	"insurance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ClaimService interface {
	CreateClaim(ctx context.Context, db *gorm.DB, req *dto.CreateClaimRequest) (*dto.CreateClaimResponse, error)
	// ReviewClaim applies an admin decision to a claim. req.ReviewerID must
	// name the reviewer, and the claim must be filed under the reviewer.
	ReviewClaim(ctx context.Context, db *gorm.DB, reviewer Reviewer, req *dto.UpdateClaimRequest) (*models.Claim, error)
	GetClaim(ctx context.Context, db *gorm.DB, claimID string) (*models.Claim, error)
	ListAdminClaims(ctx context.Context, db *gorm.DB, adminEmail string) ([]models.Claim, error)
	ListUserClaims(ctx context.Context, db *gorm.DB, userID string) ([]models.Claim, error)
}

type claimService struct {
	claimRepo  repositories.ClaimRepository
	policyRepo repositories.PolicyRepository
	stats      StatsInvalidator
	now        func() time.Time
}

func NewClaimService(
	claimRepo repositories.ClaimRepository,
	policyRepo repositories.PolicyRepository,
	stats StatsInvalidator,
) ClaimService {
	return &claimService{
		claimRepo:  claimRepo,
		policyRepo: policyRepo,
		stats:      stats,
		now:        time.Now,
	}
}

func (s *claimService) CreateClaim(ctx context.Context, db *gorm.DB, req *dto.CreateClaimRequest) (*dto.CreateClaimResponse, error) {
	if err := validateClaimInput(req); err != nil {
		return nil, err
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	adminEmail, err := resolveAdminEmail(ctx, tx, s.policyRepo, req.PolicyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	submittedAt := s.now().UTC()
	claim := &models.Claim{
		ClaimID:          identifier.NewClaimID(),
		UserID:           req.UserID,
		PolicyID:         req.PolicyID,
		PolicyName:       req.PolicyName,
		InsuranceCompany: req.InsuranceCompany,
		IncidentDate:     req.IncidentDate,
		ClaimAmount:      req.ClaimAmount,
		Description:      req.Description,
		Documents:        req.Documents,
		Status:           models.ClaimStatusSubmitted,
		AdminEmail:       adminEmail,
		SubmittedAt:      submittedAt,
		UpdatedAt:        submittedAt,
	}

	if err := s.claimRepo.Create(tx, claim); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Claim submitted",
		"claim_id", claim.ClaimID,
		"policy_id", claim.PolicyID,
		"documents", len(claim.Documents),
	)
	s.stats.Invalidate(ctx, adminEmail)

	return &dto.CreateClaimResponse{
		ClaimID:     claim.ClaimID,
		SubmittedOn: submittedAt,
	}, nil
}

func validateClaimInput(req *dto.CreateClaimRequest) error {
	if len(req.Documents) == 0 {
		return apperrors.ErrClaimDocumentsRequired
	}
	for i, doc := range req.Documents {
		if doc.IsZero() {
			return apperrors.ValidationError(map[string]string{
				fmt.Sprintf("documents[%d].url", i): "This field is required",
			})
		}
	}
	if !validator.IsPositiveDecimal(req.ClaimAmount) {
		return apperrors.ErrInvalidClaimAmount
	}
	return nil
}

func (s *claimService) ReviewClaim(ctx context.Context, db *gorm.DB, reviewer Reviewer, req *dto.UpdateClaimRequest) (*models.Claim, error) {
	next := models.ClaimStatus(req.Status)
	if !next.IsValid() {
		return nil, apperrors.ValidationError(map[string]string{"status": "Unknown claim status"})
	}
	if req.ReviewerID != reviewer.ID {
		return nil, apperrors.ErrReviewerMismatch
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	claim, err := s.claimRepo.FindByClaimID(tx, req.ClaimID)
	if err != nil {
		return nil, handleClaimError(err)
	}

	if !reviewer.owns(claim.AdminEmail) {
		logger.CtxWarn(ctx, "Admin tried to review another admin's claim",
			"claim_id", req.ClaimID,
			"admin_email", claim.AdminEmail,
			"reviewer_email", reviewer.Email,
		)
		return nil, apperrors.ErrInsufficientPermissions
	}

	previous := claim.Status
	if !previous.CanTransitionTo(next) {
		return nil, apperrors.ErrInvalidStatus("claim",
			fmt.Sprintf("Claim %s is %s and cannot become %s", req.ClaimID, previous, next))
	}

	reviewedAt := s.now().UTC()
	claim.Status = next
	claim.ReviewerID = req.ReviewerID
	claim.ReviewedAt = &reviewedAt
	if req.ReviewNotes != nil {
		claim.ReviewNotes = *req.ReviewNotes
	}

	if err := s.claimRepo.UpdateReview(tx, claim); err != nil {
		return nil, handleClaimError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Claim reviewed",
		"claim_id", claim.ClaimID,
		"from", previous,
		"to", next,
		"reviewer_id", req.ReviewerID,
	)
	s.stats.Invalidate(ctx, claim.AdminEmail)
	return claim, nil
}

func (s *claimService) GetClaim(ctx context.Context, db *gorm.DB, claimID string) (*models.Claim, error) {
	claim, err := s.claimRepo.FindByClaimID(db.WithContext(ctx), claimID)
	if err != nil {
		return nil, handleClaimError(err)
	}
	return claim, nil
}

func (s *claimService) ListAdminClaims(ctx context.Context, db *gorm.DB, adminEmail string) ([]models.Claim, error) {
	claims, err := s.claimRepo.ListByAdminEmail(db.WithContext(ctx), adminEmail)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return claims, nil
}

func (s *claimService) ListUserClaims(ctx context.Context, db *gorm.DB, userID string) ([]models.Claim, error) {
	claims, err := s.claimRepo.ListByUserID(db.WithContext(ctx), userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return claims, nil
}

func handleClaimError(err error) error {
	if errors.Is(err, repositories.ErrClaimNotFound) {
		return apperrors.ErrClaimNotFound
	}
	return apperrors.InternalError(err)
}
