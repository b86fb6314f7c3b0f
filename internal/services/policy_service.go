package services

import (
	"context"
	"errors"

	"insurance_backend/internal/logger"
	"insurance_backend/internal/models"
	"insurance_backend/internal/repositories"
	"insurance_backend/internal/services/dto"
	"insurance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PolicyService interface {
	// Public catalogue
	ListPolicies(ctx context.Context, db *gorm.DB, query *dto.PolicyListQuery) ([]models.Policy, error)
	GetPolicy(ctx context.Context, db *gorm.DB, policyID string) (*models.Policy, error)

	// Admin operations
	CreatePolicy(ctx context.Context, db *gorm.DB, adminID string, req *dto.CreatePolicyRequest) (*models.Policy, error)
	UpdatePolicy(ctx context.Context, db *gorm.DB, adminID, policyID string, req *dto.UpdatePolicyRequest) (*models.Policy, error)
	UpdatePolicyStatus(ctx context.Context, db *gorm.DB, adminID, policyID string, status models.PolicyStatus) error
	// ReassignOwner hands a policy to another admin. Records created earlier
	// keep the email of the previous owner.
	ReassignOwner(ctx context.Context, db *gorm.DB, adminID, policyID, newAdminID string) error
	ListAdminPolicies(ctx context.Context, db *gorm.DB, adminID string) ([]models.Policy, error)
}

type policyService struct {
	policyRepo  repositories.PolicyRepository
	accountRepo repositories.AccountRepository
	stats       StatsInvalidator
}

func NewPolicyService(
	policyRepo repositories.PolicyRepository,
	accountRepo repositories.AccountRepository,
	stats StatsInvalidator,
) PolicyService {
	return &policyService{
		policyRepo:  policyRepo,
		accountRepo: accountRepo,
		stats:       stats,
	}
}

func (s *policyService) ListPolicies(ctx context.Context, db *gorm.DB, query *dto.PolicyListQuery) ([]models.Policy, error) {
	filter := repositories.PolicyFilter{}
	if query != nil {
		filter.Category = query.Category
		filter.Status = models.PolicyStatus(query.Status)
		filter.Popular = query.Popular
	}

	policies, err := s.policyRepo.List(db.WithContext(ctx), filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return policies, nil
}

func (s *policyService) GetPolicy(ctx context.Context, db *gorm.DB, policyID string) (*models.Policy, error) {
	policy, err := s.policyRepo.FindByID(db.WithContext(ctx), policyID)
	if err != nil {
		return nil, handlePolicyError(err)
	}
	return policy, nil
}

func (s *policyService) CreatePolicy(ctx context.Context, db *gorm.DB, adminID string, req *dto.CreatePolicyRequest) (*models.Policy, error) {
	status := models.PolicyStatus(req.Status)
	if status == "" {
		status = models.PolicyStatusDraft
	}

	policy := &models.Policy{
		Name:              req.Name,
		Category:          req.Category,
		Provider:          req.Provider,
		CoverageAmount:    req.CoverageAmount,
		Premium:           req.Premium,
		Tenure:            req.Tenure,
		Features:          req.Features,
		RequiredDocuments: req.RequiredDocuments,
		Terms:             req.Terms,
		Popular:           req.Popular,
		Status:            status,
		CreatedBy:         adminID,
	}

	if err := s.policyRepo.Create(db.WithContext(ctx), policy); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Policy created", "policy_id", policy.ID, "status", policy.Status)
	s.invalidateOwners(ctx, db, adminID)
	return policy, nil
}

func (s *policyService) UpdatePolicy(ctx context.Context, db *gorm.DB, adminID, policyID string, req *dto.UpdatePolicyRequest) (*models.Policy, error) {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	policy, err := s.findOwned(tx, adminID, policyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		policy.Name = *req.Name
	}
	if req.Category != nil {
		policy.Category = *req.Category
	}
	if req.Provider != nil {
		policy.Provider = *req.Provider
	}
	if req.CoverageAmount != nil {
		policy.CoverageAmount = *req.CoverageAmount
	}
	if req.Premium != nil {
		policy.Premium = *req.Premium
	}
	if req.Tenure != nil {
		policy.Tenure = *req.Tenure
	}
	if req.Features != nil {
		policy.Features = *req.Features
	}
	if req.RequiredDocuments != nil {
		policy.RequiredDocuments = *req.RequiredDocuments
	}
	if req.Terms != nil {
		policy.Terms = *req.Terms
	}
	if req.Popular != nil {
		policy.Popular = *req.Popular
	}

	if err := s.policyRepo.Update(tx, policy); err != nil {
		return nil, handlePolicyError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}
	s.invalidateOwners(ctx, db, adminID)
	return policy, nil
}

func (s *policyService) UpdatePolicyStatus(ctx context.Context, db *gorm.DB, adminID, policyID string, status models.PolicyStatus) error {
	if !status.IsValid() {
		return apperrors.ValidationError(map[string]string{"status": "Must be one of: active, draft, inactive"})
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if _, err := s.findOwned(tx, adminID, policyID); err != nil {
		return err
	}
	if err := s.policyRepo.UpdateStatus(tx, policyID, status); err != nil {
		return handlePolicyError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}
	s.invalidateOwners(ctx, db, adminID)
	return nil
}

func (s *policyService) ReassignOwner(ctx context.Context, db *gorm.DB, adminID, policyID, newAdminID string) error {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if _, err := s.findOwned(tx, adminID, policyID); err != nil {
		return err
	}

	if _, err := s.accountRepo.FindAdminByID(tx, newAdminID); err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return apperrors.ErrAdminNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.policyRepo.UpdateOwner(tx, policyID, newAdminID); err != nil {
		return handlePolicyError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Policy owner reassigned", "policy_id", policyID, "from", adminID, "to", newAdminID)
	s.invalidateOwners(ctx, db, adminID, newAdminID)
	return nil
}

func (s *policyService) ListAdminPolicies(ctx context.Context, db *gorm.DB, adminID string) ([]models.Policy, error) {
	policies, err := s.policyRepo.ListByOwner(db.WithContext(ctx), adminID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return policies, nil
}

func (s *policyService) findOwned(db *gorm.DB, adminID, policyID string) (*models.Policy, error) {
	policy, err := s.policyRepo.FindByID(db, policyID)
	if err != nil {
		return nil, handlePolicyError(err)
	}
	if policy.CreatedBy != adminID {
		return nil, apperrors.NewForbiddenError("policy belongs to another admin")
	}
	return policy, nil
}

// invalidateOwners drops the cached dashboards of the given admins. Runs
// after commit; a failed email lookup only costs a stale entry until TTL.
func (s *policyService) invalidateOwners(ctx context.Context, db *gorm.DB, adminIDs ...string) {
	for _, adminID := range adminIDs {
		admin, err := s.accountRepo.FindAdminByID(db.WithContext(ctx), adminID)
		if err != nil {
			logger.CtxWithError(ctx, "Dashboard invalidation skipped: admin lookup failed", err, "admin_id", adminID)
			continue
		}
		s.stats.Invalidate(ctx, admin.Email)
	}
}

func handlePolicyError(err error) error {
	if errors.Is(err, repositories.ErrPolicyNotFound) {
		return apperrors.ErrPolicyNotFound
	}
	return apperrors.InternalError(err)
}
