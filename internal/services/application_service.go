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
	"insurance_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ApplicationService interface {
	CreateApplication(ctx context.Context, db *gorm.DB, req *dto.CreateApplicationRequest) (*dto.CreateApplicationResponse, error)
	// ApproveApplication and RejectApplication are limited to the admin the
	// application was filed under.
	ApproveApplication(ctx context.Context, db *gorm.DB, reviewer Reviewer, applicationID string) error
	RejectApplication(ctx context.Context, db *gorm.DB, reviewer Reviewer, applicationID, reason string) error
	GetApplication(ctx context.Context, db *gorm.DB, applicationID string) (*models.Application, error)
	ListAdminApplications(ctx context.Context, db *gorm.DB, adminEmail string) ([]dto.ApplicationSummary, error)
	ListUserApplications(ctx context.Context, db *gorm.DB, userID string) ([]dto.UserApplication, error)
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	policyRepo      repositories.PolicyRepository
	stats           StatsInvalidator
	now             func() time.Time
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	policyRepo repositories.PolicyRepository,
	stats StatsInvalidator,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		policyRepo:      policyRepo,
		stats:           stats,
		now:             time.Now,
	}
}

func (s *applicationService) CreateApplication(ctx context.Context, db *gorm.DB, req *dto.CreateApplicationRequest) (*dto.CreateApplicationResponse, error) {
	if !req.Documents.HasRequired() {
		return nil, apperrors.ErrMissingRequiredDocuments
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
	application := &models.Application{
		ApplicationID:      identifier.NewApplicationID(),
		UserID:             req.UserID,
		PolicyID:           req.PolicyID,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Phone:              req.Phone,
		DateOfBirth:        req.DateOfBirth,
		Gender:             req.Gender,
		Address:            req.Address,
		City:               req.City,
		State:              req.State,
		PostalCode:         req.PostalCode,
		Occupation:         req.Occupation,
		Employer:           req.Employer,
		AnnualIncome:       req.AnnualIncome,
		CoverageAmount:     req.CoverageAmount,
		NomineeName:        req.NomineeName,
		NomineeRelation:    req.NomineeRelation,
		ExistingConditions: req.ExistingConditions,
		Documents:          datatypes.NewJSONType(req.Documents),
		Status:             models.ApplicationStatusSubmitted,
		AdminEmail:         adminEmail,
		SubmittedAt:        submittedAt,
		UpdatedAt:          submittedAt,
	}

	if err := s.applicationRepo.Create(tx, application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Application submitted",
		"application_id", application.ApplicationID,
		"policy_id", application.PolicyID,
		"admin_email", adminEmail,
	)
	s.stats.Invalidate(ctx, adminEmail)

	return &dto.CreateApplicationResponse{
		ApplicationID: application.ApplicationID,
		SubmittedOn:   submittedAt,
	}, nil
}

func (s *applicationService) ApproveApplication(ctx context.Context, db *gorm.DB, reviewer Reviewer, applicationID string) error {
	return s.transition(ctx, db, reviewer, applicationID, models.ApplicationStatusApproved, "")
}

func (s *applicationService) RejectApplication(ctx context.Context, db *gorm.DB, reviewer Reviewer, applicationID, reason string) error {
	return s.transition(ctx, db, reviewer, applicationID, models.ApplicationStatusRejected, reason)
}

func (s *applicationService) transition(ctx context.Context, db *gorm.DB, reviewer Reviewer, applicationID string, next models.ApplicationStatus, reason string) error {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	application, err := s.applicationRepo.FindByApplicationID(tx, applicationID)
	if err != nil {
		return handleApplicationError(err)
	}

	if !reviewer.owns(application.AdminEmail) {
		logger.CtxWarn(ctx, "Admin tried to decide another admin's application",
			"application_id", applicationID,
			"admin_email", application.AdminEmail,
			"reviewer_email", reviewer.Email,
		)
		return apperrors.ErrInsufficientPermissions
	}

	if !application.Status.CanTransitionTo(next) {
		return apperrors.ErrInvalidStatus("application",
			fmt.Sprintf("Application %s is %s and cannot become %s", applicationID, application.Status, next))
	}

	if err := s.applicationRepo.UpdateStatus(tx, applicationID, next, reason); err != nil {
		return handleApplicationError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Application status changed",
		"application_id", applicationID,
		"from", application.Status,
		"to", next,
		"reviewer_id", reviewer.ID,
	)
	s.stats.Invalidate(ctx, application.AdminEmail)
	return nil
}

func (s *applicationService) GetApplication(ctx context.Context, db *gorm.DB, applicationID string) (*models.Application, error) {
	application, err := s.applicationRepo.FindByApplicationID(db.WithContext(ctx), applicationID)
	if err != nil {
		return nil, handleApplicationError(err)
	}
	return application, nil
}

func (s *applicationService) ListAdminApplications(ctx context.Context, db *gorm.DB, adminEmail string) ([]dto.ApplicationSummary, error) {
	applications, err := s.applicationRepo.ListByAdminEmail(db.WithContext(ctx), adminEmail)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	summaries := make([]dto.ApplicationSummary, 0, len(applications))
	for _, a := range applications {
		summaries = append(summaries, dto.ApplicationSummary{
			ApplicationID:  a.ApplicationID,
			UserID:         a.UserID,
			PolicyID:       a.PolicyID,
			ApplicantName:  a.FirstName + " " + a.LastName,
			Email:          a.Email,
			Phone:          a.Phone,
			CoverageAmount: a.CoverageAmount,
			Status:         a.Status,
			AdminEmail:     a.AdminEmail,
			SubmittedAt:    a.SubmittedAt,
		})
	}
	return summaries, nil
}

func (s *applicationService) ListUserApplications(ctx context.Context, db *gorm.DB, userID string) ([]dto.UserApplication, error) {
	db = db.WithContext(ctx)
	applications, err := s.applicationRepo.ListByUserID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	policyIDs := make([]string, 0, len(applications))
	for _, a := range applications {
		policyIDs = append(policyIDs, a.PolicyID)
	}

	// Enrichment is best-effort: a failed lookup still returns the applications.
	byID := make(map[string]models.Policy)
	policies, err := s.policyRepo.FindByIDs(db, policyIDs)
	if err != nil {
		logger.CtxWithError(ctx, "Failed to load policies for user applications", err, "user_id", userID)
	}
	for _, p := range policies {
		byID[p.ID] = p
	}

	result := make([]dto.UserApplication, 0, len(applications))
	for _, a := range applications {
		item := dto.UserApplication{Application: a}
		if p, ok := byID[a.PolicyID]; ok {
			item.PolicyName = p.Name
			item.PolicyPremium = p.Premium
		}
		result = append(result, item)
	}
	return result, nil
}

// resolveAdminEmail copies the policy owner's email onto a new record.
// A missing policy or owner yields an empty email, not an error.
func resolveAdminEmail(ctx context.Context, db *gorm.DB, policyRepo repositories.PolicyRepository, policyID string) (string, error) {
	policy, err := policyRepo.FindByIDWithOwner(db, policyID)
	if err != nil {
		if errors.Is(err, repositories.ErrPolicyNotFound) {
			logger.CtxWarn(ctx, "Policy not found, admin email left empty", "policy_id", policyID)
			return "", nil
		}
		return "", err
	}
	if policy.Owner == nil {
		logger.CtxWarn(ctx, "Policy has no owner, admin email left empty", "policy_id", policyID)
		return "", nil
	}
	return policy.Owner.Email, nil
}

func handleApplicationError(err error) error {
	if errors.Is(err, repositories.ErrApplicationNotFound) {
		return apperrors.ErrApplicationNotFound
	}
	return apperrors.InternalError(err)
}
