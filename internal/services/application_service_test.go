package services_test

import (
	"context"
	"testing"

	"insurance_backend/internal/models"
	"insurance_backend/internal/repositories"
	"insurance_backend/internal/services"
	"insurance_backend/internal/testutil"
	"insurance_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplicationService(stats services.StatsInvalidator) services.ApplicationService {
	return services.NewApplicationService(
		repositories.NewApplicationRepository(),
		repositories.NewPolicyRepository(),
		stats,
	)
}

// anyReviewer decides applications filed against unknown policies, which
// carry no owner.
var anyReviewer = services.Reviewer{ID: "admin-1", Email: "admin@acme.com"}

func TestCreateApplication_DenormalizesOwnerEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	admin := testutil.SeedAdmin(t, db, "owner@acme.com")
	policy := testutil.SeedPolicy(t, db, admin.ID, "Health Basic")
	stats := &recordingInvalidator{}
	svc := newApplicationService(stats)

	res, err := svc.CreateApplication(ctx, db, validApplicationRequest("user-1", policy.ID))
	require.NoError(t, err)
	assert.Regexp(t, `^APP-[0-9A-Z]+$`, res.ApplicationID)
	assert.False(t, res.SubmittedOn.IsZero())

	stored, err := svc.GetApplication(ctx, db, res.ApplicationID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusSubmitted, stored.Status)
	assert.Equal(t, "owner@acme.com", stored.AdminEmail)
	assert.Equal(t, "https://cdn.test/id.pdf", stored.Documents.Data().Identification.URL)
	assert.Equal(t, []string{"owner@acme.com"}, stats.emails)
}

func TestCreateApplication_MissingDocumentsRejectedBeforeDatabase(t *testing.T) {
	svc := newApplicationService(&recordingInvalidator{})

	for name, mutate := range map[string]func(r *models.ApplicationDocuments){
		"no identification": func(r *models.ApplicationDocuments) { r.Identification = models.DocumentRef{} },
		"no income proof":   func(r *models.ApplicationDocuments) { r.IncomeProof.URL = "" },
	} {
		t.Run(name, func(t *testing.T) {
			req := validApplicationRequest("user-1", "policy-1")
			mutate(&req.Documents)

			// A nil database proves nothing was queried.
			_, err := svc.CreateApplication(context.Background(), nil, req)
			assert.ErrorIs(t, err, apperrors.ErrMissingRequiredDocuments)
		})
	}
}

func TestCreateApplication_UnknownPolicyLeavesAdminEmailEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newApplicationService(&recordingInvalidator{})

	res, err := svc.CreateApplication(context.Background(), db, validApplicationRequest("user-1", "not-a-policy"))
	require.NoError(t, err)

	stored, err := svc.GetApplication(context.Background(), db, res.ApplicationID)
	require.NoError(t, err)
	assert.Empty(t, stored.AdminEmail)
}

func TestApproveApplication_NotFoundWritesNothing(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newApplicationService(&recordingInvalidator{})

	err := svc.ApproveApplication(context.Background(), db, anyReviewer, "APP-DOESNOTEXIST")
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestApplicationTransitions(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	svc := newApplicationService(&recordingInvalidator{})

	rejected, err := svc.CreateApplication(ctx, db, validApplicationRequest("user-1", "p"))
	require.NoError(t, err)

	require.NoError(t, svc.RejectApplication(ctx, db, anyReviewer, rejected.ApplicationID, "income proof unreadable"))
	require.NoError(t, svc.RejectApplication(ctx, db, anyReviewer, rejected.ApplicationID, "income proof unreadable"))

	got, err := svc.GetApplication(ctx, db, rejected.ApplicationID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, got.Status)
	assert.Equal(t, "income proof unreadable", got.RejectionReason)

	err = svc.ApproveApplication(ctx, db, anyReviewer, rejected.ApplicationID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
	assert.Equal(t, 409, appErr.HTTPCode)

	approved, err := svc.CreateApplication(ctx, db, validApplicationRequest("user-1", "p"))
	require.NoError(t, err)
	require.NoError(t, svc.ApproveApplication(ctx, db, anyReviewer, approved.ApplicationID))
	require.NoError(t, svc.ApproveApplication(ctx, db, anyReviewer, approved.ApplicationID), "approving twice is idempotent")

	err = svc.RejectApplication(ctx, db, anyReviewer, approved.ApplicationID, "changed my mind")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestListUserApplications_EnrichesWithPolicy(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	admin := testutil.SeedAdmin(t, db, "owner@acme.com")
	policy := testutil.SeedPolicy(t, db, admin.ID, "Health Basic")
	svc := newApplicationService(&recordingInvalidator{})

	_, err := svc.CreateApplication(ctx, db, validApplicationRequest("user-1", policy.ID))
	require.NoError(t, err)
	_, err = svc.CreateApplication(ctx, db, validApplicationRequest("user-1", "deleted-policy"))
	require.NoError(t, err)
	_, err = svc.CreateApplication(ctx, db, validApplicationRequest("user-2", policy.ID))
	require.NoError(t, err)

	list, err := svc.ListUserApplications(ctx, db, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)

	byPolicy := map[string]float64{}
	names := map[string]string{}
	for _, a := range list {
		byPolicy[a.PolicyID] = a.PolicyPremium
		names[a.PolicyID] = a.PolicyName
	}
	assert.Equal(t, "Health Basic", names[policy.ID])
	assert.Equal(t, 1200.0, byPolicy[policy.ID])
	assert.Empty(t, names["deleted-policy"])
}

func TestAdminApplications_KeepOwnerAfterReassignment(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	adminA := testutil.SeedAdmin(t, db, "a@acme.com")
	adminB := testutil.SeedAdmin(t, db, "b@acme.com")
	policy := testutil.SeedPolicy(t, db, adminA.ID, "Health Basic")

	apps := newApplicationService(&recordingInvalidator{})
	policies := services.NewPolicyService(repositories.NewPolicyRepository(), repositories.NewAccountRepository(), &recordingInvalidator{})

	res, err := apps.CreateApplication(ctx, db, validApplicationRequest("user-1", policy.ID))
	require.NoError(t, err)

	list, err := apps.ListAdminApplications(ctx, db, "a@acme.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, res.ApplicationID, list[0].ApplicationID)
	assert.Equal(t, "Jane Doe", list[0].ApplicantName)

	require.NoError(t, policies.ReassignOwner(ctx, db, adminA.ID, policy.ID, adminB.ID))

	list, err = apps.ListAdminApplications(ctx, db, "a@acme.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a@acme.com", list[0].AdminEmail)

	list, err = apps.ListAdminApplications(ctx, db, "b@acme.com")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestApplicationDecision_LimitedToOwningAdmin(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	owner := testutil.SeedAdmin(t, db, "owner@acme.com")
	other := testutil.SeedAdmin(t, db, "other@acme.com")
	policy := testutil.SeedPolicy(t, db, owner.ID, "Health Basic")
	svc := newApplicationService(&recordingInvalidator{})

	res, err := svc.CreateApplication(ctx, db, validApplicationRequest("user-1", policy.ID))
	require.NoError(t, err)

	outsider := services.Reviewer{ID: other.ID, Email: other.Email}
	err = svc.ApproveApplication(ctx, db, outsider, res.ApplicationID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
	err = svc.RejectApplication(ctx, db, outsider, res.ApplicationID, "not mine")
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	stored, err := svc.GetApplication(ctx, db, res.ApplicationID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusSubmitted, stored.Status)
	assert.Empty(t, stored.RejectionReason)

	require.NoError(t, svc.ApproveApplication(ctx, db, services.Reviewer{ID: owner.ID, Email: "Owner@Acme.com"}, res.ApplicationID))
}
