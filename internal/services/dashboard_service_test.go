package services_test

import (
	"context"
	"testing"
	"time"

	"insurance_backend/internal/models"
	"insurance_backend/internal/repositories"
	"insurance_backend/internal/services"
	"insurance_backend/internal/services/dto"
	"insurance_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		cur, prev int
		want      float64
	}{
		{cur: 0, prev: 0, want: 0},
		{cur: 3, prev: 0, want: 100},
		{cur: 6, prev: 3, want: 100},
		{cur: 1, prev: 4, want: -75},
		{cur: 2, prev: 3, want: -33.33},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, services.PercentChange(tt.cur, tt.prev), "cur=%d prev=%d", tt.cur, tt.prev)
	}
}

func TestComputeDashboard(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	older := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	apps := []models.Application{
		{Status: models.ApplicationStatusSubmitted, SubmittedAt: thisMonth},
		{Status: models.ApplicationStatusApproved, SubmittedAt: thisMonth},
		{Status: models.ApplicationStatusApproved, SubmittedAt: lastMonth},
		{Status: models.ApplicationStatusApproved, SubmittedAt: older},
		{Status: models.ApplicationStatusRejected, SubmittedAt: lastMonth},
	}
	claims := []models.Claim{
		{Status: models.ClaimStatusSubmitted, ClaimAmount: "1500.00", SubmittedAt: thisMonth},
		{Status: models.ClaimStatusInReview, ClaimAmount: "250.50", SubmittedAt: thisMonth},
		{Status: models.ClaimStatusPaid, ClaimAmount: "99.99", SubmittedAt: older},
	}
	policies := []models.Policy{
		{Status: models.PolicyStatusActive, Subscribers: 10, Revenue: 1000},
		{Status: models.PolicyStatusDraft},
	}

	stats := services.ComputeDashboard("a@acme.com", apps, claims, policies, now)

	assert.Equal(t, 5, stats.Applications.Total)
	assert.Equal(t, 1, stats.Applications.Submitted)
	assert.Equal(t, 3, stats.Applications.Approved)
	assert.Equal(t, 1, stats.Applications.Rejected)
	assert.Equal(t, 2, stats.Applications.ThisMonth)
	assert.Equal(t, 2, stats.Applications.LastMonth)
	assert.Equal(t, 0.0, stats.Applications.ChangePercent)
	assert.Equal(t, 75.0, stats.ApprovalRate)

	assert.Equal(t, 3, stats.Claims.Total)
	assert.Equal(t, 1, stats.Claims.InReview)
	assert.Equal(t, 1, stats.Claims.Paid)
	assert.Equal(t, 1850.49, stats.Claims.TotalClaimedAmount)
	assert.Equal(t, 100.0, stats.Claims.ChangePercent)

	assert.Equal(t, 2, stats.Policies.Total)
	assert.Equal(t, 1, stats.Policies.Active)
	assert.Equal(t, 10, stats.Policies.Subscribers)
}

func TestGetDashboard_CachesUntilInvalidated(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	admin := testutil.SeedAdmin(t, db, "dash@acme.com")
	policy := testutil.SeedPolicy(t, db, admin.ID, "Health Basic")

	memCache := newMemoryCache()
	dashboard := services.NewDashboardService(
		repositories.NewApplicationRepository(),
		repositories.NewClaimRepository(),
		repositories.NewPolicyRepository(),
		repositories.NewAccountRepository(),
		memCache,
		time.Minute,
	)
	apps := newApplicationService(dashboard)

	_, err := apps.CreateApplication(ctx, db, validApplicationRequest("user-1", policy.ID))
	require.NoError(t, err)

	first, err := dashboard.GetDashboard(ctx, db, "dash@acme.com")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Applications.Total)
	assert.Equal(t, 1, first.Policies.Total)

	_, err = dashboard.GetDashboard(ctx, db, "dash@acme.com")
	require.NoError(t, err)
	assert.Equal(t, 1, memCache.hits)

	_, err = apps.CreateApplication(ctx, db, validApplicationRequest("user-2", policy.ID))
	require.NoError(t, err)

	fresh, err := dashboard.GetDashboard(ctx, db, "dash@acme.com")
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.Applications.Total)
	assert.Equal(t, 1, memCache.hits, "write must drop the cached entry")
}

func newDashboardService(c *memoryCache) services.DashboardService {
	return services.NewDashboardService(
		repositories.NewApplicationRepository(),
		repositories.NewClaimRepository(),
		repositories.NewPolicyRepository(),
		repositories.NewAccountRepository(),
		c,
		time.Minute,
	)
}

func TestGetDashboard_PolicyWritesDropCachedStats(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	adminA := testutil.SeedAdmin(t, db, "owner-a@acme.com")
	adminB := testutil.SeedAdmin(t, db, "owner-b@acme.com")
	testutil.SeedPolicy(t, db, adminA.ID, "Health Basic")

	memCache := newMemoryCache()
	dashboard := newDashboardService(memCache)
	policies := services.NewPolicyService(repositories.NewPolicyRepository(), repositories.NewAccountRepository(), dashboard)

	before, err := dashboard.GetDashboard(ctx, db, "owner-a@acme.com")
	require.NoError(t, err)
	assert.Equal(t, 1, before.Policies.Total)

	created, err := policies.CreatePolicy(ctx, db, adminA.ID, &dto.CreatePolicyRequest{
		Name:     "Life Plus",
		Category: "life",
		Status:   string(models.PolicyStatusActive),
	})
	require.NoError(t, err)

	afterCreate, err := dashboard.GetDashboard(ctx, db, "owner-a@acme.com")
	require.NoError(t, err)
	assert.Equal(t, 2, afterCreate.Policies.Total)
	assert.Equal(t, 2, afterCreate.Policies.Active)

	require.NoError(t, policies.UpdatePolicyStatus(ctx, db, adminA.ID, created.ID, models.PolicyStatusInactive))

	afterStatus, err := dashboard.GetDashboard(ctx, db, "owner-a@acme.com")
	require.NoError(t, err)
	assert.Equal(t, 1, afterStatus.Policies.Active)
	assert.Equal(t, 1, afterStatus.Policies.Inactive)

	bBefore, err := dashboard.GetDashboard(ctx, db, "owner-b@acme.com")
	require.NoError(t, err)
	assert.Equal(t, 0, bBefore.Policies.Total)

	require.NoError(t, policies.ReassignOwner(ctx, db, adminA.ID, created.ID, adminB.ID))

	aAfter, err := dashboard.GetDashboard(ctx, db, "owner-a@acme.com")
	require.NoError(t, err)
	assert.Equal(t, 1, aAfter.Policies.Total)

	bAfter, err := dashboard.GetDashboard(ctx, db, "owner-b@acme.com")
	require.NoError(t, err)
	assert.Equal(t, 1, bAfter.Policies.Total)
	assert.Equal(t, 1, bAfter.Policies.Inactive)
	assert.Equal(t, 0, memCache.hits, "every read after a policy write must miss")
}

func TestPolicyService_InvalidatesOwners(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	adminA := testutil.SeedAdmin(t, db, "a@acme.com")
	adminB := testutil.SeedAdmin(t, db, "b@acme.com")
	policy := testutil.SeedPolicy(t, db, adminA.ID, "Health Basic")

	stats := &recordingInvalidator{}
	policies := services.NewPolicyService(repositories.NewPolicyRepository(), repositories.NewAccountRepository(), stats)

	name := "Health Basic Plus"
	_, err := policies.UpdatePolicy(ctx, db, adminA.ID, policy.ID, &dto.UpdatePolicyRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, []string{"a@acme.com"}, stats.emails)

	require.NoError(t, policies.ReassignOwner(ctx, db, adminA.ID, policy.ID, adminB.ID))
	assert.Equal(t, []string{"a@acme.com", "a@acme.com", "b@acme.com"}, stats.emails)

	err = policies.UpdatePolicyStatus(ctx, db, adminA.ID, policy.ID, models.PolicyStatusDraft)
	require.Error(t, err, "previous owner can no longer edit")
	assert.Len(t, stats.emails, 3)
}
