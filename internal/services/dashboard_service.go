package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"time"

	"insurance_backend/internal/cache"
	"insurance_backend/internal/logger"
	"insurance_backend/internal/models"
	"insurance_backend/internal/repositories"
	"insurance_backend/internal/services/dto"
	"insurance_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// StatsInvalidator drops cached dashboard stats after a write.
type StatsInvalidator interface {
	Invalidate(ctx context.Context, adminEmail string)
}

type DashboardService interface {
	StatsInvalidator
	GetDashboard(ctx context.Context, db *gorm.DB, adminEmail string) (*dto.DashboardStats, error)
}

type dashboardService struct {
	applicationRepo repositories.ApplicationRepository
	claimRepo       repositories.ClaimRepository
	policyRepo      repositories.PolicyRepository
	accountRepo     repositories.AccountRepository
	cache           cache.Cache
	ttl             time.Duration
	now             func() time.Time
}

func NewDashboardService(
	applicationRepo repositories.ApplicationRepository,
	claimRepo repositories.ClaimRepository,
	policyRepo repositories.PolicyRepository,
	accountRepo repositories.AccountRepository,
	c cache.Cache,
	ttl time.Duration,
) DashboardService {
	if c == nil {
		c = cache.NoopCache{}
	}
	return &dashboardService{
		applicationRepo: applicationRepo,
		claimRepo:       claimRepo,
		policyRepo:      policyRepo,
		accountRepo:     accountRepo,
		cache:           c,
		ttl:             ttl,
		now:             time.Now,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, db *gorm.DB, adminEmail string) (*dto.DashboardStats, error) {
	key := cache.DashboardKey(adminEmail)

	if raw, err := s.cache.Get(ctx, key); err == nil {
		var stats dto.DashboardStats
		if err := json.Unmarshal(raw, &stats); err == nil {
			return &stats, nil
		}
		logger.CtxWarn(ctx, "Discarding unreadable cached dashboard", "admin_email", adminEmail)
	} else if !errors.Is(err, cache.ErrMiss) {
		logger.CtxWithError(ctx, "Dashboard cache read failed", err, "admin_email", adminEmail)
	}

	db = db.WithContext(ctx)
	applications, err := s.applicationRepo.ListByAdminEmail(db, adminEmail)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	claims, err := s.claimRepo.ListByAdminEmail(db, adminEmail)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var policies []models.Policy
	admin, err := s.accountRepo.FindAdminByEmail(db, adminEmail)
	switch {
	case err == nil:
		if policies, err = s.policyRepo.ListByOwner(db, admin.ID); err != nil {
			return nil, apperrors.InternalError(err)
		}
	case errors.Is(err, repositories.ErrAdminNotFound):
		// Records can still carry an email whose admin account is gone.
	default:
		return nil, apperrors.InternalError(err)
	}

	stats := ComputeDashboard(adminEmail, applications, claims, policies, s.now())

	if raw, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
			logger.CtxWithError(ctx, "Dashboard cache write failed", err, "admin_email", adminEmail)
		}
	}
	return stats, nil
}

func (s *dashboardService) Invalidate(ctx context.Context, adminEmail string) {
	if adminEmail == "" {
		return
	}
	if err := s.cache.Delete(ctx, cache.DashboardKey(adminEmail)); err != nil {
		logger.CtxWithError(ctx, "Dashboard cache invalidation failed", err, "admin_email", adminEmail)
	}
}

// ComputeDashboard aggregates already-fetched records of one admin.
// Month buckets use now's calendar month and the one before it.
func ComputeDashboard(adminEmail string, applications []models.Application, claims []models.Claim, policies []models.Policy, now time.Time) *dto.DashboardStats {
	now = now.UTC()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonth := thisMonth.AddDate(0, -1, 0)

	stats := &dto.DashboardStats{AdminEmail: adminEmail, GeneratedAt: now}

	for _, a := range applications {
		stats.Applications.Total++
		switch a.Status {
		case models.ApplicationStatusSubmitted:
			stats.Applications.Submitted++
		case models.ApplicationStatusApproved:
			stats.Applications.Approved++
		case models.ApplicationStatusRejected:
			stats.Applications.Rejected++
		}
		switch monthBucket(a.SubmittedAt, thisMonth, lastMonth) {
		case 0:
			stats.Applications.ThisMonth++
		case -1:
			stats.Applications.LastMonth++
		}
	}
	stats.Applications.ChangePercent = PercentChange(stats.Applications.ThisMonth, stats.Applications.LastMonth)

	var claimed float64
	for _, c := range claims {
		stats.Claims.Total++
		switch c.Status {
		case models.ClaimStatusSubmitted:
			stats.Claims.Submitted++
		case models.ClaimStatusInReview:
			stats.Claims.InReview++
		case models.ClaimStatusApproved:
			stats.Claims.Approved++
		case models.ClaimStatusRejected:
			stats.Claims.Rejected++
		case models.ClaimStatusPaid:
			stats.Claims.Paid++
		}
		if amount, err := strconv.ParseFloat(c.ClaimAmount, 64); err == nil {
			claimed += amount
		}
		switch monthBucket(c.SubmittedAt, thisMonth, lastMonth) {
		case 0:
			stats.Claims.ThisMonth++
		case -1:
			stats.Claims.LastMonth++
		}
	}
	stats.Claims.TotalClaimedAmount = round2(claimed)
	stats.Claims.ChangePercent = PercentChange(stats.Claims.ThisMonth, stats.Claims.LastMonth)

	for _, p := range policies {
		stats.Policies.Total++
		switch p.Status {
		case models.PolicyStatusActive:
			stats.Policies.Active++
		case models.PolicyStatusDraft:
			stats.Policies.Draft++
		case models.PolicyStatusInactive:
			stats.Policies.Inactive++
		}
		stats.Policies.Subscribers += p.Subscribers
		stats.Policies.Revenue += p.Revenue
	}

	if decided := stats.Applications.Approved + stats.Applications.Rejected; decided > 0 {
		stats.ApprovalRate = round2(float64(stats.Applications.Approved) / float64(decided) * 100)
	}
	return stats
}

// PercentChange is (cur-prev)/prev*100. With no previous value it is 100
// when anything happened this period and 0 otherwise.
func PercentChange(cur, prev int) float64 {
	if prev == 0 {
		if cur > 0 {
			return 100
		}
		return 0
	}
	return round2(float64(cur-prev) / float64(prev) * 100)
}

// monthBucket returns 0 for the current month, -1 for the previous one and
// 1 for anything else.
func monthBucket(t, thisMonth, lastMonth time.Time) int {
	t = t.UTC()
	switch {
	case !t.Before(thisMonth):
		return 0
	case !t.Before(lastMonth):
		return -1
	default:
		return 1
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
