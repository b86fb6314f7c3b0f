package services

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AccountService     AccountService
	PolicyService      PolicyService
	ApplicationService ApplicationService
	ClaimService       ClaimService
	UploadService      UploadService
	VaultService       VaultService
	DashboardService   DashboardService
}
