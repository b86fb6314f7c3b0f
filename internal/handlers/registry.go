package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AccountHandler     *AccountHandler
	PolicyHandler      *PolicyHandler
	ApplicationHandler *ApplicationHandler
	ClaimHandler       *ClaimHandler
	UploadHandler      *UploadHandler
	VaultHandler       *VaultHandler
	DashboardHandler   *DashboardHandler
	HealthHandler      *HealthHandler
}
