package handlers

import (
	"net/http"

	"insurance_backend/internal/services"
	"insurance_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin/dashboard")
	admin.Use(h.RequireAdmin()...)
	{
		admin.GET("", h.GetDashboard)
	}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var query dto.AdminEmailQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	adminEmail, ok := h.ResolveAdminEmail(c, query.AdminEmail)
	if !ok {
		return
	}

	stats, err := h.dashboardService.GetDashboard(c.Request.Context(), h.GetDB(c), adminEmail)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
