package handlers

import (
	"net/http"

	"insurance_backend/internal/services"
	"insurance_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/applications", h.CreateApplication)
	r.GET("/applications/:applicationId", h.GetApplication)
	r.GET("/user-applications", h.ListUserApplications)

	admin := r.Group("")
	admin.Use(h.RequireAdmin()...)
	{
		admin.POST("/approve-application", h.ApproveApplication)
		admin.POST("/reject-application", h.RejectApplication)
		admin.GET("/admin/applications", h.ListAdminApplications)
	}
}

// CreateApplication godoc
// @Summary Submit an application
// @Description Both identification and incomeProof must carry a url. The owning admin's email is copied from the policy.
// @Tags applications
// @Accept json
// @Produce json
// @Param application body dto.CreateApplicationRequest true "Application"
// @Success 201 {object} dto.CreateApplicationResponse
// @Failure 400 {object} apperrors.ErrorResponse "Missing required documents"
// @Router /applications [post]
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	res, err := h.applicationService.CreateApplication(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// GetApplication godoc
// @Summary Get an application
// @Tags applications
// @Produce json
// @Param applicationId path string true "Application ID (APP-...)"
// @Success 200 {object} models.Application
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /applications/{applicationId} [get]
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	application, err := h.applicationService.GetApplication(c.Request.Context(), h.GetDB(c), c.Param("applicationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

// ListUserApplications godoc
// @Summary List a user's applications
// @Description Each application carries its policy's name and premium when the policy still exists.
// @Tags applications
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {object} dto.UserApplicationsResponse
// @Failure 400 {object} apperrors.ErrorResponse "Missing userId"
// @Router /user-applications [get]
func (h *ApplicationHandler) ListUserApplications(c *gin.Context) {
	var query dto.UserIDQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	applications, err := h.applicationService.ListUserApplications(c.Request.Context(), h.GetDB(c), query.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserApplicationsResponse{Applications: applications})
}

// ApproveApplication godoc
// @Summary Approve an application
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ApproveApplicationRequest true "Application ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} apperrors.ErrorResponse "Filed under another admin"
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "Transition not allowed"
// @Router /approve-application [post]
func (h *ApplicationHandler) ApproveApplication(c *gin.Context) {
	var req dto.ApproveApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.applicationService.ApproveApplication(c.Request.Context(), h.GetDB(c), h.CurrentReviewer(c), req.ApplicationID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// RejectApplication godoc
// @Summary Reject an application
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RejectApplicationRequest true "Application ID and reason"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} apperrors.ErrorResponse "Filed under another admin"
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "Transition not allowed"
// @Router /reject-application [post]
func (h *ApplicationHandler) RejectApplication(c *gin.Context) {
	var req dto.RejectApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.applicationService.RejectApplication(c.Request.Context(), h.GetDB(c), h.CurrentReviewer(c), req.ApplicationID, req.RejectionReason); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// ListAdminApplications godoc
// @Summary List applications filed under an admin
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param adminEmail query string false "Defaults to the caller"
// @Success 200 {object} dto.AdminApplicationsResponse
// @Failure 403 {object} apperrors.ErrorResponse "Another admin's email"
// @Router /admin/applications [get]
func (h *ApplicationHandler) ListAdminApplications(c *gin.Context) {
	var query dto.AdminEmailQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	adminEmail, ok := h.ResolveAdminEmail(c, query.AdminEmail)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListAdminApplications(c.Request.Context(), h.GetDB(c), adminEmail)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AdminApplicationsResponse{Applications: applications})
}
