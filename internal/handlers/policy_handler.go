package handlers

import (
	"net/http"

	"insurance_backend/internal/models"
	"insurance_backend/internal/services"
	"insurance_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PolicyHandler struct {
	*BaseHandler
	policyService services.PolicyService
}

func NewPolicyHandler(base *BaseHandler, policyService services.PolicyService) *PolicyHandler {
	return &PolicyHandler{
		BaseHandler:   base,
		policyService: policyService,
	}
}

func (h *PolicyHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public catalogue
	public := r.Group("/policies")
	{
		public.GET("", h.ListPolicies)
		public.GET("/:policyId", h.GetPolicy)
	}

	// Admin only
	admin := r.Group("/admin/policies")
	admin.Use(h.RequireAdmin()...)
	{
		admin.GET("", h.ListMyPolicies)
		admin.POST("", h.CreatePolicy)
		admin.PUT("/:policyId", h.UpdatePolicy)
		admin.PUT("/:policyId/status", h.UpdatePolicyStatus)
		admin.PUT("/:policyId/owner", h.ReassignOwner)
	}
}

func (h *PolicyHandler) ListPolicies(c *gin.Context) {
	var query dto.PolicyListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	policies, err := h.policyService.ListPolicies(c.Request.Context(), h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PolicyListResponse{Policies: policies})
}

func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	policy, err := h.policyService.GetPolicy(c.Request.Context(), h.GetDB(c), c.Param("policyId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, policy)
}

func (h *PolicyHandler) ListMyPolicies(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	policies, err := h.policyService.ListAdminPolicies(c.Request.Context(), h.GetDB(c), adminID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PolicyListResponse{Policies: policies})
}

func (h *PolicyHandler) CreatePolicy(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePolicyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	policy, err := h.policyService.CreatePolicy(c.Request.Context(), h.GetDB(c), adminID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, policy)
}

func (h *PolicyHandler) UpdatePolicy(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePolicyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	policy, err := h.policyService.UpdatePolicy(c.Request.Context(), h.GetDB(c), adminID, c.Param("policyId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, policy)
}

func (h *PolicyHandler) UpdatePolicyStatus(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePolicyStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	err := h.policyService.UpdatePolicyStatus(c.Request.Context(), h.GetDB(c), adminID, c.Param("policyId"), models.PolicyStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// ReassignOwner hands the policy to another admin. Applications and claims
// already filed keep the email of the previous owner.
func (h *PolicyHandler) ReassignOwner(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReassignPolicyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.policyService.ReassignOwner(c.Request.Context(), h.GetDB(c), adminID, c.Param("policyId"), req.AdminID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
