package handlers

import (
	"net/http"

	"insurance_backend/internal/services"
	"insurance_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ClaimHandler struct {
	*BaseHandler
	claimService services.ClaimService
}

func NewClaimHandler(base *BaseHandler, claimService services.ClaimService) *ClaimHandler {
	return &ClaimHandler{
		BaseHandler:  base,
		claimService: claimService,
	}
}

func (h *ClaimHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/submit-claim", h.SubmitClaim)
	r.GET("/claims/:claimId", h.GetClaim)
	r.GET("/user-claims", h.ListUserClaims)

	admin := r.Group("/admin/claims")
	admin.Use(h.RequireAdmin()...)
	{
		admin.GET("", h.ListAdminClaims)
		admin.PUT("", h.UpdateClaim)
	}
}

// SubmitClaim godoc
// @Summary Submit a claim
// @Tags claims
// @Accept json
// @Produce json
// @Param claim body dto.CreateClaimRequest true "Claim"
// @Success 201 {object} dto.CreateClaimResponse
// @Failure 400 {object} apperrors.ErrorResponse "No documents or bad amount"
// @Router /submit-claim [post]
func (h *ClaimHandler) SubmitClaim(c *gin.Context) {
	var req dto.CreateClaimRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	res, err := h.claimService.CreateClaim(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// GetClaim godoc
// @Summary Get a claim
// @Tags claims
// @Produce json
// @Param claimId path string true "Claim ID (CL-...)"
// @Success 200 {object} models.Claim
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /claims/{claimId} [get]
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	claim, err := h.claimService.GetClaim(c.Request.Context(), h.GetDB(c), c.Param("claimId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, claim)
}

// ListUserClaims godoc
// @Summary List a user's claims
// @Tags claims
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {object} dto.ClaimListResponse
// @Failure 400 {object} apperrors.ErrorResponse "Missing userId"
// @Router /user-claims [get]
func (h *ClaimHandler) ListUserClaims(c *gin.Context) {
	var query dto.UserIDQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	claims, err := h.claimService.ListUserClaims(c.Request.Context(), h.GetDB(c), query.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClaimListResponse{Claims: claims})
}

// ListAdminClaims godoc
// @Summary List claims filed under an admin
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param adminEmail query string false "Defaults to the caller"
// @Success 200 {object} dto.ClaimListResponse
// @Failure 403 {object} apperrors.ErrorResponse "Another admin's email"
// @Router /admin/claims [get]
func (h *ClaimHandler) ListAdminClaims(c *gin.Context) {
	var query dto.AdminEmailQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	adminEmail, ok := h.ResolveAdminEmail(c, query.AdminEmail)
	if !ok {
		return
	}

	claims, err := h.claimService.ListAdminClaims(c.Request.Context(), h.GetDB(c), adminEmail)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClaimListResponse{Claims: claims})
}

// UpdateClaim godoc
// @Summary Review a claim
// @Description Omitted reviewNotes keep the stored notes. reviewerId must be the caller's admin id.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param review body dto.UpdateClaimRequest true "Review"
// @Success 200 {object} dto.UpdateClaimResponse
// @Failure 403 {object} apperrors.ErrorResponse "Another reviewer or another admin's claim"
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "Transition not allowed"
// @Router /admin/claims [put]
func (h *ClaimHandler) UpdateClaim(c *gin.Context) {
	var req dto.UpdateClaimRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	claim, err := h.claimService.ReviewClaim(c.Request.Context(), h.GetDB(c), h.CurrentReviewer(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpdateClaimResponse{Success: true, Claim: claim})
}
