package handlers

import (
	"net/http"

	"insurance_backend/internal/services"
	"insurance_backend/internal/services/dto"
	"insurance_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type VaultHandler struct {
	*BaseHandler
	vaultService services.VaultService
}

func NewVaultHandler(base *BaseHandler, vaultService services.VaultService) *VaultHandler {
	return &VaultHandler{
		BaseHandler:  base,
		vaultService: vaultService,
	}
}

func (h *VaultHandler) RegisterRoutes(r *gin.RouterGroup) {
	vault := r.Group("/vault")
	vault.Use(h.RequireAuth())
	{
		vault.GET("", h.ListDocuments)
		vault.POST("", h.UploadDocument)
		vault.DELETE("/:documentId", h.DeleteDocument)
	}
}

func (h *VaultHandler) ListDocuments(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	docs, err := h.vaultService.ListDocuments(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VaultListResponse{Documents: docs})
}

// UploadDocument takes a "file" part and an optional "category" field.
func (h *VaultHandler) UploadDocument(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrNoFiles)
		return
	}

	doc, err := h.vaultService.UploadDocument(c.Request.Context(), h.GetDB(c), userID, c.PostForm("category"), fileHeader)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.VaultUploadResponse{Document: doc})
}

func (h *VaultHandler) DeleteDocument(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.vaultService.DeleteDocument(c.Request.Context(), h.GetDB(c), userID, c.Param("documentId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
