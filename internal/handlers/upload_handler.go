package handlers

import (
	"net/http"

	"insurance_backend/internal/models"
	"insurance_backend/internal/services"
	"insurance_backend/internal/services/dto"
	"insurance_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	maxMultipartMemory = 32 << 20
	uploadFolder       = "documents"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	uploads := r.Group("/upload")
	{
		uploads.POST("", h.UploadFile)
		uploads.POST("/multi", h.UploadMultipleFiles)
		uploads.POST("/application", h.UploadApplicationDocuments)
	}
}

// UploadFile godoc
// @Summary Upload one document
// @Description Stores the "file" part and returns its document reference.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} apperrors.ErrorResponse "No file"
// @Failure 413 {object} apperrors.ErrorResponse
// @Failure 415 {object} apperrors.ErrorResponse
// @Router /upload [post]
func (h *UploadHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrNoFiles)
		return
	}

	stored, err := h.uploadService.UploadFile(c.Request.Context(), uploadFolder, fileHeader)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{Document: stored.DocumentRef})
}

// UploadMultipleFiles godoc
// @Summary Upload several documents
// @Description Stores every "files" part; one bad file fails the batch and nothing is kept.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Documents"
// @Success 201 {object} dto.MultiUploadResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 413 {object} apperrors.ErrorResponse
// @Failure 415 {object} apperrors.ErrorResponse
// @Router /upload/multi [post]
func (h *UploadHandler) UploadMultipleFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("failed to parse form: "+err.Error()))
		return
	}

	stored, err := h.uploadService.UploadFiles(c.Request.Context(), uploadFolder, form.File["files"])
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	refs := make([]models.DocumentRef, 0, len(stored))
	for _, f := range stored {
		refs = append(refs, f.DocumentRef)
	}
	c.JSON(http.StatusCreated, dto.MultiUploadResponse{Documents: refs})
}

// UploadApplicationDocuments godoc
// @Summary Upload application documents
// @Description Fills the identification, incomeProof and additional slots in one request.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param identification formData file true "Identification"
// @Param incomeProof formData file true "Income proof"
// @Param additional formData file false "Additional documents"
// @Success 201 {object} dto.ApplicationDocumentsResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 415 {object} apperrors.ErrorResponse
// @Router /upload/application [post]
func (h *UploadHandler) UploadApplicationDocuments(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("failed to parse form: "+err.Error()))
		return
	}

	docs, err := h.uploadService.UploadApplicationDocuments(c.Request.Context(), form)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ApplicationDocumentsResponse{Documents: *docs})
}
