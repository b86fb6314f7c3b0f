package handlers

import (
	"fmt"
	"strings"

	"insurance_backend/internal/auth"
	"insurance_backend/internal/logger"
	"insurance_backend/internal/middleware"
	"insurance_backend/internal/models"
	"insurance_backend/internal/services"
	"insurance_backend/internal/validator"
	"insurance_backend/pkg/apperrors"
	"insurance_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ============================================================================
// 1. Base handler
// ============================================================================

type BaseHandler struct {
	validator *validator.Validator
	tokens    *auth.TokenManager
}

func NewBaseHandler(v *validator.Validator, tokens *auth.TokenManager) *BaseHandler {
	return &BaseHandler{
		validator: v,
		tokens:    tokens,
	}
}

// RequireAuth returns the bearer-token middleware bound to this handler's
// token manager.
func (h *BaseHandler) RequireAuth() gin.HandlerFunc {
	return middleware.AuthMiddleware(h.tokens)
}

// RequireAdmin guards a group for authenticated admins.
func (h *BaseHandler) RequireAdmin() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		middleware.AuthMiddleware(h.tokens),
		middleware.RoleMiddleware(models.RoleAdmin),
	}
}

// ============================================================================
// 2. Database from context
// ============================================================================

// GetDB returns the *gorm.DB (pool or transaction) placed by DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db
}

// ============================================================================
// 3. Binding and validation
// ============================================================================

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}

	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// ============================================================================
// 4. Errors
// ============================================================================

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// ============================================================================
// 5. Caller identity
// ============================================================================

func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (string, bool) {
	subjectID := middleware.GetSubjectID(c)
	if subjectID == "" {
		logger.CtxWarn(c.Request.Context(), "Unauthorized access: subject not found in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return "", false
	}
	return subjectID, true
}

// CurrentReviewer identifies the admin behind a request that passed
// RequireAdmin.
func (h *BaseHandler) CurrentReviewer(c *gin.Context) services.Reviewer {
	return services.Reviewer{
		ID:    middleware.GetSubjectID(c),
		Email: strings.ToLower(middleware.GetEmail(c)),
	}
}

// ResolveAdminEmail picks the admin whose records are requested. An empty
// value means the caller; another admin's email is refused.
func (h *BaseHandler) ResolveAdminEmail(c *gin.Context, requested string) (string, bool) {
	caller := strings.ToLower(middleware.GetEmail(c))
	requested = strings.ToLower(strings.TrimSpace(requested))

	if requested == "" {
		return caller, true
	}
	if requested != caller {
		logger.CtxWarn(c.Request.Context(), "Admin requested another admin's records",
			"requested", requested,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
		return "", false
	}
	return requested, true
}
