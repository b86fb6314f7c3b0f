package handlers

import (
	"net/http"

	"insurance_backend/internal/middleware"
	"insurance_backend/internal/services"
	"insurance_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	*BaseHandler
	accountService services.AccountService
}

func NewAccountHandler(base *BaseHandler, accountService services.AccountService) *AccountHandler {
	return &AccountHandler{
		BaseHandler:    base,
		accountService: accountService,
	}
}

func (h *AccountHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/users/register", h.RegisterUser)
	r.POST("/admins/register", h.RegisterAdmin)

	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.GET("/me", h.RequireAuth(), h.Me)
	}
}

func (h *AccountHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.accountService.RegisterUser(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AccountHandler) RegisterAdmin(c *gin.Context) {
	var req dto.RegisterAdminRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	admin, err := h.accountService.RegisterAdmin(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"admin": admin})
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	res, err := h.accountService.Login(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// Me echoes the identity carried by the bearer token.
func (h *AccountHandler) Me(c *gin.Context) {
	subjectID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subjectId": subjectID,
		"email":     middleware.GetEmail(c),
		"role":      middleware.GetRole(c),
	})
}
