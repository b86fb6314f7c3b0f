package middleware

import (
	"strings"

	"insurance_backend/internal/auth"
	"insurance_backend/internal/logger"
	"insurance_backend/internal/models"
	"insurance_backend/pkg/apperrors"
	"insurance_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware parses the bearer token and stores the caller's identity
// on the gin context and the request context.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		claims, err := tokens.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken.WithError(err))
			return
		}

		c.Set(contextkeys.SubjectIDKey, claims.SubjectID())
		c.Set(contextkeys.EmailKey, claims.Email)
		c.Set(contextkeys.RoleKey, models.AccountRole(claims.Role))
		c.Request = c.Request.WithContext(logger.WithSubject(c.Request.Context(), claims.SubjectID(), claims.Role))
		c.Next()
	}
}

// RoleMiddleware lets the request through only for the given role.
func RoleMiddleware(requiredRole models.AccountRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != requiredRole {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}

func GetSubjectID(c *gin.Context) string {
	return c.GetString(contextkeys.SubjectIDKey)
}

func GetEmail(c *gin.Context) string {
	return c.GetString(contextkeys.EmailKey)
}

func GetRole(c *gin.Context) models.AccountRole {
	roleVal, exists := c.Get(contextkeys.RoleKey)
	if !exists {
		return ""
	}
	role, _ := roleVal.(models.AccountRole)
	return role
}
