package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/proctorview/proctorview/internal/auth"
	"github.com/proctorview/proctorview/internal/dto"
	"github.com/proctorview/proctorview/internal/repository"
)

// ContextAdminKey is where RequireAuth stores the authenticated admin.
const ContextAdminKey = "admin"

// AuthenticatedAdmin is the caller identity attached to the request context.
type AuthenticatedAdmin struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RequireAuth verifies the bearer token and resolves the admin it names. The
// admin must still exist; a token for a removed account is rejected.
func RequireAuth(tokens *auth.JWTManager, adminRepo repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Code: "unauthorized", Error: "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Code: "unauthorized", Error: "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Code: "unauthorized", Error: "Invalid or expired token"})
			return
		}

		admin, err := adminRepo.FindByID(c.Request.Context(), claims.AdminID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Code: "unauthorized", Error: "Admin not found"})
			return
		}

		c.Set(ContextAdminKey, AuthenticatedAdmin{ID: admin.ID, Name: admin.Name, Email: admin.Email})
		c.Next()
	}
}

// CurrentAdmin fetches the identity stored by RequireAuth.
func CurrentAdmin(c *gin.Context) (AuthenticatedAdmin, bool) {
	value, exists := c.Get(ContextAdminKey)
	if !exists {
		return AuthenticatedAdmin{}, false
	}
	admin, ok := value.(AuthenticatedAdmin)
	return admin, ok
}
