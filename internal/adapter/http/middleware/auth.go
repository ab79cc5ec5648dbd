package middleware

import (
	"log"
	"net/http"
	"strings"

	"barbearia_matheus/internal/usecase"
	"barbearia_matheus/pkg"

	"github.com/gin-gonic/gin"
)

// AdminContextKey is where RequireAdmin stores the authenticated admin.
const AdminContextKey = "admin"

// RequireAdmin guards back-office routes. It expects an "Authorization:
// Bearer <token>" header carrying a session token issued by the admin login.
func RequireAdmin(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "MISSING_TOKEN", "Missing bearer token")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		admin, err := auth.ValidateToken(c.Request.Context(), token)
		if err != nil {
			log.Printf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
			abortUnauthorized(c, "INVALID_SESSION", "Session is missing or expired")
			return
		}

		c.Set(AdminContextKey, admin)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	appErr := pkg.NewDomainErrorSimple(code, message, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
