package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"recruitdash/services"
	"recruitdash/utils"
)

// RequireRecruiter gates the dashboard endpoints: a valid session token is
// required and student accounts are refused. The token rides either in the
// Authorization header or the session cookie set by the login flow.
func RequireRecruiter(jwtService *services.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.UnauthorizedError(c, "Authentication required")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.UnauthorizedError(c, "Invalid or expired session")
			c.Abort()
			return
		}

		if claims.IsStudent() {
			utils.ForbiddenError(c, "Access Denied")
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("userType", claims.UserType)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("PracSession"); err == nil {
		return cookie
	}
	return ""
}
