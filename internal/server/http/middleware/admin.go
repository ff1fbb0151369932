package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminVerifier checks a supplied secret against the configured admin password.
type AdminVerifier interface {
	VerifyAdminPassword(password string) error
}

// AdminRequired gates admin endpoints on the admin_password request
// parameter, mirroring how the dashboard passes its secret.
func AdminRequired(verifier AdminVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := verifier.VerifyAdminPassword(c.Query("admin_password")); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Non autorizzato!"})
			return
		}
		c.Next()
	}
}
