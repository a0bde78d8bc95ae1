package delivery

import (
	"errors"
	"net/http"

	authdto "replypilot-backend/internal/auth/dto"
	"replypilot-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "session"

var errNoSession = errors.New("no session cookie")

// PageAuthMiddleware gates HTML pages; unauthenticated requests are sent to
// the login page
func PageAuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := sessionClaims(c, authUsecase)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Next()
	}
}

// APIAuthMiddleware gates JSON endpoints; unauthenticated requests get a 401
func APIAuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := sessionClaims(c, authUsecase)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Next()
	}
}

func sessionClaims(c *gin.Context, authUsecase usecase.AuthUsecase) (*authdto.SessionClaims, error) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie == "" {
		return nil, errNoSession
	}
	return authUsecase.ValidateSession(cookie)
}
