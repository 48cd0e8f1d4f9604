package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lin-hy/gangcheng-bnb/internal/model"
	"github.com/lin-hy/gangcheng-bnb/internal/service/domain"
)

const (
	// SessionCookie is the name of the login session cookie.
	SessionCookie = "session_token"

	userKey = "current_user"
)

// Identify resolves the session cookie to a user and stores it on the
// context. Anonymous or unresolvable sessions pass through untouched;
// gating happens in RequireAuth/RequireAdmin.
func Identify(auth domain.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}
		user, err := auth.CurrentUser(token)
		if err != nil {
			c.Next()
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by Identify, if any.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin distinguishes the anonymous case (401) from an
// authenticated non-admin (403).
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
