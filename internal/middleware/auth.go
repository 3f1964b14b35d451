package middleware

import (
	"net/http"
	"strings"

	"digipasal-be/internal/user"

	"github.com/gin-gonic/gin"
)

const authUserKey = "authUser"

// AuthUser is the session identity carried through the request after a
// guard passes.
type AuthUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// ExtractAccessToken reads the session token from the access_token
// cookie, falling back to the Authorization header.
func ExtractAccessToken(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil {
		if cookie.Value != "" {
			return cookie.Value
		}
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

func redirectToLogin(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":    "login_required",
		"redirect": "/login",
	})
}

// parseAuthUser resolves the request's session identity. Any failure
// (missing token, malformed token, bad signature) degrades to
// logged-out, never to an error.
func parseAuthUser(c *gin.Context) (AuthUser, bool) {
	token := ExtractAccessToken(c.Request)
	if token == "" {
		return AuthUser{}, false
	}

	claims, err := user.ParseJWT(token)
	if err != nil {
		return AuthUser{}, false
	}

	return AuthUser{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	}, true
}

// RequireUser gates a route behind a logged-in session.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := parseAuthUser(c)
		if !ok {
			redirectToLogin(c)
			return
		}

		c.Set(authUserKey, u)
		c.Next()
	}
}

// RequireAdmin gates a route behind the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := parseAuthUser(c)
		if !ok || u.Role != string(user.RoleAdmin) {
			redirectToLogin(c)
			return
		}

		c.Set(authUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the identity stored by a guard.
func CurrentUser(c *gin.Context) (AuthUser, bool) {
	v, ok := c.Get(authUserKey)
	if !ok {
		return AuthUser{}, false
	}
	u, ok := v.(AuthUser)
	return u, ok
}
