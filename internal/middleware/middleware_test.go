package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"digipasal-be/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardedRouter(guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", guard, func(c *gin.Context) {
		u, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"user_id": u.ID, "role": u.Role})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("NoToken", func(t *testing.T) {
		w := doRequest(guardedRouter(RequireUser()), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "/login")
	})

	t.Run("MalformedToken", func(t *testing.T) {
		// Garbage in the session slot degrades to logged-out, not a crash.
		assert.NotPanics(t, func() {
			w := doRequest(guardedRouter(RequireUser()), "{definitely-not-a-jwt}")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "/login")
		})
	})

	t.Run("ValidToken", func(t *testing.T) {
		token, err := user.GenerateJWT("u-1", "Ram", "ram@example.com", "user")
		require.NoError(t, err)

		w := doRequest(guardedRouter(RequireUser()), token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "u-1")
	})

	t.Run("TokenFromCookie", func(t *testing.T) {
		token, err := user.GenerateJWT("u-1", "Ram", "ram@example.com", "user")
		require.NoError(t, err)

		r := guardedRouter(RequireUser())
		req := httptest.NewRequest("GET", "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("NoToken", func(t *testing.T) {
		w := doRequest(guardedRouter(RequireAdmin()), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MalformedToken", func(t *testing.T) {
		w := doRequest(guardedRouter(RequireAdmin()), "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "/login")
	})

	t.Run("NonAdminRole", func(t *testing.T) {
		token, err := user.GenerateJWT("u-1", "Ram", "ram@example.com", "user")
		require.NoError(t, err)

		w := doRequest(guardedRouter(RequireAdmin()), token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("AdminRole", func(t *testing.T) {
		token, err := user.GenerateJWT("a-1", "Sita", "sita@example.com", "admin")
		require.NoError(t, err)

		w := doRequest(guardedRouter(RequireAdmin()), token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "admin")
	})
}

func TestExtractAccessToken(t *testing.T) {
	t.Run("CookiePreferred", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
		req.Header.Set("Authorization", "Bearer header-token")
		assert.Equal(t, "cookie-token", ExtractAccessToken(req))
	})

	t.Run("HeaderFallback", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer header-token")
		assert.Equal(t, "header-token", ExtractAccessToken(req))
	})

	t.Run("Neither", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		assert.Equal(t, "", ExtractAccessToken(req))
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit())
	r.POST("/api/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	// The strict tier allows a small burst, then rejects.
	var lastCode int
	for i := 0; i < burstStrict+2; i++ {
		req := httptest.NewRequest("POST", "/api/login", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		lastCode = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}

func TestLogging_SetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logging())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Generates ID when missing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("Preserves existing ID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-Request-ID", "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	})
}
