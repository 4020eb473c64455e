package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"greenbasket-be/internal/user"
	"greenbasket-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", RequireAuth(), func(c *gin.Context) {
		id, _ := utils.GetUserIDFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	r.GET("/admin", RequireAuth(), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newAuthRouter()

	t.Run("Missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Valid token", func(t *testing.T) {
		token, err := user.GenerateJWT(7, "USER", "a@b.com")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":7`)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newAuthRouter()

	t.Run("Non-admin forbidden", func(t *testing.T) {
		token, err := user.GenerateJWT(7, "USER", "a@b.com")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Admin allowed", func(t *testing.T) {
		token, err := user.GenerateJWT(1, "ADMIN", "admin@b.com")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Anonymous callers keyed by IP", func(t *testing.T) {
		r := gin.New()
		r.POST("/login", RateLimit("/login"), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		var last int
		for i := 0; i < burstStrict+1; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = "10.0.0.9:1234"
			r.ServeHTTP(w, req)
			last = w.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, last)
	})

	t.Run("Authenticated callers share one bucket across IPs", func(t *testing.T) {
		identify := func(c *gin.Context) {
			ctx := utils.SetUserContext(c.Request.Context(), 31, "a@b.com", "USER")
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		}

		r := gin.New()
		r.POST("/checkout", identify, RateLimit("/checkout"), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		var last int
		for i := 0; i < burstStrict+1; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
			// Rotating addresses must not reset the quota.
			req.RemoteAddr = fmt.Sprintf("10.0.1.%d:1234", i)
			r.ServeHTTP(w, req)
			last = w.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, last)
	})
}

func TestExtractToken(t *testing.T) {
	t.Run("Cookie preferred", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie_token"})
		req.Header.Set("Authorization", "Bearer header_token")
		assert.Equal(t, "cookie_token", extractToken(req))
	})

	t.Run("Header fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer header_token")
		assert.Equal(t, "header_token", extractToken(req))
	})

	t.Run("Malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic user:pass")
		assert.Empty(t, extractToken(req))
	})
}
