package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORSHeaders(t *testing.T) {
	r := gin.New()
	r.GET("/x", CORS("http://front.example", "GET, OPTIONS"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, "http://front.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestOPTIONSAnsweredBeforeAuth(t *testing.T) {
	// The preflight must succeed with no Authorization header present.
	auth := NewAuthService("test-secret", time.Hour)
	r := gin.New()
	r.OPTIONS("/x", CORS("http://front.example", "GET, OPTIONS"))
	r.GET("/x", CORS("http://front.example", "GET, OPTIONS"), Authentication(auth), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/x", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "http://front.example", w.Header().Get("Access-Control-Allow-Origin"))
}
