package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/harryhartz/bimoodtracker/internal"
)

func newGuardedRouter(provider IdentityProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(provider, internal.NopLogger{}))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUser(c).ID})
	})
	return r
}

func TestMiddlewareMissingHeader(t *testing.T) {
	r := newGuardedRouter(&StaticIdentityProvider{User: &internal.User{ID: 1}})

	req, _ := http.NewRequest("GET", "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestMiddlewareMalformedHeader(t *testing.T) {
	r := newGuardedRouter(&StaticIdentityProvider{User: &internal.User{ID: 1}})

	for _, header := range []string{"Basic abc", "Bearer", "Bearer   "} {
		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, 401, w.Code, "header %q", header)
	}
}

func TestMiddlewareAttachesIdentity(t *testing.T) {
	r := newGuardedRouter(&StaticIdentityProvider{User: &internal.User{ID: 7, Name: "Demo"}})

	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer anything")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"id":7`)
}

func TestMiddlewareEmptyStaticProvider(t *testing.T) {
	r := newGuardedRouter(&StaticIdentityProvider{})

	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer anything")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 401, w.Code)
}
