package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/joefazee/crud/internal/deps"
	"github.com/joefazee/crud/internal/logger"
	"github.com/joefazee/crud/internal/sanitizer"
)

func TestMounter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	container := deps.NewContainer(nil, deps.MemoryStore, nil, sanitizer.NewHTMLStripper(), logger.NewNullLogger())
	container.RegisterService("greeting", "hello")

	var seen *deps.Container
	mount := func(r *gin.RouterGroup, c *deps.Container) {
		seen = c
		r.GET("/greet", func(ctx *gin.Context) {
			ctx.String(http.StatusOK, c.GetService("greeting").(string))
		})
	}

	tagged := func(c *gin.Context) {
		c.Header("X-Group", "admin")
		c.Next()
	}

	r := gin.New()
	rg := NewMounter(container, "/api/v1").Public(r)
	rg.Mount(mount)
	rg.Group("/admin", tagged).Mount(mount)

	assert.Same(t, container, seen)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/greet", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello", w.Body.String())
	assert.Empty(t, w.Header().Get("X-Group"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/greet", nil))
	assert.Equal(t, "admin", w.Header().Get("X-Group"))
}
