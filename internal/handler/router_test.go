//go:build unit

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"residesk/internal/handler/middleware"
)

func performGet(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestAddRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cached route replays the handler body on repeat reads", func(t *testing.T) {
		engine := gin.New()
		listCache := middleware.NewResponseCache(time.Minute)

		handlerCalls := 0
		addRoutes(engine.Group(""), []route{
			{
				Method: http.MethodGet,
				Path:   "/announcements",
				Handler: func(c *gin.Context) {
					handlerCalls++
					c.JSON(http.StatusOK, []gin.H{{"id": "a-1", "title": "Water outage"}})
				},
				Mw: []gin.HandlerFunc{listCache.Middleware()},
			},
		})

		first := performGet(engine, "/announcements")
		require.Equal(t, http.StatusOK, first.Code)
		require.Contains(t, first.Body.String(), "Water outage")

		second := performGet(engine, "/announcements")
		require.Equal(t, http.StatusOK, second.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.Equal(t, 1, handlerCalls, "second read should come from cache")
	})

	t.Run("route middleware still short-circuits the handler on abort", func(t *testing.T) {
		engine := gin.New()

		handlerCalls := 0
		deny := func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		}
		addRoutes(engine.Group(""), []route{
			{
				Method: http.MethodGet,
				Path:   "/admin/users",
				Handler: func(c *gin.Context) {
					handlerCalls++
					c.JSON(http.StatusOK, gin.H{})
				},
				Mw: []gin.HandlerFunc{deny},
			},
		})

		w := performGet(engine, "/admin/users")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Zero(t, handlerCalls)
	})

	t.Run("middleware order is preserved", func(t *testing.T) {
		engine := gin.New()

		var order []string
		mark := func(name string) gin.HandlerFunc {
			return func(c *gin.Context) {
				order = append(order, name)
				c.Next()
			}
		}
		addRoutes(engine.Group(""), []route{
			{
				Method: http.MethodGet,
				Path:   "/visitors",
				Handler: func(c *gin.Context) {
					order = append(order, "handler")
					c.JSON(http.StatusOK, gin.H{})
				},
				Mw: []gin.HandlerFunc{mark("first"), mark("second")},
			},
		})

		w := performGet(engine, "/visitors")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"first", "second", "handler"}, order)
	})
}
