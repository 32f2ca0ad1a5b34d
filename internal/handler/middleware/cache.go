package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
)

// ResponseCache memoizes GET responses for hot public lists (amenities,
// announcements). Short TTL: staleness is bounded by expiry, writes do not
// invalidate.
type ResponseCache struct {
	store *gocache.Cache
}

type cachedResponse struct {
	status int
	body   []byte
}

func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

func (rc *ResponseCache) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()
		if cached, ok := rc.store.Get(key); ok {
			resp := cached.(cachedResponse)
			c.Data(resp.status, "application/json; charset=utf-8", resp.body)
			c.Abort()
			return
		}

		writer := &bufferingWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		if writer.Status() == http.StatusOK {
			rc.store.SetDefault(key, cachedResponse{
				status: writer.Status(),
				body:   writer.buf.Bytes(),
			})
		}
	}
}

type bufferingWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bufferingWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}
