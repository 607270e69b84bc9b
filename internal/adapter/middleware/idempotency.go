package middleware

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Webhook senders (payment relays in particular) retry on timeouts, and the
// pipeline's side effects are emails that must not be duplicated. A caller
// that supplies an Idempotency-Key header gets at-most-once processing per
// key; callers without the header keep today's behavior.

const (
	// Held while the first request with a key is still being handled.
	provisionalLockTTL = 60 * time.Second

	headerIdempotencyKey = "Idempotency-Key"
)

type idempEntry struct {
	InProgress bool      `json:"in_progress"`
	Code       int       `json:"code"`
	Body       []byte    `json:"body"`
	BodySHA256 string    `json:"body_sha256"`
	CreatedAt  time.Time `json:"created_at"`
}

type respRecorder struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (r *respRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *respRecorder) WriteString(s string) (int, error) {
	r.buf.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response for a repeated key, rejects a key
// reused with a different body with 409, and passes everything else through.
// A nil client disables the middleware entirely.
func Idempotency(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		key := c.GetHeader(headerIdempotencyKey)
		if key == "" {
			c.Next()
			return
		}

		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		bhash := bodyHash(body)

		storeKey := buildKey(c.Request.Method, c.FullPath(), key)
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		ok, err := provisionalSet(ctx, rdb, storeKey, idempEntry{
			InProgress: true,
			BodySHA256: bhash,
			CreatedAt:  time.Now().UTC(),
		})
		if err != nil {
			log.Printf("[idempotency][middleware] redis unavailable key=%s err=%v", storeKey, err)
			c.Next()
			return
		}
		if !ok {
			cur, errLoad := loadEntry(ctx, rdb, storeKey)
			if errLoad != nil {
				log.Printf("[idempotency][middleware] load failed key=%s err=%v", storeKey, errLoad)
			}
			if cur.BodySHA256 != "" && cur.BodySHA256 != bhash {
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{"success": false, "error": "Idempotency-Key reused with different body"})
				return
			}
			if !cur.InProgress && cur.Code != 0 && len(cur.Body) > 0 {
				c.Data(cur.Code, "application/json", cur.Body)
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"success": false, "error": "request is already in progress"})
			return
		}

		rec := &respRecorder{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = rec
		c.Next()

		final := idempEntry{
			InProgress: false,
			Code:       rec.Status(),
			Body:       rec.buf.Bytes(),
			BodySHA256: bhash,
			CreatedAt:  time.Now().UTC(),
		}
		if err := saveFinal(context.Background(), rdb, storeKey, final, ttl); err != nil {
			log.Printf("[idempotency][middleware] save failed key=%s err=%v", storeKey, err)
		}
	}
}
