package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestBodyHash(t *testing.T) {
	if bodyHash([]byte("a")) == bodyHash([]byte("b")) {
		t.Fatalf("different bodies must hash differently")
	}
	if bodyHash([]byte("a")) != bodyHash([]byte("a")) {
		t.Fatalf("hash must be deterministic")
	}
	if len(bodyHash(nil)) != 64 {
		t.Fatalf("expected hex sha256")
	}
}

func TestBuildKey(t *testing.T) {
	got := buildKey(http.MethodPost, "/v1/webhooks/paypal", "req-1")
	if got != "idemp:post:/v1/webhooks/paypal:req-1" {
		t.Fatalf("unexpected key: %s", got)
	}
}

func TestIdempotency_PassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(Idempotency(nil, time.Minute))
		r.POST("/v1/webhooks/paypal", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})
		r.GET("/v1/quotes", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})
		return r
	}

	t.Run("nil client disables middleware", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/paypal", nil)
		req.Header.Set(headerIdempotencyKey, "key-1")
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get is never locked", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/quotes", nil)
		req.Header.Set(headerIdempotencyKey, "key-1")
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
