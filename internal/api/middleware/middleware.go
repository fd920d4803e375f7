// Package middleware provides HTTP middleware for the Gin router.
//
// Go Learning Note — Middleware Pattern (Gin):
// In Gin, middleware is any function with the signature `gin.HandlerFunc`, which
// is `func(*gin.Context)`. Middleware functions form a chain: each one runs,
// optionally calls c.Next() to pass control to the next handler, and can call
// c.Abort() to stop the chain. This is the "chain of responsibility" pattern.
package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"ridesharing/pkg/utils"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// RequestID tags every request with an id, reusing the caller's
// X-Request-ID header when present, and echoes it on the response.
//
// Go Learning Note — Returning Functions (Closures):
// RequestID() returns a gin.HandlerFunc. The outer function is where
// configuration would go; the inner closure runs once per request.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = utils.GenerateID("req")
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs one structured line per request after the handler
// chain finishes.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"request_id": GetRequestID(c),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Error("request failed")
			return
		}
		entry.Info("request handled")
	}
}

// Recovery turns a handler panic into a 500 and logs it.
//
// Go Learning Note — c.Abort():
// c.AbortWithStatusJSON writes the response and stops later handlers from
// running. Without the abort the remaining chain would still execute.
func Recovery(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(logrus.Fields{
					"request_id": GetRequestID(c),
					"panic":      r,
				}).Error("handler panicked")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
		}()
		c.Next()
	}
}

// GetRequestID returns the id set by RequestID, or "" if that middleware
// did not run.
//
// Go Learning Note — Type Assertion:
// c.Get() returns (interface{}, bool). The two-value form `id, ok := v.(string)`
// returns ok=false instead of panicking when the value is missing or of
// another type.
func GetRequestID(c *gin.Context) string {
	v, _ := c.Get(RequestIDKey)
	id, _ := v.(string)
	return id
}
