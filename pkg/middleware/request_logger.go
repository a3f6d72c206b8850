package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id (reusing a caller-supplied one)
// and logs method, path, status and latency once the handler chain returns.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorf("%s %s %d %s id=%s", c.Request.Method, c.Request.URL.Path, status, time.Since(start), id)
		case status >= 400:
			log.Warnf("%s %s %d %s id=%s", c.Request.Method, c.Request.URL.Path, status, time.Since(start), id)
		default:
			log.Infof("%s %s %d %s id=%s", c.Request.Method, c.Request.URL.Path, status, time.Since(start), id)
		}
	}
}

// CORS allows browser clients from any origin and answers preflight requests.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, "+RequestIDHeader)
		h.Set("Access-Control-Expose-Headers", "Content-Length, "+RequestIDHeader)
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
