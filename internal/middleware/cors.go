package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	defaultAllowHeaders = "Authorization, Content-Type, Content-Length, Accept-Encoding, X-Request-ID, accept, origin, Cache-Control, X-Requested-With"
	defaultAllowMethods = "GET, POST, OPTIONS"
)

// CORS lets the admin front end call the service from another origin.
// Credentials are not allowed, so any origin is accepted.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestHeaders := c.Request.Header.Get("Access-Control-Request-Headers")
		requestMethod := c.Request.Header.Get("Access-Control-Request-Method")

		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "false")
		c.Header("Access-Control-Allow-Headers", coalesce(requestHeaders, defaultAllowHeaders))
		c.Header("Access-Control-Allow-Methods", coalesce(requestMethod, defaultAllowMethods))
		c.Header("Access-Control-Max-Age", "600")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Content-Type, "+HeaderRequestID)

		if requestMethod != "" || requestHeaders != "" {
			c.Header("Vary", "Origin, Access-Control-Request-Method, Access-Control-Request-Headers")
		} else {
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
