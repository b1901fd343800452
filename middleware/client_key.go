package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// clientKey identifies the caller for rate limiting. Authenticated requests
// are keyed by user ID so a shared school network does not exhaust one
// bucket; anonymous requests fall back to the client IP.
func clientKey(c *gin.Context) string {
	if id := GetUserID(c); id != "" {
		return "user:" + id
	}
	return "ip:" + clientIP(c)
}

// clientIP resolves the originating address, trusting proxy headers when
// present.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		// First address in the list is the original client.
		first := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
		if first != "" {
			return first
		}
	}
	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); xri != "" {
		return xri
	}
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
