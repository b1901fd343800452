package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"serenemind/config"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doPing(r *gin.Engine, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitUsesConfiguredCeiling(t *testing.T) {
	prev := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 2
	t.Cleanup(func() { config.AppConfig.MaxRequestsPerMin = prev })

	r := newLimitedRouter()

	for i := 0; i < 2; i++ {
		if code := doPing(r, "203.0.113.7:4000"); code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, code)
		}
	}
	if code := doPing(r, "203.0.113.7:4000"); code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429 once the ceiling is hit", code)
	}

	// A different client has its own bucket.
	if code := doPing(r, "203.0.113.8:4000"); code != http.StatusOK {
		t.Errorf("other client status = %d, want 200", code)
	}
}

func TestClientKeyPrefersAuthenticatedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/ping", nil)
	c.Request.RemoteAddr = "203.0.113.9:4000"

	if key := clientKey(c); key != "ip:203.0.113.9" {
		t.Errorf("anonymous key = %q, want %q", key, "ip:203.0.113.9")
	}

	c.Set("userID", "user-1")
	if key := clientKey(c); key != "user:user-1" {
		t.Errorf("authenticated key = %q, want %q", key, "user:user-1")
	}
}

func TestClientIPHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "198.51.100.2, 10.0.0.1"}, "10.0.0.2:80", "198.51.100.2"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.3"}, "10.0.0.2:80", "198.51.100.3"},
		{"remote addr fallback", nil, "198.51.100.4:5000", "198.51.100.4"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/ping", nil)
			c.Request.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}
			if got := clientIP(c); got != tc.want {
				t.Errorf("clientIP = %q, want %q", got, tc.want)
			}
		})
	}
}
