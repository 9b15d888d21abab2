package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.Use(mw...)
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString(userRoleKey), "request_id": GetRequestID(c)})
	})
	return r
}

func signed(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	r := newTestEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	if got := w.Header().Get("X-Request-ID"); len(got) != 36 {
		t.Fatalf("generated request id = %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("echoed request id = %q", got)
	}
}

func TestAuthOptional(t *testing.T) {
	r := newTestEngine(AuthOptional(testSecret))
	valid := signed(t, jwt.MapClaims{"user_id": 7, "role": "admin", "exp": time.Now().Add(time.Hour).Unix()}, testSecret)
	expired := signed(t, jwt.MapClaims{"user_id": 7, "role": "admin", "exp": time.Now().Add(-time.Hour).Unix()}, testSecret)
	forged := signed(t, jwt.MapClaims{"user_id": 7, "role": "admin", "exp": time.Now().Add(time.Hour).Unix()}, "other")

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"anonymous", "", http.StatusOK},
		{"valid", "Bearer " + valid, http.StatusOK},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"forged", "Bearer " + forged, http.StatusUnauthorized},
		{"malformed", "Token " + valid, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestAuthOptionalDisabledWithoutSecret(t *testing.T) {
	r := newTestEngine(AuthOptional(""))
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRequireRoles(t *testing.T) {
	r := newTestEngine(AuthOptional(testSecret), RequireRoles("admin"))
	admin := signed(t, jwt.MapClaims{"role": "Admin", "exp": time.Now().Add(time.Hour).Unix()}, testSecret)
	traveler := signed(t, jwt.MapClaims{"role": "traveler", "exp": time.Now().Add(time.Hour).Unix()}, testSecret)

	for header, want := range map[string]int{
		"":                   http.StatusUnauthorized,
		"Bearer " + admin:    http.StatusOK,
		"Bearer " + traveler: http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != want {
			t.Fatalf("header %q: status = %d, want %d", header, w.Code, want)
		}
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := newTestEngine(CORS([]string{"https://app.example.test"}))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Origin", "https://app.example.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.test" {
		t.Fatalf("allow origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Origin", "https://evil.example.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("disallowed origin status = %d, want 403", w.Code)
	}
}
