package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func sessionRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", SessionRequired(secret), func(c *gin.Context) {
		c.String(http.StatusOK, GetSessionID(c))
	})
	return r
}

func TestSessionRequired(t *testing.T) {
	secret := []byte("test-secret")
	r := sessionRouter(secret)

	token, sid, err := NewSessionToken(secret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	expired, _, _ := NewSessionToken(secret, -time.Minute)
	foreign, _, _ := NewSessionToken([]byte("other-secret"), time.Hour)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{name: "valid", header: "Bearer " + token, status: http.StatusOK},
		{name: "missing", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token " + token, status: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, status: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + foreign, status: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer abc.def.ghi", status: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("status %d, want %d", w.Code, tc.status)
			}
			if tc.status == http.StatusOK && w.Body.String() != sid {
				t.Fatalf("session id %q, want %q", w.Body.String(), sid)
			}
		})
	}
}
