package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetInt("userId"),
			"email":  c.GetString("email"),
		})
	})
	return r
}

func signedToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"userId": 1,
		"email":  "admin@crm.com",
		"exp":    exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func request(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMissingToken(t *testing.T) {
	if w := request(authRouter(), ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthBadFormat(t *testing.T) {
	if w := request(authRouter(), "Token abc"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-bearer header, got %d", w.Code)
	}
}

func TestAuthExpiredToken(t *testing.T) {
	token := signedToken(t, testSecret, time.Now().Add(-time.Hour))
	if w := request(authRouter(), "Bearer "+token); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for expired token, got %d", w.Code)
	}
}

func TestAuthWrongSecret(t *testing.T) {
	token := signedToken(t, "other-secret", time.Now().Add(time.Hour))
	if w := request(authRouter(), "Bearer "+token); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for wrong signature, got %d", w.Code)
	}
}

func TestAuthValidTokenInjectsClaims(t *testing.T) {
	token := signedToken(t, testSecret, time.Now().Add(time.Hour))
	w := request(authRouter(), "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, `"userId":1`) || !strings.Contains(body, "admin@crm.com") {
		t.Fatalf("expected claims in context, got %s", body)
	}
}
