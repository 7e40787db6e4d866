package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rizkypratama/havenly/pkg/helpers"
	"github.com/rizkypratama/havenly/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authTestRouter(jwt *helpers.TokenManager) *gin.Engine {
	r := gin.New()
	r.GET("/protected", Auth(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString(CtxUserIDKey)})
	})
	return r
}

func TestAuthMissingCookie(t *testing.T) {
	jwt := helpers.NewTokenManager("test-secret", time.Hour)
	r := authTestRouter(jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	var body response.ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Success || body.StatusCode != http.StatusUnauthorized || body.Message != "unauthorized" {
		t.Errorf("unexpected envelope: %+v", body)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	jwt := helpers.NewTokenManager("test-secret", time.Hour)
	r := authTestRouter(jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: "garbage"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestAuthExpiredToken(t *testing.T) {
	issuer := helpers.NewTokenManager("test-secret", -time.Minute)
	token, _, err := issuer.Generate("u1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	r := authTestRouter(helpers.NewTokenManager("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestAuthValidTokenInjectsUserID(t *testing.T) {
	jwt := helpers.NewTokenManager("test-secret", time.Hour)
	token, _, err := jwt.Generate("u1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	r := authTestRouter(jwt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["userID"] != "u1" {
		t.Errorf("userID = %q, want u1", body["userID"])
	}
}
