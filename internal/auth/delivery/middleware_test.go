package delivery

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	authdomain "replypilot-backend/internal/auth/domain"
	authdto "replypilot-backend/internal/auth/dto"
)

// stubAuthUsecase validates a single known token
type stubAuthUsecase struct {
	validToken string
	claims     *authdto.SessionClaims
	account    *authdomain.UserAccount
}

func (s *stubAuthUsecase) LoginURL(state string) string { return "https://example.com/auth?state=" + state }

func (s *stubAuthUsecase) HandleCallback(ctx context.Context, code string) (*authdomain.UserAccount, error) {
	return s.account, nil
}

func (s *stubAuthUsecase) IssueSession(user *authdomain.UserAccount) (string, error) {
	return s.validToken, nil
}

func (s *stubAuthUsecase) ValidateSession(token string) (*authdto.SessionClaims, error) {
	if token != s.validToken {
		return nil, errors.New("invalid or expired session")
	}
	return s.claims, nil
}

func (s *stubAuthUsecase) SaveSetup(ctx context.Context, uid, manifesto string, lookbackDays int) error {
	return nil
}

func (s *stubAuthUsecase) GetAccount(ctx context.Context, uid string) (*authdomain.UserAccount, error) {
	return s.account, nil
}

func newStubAuthUsecase() *stubAuthUsecase {
	return &stubAuthUsecase{
		validToken: "valid-token",
		claims:     &authdto.SessionClaims{UserID: "user-1", Email: "user@example.com"},
	}
}

func sessionCookie(value string) *http.Cookie {
	return &http.Cookie{Name: SessionCookieName, Value: value}
}

func TestPageAuthMiddlewareRedirectsWithoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/scan", PageAuthMiddleware(newStubAuthUsecase()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/scan", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestPageAuthMiddlewareRedirectsOnBadToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/dashboard", PageAuthMiddleware(newStubAuthUsecase()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(sessionCookie("forged"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestPageAuthMiddlewarePassesWithSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var gotUserID string
	r.GET("/dashboard", PageAuthMiddleware(newStubAuthUsecase()), func(c *gin.Context) {
		gotUserID = c.GetString("userID")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(sessionCookie("valid-token"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", gotUserID)
}

func TestAPIAuthMiddlewareReturns401WithoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/chat", APIAuthMiddleware(newStubAuthUsecase()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
}

func TestAPIAuthMiddlewarePassesWithSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var gotUserID string
	r.POST("/api/chat", APIAuthMiddleware(newStubAuthUsecase()), func(c *gin.Context) {
		gotUserID = c.GetString("userID")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", nil)
	req.AddCookie(sessionCookie("valid-token"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", gotUserID)
}
