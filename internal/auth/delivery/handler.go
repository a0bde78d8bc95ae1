package delivery

import (
	"log"
	"net/http"

	authdto "replypilot-backend/internal/auth/dto"
	"replypilot-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const stateCookieName = "oauth_state"

// AuthHandler serves the landing/auth pages and the Google OAuth flow
type AuthHandler struct {
	authUsecase   usecase.AuthUsecase
	sessionMaxAge int
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, sessionMaxAge int) *AuthHandler {
	return &AuthHandler{
		authUsecase:   authUsecase,
		sessionMaxAge: sessionMaxAge,
	}
}

// GET /
func (h *AuthHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// GET /login and GET /auth
func (h *AuthHandler) AuthPage(c *gin.Context) {
	c.HTML(http.StatusOK, "auth.html", nil)
}

// GET /auth/google
// Redirects to the Google consent screen. The state nonce round-trips
// through a short-lived cookie to block CSRF on the callback.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state := uuid.New().String()
	c.SetCookie(stateCookieName, state, 600, "/", "", false, true)
	c.Redirect(http.StatusFound, h.authUsecase.LoginURL(state))
}

// GET /callback
func (h *AuthHandler) Callback(c *gin.Context) {
	state, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != c.Query("state") {
		log.Printf("[WARN] OAuth callback with bad state")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	account, err := h.authUsecase.HandleCallback(c.Request.Context(), code)
	if err != nil {
		log.Printf("[WARN] OAuth callback failed: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "Sign-in failed. Please try again."})
		return
	}

	session, err := h.authUsecase.IssueSession(account)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "Sign-in failed. Please try again."})
		return
	}

	c.SetCookie(SessionCookieName, session, h.sessionMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/setup")
}

// GET /setup
func (h *AuthHandler) SetupPage(c *gin.Context) {
	userID := c.GetString("userID")

	account, err := h.authUsecase.GetAccount(c.Request.Context(), userID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "Could not load your account."})
		return
	}
	if account == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	lookback := account.LookbackDays
	if lookback <= 0 {
		lookback = 1
	}

	c.HTML(http.StatusOK, "setup.html", gin.H{
		"Name":      account.Name,
		"Manifesto": account.Manifesto,
		"Lookback":  lookback,
	})
}

// POST /setup
func (h *AuthHandler) SetupSubmit(c *gin.Context) {
	userID := c.GetString("userID")

	var req authdto.SetupRequest
	if err := c.ShouldBind(&req); err != nil {
		// Re-render with the saved values so a bad submit loses nothing
		data := gin.H{
			"Error":    "Please describe how your replies should sound.",
			"Lookback": 1,
		}
		if account, err := h.authUsecase.GetAccount(c.Request.Context(), userID); err == nil && account != nil {
			data["Name"] = account.Name
			data["Manifesto"] = account.Manifesto
			if account.LookbackDays > 0 {
				data["Lookback"] = account.LookbackDays
			}
		}
		c.HTML(http.StatusBadRequest, "setup.html", data)
		return
	}

	if err := h.authUsecase.SaveSetup(c.Request.Context(), userID, req.Manifesto, req.LookbackDays); err != nil {
		log.Printf("[WARN] Failed to save setup for user %s: %v", userID, err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "Could not save your settings."})
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
