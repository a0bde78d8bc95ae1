package delivery

import (
	"errors"
	"log"
	"net/http"
	"strings"

	authUsecase "replypilot-backend/internal/auth/usecase"
	"replypilot-backend/internal/triage/usecase"

	"github.com/gin-gonic/gin"
)

// TriageHandler serves the dashboard, scan trigger and JSON endpoints
type TriageHandler struct {
	triageUsecase usecase.TriageUsecase
	authUsecase   authUsecase.AuthUsecase
}

// NewTriageHandler creates a new TriageHandler
func NewTriageHandler(triageUc usecase.TriageUsecase, authUc authUsecase.AuthUsecase) *TriageHandler {
	return &TriageHandler{
		triageUsecase: triageUc,
		authUsecase:   authUc,
	}
}

// GET /dashboard
func (h *TriageHandler) Dashboard(c *gin.Context) {
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
	if !account.IsConfigured() {
		c.Redirect(http.StatusFound, "/setup")
		return
	}

	logs, err := h.triageUsecase.RecentActivity(c.Request.Context(), userID, 10)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "Could not load your activity."})
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Initial":   profileInitial(account.Name, account.Email),
		"Name":      account.Name,
		"Manifesto": account.Manifesto,
		"Logs":      logs,
	})
}

// GET /scan
// Runs the triage pipeline synchronously, then returns to the dashboard.
func (h *TriageHandler) Scan(c *gin.Context) {
	userID := c.GetString("userID")

	_, err := h.triageUsecase.Scan(c.Request.Context(), userID)
	switch {
	case errors.Is(err, usecase.ErrNotConfigured):
		c.Redirect(http.StatusFound, "/setup")
		return
	case errors.Is(err, usecase.ErrScanInProgress):
		c.Redirect(http.StatusFound, "/dashboard")
		return
	case err != nil:
		log.Printf("[WARN] Scan failed for user %s: %v", userID, err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"message": "The scan could not be completed."})
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// ChatRequest represents the request body
type ChatRequest struct {
	Query string `json:"query" binding:"required"`
}

// POST /api/chat
func (h *TriageHandler) Chat(c *gin.Context) {
	userID := c.GetString("userID")

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	response, err := h.triageUsecase.Chat(c.Request.Context(), userID, req.Query)
	if err != nil {
		log.Printf("[WARN] Chat failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response})
}

// GET /api/summary
func (h *TriageHandler) Summary(c *gin.Context) {
	userID := c.GetString("userID")

	summary, err := h.triageUsecase.ActivitySummary(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[WARN] Summary failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func profileInitial(name, email string) string {
	source := strings.TrimSpace(name)
	if source == "" {
		source = strings.TrimSpace(email)
	}
	if source == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(source)[0]))
}
