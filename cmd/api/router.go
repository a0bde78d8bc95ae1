package api

import (
	authDelivery "replypilot-backend/internal/auth/delivery"
	authUsecase "replypilot-backend/internal/auth/usecase"
	triageDelivery "replypilot-backend/internal/triage/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, authHandler *authDelivery.AuthHandler, triageHandler *triageDelivery.TriageHandler) {
	// Public pages and OAuth flow
	r.GET("/", authHandler.Index)
	r.GET("/login", authHandler.AuthPage)
	r.GET("/auth", authHandler.AuthPage)
	r.GET("/auth/google", authHandler.GoogleLogin)
	r.GET("/callback", authHandler.Callback)
	r.GET("/logout", authHandler.Logout)

	// Session-gated pages
	pages := r.Group("/", authDelivery.PageAuthMiddleware(authUc))
	{
		pages.GET("/setup", authHandler.SetupPage)
		pages.POST("/setup", authHandler.SetupSubmit)
		pages.GET("/dashboard", triageHandler.Dashboard)
		pages.GET("/scan", triageHandler.Scan)
	}

	// Session-gated JSON endpoints
	api := r.Group("/api", authDelivery.APIAuthMiddleware(authUc))
	{
		api.POST("/chat", triageHandler.Chat)
		api.GET("/summary", triageHandler.Summary)
	}
}
