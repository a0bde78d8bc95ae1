package api

import (
	authDelivery "replypilot-backend/internal/auth/delivery"
	authUsecasePkg "replypilot-backend/internal/auth/usecase"
	triageDelivery "replypilot-backend/internal/triage/delivery"
	triageUsecasePkg "replypilot-backend/internal/triage/usecase"
	"replypilot-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase   authUsecasePkg.AuthUsecase
	triageUsecase triageUsecasePkg.TriageUsecase
	config        *config.Config
}

func NewHandler(authUc authUsecasePkg.AuthUsecase, triageUc triageUsecasePkg.TriageUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:   authUc,
		triageUsecase: triageUc,
		config:        cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.LoadHTMLGlob("web/templates/*.html")

	authHandler := authDelivery.NewAuthHandler(h.authUsecase, int(h.config.SessionExpiry.Seconds()))
	triageHandler := triageDelivery.NewTriageHandler(h.triageUsecase, h.authUsecase)

	SetupRoutes(r, h.authUsecase, authHandler, triageHandler)

	return r.Run(addr)
}
