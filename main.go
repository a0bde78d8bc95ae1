package main

import (
	"context"
	"log"

	api "replypilot-backend/cmd/api"
	authRepo "replypilot-backend/internal/auth/repository"
	authUsecase "replypilot-backend/internal/auth/usecase"
	triageRepo "replypilot-backend/internal/triage/repository"
	triageUsecase "replypilot-backend/internal/triage/usecase"
	"replypilot-backend/pkg/ai"
	"replypilot-backend/pkg/config"
	"replypilot-backend/pkg/firebase"
	"replypilot-backend/pkg/gmail"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize Firestore (document store for users and activity logs)
	ctx := context.Background()
	firestoreClient, err := firebase.NewFirestoreClient(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentials)
	if err != nil {
		log.Fatal("Failed to connect to Firestore:", err)
	}
	defer firestoreClient.Close()

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(firestoreClient)
	activityLogRepo := triageRepo.NewActivityLogRepository(firestoreClient)

	// Initialize Gmail service (mail gateway)
	gmailService := gmail.NewService(cfg.GoogleClientID, cfg.GoogleClientSecret)

	// Initialize AI completion provider and drafting engine
	completionService, err := ai.NewCompletionService(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		GroqAPIKey:    cfg.GroqAPIKey,
		GroqModel:     cfg.GroqModel,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
	})
	if err != nil {
		log.Fatal("Failed to initialize AI provider:", err)
	}
	draftingEngine := ai.NewDraftingEngine(completionService)
	log.Printf("AI provider initialized: %s", cfg.AIProvider)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	triageUsecaseInstance := triageUsecase.NewTriageUsecase(userRepo, activityLogRepo, gmailService, draftingEngine, cfg.LLMTimeout)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, triageUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
