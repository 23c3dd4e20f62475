package main

import (
	"fmt"
	"log"

	"superclaims/internal/classifier"
	"superclaims/internal/config"
	"superclaims/internal/handler"
	"superclaims/internal/llm/gemini"
	"superclaims/internal/router"
	"superclaims/internal/service"
	"superclaims/internal/validator"

	_ "superclaims/docs"
)

// @title Superclaims API
// @version 1.0
// @description Medical insurance claim document processing service
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize the claim pipeline. Without an API key the server still
	// starts, but claim processing is refused with 503.
	var claimSvc service.ClaimService
	if cfg.Gemini.APIKey == "" {
		log.Printf("main: GEMINI_API_KEY not set; claim processing disabled")
	} else {
		llm := gemini.NewClient(&cfg.Gemini)
		clf := classifier.New(llm)
		claimSvc = service.NewClaimService(llm, clf, service.NewDefaultExtractors(llm), validator.New())
	}

	// Initialize handlers
	claimH := handler.NewClaimHandler(claimSvc, cfg.Upload.MaxFileSizeMB)
	healthH := handler.NewHealthHandler(claimSvc != nil)

	// Setup router
	r := router.Setup(cfg, claimH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
