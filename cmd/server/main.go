package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/aapchat/gateway/internal/config"
	"github.com/aapchat/gateway/internal/handlers"
	"github.com/aapchat/gateway/internal/infrastructure/aap"
	"github.com/aapchat/gateway/internal/infrastructure/grok"
	"github.com/aapchat/gateway/internal/services"
)

func main() {
	// Local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize upstream clients
	aapClient := aap.NewClient(aap.Config{
		BaseURL:   cfg.AAPURL,
		Token:     cfg.AAPToken,
		VerifySSL: cfg.VerifySSL,
	})
	grokClient := grok.NewClient(grok.Config{
		Endpoint: cfg.GrokEndpoint,
		Key:      cfg.GrokKey,
	})

	// Initialize services and handlers
	chatService := services.NewChatService(aapClient, grokClient)
	router := handlers.NewRouter(
		handlers.NewJobHandler(aapClient),
		handlers.NewChatHandler(chatService),
		handlers.NewWSHandler(chatService),
	)

	if !cfg.VerifySSL {
		log.Println("⚠️  TLS verification disabled for automation platform calls")
	}
	if cfg.GrokEndpoint == "" || cfg.GrokKey == "" {
		log.Println("Grok endpoint not configured, chat fallback uses the mock reply")
	}

	log.Printf("🚀 Starting AAP chat gateway on %s", cfg.ListenAddr)
	log.Printf("   Automation platform: %s", cfg.AAPURL)
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
