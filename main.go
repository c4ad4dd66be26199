package main

import (
	"log"

	"github.com/Adarsh-736/CurioKart/config"
	"github.com/Adarsh-736/CurioKart/controllers"
	"github.com/Adarsh-736/CurioKart/gateway"
	"github.com/Adarsh-736/CurioKart/identity"
	"github.com/Adarsh-736/CurioKart/routes"
	"github.com/Adarsh-736/CurioKart/store"
	"github.com/Adarsh-736/CurioKart/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Long-lived clients for the external services; all are safe for
	// concurrent use across requests
	identityClient := identity.NewClient(cfg.IdentityBaseURL, cfg.IdentityAPIKey)
	storeClient := store.NewClient(cfg.StoreBaseURL, cfg.StoreAPIKey)
	gatewayClient := gateway.NewClient(cfg.CashfreeAPIURL, cfg.CashfreeAppID, cfg.CashfreeSecretKey, cfg.CashfreeAPIVersion)

	handler := controllers.NewHandler(identityClient, storeClient, gatewayClient, cfg)

	// Set up router with middleware and routes
	router := routes.SetupRouter(handler)

	utils.LogInfo("Server starting on port %s", cfg.Port)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
