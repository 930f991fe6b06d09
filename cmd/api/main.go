package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/tr4cking/admin-api/internal/application/service"
	"github.com/tr4cking/admin-api/internal/config"
	"github.com/tr4cking/admin-api/internal/infrastructure/restclient"
	"github.com/tr4cking/admin-api/internal/presentation/http/handler"
	"github.com/tr4cking/admin-api/internal/presentation/http/routes"
	"github.com/tr4cking/admin-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Per-clerk backend session store
	sessions := service.NewSessionStore(cfg.Session.TTL)

	// Initialize repositories over the remote backend
	factory := restclient.NewFactory(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	authRepo := restclient.NewAuthRepository(factory)
	clientRepo := restclient.NewClientRepository(factory)
	registerRepo := restclient.NewRegisterRepository(factory)
	shipmentRepo := restclient.NewShipmentRepository(factory)
	travelRepo := restclient.NewTravelRepository(factory)
	catalogRepo := restclient.NewCatalogRepository(factory)

	// Initialize services
	authService := service.NewAuthService(authRepo, sessions, jwtManager, cfg.Backend.Timeout)
	cashService := service.NewCashSessionService(registerRepo, catalogRepo)
	shipmentService := service.NewShipmentService(shipmentRepo, clientRepo, travelRepo)
	invoiceService := service.NewInvoiceService(clientRepo, shipmentRepo, cfg.Session.DraftTTL)
	lookupService := service.NewLookupService(clientRepo, shipmentRepo, catalogRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		CashSession: handler.NewCashSessionHandler(cashService),
		Shipment:    handler.NewShipmentHandler(shipmentService),
		Invoice:     handler.NewInvoiceHandler(invoiceService),
		Lookup:      handler.NewLookupHandler(lookupService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Sessions:   sessions,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)
	log.Printf("Backend: %s", cfg.Backend.BaseURL)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
