package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tr4cking/admin-api/internal/application/service"
	"github.com/tr4cking/admin-api/internal/config"
	"github.com/tr4cking/admin-api/internal/presentation/http/handler"
	"github.com/tr4cking/admin-api/internal/presentation/http/middleware"
	"github.com/tr4cking/admin-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	CashSession *handler.CashSessionHandler
	Shipment    *handler.ShipmentHandler
	Invoice     *handler.InvoiceHandler
	Lookup      *handler.LookupHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Sessions   *service.SessionStore
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager, deps.Sessions))

		// Per-session rate limiter
		rateLimiter := middleware.NewSessionRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)

	// Cash registers
	registerCashSessionRoutes(protected, h)

	// Shipments
	registerShipmentRoutes(protected, h)

	// Invoice drafts
	registerInvoiceRoutes(protected, h)

	// Selector lookups
	protected.GET("/lookups/:resource", h.Lookup.Options)
}

func registerCashSessionRoutes(protected *gin.RouterGroup, h *Handlers) {
	registers := protected.Group("/registers")
	{
		registers.GET("/current", h.CashSession.Current)
		registers.POST("/open", h.CashSession.Open)
		registers.POST("/close", h.CashSession.Close)
		registers.GET("/report", h.CashSession.Report)
	}
}

func registerShipmentRoutes(protected *gin.RouterGroup, h *Handlers) {
	shipments := protected.Group("/shipments")
	{
		shipments.GET("", h.Shipment.List)
		shipments.POST("", h.Shipment.Create)
		shipments.GET("/form-data", h.Shipment.FormData)
		shipments.PUT("/:id", h.Shipment.Update)
		shipments.DELETE("/:id", h.Shipment.Delete)
		shipments.GET("/:id/voucher", h.Shipment.Preview)
		shipments.GET("/:id/voucher.pdf", h.Shipment.VoucherPDF)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	drafts := protected.Group("/invoices/drafts")
	{
		drafts.POST("", h.Invoice.Create)
		drafts.GET("/:id", h.Invoice.Get)
		drafts.DELETE("/:id", h.Invoice.Discard)
		drafts.PUT("/:id/header", h.Invoice.SetHeader)
		drafts.PUT("/:id/client", h.Invoice.SetClient)
		drafts.POST("/:id/client/pick", h.Invoice.PickClient)
		drafts.POST("/:id/items", h.Invoice.AddItem)
		drafts.POST("/:id/items/pick-shipment", h.Invoice.PickShipment)
		drafts.PUT("/:id/items/:index", h.Invoice.UpdateItemQuantity)
		drafts.DELETE("/:id/items/:index", h.Invoice.RemoveItem)
		drafts.POST("/:id/generate", h.Invoice.Generate)
	}
}
