package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sangkips/billdesk-api/internal/config"
	domainRepo "github.com/sangkips/billdesk-api/internal/domain/repository"
	"github.com/sangkips/billdesk-api/internal/presentation/http/handler"
	"github.com/sangkips/billdesk-api/internal/presentation/http/middleware"
	"github.com/sangkips/billdesk-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	Client    *handler.ClientHandler
	Bill      *handler.BillHandler
	Payment   *handler.PaymentHandler
	Quotation *handler.QuotationHandler
	Service   *handler.ServiceHandler
	Settings  *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	Log             zerolog.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfigFor(
			deps.Cfg.RateLimit.Requests,
			time.Duration(deps.Cfg.RateLimit.Duration)*time.Second,
		))
		v1.Use(rateLimiter.Middleware())

		registerAuthRoutes(v1, h)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.GET("/dashboard", h.Dashboard.GetStats)

	registerClientRoutes(protected, h)
	registerBillRoutes(protected, h)
	registerPaymentRoutes(protected, h, deps)
	registerQuotationRoutes(protected, h)
	registerServiceRoutes(protected, h)
	registerSettingsRoutes(protected, h)
}

func registerClientRoutes(protected *gin.RouterGroup, h *Handlers) {
	clients := protected.Group("/clients")
	{
		clients.GET("", h.Client.List)
		clients.POST("", h.Client.Create)
		clients.GET("/:id", h.Client.Get)
		clients.PUT("/:id", h.Client.Update)
		clients.GET("/:id/summary", h.Client.Summary)
	}
}

func registerBillRoutes(protected *gin.RouterGroup, h *Handlers) {
	bills := protected.Group("/bills")
	{
		bills.GET("", h.Bill.List)
		bills.POST("", h.Bill.Create)
		bills.GET("/:id", h.Bill.Get)
		bills.PUT("/:id", h.Bill.Update)
		bills.DELETE("/:id", h.Bill.Delete)
		bills.POST("/:id/pay", h.Bill.MarkAsPaid)
		bills.GET("/:id/payments", h.Bill.Payments)
	}
}

func registerPaymentRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	payments := protected.Group("/payments")
	{
		payments.GET("", h.Payment.List)
		// Recording uses idempotency keys so a retried submit is not booked twice
		payments.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
			Log:  deps.Log,
		}), h.Payment.Record)
		payments.GET("/:id", h.Payment.Get)
	}
}

func registerQuotationRoutes(protected *gin.RouterGroup, h *Handlers) {
	quotations := protected.Group("/quotations")
	{
		quotations.GET("", h.Quotation.List)
		quotations.POST("", h.Quotation.Create)
		quotations.GET("/:id", h.Quotation.Get)
		quotations.PUT("/:id", h.Quotation.Update)
		quotations.DELETE("/:id", h.Quotation.Delete)
		quotations.PUT("/:id/status", h.Quotation.UpdateStatus)
		quotations.POST("/:id/convert", h.Quotation.Convert)
	}
}

func registerServiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	services := protected.Group("/services")
	{
		services.GET("", h.Service.List)
		services.POST("", h.Service.Create)
		services.GET("/active", h.Service.Active)
		services.GET("/:id", h.Service.Get)
		services.PUT("/:id", h.Service.Update)
		services.DELETE("/:id", h.Service.Delete)
		services.POST("/:id/toggle", h.Service.Toggle)
	}
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	settings := protected.Group("/settings")
	{
		settings.GET("", h.Settings.GetSettings)
		settings.PUT("/company", h.Settings.UpdateCompany)
		settings.PUT("/preferences", h.Settings.UpdatePreferences)
		settings.PUT("/email", h.Settings.UpdateEmail)
		settings.PUT("/password", h.Settings.ChangePassword)
		settings.POST("/reset", h.Settings.Reset)
	}
}
