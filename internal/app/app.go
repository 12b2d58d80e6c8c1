// Package app wires services and handlers onto an Entity Store.
package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/billdesk-api/internal/application/service"
	"github.com/sangkips/billdesk-api/internal/config"
	domainRepo "github.com/sangkips/billdesk-api/internal/domain/repository"
	applog "github.com/sangkips/billdesk-api/internal/logger"
	"github.com/sangkips/billdesk-api/internal/presentation/http/handler"
	"github.com/sangkips/billdesk-api/internal/presentation/http/routes"
	"github.com/sangkips/billdesk-api/pkg/utils"
)

// Services groups the application services built on one store
type Services struct {
	Auth      *service.AuthService
	Client    *service.ClientService
	Bill      *service.BillService
	Payment   *service.PaymentService
	Quotation *service.QuotationService
	Catalog   *service.CatalogService
	Settings  *service.SettingsService
	Dashboard *service.DashboardService
}

// NewServices builds every application service on store
func NewServices(cfg *config.Config, store domainRepo.Store) *Services {
	jwtManager := NewJWTManager(cfg)

	billService := service.NewBillService(store.Bills(), store.Clients(), store.Payments())
	settingsService := service.NewSettingsService(store.Settings(), cfg.Admin.Email, cfg.Admin.Password)

	return &Services{
		Auth:      service.NewAuthService(settingsService, jwtManager),
		Client:    service.NewClientService(store.Clients(), store.Bills(), store.Payments()),
		Bill:      billService,
		Payment:   service.NewPaymentService(store.Payments(), store.Bills(), store.Clients()),
		Quotation: service.NewQuotationService(store.Quotations(), store.Clients(), billService),
		Catalog:   service.NewCatalogService(store.Services()),
		Settings:  settingsService,
		Dashboard: service.NewDashboardService(store.Bills(), store.Clients()),
	}
}

// NewJWTManager creates the token manager from the JWT configuration
func NewJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours, cfg.JWT.RefreshExpiryHours)
}

// NewRouter builds the HTTP router serving store
func NewRouter(cfg *config.Config, store domainRepo.Store) *gin.Engine {
	svc := NewServices(cfg, store)

	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(svc.Auth),
		Dashboard: handler.NewDashboardHandler(svc.Dashboard),
		Client:    handler.NewClientHandler(svc.Client),
		Bill:      handler.NewBillHandler(svc.Bill, svc.Payment),
		Payment:   handler.NewPaymentHandler(svc.Payment),
		Quotation: handler.NewQuotationHandler(svc.Quotation),
		Service:   handler.NewServiceHandler(svc.Catalog),
		Settings:  handler.NewSettingsHandler(svc.Settings),
	}

	return routes.Setup(handlers, &routes.Deps{
		JWTManager:      NewJWTManager(cfg),
		Cfg:             cfg,
		IdempotencyRepo: store.Idempotency(),
		Log:             applog.WithComponent("http"),
	})
}

// ShutdownTimeout bounds the graceful shutdown of the HTTP server
const ShutdownTimeout = 10 * time.Second
