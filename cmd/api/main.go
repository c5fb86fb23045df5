package main

import (
	"context"
	"log"
	"time"

	"roadways-api/internal/core/auth"
	"roadways-api/internal/core/config"
	"roadways-api/internal/core/kvstore"
	"roadways-api/internal/core/logger"
	"roadways-api/internal/core/server"
	assistantadapter "roadways-api/internal/features/assistant/adapters"
	assistanthandler "roadways-api/internal/features/assistant/handler"
	assistantports "roadways-api/internal/features/assistant/ports"
	assistantservice "roadways-api/internal/features/assistant/service"
	catalogadapter "roadways-api/internal/features/catalog/adapters"
	cataloghandler "roadways-api/internal/features/catalog/handler"
	catalogservice "roadways-api/internal/features/catalog/service"
	companyadapter "roadways-api/internal/features/company/adapters"
	companyhandler "roadways-api/internal/features/company/handler"
	companyservice "roadways-api/internal/features/company/service"
	inquiryadapter "roadways-api/internal/features/inquiries/adapters"
	inquiryhandler "roadways-api/internal/features/inquiries/handler"
	inquiryservice "roadways-api/internal/features/inquiries/service"
	shipmentadapter "roadways-api/internal/features/shipments/adapters"
	shipmenthandler "roadways-api/internal/features/shipments/handler"
	shipmentservice "roadways-api/internal/features/shipments/service"
	testimonialadapter "roadways-api/internal/features/testimonials/adapters"
	testimonialhandler "roadways-api/internal/features/testimonials/handler"
	testimonialservice "roadways-api/internal/features/testimonials/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// @title Deluxe Roadways API
// @version 1.0
// @description Marketing site and shipment tracking API for Deluxe Roadways.
// @contact.name API Support
// @contact.email info@deluxeroadways.com
// @license.name MIT
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize the key-value store and verify connectivity
	store, err := kvstore.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create store", zap.Error(err))
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := store.Ping(ctx); err != nil {
		cancel()
		l.Fatal("Store health check failed", zap.Error(err))
	}
	cancel()
	l.Info("Store connection verified")

	// Shipments
	shipmentRepo := shipmentadapter.NewRedisShipmentRepository(store)
	shipmentSvc := shipmentservice.NewShipmentService(shipmentRepo)
	trackingHdl := shipmenthandler.NewTrackingHandler(shipmentSvc)
	shipmentAdminHdl := shipmenthandler.NewAdminHandler(shipmentSvc)

	// Catalog
	catalogRepo := catalogadapter.NewRedisCatalogRepository(store)
	catalogSvc := catalogservice.NewCatalogService(catalogRepo)
	catalogHdl := cataloghandler.NewCatalogHandler(catalogSvc)

	// Testimonials
	testimonialRepo := testimonialadapter.NewRedisTestimonialRepository(store)
	testimonialSvc := testimonialservice.NewTestimonialService(testimonialRepo)
	testimonialHdl := testimonialhandler.NewTestimonialHandler(testimonialSvc)

	// Inquiries
	inquiryRepo := inquiryadapter.NewRedisInquiryRepository(store)
	inquirySvc := inquiryservice.NewInquiryService(inquiryRepo)
	inquiryHdl := inquiryhandler.NewInquiryHandler(inquirySvc)

	// Company profile
	companyRepo := companyadapter.NewRedisCompanyRepository(store)
	companySvc := companyservice.NewCompanyService(companyRepo)
	companyHdl := companyhandler.NewCompanyHandler(companySvc)

	// Assistant
	var provider assistantports.Provider
	if cfg.Assistant.APIKey != "" {
		timeout := time.Duration(cfg.Assistant.TimeoutSeconds) * time.Second
		gemini, err := assistantadapter.NewGeminiProvider(context.Background(), cfg.Assistant.APIKey, cfg.Assistant.Model, timeout)
		if err != nil {
			l.Fatal("Failed to create assistant provider", zap.Error(err))
		}
		provider = gemini
		l.Info("Assistant enabled", zap.String("model", cfg.Assistant.Model))
	} else {
		provider = assistantadapter.NewDisabledProvider()
		l.Warn("GEMINI_API_KEY not set, chat will serve fallback replies")
	}
	assistantSvc := assistantservice.NewAssistantService(provider, companySvc, catalogSvc)
	assistantHdl := assistanthandler.NewAssistantHandler(assistantSvc)

	// Auth
	authenticator := auth.NewAuthenticator(
		cfg.Admin.PasswordHash,
		cfg.Admin.JWTSecret,
		time.Duration(cfg.Admin.TokenTTLHours)*time.Hour,
	)
	authHdl := auth.NewHandler(authenticator)

	srv := server.New(cfg)

	// Public routes
	srv.App.Get("/health", func(c *fiber.Ctx) error {
		if err := store.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
	srv.App.Get("/track/:number", trackingHdl.Track)
	srv.App.Get("/services", catalogHdl.List)
	srv.App.Get("/testimonials", testimonialHdl.ListApproved)
	srv.App.Post("/testimonials", testimonialHdl.Submit)
	srv.App.Post("/inquiries", inquiryHdl.Submit)
	srv.App.Get("/company", companyHdl.GetDetails)
	srv.App.Get("/assets", companyHdl.GetAssets)
	srv.App.Get("/chat/greeting", assistantHdl.Greeting)
	srv.App.Post("/chat", assistantHdl.Chat)
	srv.App.Post("/admin/login", authHdl.Login)

	// Operator routes
	admin := srv.App.Group("/admin", auth.Require(authenticator))
	admin.Get("/shipments", shipmentAdminHdl.List)
	admin.Get("/shipments/next-tracking-number", shipmentAdminHdl.NextTrackingNumber)
	admin.Get("/shipments/:id", shipmentAdminHdl.Get)
	admin.Post("/shipments", shipmentAdminHdl.Create)
	admin.Put("/shipments/:id", shipmentAdminHdl.Update)
	admin.Delete("/shipments/:id", shipmentAdminHdl.Delete)
	admin.Post("/services", catalogHdl.Create)
	admin.Put("/services/:id", catalogHdl.Update)
	admin.Delete("/services/:id", catalogHdl.Delete)
	admin.Get("/testimonials", testimonialHdl.ListAll)
	admin.Put("/testimonials/:id/approval", testimonialHdl.SetApproval)
	admin.Delete("/testimonials/:id", testimonialHdl.Delete)
	admin.Get("/inquiries", inquiryHdl.List)
	admin.Put("/inquiries/:id/status", inquiryHdl.SetStatus)
	admin.Delete("/inquiries/:id", inquiryHdl.Delete)
	admin.Put("/company", companyHdl.UpdateDetails)
	admin.Put("/assets", companyHdl.UpdateAssets)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
