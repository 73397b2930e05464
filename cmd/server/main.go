package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodcart/docs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"foodcart/internal/auth"
	"foodcart/internal/cache"
	"foodcart/internal/config"
	"foodcart/internal/db"
	"foodcart/internal/handler"
	"foodcart/internal/mailer"
	"foodcart/internal/model"
	"foodcart/internal/repository"
	"foodcart/internal/router"
	"foodcart/internal/service"
)

// @title Foodcart Storefront API
// @version 1.0
// @description Storefront API for a food-cart retailer: catalog, inquiries, certificates, testimonials, and site settings with JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	logger, _ := zap.NewProduction()
	if !cfg.IsProduction() {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Inquiry{},
		&model.Certificate{},
		&model.Testimonial{},
		&model.SiteSetting{},
	); err != nil {
		logger.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	inquiryRepo := repository.NewInquiryRepository(gormDB)
	certificateRepo := repository.NewCertificateRepository(gormDB)
	testimonialRepo := repository.NewTestimonialRepository(gormDB)
	settingRepo := repository.NewSettingRepository(gormDB)

	tokenService := auth.NewTokenService(cfg.JWTSecret)

	var sender mailer.Sender
	if smtp := mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword); smtp != nil {
		sender = smtp
	} else {
		logger.Info("mail relay not configured, inquiry notifications disabled")
	}
	notifier := mailer.NewNotifier(sender, cfg.AdminEmail, logger)
	defer notifier.Close()

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService)
	productService := service.NewProductService(productRepo)
	inquiryService := service.NewInquiryService(inquiryRepo, productRepo, notifier)
	certificateService := service.NewCertificateService(certificateRepo)
	testimonialService := service.NewTestimonialService(testimonialRepo)
	settingsService := service.NewSettingsService(settingRepo, cacheClient)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, cfg, logger, tokenService, userRepo, router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Product:     handler.NewProductHandler(productService),
		Inquiry:     handler.NewInquiryHandler(inquiryService),
		Certificate: handler.NewCertificateHandler(certificateService),
		Testimonial: handler.NewTestimonialHandler(testimonialService),
		Settings:    handler.NewSettingsHandler(settingsService),
	})

	go func() {
		addr := ":" + cfg.ServerPort
		logger.Info("server starting", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server start", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}
