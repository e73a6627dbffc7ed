package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hotel-premium-backend/config"
	"hotel-premium-backend/controllers"
	"hotel-premium-backend/routes"
	"hotel-premium-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Audit persistence is optional; a missing database only degrades the
	// trail to in-memory.
	auditDB, err := config.ConnectAuditDatabase(cfg.AuditDSN)
	if err != nil {
		logger.Warn("audit database unavailable, keeping audit trail in memory", zap.Error(err))
		auditDB = nil
	}
	auditService := services.NewAuditService(auditDB, logger)

	var mailer *services.Mailer
	if cfg.SMTP.Enabled() {
		mailer = services.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User,
			cfg.SMTP.Password, cfg.SMTP.FromName, cfg.SMTP.FromEmail)
		logger.Info("smtp notifications enabled", zap.String("host", cfg.SMTP.Host))
	}
	notifier := services.NewNotificationService(mailer, auditService, logger)

	// Core services
	roomService := services.NewRoomService(logger)
	roomService.InitializeCatalog()
	minibarService := services.NewMinibarService(roomService, auditService, logger)
	clientService := services.NewClientService(auditService, logger)
	guestService := services.NewGuestService(auditService, logger)
	invoiceService := services.NewInvoiceService(roomService, minibarService, guestService, logger)
	reservationService := services.NewReservationService(
		roomService, clientService, guestService, invoiceService, notifier, auditService, logger)
	extrasService := services.NewExtrasService(reservationService, roomService, auditService, logger)

	// Controllers
	roomController := controllers.NewRoomController(roomService, minibarService)
	clientController := controllers.NewClientController(clientService)
	guestController := controllers.NewGuestController(guestService)
	reservationController := controllers.NewReservationController(reservationService)
	extrasController := controllers.NewExtrasController(extrasService)
	invoiceController := controllers.NewInvoiceController(invoiceService)
	auditController := controllers.NewAuditController(auditService)

	router := routes.SetupRouter(
		roomController,
		clientController,
		guestController,
		reservationController,
		extrasController,
		invoiceController,
		auditController,
		cfg.CORSOrigins,
		logger,
	)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}
	logger.Info("server stopped gracefully")
}
