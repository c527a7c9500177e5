package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sagarjaiswal015/Doctor-s-API/internal/config"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/handlers"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/jobs"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/middleware"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/repository"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/routes"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/services"
	"github.com/Sagarjaiswal015/Doctor-s-API/pkg/utils"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// 1. Load env
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Error reporting
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN, AttachStacktrace: true}); err != nil {
			log.Fatalf("sentry.Init: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	// 3. Connect DB, migrate, seed admin
	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	store := repository.NewStore(db)
	if err := config.SeedAdmin(ctx, store, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	// 4. Services
	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTExpiration)
	authService := services.NewAuthService(store, tokens)
	doctorService := services.NewDoctorService(store)
	slotService := services.NewSlotService(store, nil)
	appointmentService := services.NewAppointmentService(store, nil)
	adminService := services.NewAdminService(store, slotService)

	// 5. Background jobs
	scheduler, err := jobs.Start(cfg.ReconcileSchedule, slotService)
	if err != nil {
		log.Fatalf("Failed to schedule jobs: %v", err)
	}
	if scheduler != nil {
		defer scheduler.Stop()
	}

	// 6. Router
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	if cfg.SentryDSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	defer limiter.Stop()

	routes.SetupRoutes(r, routes.Handlers{
		Auth:         handlers.NewAuthHandler(authService),
		Appointments: handlers.NewAppointmentHandler(appointmentService),
		Doctors:      handlers.NewDoctorHandler(doctorService, slotService, appointmentService),
		Slots:        handlers.NewSlotHandler(slotService),
		Health:       handlers.NewHealthHandler(store),
		Admin:        handlers.NewAdminHandler(adminService),
	}, tokens, limiter)

	// 7. Run server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Println("Server running on port " + cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
