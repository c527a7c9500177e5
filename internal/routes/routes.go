package routes

import (
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/handlers"
	"github.com/Sagarjaiswal015/Doctor-s-API/internal/middleware"
	"github.com/Sagarjaiswal015/Doctor-s-API/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the route table dispatches to.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Appointments *handlers.AppointmentHandler
	Doctors      *handlers.DoctorHandler
	Slots        *handlers.SlotHandler
	Health       *handlers.HealthHandler
	Admin        *handlers.AdminHandler
}

func SetupRoutes(r *gin.Engine, h Handlers, tokens *utils.TokenManager, limiter *middleware.IPRateLimiter) {
	handlers.RegisterValidation()

	if limiter != nil {
		r.Use(middleware.RateLimitMiddleware(limiter))
	}

	api := r.Group("/api/v1")
	{
		api.GET("/health", h.Health.Check)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.GET("/me", middleware.AuthMiddleware(tokens), h.Auth.Me)
		}

		// Public browsing
		api.GET("/doctors", h.Doctors.List)
		api.GET("/doctors/:id", h.Doctors.Get)
		api.GET("/slots/available", h.Slots.Available)
		api.GET("/slots/doctor/:doctorId", h.Slots.ByDoctor)
		api.GET("/slots/:id", h.Slots.Get)

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(tokens))
		{
			appointments := protected.Group("/appointments")
			{
				appointments.POST("", middleware.UserOnly(), h.Appointments.Book)
				appointments.GET("/my-appointments", middleware.UserOnly(), h.Appointments.MyAppointments)
				appointments.GET("/:id", h.Appointments.Get)
				appointments.POST("/:id/cancel", middleware.UserOnly(), h.Appointments.Cancel)
			}

			doctor := protected.Group("/doctors")
			doctor.Use(middleware.DoctorOnly())
			{
				doctor.GET("/:id/schedule", h.Doctors.Schedule)
				doctor.GET("/:id/appointments", h.Doctors.Appointments)
			}

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				admin.POST("/doctors", h.Doctors.Create)
				admin.POST("/slots", h.Slots.Create)
				admin.GET("/admin/dashboard", h.Admin.Dashboard)
				admin.POST("/admin/reconcile", h.Admin.Reconcile)
			}
		}
	}
}
