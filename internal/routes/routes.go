package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/EspacoLashStudio/studio-agenda/internal/audit"
	"github.com/EspacoLashStudio/studio-agenda/internal/cache"
	"github.com/EspacoLashStudio/studio-agenda/internal/config"
	"github.com/EspacoLashStudio/studio-agenda/internal/handlers"
	infraRepo "github.com/EspacoLashStudio/studio-agenda/internal/infra/repository"
	"github.com/EspacoLashStudio/studio-agenda/internal/middleware"
	ucSchedule "github.com/EspacoLashStudio/studio-agenda/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	availabilityCache := cache.NewAvailabilityCache(rdb, log)

	// ======================================================
	// 🧠 USE CASES — AGENDA
	// ======================================================
	availabilityUC := ucSchedule.NewGetAvailability(scheduleRepo, availabilityCache)

	createUC := ucSchedule.NewCreateAppointment(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	rescheduleUC := ucSchedule.NewRescheduleAppointment(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)

	confirmUC := ucSchedule.NewConfirmAppointment(scheduleRepo, auditDispatcher)
	cancelUC := ucSchedule.NewCancelAppointment(
		scheduleRepo,
		auditDispatcher,
		availabilityCache,
	)
	completeUC := ucSchedule.NewCompleteAppointment(scheduleRepo, auditDispatcher)

	listByDateUC := ucSchedule.NewListAppointmentsByDate(scheduleRepo)
	listByMonthUC := ucSchedule.NewListAppointmentsByMonth(scheduleRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	clientHandler := handlers.NewClientHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	blockedSlotHandler := handlers.NewBlockedSlotHandler(db, auditDispatcher, availabilityCache)
	bookingSlotHandler := handlers.NewBookingSlotHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		rescheduleUC,
		confirmUC,
		cancelUC,
		completeUC,
		availabilityUC,
		listByDateUC,
		listByMonthUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, availabilityUC, createUC, cancelUC)

	// ======================================================
	// 📊 MÉTRICAS
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (link de agendamento)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
			publicAPI.GET("/:slug/appointments/:ref", publicHandler.GetByRef)
			publicAPI.PATCH("/:slug/appointments/:ref/cancel", publicHandler.CancelByRef)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.PATCH("/me/clients/:id", clientHandler.Update)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)

			secured.GET("/me/working-hours", workingHoursHandler.Get)
			secured.PUT("/me/working-hours", workingHoursHandler.Update)

			secured.GET("/me/blocked-slots", blockedSlotHandler.List)
			secured.POST("/me/blocked-slots", blockedSlotHandler.Create)
			secured.DELETE("/me/blocked-slots/:id", blockedSlotHandler.Delete)

			secured.GET("/me/booking-slots", bookingSlotHandler.List)
			secured.PUT("/me/booking-slots", bookingSlotHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.GET("/me/agenda", appointmentHandler.Agenda)
			secured.GET("/me/availability", appointmentHandler.Availability)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/reschedule", appointmentHandler.Reschedule)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
