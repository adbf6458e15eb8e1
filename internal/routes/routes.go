package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OficinaTechBR/workshop-api/internal/accounts"
	"github.com/OficinaTechBR/workshop-api/internal/audit"
	"github.com/OficinaTechBR/workshop-api/internal/billing"
	"github.com/OficinaTechBR/workshop-api/internal/config"
	"github.com/OficinaTechBR/workshop-api/internal/handlers"
	infraRepo "github.com/OficinaTechBR/workshop-api/internal/infra/repository"
	"github.com/OficinaTechBR/workshop-api/internal/loginguard"
	"github.com/OficinaTechBR/workshop-api/internal/mailer"
	"github.com/OficinaTechBR/workshop-api/internal/middleware"
	"github.com/OficinaTechBR/workshop-api/internal/models"
	"github.com/OficinaTechBR/workshop-api/internal/notification"
	"github.com/OficinaTechBR/workshop-api/internal/storage"
	ucAppointment "github.com/OficinaTechBR/workshop-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notificationDispatcher := notification.NewDispatcher(db)
	notifier := notification.NewService(notificationDispatcher)

	guard := loginguard.New(loginguard.NewClient(cfg.RedisAddr, cfg.RedisPassword))

	mail := mailer.FromConfig(cfg)
	accountsSvc := accounts.NewService(db, mail, cfg)

	uploader := storage.NewUploader(cfg)

	gateway, err := billing.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		// Sem gateway a API sobe normalmente; só o pagamento fica indisponível.
		log.Printf("[routes] mercado pago indisponível: %v", err)
	}

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		notifier,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
	)

	getAppointmentUC := ucAppointment.NewGetAppointment(
		appointmentRepo,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointmentStatus(
		appointmentRepo,
		notifier,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, guard, accountsSvc, auditDispatcher)
	meHandler := handlers.NewMeHandler(db, accountsSvc)

	vehicleHandler := handlers.NewVehicleHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db, appointmentRepo)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		getAppointmentUC,
		updateAppointmentUC,
		cancelAppointmentUC,
	)

	workOrderHandler := handlers.NewWorkOrderHandler(
		db,
		notifier,
		auditDispatcher,
		uploader,
		gateway,
	)

	partHandler := handlers.NewPartHandler(db, auditDispatcher)
	notificationHandler := handlers.NewNotificationHandler(db)
	adminHandler := handlers.NewAdminHandler(db, auditDispatcher)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/confirm", authHandler.Confirm)
		api.POST("/auth/forgot-password", authHandler.ForgotPassword)
		api.POST("/auth/reset-password", authHandler.ResetPassword)
		api.POST("/auth/unlock", authHandler.Unlock)
		api.POST("/auth/email-change/confirm", authHandler.ConfirmEmailChange)
		api.POST("/auth/email-change/revert", authHandler.RevertEmailChange)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/me/email-change", meHandler.RequestEmailChange)

			// ------------------------------
			// VEHICLES
			// ------------------------------
			secured.GET("/vehicles", vehicleHandler.List)
			secured.POST("/vehicles", vehicleHandler.Create)
			secured.GET("/vehicles/:id", vehicleHandler.Get)
			secured.PATCH("/vehicles/:id", vehicleHandler.Update)
			secured.DELETE("/vehicles/:id", vehicleHandler.Delete)

			// ------------------------------
			// SCHEDULES
			// ------------------------------
			secured.GET("/schedules", scheduleHandler.List)
			secured.PUT("/schedules",
				middleware.RequireRole(models.RoleMechanic),
				scheduleHandler.Upsert)
			secured.PATCH("/schedules/:id/hours",
				middleware.RequireRole(models.RoleMechanic),
				scheduleHandler.PatchHours)
			secured.DELETE("/schedules/:id",
				middleware.RequireRole(models.RoleMechanic),
				scheduleHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments",
				middleware.RequireRole(models.RoleClient),
				appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id",
				middleware.RequireRole(models.RoleClient),
				appointmentHandler.Cancel)

			// ------------------------------
			// WORK ORDERS
			// ------------------------------
			secured.POST("/work-orders",
				middleware.RequireRole(models.RoleMechanic),
				workOrderHandler.Create)
			secured.GET("/work-orders", workOrderHandler.List)
			secured.GET("/work-orders/:id", workOrderHandler.Get)
			secured.PATCH("/work-orders/:id",
				middleware.RequireRole(models.RoleMechanic),
				workOrderHandler.Update)
			secured.POST("/work-orders/:id/items",
				middleware.RequireRole(models.RoleMechanic),
				workOrderHandler.AddItem)
			secured.DELETE("/work-orders/:id/items/:itemId",
				middleware.RequireRole(models.RoleMechanic),
				workOrderHandler.RemoveItem)
			secured.POST("/work-orders/:id/photo",
				middleware.RequireRole(models.RoleMechanic),
				workOrderHandler.UploadPhoto)
			secured.POST("/work-orders/:id/payment",
				middleware.RequireRole(models.RoleClient),
				workOrderHandler.CreatePayment)

			// ------------------------------
			// PARTS (estoque)
			// ------------------------------
			secured.GET("/parts",
				middleware.RequireRole(models.RoleMechanic, models.RoleAdmin),
				partHandler.List)
			secured.GET("/parts/:id",
				middleware.RequireRole(models.RoleMechanic, models.RoleAdmin),
				partHandler.Get)
			secured.POST("/parts",
				middleware.RequireRole(models.RoleAdmin),
				partHandler.Create)
			secured.PATCH("/parts/:id",
				middleware.RequireRole(models.RoleAdmin),
				partHandler.Update)
			secured.POST("/parts/:id/stock",
				middleware.RequireRole(models.RoleMechanic, models.RoleAdmin),
				partHandler.AdjustStock)

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			secured.GET("/notifications", notificationHandler.List)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
			secured.PATCH("/notifications/read-all", notificationHandler.MarkAllRead)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/users", adminHandler.ListUsers)
				admin.PATCH("/users/:id", adminHandler.UpdateUser)
				admin.GET("/audit-logs", adminHandler.ListAuditLogs)
			}
		}
	}
}
