package routes

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/domain/reporting"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/infra/lock"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/barber-booking/internal/usecase/catalog"
	ucReporting "github.com/BruksfildServices01/barber-booking/internal/usecase/reporting"
)

// Deps are the process-wide singletons built by main. Optional adapters
// (StatsCache, PhotoStore) stay nil when their backend is not configured.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *slog.Logger
	Audit  *audit.Dispatcher
	Now    timezone.Clock

	StatsCache reporting.Cache
	PhotoStore catalog.PhotoStore
	Limiter    middleware.Limiter

	Checks map[string]handlers.Check
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	loc := timezone.Location(cfg.Timezone)

	now := d.Now
	if now == nil {
		now = timezone.SystemClock(loc)
	}

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(d.Log),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	catalogRepo := infraRepo.NewCatalogGormRepository(d.DB)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB, cfg.BookingLockTimeout)
	reportingRepo := infraRepo.NewReportingGormRepository(d.DB)
	locks := lock.NewKeyed(cfg.BookingLockTimeout)

	scheduling := ucAppointment.SchedulingConfig{
		Location:    loc,
		Granularity: cfg.SlotGranularity(),
		DefaultHours: domain.DefaultHours{
			Open:  cfg.DefaultOpenTime,
			Close: cfg.DefaultCloseTime,
		},
		ReadRetryAttempts: cfg.ReadRetryAttempts,
		RetryBackoff:      50 * time.Millisecond,
	}

	ucLog := d.Log.With("component", "usecase")

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(catalogRepo, appointmentRepo, scheduling, now, ucLog)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		catalogRepo,
		appointmentRepo,
		locks,
		d.Audit,
		scheduling,
		now,
		ucLog,
	)
	if cfg.CheckEmailDomain {
		createAppointmentUC.CheckEmailDomain = validators.IsEmailDomainValid
	}

	searchUC := ucAppointment.NewSearchAppointments(appointmentRepo, scheduling)
	scheduleUC := ucAppointment.NewBarberSchedule(catalogRepo, appointmentRepo, scheduling)
	setStatusUC := ucAppointment.NewSetStatus(appointmentRepo, locks, d.Audit, now, ucLog)
	confirmUC := ucAppointment.NewConfirmAppointment(appointmentRepo, d.Audit, now, ucLog)
	completeUC := ucAppointment.NewCompleteAppointment(appointmentRepo, d.Audit, now, ucLog)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, d.Audit, now, ucLog)
	noShowUC := ucAppointment.NewMarkNoShow(appointmentRepo, d.Audit, now, ucLog)

	// ======================================================
	// 🧠 USE CASES — CATALOG / REPORTING
	// ======================================================
	listBarbersUC := ucCatalog.NewListBarbers(catalogRepo)
	listServicesUC := ucCatalog.NewListServices(catalogRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(d.Checks)

	publicHandler := handlers.NewPublicHandler(
		listBarbersUC,
		listServicesUC,
		availabilityUC,
		createAppointmentUC,
		loc,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		searchUC,
		scheduleUC,
		setStatusUC,
		confirmUC,
		completeUC,
		cancelUC,
		noShowUC,
		loc,
		now,
	)

	barberHandler := handlers.NewBarberHandler(
		listBarbersUC,
		ucCatalog.NewUpdateCommission(catalogRepo, d.Audit, ucLog),
		ucCatalog.NewUploadBarberPhoto(catalogRepo, d.PhotoStore, cfg.PhotoMaxSide, d.Audit, ucLog),
	)

	serviceHandler := handlers.NewServiceHandler(
		listServicesUC,
		ucCatalog.NewCreateService(catalogRepo, d.Audit, ucLog),
		ucCatalog.NewUpdateService(catalogRepo, d.Audit, ucLog),
	)

	workingHoursHandler := handlers.NewWorkingHoursHandler(
		ucCatalog.NewGetWorkingHours(catalogRepo, scheduling.DefaultHours),
		ucCatalog.NewReplaceWorkingHours(catalogRepo, d.Audit, ucLog),
	)

	statsHandler := handlers.NewStatsHandler(
		ucReporting.NewDashboardStats(reportingRepo, d.StatsCache, cfg.StatsCacheTTL, loc, now, ucLog),
	)
	clientHandler := handlers.NewClientHandler(ucReporting.NewListClients(reportingRepo))
	auditLogsHandler := handlers.NewAuditLogsHandler(ucReporting.NewListAuditLogs(reportingRepo))

	// ======================================================
	// 🩺 PROBES
	// ======================================================
	r.GET("/health", healthHandler.Live)
	r.GET("/readyz", healthHandler.Ready)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api/v1")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/barbers", publicHandler.ListBarbers)
		api.GET("/services", publicHandler.ListServices)
		api.GET("/availability", publicHandler.Availability)

		booking := []gin.HandlerFunc{}
		if d.Limiter != nil {
			booking = append(booking, middleware.RateLimit(d.Limiter, "booking", d.Log))
		}
		booking = append(booking, publicHandler.CreateAppointment)
		api.POST("/appointments", booking...)

		// ------------------------------
		// 🔐 API ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AdminOnly(cfg.AdminJWTSecret))
		{
			admin.GET("/stats", statsHandler.Get)

			admin.GET("/appointments", appointmentHandler.Search)
			admin.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)
			admin.POST("/appointments/:id/confirm", appointmentHandler.Confirm)
			admin.POST("/appointments/:id/complete", appointmentHandler.Complete)
			admin.POST("/appointments/:id/cancel", appointmentHandler.Cancel)
			admin.POST("/appointments/:id/no-show", appointmentHandler.NoShow)

			admin.GET("/barbers", barberHandler.List)
			admin.GET("/barbers/:id/schedule", appointmentHandler.BarberSchedule)
			admin.PATCH("/barbers/:id/commission", barberHandler.UpdateCommission)
			admin.GET("/barbers/:id/working-hours", workingHoursHandler.Get)
			admin.PUT("/barbers/:id/working-hours", workingHoursHandler.Update)
			admin.PUT("/barbers/:id/photo", barberHandler.UploadPhoto)

			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)

			admin.GET("/clients", clientHandler.List)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
