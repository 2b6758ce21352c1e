package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-booking/internal/cache"
	"hospital-booking/internal/config"
	"hospital-booking/internal/database"
	"hospital-booking/internal/handler"
	"hospital-booking/internal/logger"
	"hospital-booking/internal/mail"
	"hospital-booking/internal/middleware"
	"hospital-booking/internal/models"
	"hospital-booking/internal/payment/vnpay"
	"hospital-booking/internal/repository"
	"hospital-booking/internal/service"
	"hospital-booking/internal/storage"
	"hospital-booking/pkg/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	logger.Setup(cfg.Server.LogLevel, cfg.Server.GinMode)
	log.Info("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Initialize infrastructure
	db := database.Connect(cfg)

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	files, err := storage.NewMinIO(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	mailer := mail.New(cfg.Mail)
	gateway := vnpay.NewClient(cfg.VNPay)
	codes := cache.NewVerificationStore(redisClient, cfg.Booking.VerificationTTL)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	specialtyRepo := repository.NewSpecialtyRepo(db)
	serviceRepo := repository.NewServiceRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	scheduleRepo := repository.NewScheduleRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)
	clinicalRepo := repository.NewClinicalRepo(db)
	dashboardRepo := repository.NewDashboardRepo(db)

	// 5. Initialize services
	notificationService := service.NewNotificationService(notificationRepo)
	authService := service.NewAuthService(userRepo, doctorRepo, auditRepo)
	catalogService := service.NewCatalogService(specialtyRepo, serviceRepo, roomRepo, doctorRepo, auditRepo)
	bookingService := service.NewBookingService(appointmentRepo, userRepo, specialtyRepo, serviceRepo, scheduleRepo,
		clinicalRepo, codes, mailer, notificationService, auditRepo, cfg.Booking)
	paymentService := service.NewPaymentService(appointmentRepo, paymentRepo, gateway, mailer, notificationService, auditRepo)
	doctorService := service.NewDoctorService(doctorRepo, scheduleRepo, appointmentRepo, clinicalRepo, files,
		notificationService, auditRepo)
	adminService := service.NewAdminService(dashboardRepo, appointmentRepo, doctorRepo, specialtyRepo, scheduleRepo,
		roomRepo, userRepo, auditRepo)
	expiryWorker := service.NewExpiryWorker(appointmentRepo, codes, notificationService,
		cfg.Booking.PaymentTimeout, cfg.Booking.SweepInterval)

	// 6. Start background worker in goroutine
	go expiryWorker.Start(ctx)

	// 7. Setup Gin
	gin.SetMode(cfg.Server.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), logger.GinLogger(), middleware.CORS(cfg.CORS))

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService, cfg.Server.GinMode == gin.ReleaseMode)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	appointmentHandler := handler.NewAppointmentHandler(bookingService, paymentService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	adminHandler := handler.NewAdminHandler(adminService, catalogService)

	// 9. Define routes
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hospital-booking",
		})
	})

	authLimit := middleware.RateLimit(redisClient, "auth", 20, time.Minute)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authLimit, authHandler.Register)
		auth.POST("/login", authLimit, authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	me := r.Group("/me", middleware.AuthMiddleware())
	{
		me.GET("", authHandler.Me)
		me.PUT("", authHandler.UpdateMe)
	}

	// Catalog (public; admins may pass ?all=true)
	specialties := r.Group("/specialties", middleware.OptionalAuth())
	{
		specialties.GET("", catalogHandler.GetSpecialties)
		specialties.GET("/:id", catalogHandler.GetSpecialty)
		specialties.GET("/:id/services", catalogHandler.GetSpecialtyServices)
		specialties.GET("/:id/doctors", catalogHandler.GetSpecialtyDoctors)
		specialties.GET("/:id/available-dates", appointmentHandler.AvailableDates)
	}

	// Payment gateway callbacks (signature-authenticated)
	payments := r.Group("/payments/vnpay")
	{
		payments.GET("/return", paymentHandler.Return)
		payments.GET("/ipn", paymentHandler.IPN)
	}

	authed := r.Group("/", middleware.AuthMiddleware())

	appointments := authed.Group("/appointments")
	{
		patientOnly := middleware.RequireRole(models.RolePatient)
		patientOrAdmin := middleware.RequireRole(models.RolePatient, models.RoleAdmin)

		appointments.POST("", patientOnly, appointmentHandler.Book)
		appointments.GET("", patientOnly, appointmentHandler.List)
		appointments.GET("/:id", patientOnly, appointmentHandler.Get)
		appointments.GET("/:id/record", patientOnly, appointmentHandler.Record)
		appointments.POST("/:id/verify", patientOnly, appointmentHandler.Verify)
		appointments.POST("/:id/resend-verification", patientOnly,
			middleware.RateLimit(redisClient, "resend", 3, 10*time.Minute), appointmentHandler.ResendVerification)
		appointments.POST("/:id/cancel", patientOrAdmin, appointmentHandler.Cancel)
		appointments.POST("/:id/payment", patientOnly, appointmentHandler.CreatePayment)
		appointments.GET("/:id/receipt", patientOrAdmin, appointmentHandler.Receipt)
	}

	notifications := authed.Group("/notifications")
	{
		notifications.GET("", notificationHandler.List)
		notifications.GET("/unread-count", notificationHandler.UnreadCount)
		notifications.POST("/:id/read", notificationHandler.MarkRead)
		notifications.POST("/read-all", notificationHandler.MarkAllRead)
	}

	authed.GET("/medications", middleware.RequireRole(models.RoleDoctor, models.RoleAdmin), doctorHandler.Medications)

	doctor := authed.Group("/doctor", middleware.RequireRole(models.RoleDoctor))
	{
		doctor.GET("/schedules", doctorHandler.Schedules)
		doctor.GET("/queue", doctorHandler.Queue)
		doctor.GET("/appointments/:id", doctorHandler.Record)
		doctor.POST("/appointments/:id/examination", doctorHandler.Examination)
		doctor.POST("/appointments/:id/prescriptions", doctorHandler.Prescribe)
		doctor.POST("/appointments/:id/tests", doctorHandler.RequestTest)
		doctor.POST("/appointments/:id/complete", doctorHandler.Complete)
		doctor.POST("/tests/:id/result", doctorHandler.UploadResult)
	}

	admin := authed.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("/dashboard", adminHandler.Dashboard)
		admin.GET("/appointments", adminHandler.Appointments)
		admin.GET("/audit-logs", adminHandler.AuditLogs)

		admin.GET("/specialties", catalogHandler.GetSpecialties)
		admin.POST("/specialties", catalogHandler.CreateSpecialty)
		admin.PUT("/specialties/:id", catalogHandler.UpdateSpecialty)
		admin.DELETE("/specialties/:id", catalogHandler.DeleteSpecialty)

		admin.GET("/services", catalogHandler.GetServices)
		admin.POST("/services", catalogHandler.CreateService)
		admin.PUT("/services/:id", catalogHandler.UpdateService)
		admin.DELETE("/services/:id", catalogHandler.DeleteService)

		admin.GET("/rooms", catalogHandler.GetRooms)
		admin.GET("/rooms/:id", catalogHandler.GetRoom)
		admin.POST("/rooms", catalogHandler.CreateRoom)
		admin.PUT("/rooms/:id", catalogHandler.UpdateRoom)
		admin.DELETE("/rooms/:id", catalogHandler.DeleteRoom)

		admin.GET("/doctors", adminHandler.Doctors)
		admin.POST("/doctors", adminHandler.CreateDoctor)
		admin.PUT("/doctors/:id", adminHandler.UpdateDoctor)
		admin.DELETE("/doctors/:id", adminHandler.DeactivateDoctor)

		admin.GET("/schedules", adminHandler.Schedules)
		admin.POST("/schedules", adminHandler.CreateSchedule)
		admin.PUT("/schedules/:id", adminHandler.UpdateSchedule)
		admin.DELETE("/schedules/:id", adminHandler.DeleteSchedule)
	}

	// 10. Serve with graceful shutdown
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Stop the expiry worker before draining requests
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
	log.Info("Server exited")
}
