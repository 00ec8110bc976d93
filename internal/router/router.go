package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"estatehub/internal/domain"
	"estatehub/internal/handler"
	"estatehub/internal/middleware"
	"estatehub/internal/port"
	"estatehub/internal/service"
)

// Deps carries everything the router wires into routes.
type Deps struct {
	Log            logrus.FieldLogger
	AllowedOrigins []string
	// PropertyLimiter guards property updates; nil disables limiting.
	PropertyLimiter port.RateLimiter
	EnableSwagger   bool

	AuthService service.AuthService

	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Commission   *handler.CommissionReportHandler
	Daily        *handler.DailyReportHandler
	Notification *handler.NotificationHandler
	Property     *handler.PropertyHandler
	Setting      *handler.SettingHandler
	Health       *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(d Deps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Log))
	r.Use(middleware.CORS(d.AllowedOrigins))

	// Health checks
	r.GET("/healthz", d.Health.Liveness)
	r.GET("/readyz", d.Health.Readiness)

	if d.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", d.Auth.Login)
	auth.POST("/refresh", d.Auth.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(d.AuthService))

	protected.GET("/users/me", d.User.Me)

	// Commission reports
	commission := protected.Group("/operations-commission/monthly")
	commission.GET("", d.Commission.List)
	commission.POST("", d.Commission.Create)
	commission.GET("/:id", d.Commission.Get)
	commission.PUT("/:id", d.Commission.Update)
	commission.DELETE("/:id", d.Commission.Delete)
	commission.POST("/:id/recalculate", d.Commission.Recalculate)
	commission.GET("/:id/export/excel", d.Commission.ExportExcel)
	commission.GET("/:id/export/pdf", d.Commission.ExportPDF)

	// Daily operations reports
	daily := protected.Group("/operations-daily")
	daily.GET("/operations-users", d.Daily.OperationsUsers)
	daily.GET("", d.Daily.List)
	daily.POST("", d.Daily.Create)
	daily.GET("/:id", d.Daily.Get)
	daily.PUT("/:id", d.Daily.Update)
	daily.DELETE("/:id", d.Daily.Delete)
	daily.POST("/:id/recalculate", d.Daily.Recalculate)
	daily.GET("/:id/export/excel", d.Daily.ExportExcel)
	daily.GET("/:id/export/pdf", d.Daily.ExportPDF)

	// Notifications for the current user
	notifications := protected.Group("/notifications")
	notifications.GET("", d.Notification.List)
	notifications.GET("/unread-count", d.Notification.UnreadCount)
	notifications.PUT("/read-all", d.Notification.MarkAllAsRead)
	notifications.PUT("/:id/read", d.Notification.MarkAsRead)
	notifications.POST("/test", d.Notification.CreateTest)
	notifications.DELETE("/cleanup", middleware.RequireRole(domain.RoleAdmin), d.Notification.Cleanup)
	notifications.DELETE("/:id", d.Notification.Delete)

	// Properties
	properties := protected.Group("/properties")
	properties.GET("", d.Property.List)
	properties.POST("", d.Property.Create)
	properties.GET("/:id", d.Property.Get)
	properties.POST("/:id/close", d.Property.Close)
	if d.PropertyLimiter != nil {
		properties.PUT("/:id", middleware.RateLimit(d.PropertyLimiter, d.Log), d.Property.Update)
	} else {
		properties.PUT("/:id", d.Property.Update)
	}

	// Settings (admin)
	settings := protected.Group("/settings")
	settings.Use(middleware.RequireRole(domain.RoleAdmin))
	settings.GET("/commission-percentage", d.Setting.GetCommissionPercentage)
	settings.PUT("/commission-percentage", d.Setting.UpdateCommissionPercentage)

	return r
}
