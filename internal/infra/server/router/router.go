// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/smartspend/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	transactionController  *controller.TransactionController
	analyticsController    *controller.AnalyticsController
	budgetController       *controller.BudgetController
	notificationController *controller.NotificationController
	alertController        *controller.AlertController
	profileController      *controller.ProfileController
	settingsController     *controller.SettingsController
	dataController         *controller.DataController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	analyticsController *controller.AnalyticsController,
	budgetController *controller.BudgetController,
	notificationController *controller.NotificationController,
	alertController *controller.AlertController,
	profileController *controller.ProfileController,
	settingsController *controller.SettingsController,
	dataController *controller.DataController,
) *Router {
	return &Router{
		healthController:       healthController,
		transactionController:  transactionController,
		analyticsController:    analyticsController,
		budgetController:       budgetController,
		notificationController: notificationController,
		alertController:        alertController,
		profileController:      profileController,
		settingsController:     settingsController,
		dataController:         dataController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		analytics := v1.Group("/analytics")
		{
			analytics.GET("/summary", r.analyticsController.Summary)
			analytics.GET("/categories", r.analyticsController.CategoryBreakdown)
			analytics.GET("/daily", r.analyticsController.DailySpending)
		}

		budgets := v1.Group("/budgets")
		{
			budgets.GET("", r.budgetController.List)
			budgets.PUT("", r.budgetController.Set)
			budgets.DELETE("/:category", r.budgetController.Delete)
		}

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", r.notificationController.List)
			notifications.POST("/read-all", r.notificationController.MarkAllRead)
			notifications.POST("/:id/read", r.notificationController.MarkRead)
			notifications.DELETE("/:id", r.notificationController.Delete)
			notifications.DELETE("", r.notificationController.Clear)
		}

		alerts := v1.Group("/alerts")
		{
			alerts.GET("", r.alertController.List)
			alerts.POST("", r.alertController.Show)
			alerts.DELETE("/:id", r.alertController.Dismiss)
		}

		v1.GET("/profile", r.profileController.Get)
		v1.PUT("/profile", r.profileController.Update)

		v1.GET("/settings", r.settingsController.Get)
		v1.PATCH("/settings", r.settingsController.Update)

		data := v1.Group("/data")
		{
			data.POST("/clear", r.dataController.Clear)
			data.GET("/export", r.dataController.Export)
		}
	}
}
