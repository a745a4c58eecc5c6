// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/smartspend/backend/config"
	"github.com/smartspend/backend/internal/application/usecase/alert"
	"github.com/smartspend/backend/internal/application/usecase/analytics"
	"github.com/smartspend/backend/internal/application/usecase/budget"
	"github.com/smartspend/backend/internal/application/usecase/data"
	"github.com/smartspend/backend/internal/application/usecase/notification"
	"github.com/smartspend/backend/internal/application/usecase/profile"
	"github.com/smartspend/backend/internal/application/usecase/settings"
	"github.com/smartspend/backend/internal/application/usecase/transaction"
	"github.com/smartspend/backend/internal/infra/server/router"
	"github.com/smartspend/backend/internal/integration/alerts"
	"github.com/smartspend/backend/internal/integration/entrypoint/controller"
	"github.com/smartspend/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Redis        *redis.Client
	Router       *router.Router
	SeedDemoData *data.SeedDemoDataUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	notificationRepo := persistence.NewNotificationRepository(db)
	profileRepo := persistence.NewProfileRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)
	alertRegistry := alerts.NewRedisAlertRegistry(redisClient)

	// Create alert use cases
	showAlertUseCase := alert.NewShowAlertUseCase(alertRegistry, notificationRepo)
	dismissAlertUseCase := alert.NewDismissAlertUseCase(alertRegistry)
	listAlertsUseCase := alert.NewListAlertsUseCase(alertRegistry)

	// Create budget use cases
	evaluateBudgetUseCase := budget.NewEvaluateBudgetUseCase(budgetRepo, transactionRepo, settingsRepo, showAlertUseCase)
	setBudgetUseCase := budget.NewSetBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, transactionRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, notificationRepo, settingsRepo, evaluateBudgetUseCase)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create analytics use cases
	getSummaryUseCase := analytics.NewGetSummaryUseCase(transactionRepo)
	getCategoryBreakdownUseCase := analytics.NewGetCategoryBreakdownUseCase(transactionRepo)
	getDailySpendingUseCase := analytics.NewGetDailySpendingUseCase(transactionRepo)

	// Create notification use cases
	listNotificationsUseCase := notification.NewListNotificationsUseCase(notificationRepo)
	markReadUseCase := notification.NewMarkReadUseCase(notificationRepo)
	markAllReadUseCase := notification.NewMarkAllReadUseCase(notificationRepo)
	deleteNotificationUseCase := notification.NewDeleteNotificationUseCase(notificationRepo)
	clearNotificationsUseCase := notification.NewClearNotificationsUseCase(notificationRepo)

	// Create profile and settings use cases
	getProfileUseCase := profile.NewGetProfileUseCase(profileRepo)
	updateProfileUseCase := profile.NewUpdateProfileUseCase(profileRepo)
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo)

	// Create data lifecycle use cases
	seedDemoDataUseCase := data.NewSeedDemoDataUseCase(transactionRepo, settingsRepo)
	clearAllDataUseCase := data.NewClearAllDataUseCase(transactionRepo, budgetRepo, notificationRepo, profileRepo, settingsRepo)
	exportDataUseCase := data.NewExportDataUseCase(transactionRepo, settingsRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			return redisClient.Ping(context.Background()).Err() == nil
		},
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	analyticsController := controller.NewAnalyticsController(
		getSummaryUseCase,
		getCategoryBreakdownUseCase,
		getDailySpendingUseCase,
	)

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		setBudgetUseCase,
		deleteBudgetUseCase,
	)

	notificationController := controller.NewNotificationController(
		listNotificationsUseCase,
		markReadUseCase,
		markAllReadUseCase,
		deleteNotificationUseCase,
		clearNotificationsUseCase,
	)

	alertController := controller.NewAlertController(
		showAlertUseCase,
		dismissAlertUseCase,
		listAlertsUseCase,
	)

	profileController := controller.NewProfileController(getProfileUseCase, updateProfileUseCase)
	settingsController := controller.NewSettingsController(getSettingsUseCase, updateSettingsUseCase)
	dataController := controller.NewDataController(clearAllDataUseCase, exportDataUseCase)

	r := router.NewRouter(
		healthController,
		transactionController,
		analyticsController,
		budgetController,
		notificationController,
		alertController,
		profileController,
		settingsController,
		dataController,
	)

	return &Injector{
		Config:       cfg,
		DB:           db,
		Redis:        redisClient,
		Router:       r,
		SeedDemoData: seedDemoDataUseCase,
	}
}
