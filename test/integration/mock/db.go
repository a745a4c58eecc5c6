// Package mock provides shared in-memory backends for integration tests.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/smartspend/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps the shared in-memory sqlite connection used by the suite.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens the shared in-memory database, migrating the full schema on
// first use. The connection is a singleton so every scenario sees the same
// store; call ClearDB between scenarios.
func NewDb() *Db {
	if db == nil {
		dbOnce.Do(
			func() {
				db = open()
			},
		)
	}

	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	models := []any{
		&model.TransactionModel{},
		&model.BudgetGoalModel{},
		&model.NotificationModel{},
		&model.UserProfileModel{},
		&model.SettingsModel{},
	}
	if err := dbConn.AutoMigrate(models...); err != nil {
		panic("failed to migrate schema. err: " + err.Error())
	}

	return &Db{
		DbConn: dbConn,
		models: models,
	}
}

// ClearDB wipes every table so the next scenario starts from an empty store.
func (d *Db) ClearDB() error {
	for _, m := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return fmt.Errorf("failed to clear table for model %T: %w", m, err)
		}
	}
	return nil
}
