package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var dbConn *gorm.DB

// NewDb opens a shared in-memory SQLite database and migrates the given
// models. The connection is a process-wide singleton so every scenario talks
// to the same schema; ClearDb resets the data between scenarios.
func NewDb(models ...any) *gorm.DB {
	dbOnce.Do(func() {
		dbConn = open(models...)
	})
	return dbConn
}

func open(models ...any) *gorm.DB {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the in-memory database alive and serializes
	// access, which SQLite requires anyway.
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	if err := conn.AutoMigrate(models...); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return conn
}

// ClearDb removes all rows from the tables backing the given models.
func ClearDb(db *gorm.DB, models ...any) error {
	for _, model := range models {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear table for model %T: %w", model, err)
		}
	}
	return nil
}
