package database

import (
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the CGO-free "sqlite" database/sql driver.
	_ "modernc.org/sqlite"

	"bookhub/internal/domain"
)

// Connect opens PostgreSQL when the DSN looks like a postgres URL, and falls
// back to SQLite (CGO-free modernc driver) for local development and tests.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		logrus.WithField("driver", "postgres").Info("connecting to database")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	logrus.WithFields(logrus.Fields{"driver": "sqlite", "dsn": dsn}).Info("connecting to database")

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates the schema for every entity the services own.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Resource{},
		&domain.Booking{},
	)
}
