package database

import (
	"fmt"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens the cache database. The driver comes from config: sqlite is the
// default and runs in memory, matching the process-lifetime persistence
// scope; postgres is available when a durable generation cache is wanted.
// Returns nil when no driver is configured - the app then runs on the
// in-memory cache alone.
func New(config *viper.Viper) *gorm.DB {
	driver := config.GetString("database.driver")

	var (
		db  *gorm.DB
		err error
	)

	switch driver {
	case "":
		return nil
	case "sqlite":
		dsn := config.GetString("database.dsn")
		if dsn == "" {
			dsn = "file::memory:?cache=shared"
		}
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "postgres":
		sslmode := config.GetString("database.sslmode")
		if sslmode == "" {
			sslmode = "disable"
		}
		timezone := config.GetString("database.timezone")
		if timezone == "" {
			timezone = "UTC"
		}
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
			config.GetString("database.host"),
			config.GetString("database.username"),
			config.GetString("database.password"),
			config.GetString("database.dbname"),
			config.GetInt("database.port"),
			sslmode,
			timezone,
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		panic(fmt.Errorf("unsupported database driver: %s", driver))
	}

	if err != nil {
		panic(fmt.Errorf("failed to connect database: %w", err))
	}

	return db
}
