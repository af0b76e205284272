package config

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/adithyasam-ganj/Fikar-Mat/internal/models"
)

const defaultDBPath = "fikarmat.db"

// InitSQLite opens the shared database file pointed at by FIKARMAT_DB and
// makes sure the schema exists. The returned handle is passed down to the
// repositories; nothing else holds a session.
func InitSQLite() (*gorm.DB, error) {
	path := os.Getenv("FIKARMAT_DB")
	if path == "" {
		path = defaultDBPath
	}

	gormLog := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; one pooled connection avoids
	// SQLITE_BUSY under the dashboard's request-per-render load.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	// The bot process normally owns the schema; AutoMigrate is additive
	// only, so a fresh dev machine gets the tables and an existing file
	// is left alone.
	if err := db.AutoMigrate(
		&models.User{},
		&models.Chat{},
		&models.Message{},
		&models.Score{},
		&models.ConfigEntry{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
