package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mahasiswa_backend/internals/configs"
	"mahasiswa_backend/internals/helpers/logger"
)

// ConnectDB membuka koneksi PostgreSQL dan langsung menyetel pool.
func ConnectDB(cfg configs.DatabaseConfig, log logger.Logger) (*gorm.DB, error) {
	log.Info("Koneksi ke PostgreSQL...", map[string]interface{}{"host": cfg.Host, "db": cfg.Name})

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("gagal konek DB: %w", err)
	}

	if err := TunePool(db); err != nil {
		return nil, err
	}
	log.Info("DB connected.", nil)
	return db, nil
}

func TunePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("pool tune: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	return nil
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
