package database

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the PostgreSQL connection pool. SQL statements are logged in
// development only.
func Connect(databaseURL string, production bool) error {
	var err error

	logMode := logger.Info
	if production {
		logMode = logger.Warn
	}
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	}

	DB, err = gorm.Open(postgres.Open(databaseURL), config)
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	logrus.Info("Database connected successfully")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// Ping checks that the database answers.
func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
