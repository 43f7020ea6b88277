package database

import (
	"github.com/sirupsen/logrus"

	"wealthplanner/internal/models"
)

func AutoMigrate() error {
	err := DB.AutoMigrate(
		&models.Simulation{},
		&models.Allocation{},
		&models.Movement{},
		&models.Insurance{},
	)
	if err != nil {
		logrus.WithError(err).Error("Failed to auto-migrate")
		return err
	}

	// Version families are looked up by root and ordered by version
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_simulations_family ON simulations (COALESCE(parent_id, id), version)").Error; err != nil {
		logrus.WithError(err).Warn("Could not create simulation family index")
	}

	logrus.Info("Database migration completed successfully")
	return nil
}
