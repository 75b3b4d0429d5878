package database

import (
	"souk/config"
	"souk/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDatabase opens the Postgres connection and migrates the schema.
func InitDatabase(appConfig *config.Config) error {
	var err error

	DB, err = gorm.Open(postgres.Open(appConfig.DB.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(appConfig.DB.LogLevel),
	})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(appConfig.DB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(appConfig.DB.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(appConfig.DB.ConnMaxLifetime)
	if err := sqlDB.Ping(); err != nil {
		return err
	}

	return DB.AutoMigrate(
		&model.Store{},
		&model.Category{},
		&model.Product{},
		&model.ImageLibraryItem{},
		&model.AdminPanel{},
	)
}
