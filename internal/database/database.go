package database

import (
	"fmt"

	"github.com/Aditya122221/ElevateAI-sub001/internal/config"
	logging "github.com/Aditya122221/ElevateAI-sub001/internal/logging"
	"github.com/Aditya122221/ElevateAI-sub001/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	dbConf := config.Conf.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)

	gormLogger := logging.NewGormZapLogger(log)
	gormLogger.LogLevel = gormlogger.Warn

	// TranslateError maps driver-level unique violations onto
	// gorm.ErrDuplicatedKey, which the result store relies on.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})

	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established successfully.")
	runMigrations(log)
}

func runMigrations(log *zap.Logger) {
	// GORM's AutoMigrate will create tables, columns, and foreign keys.
	// It will NOT create compound unique indexes, so we handle those separately.
	err := DB.AutoMigrate(
		&models.User{},
		&models.Test{},
		&models.TestResult{},
		&models.Certificate{},
		&models.CertificateReview{},
		&models.BasicDetails{},
		&models.Skills{},
		&models.Projects{},
		&models.Certifications{},
		&models.Experience{},
		&models.JobRoles{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	// One result row per user, test and attempt number. This is what
	// closes the check-then-act race on the attempt limit: a concurrent
	// duplicate submit fails the insert instead of slipping past the count.
	attemptIndex := `CREATE UNIQUE INDEX IF NOT EXISTS idx_results_user_test_attempt ON test_results (user_id, test_id, attempt_number);`
	if err := DB.Exec(attemptIndex).Error; err != nil {
		log.Fatal("Failed to create unique attempt index", zap.Error(err))
	}

	catalogIndex := `CREATE INDEX IF NOT EXISTS idx_tests_catalog ON tests (is_active, category, difficulty, created_at DESC);`
	if err := DB.Exec(catalogIndex).Error; err != nil {
		log.Fatal("Failed to create catalog index", zap.Error(err))
	}

	// One review per user per certificate.
	reviewIndex := `CREATE UNIQUE INDEX IF NOT EXISTS idx_certificate_reviews_cert_user ON certificate_reviews (certificate_id, user_id);`
	if err := DB.Exec(reviewIndex).Error; err != nil {
		log.Fatal("Failed to create unique review index", zap.Error(err))
	}
	log.Info("Custom indexes ensured successfully.")
}
