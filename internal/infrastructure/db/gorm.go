package db

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"microlend-backend/internal/domain/collateral"
	"microlend-backend/internal/domain/history"
	"microlend-backend/internal/domain/loan"
	"microlend-backend/internal/domain/repayment"
	"microlend-backend/internal/domain/underwriting"
	"microlend-backend/internal/domain/user"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

// OpenGormWithDialector is the seam tests use to swap in a mocked
// connection.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate creates/updates the lending schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&loan.LoanType{},
		&loan.InterestRate{},
		&loan.Application{},
		&underwriting.Underwriting{},
		&collateral.Collateral{},
		&repayment.Method{},
		&repayment.Repayment{},
		&history.Entry{},
	)
}
