package db

import (
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bankbase/internal/domain/account"
	"bankbase/internal/domain/branch"
	"bankbase/internal/domain/card"
	"bankbase/internal/domain/customer"
	"bankbase/internal/domain/employee"
	"bankbase/internal/domain/loan"
	"bankbase/internal/domain/transaction"
)

// OpenGorm connects to MySQL with sane pool limits and verifies the
// connection with a ping.
func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

// OpenGormWithDialector is the injectable variant used by tests.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
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
	return db, nil
}

// Migrate creates or updates the full schema. The transactions table is
// append-only by convention; nothing here enforces immutability.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&branch.Branch{},
		&employee.Employee{},
		&customer.Customer{},
		&account.Account{},
		&transaction.Transaction{},
		&loan.Loan{},
		&card.Card{},
	)
}
