package mysql

import (
	"strings"
	"testing"

	appDomain "peerlend/internal/domain/application"
	eventDomain "peerlend/internal/domain/event"
	lenderDomain "peerlend/internal/domain/lender"
	loanDomain "peerlend/internal/domain/loan"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite DB and migrates the full schema.
// The schema is sqlite-safe (no MySQL-only column types), so the domain
// models migrate as-is. TranslateError is on, as in production, so unique
// violations surface as gorm.ErrDuplicatedKey.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&loanDomain.Loan{},
		&loanDomain.Offer{},
		&lenderDomain.Lender{},
		&lenderDomain.ProofRequirement{},
		&lenderDomain.FundedLoan{},
		&appDomain.Application{},
		&appDomain.Review{},
		&eventDomain.Event{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func addr(ch byte) string  { return strings.Repeat(string(ch), 40) }
func ref32(ch byte) string { return strings.Repeat(string(ch), 32) }
