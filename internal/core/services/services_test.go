package services

import (
	"context"
	"testing"
	"time"

	"sacco-ledger/internal/adapters/persistence/models"
	"sacco-ledger/internal/adapters/persistence/repositories"
	"sacco-ledger/internal/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory store per test. The production store is a
// single file shared by one process; concurrent writers against the same
// file rely entirely on sqlite's own locking, and no test below exercises
// two processes at once. That gap is real and inherited from the design.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

// fixture wires every service over one test store
type fixture struct {
	db       *gorm.DB
	members  *MemberService
	savings  *SavingsService
	loans    *LoanService
	auth     *AuthService
	settings *SettingsService
	payments *PaymentService
	summary  *SummaryService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.OrgSettings{
		ID:                 1,
		OrgName:            "Test SACCO",
		Currency:           "UGX",
		DefaultSavingsRate: decimal.Zero,
		DefaultCompounding: models.CompoundMonthly,
	}).Error)

	memberRepo := repositories.NewMemberRepository(db)
	savingsRepo := repositories.NewSavingsRepository(db)
	loanRepo := repositories.NewLoanRepository(db)
	userRepo := repositories.NewUserRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	cfg := &config.Config{
		AppMode: "dev",
		JWT:     config.JWTConfig{Secret: "test_secret", AccessTokenMins: 15},
	}

	settingsSvc := NewSettingsService(settingsRepo)

	return &fixture{
		db:       db,
		members:  NewMemberService(memberRepo),
		savings:  NewSavingsService(savingsRepo, memberRepo, settingsSvc),
		loans:    NewLoanService(loanRepo, memberRepo),
		auth:     NewAuthService(userRepo, cfg),
		settings: settingsSvc,
		payments: NewPaymentService(paymentRepo, memberRepo, settingsSvc),
		summary:  NewSummaryService(db),
	}
}

func (f *fixture) registerMember(t *testing.T, memberID, name string) *models.Member {
	t.Helper()
	member, err := f.members.Register(context.Background(), &RegisterMemberInput{
		MemberID:         memberID,
		Name:             name,
		RegistrationDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return member
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
