package repositories

import (
	"context"

	"sacco-ledger/internal/adapters/persistence/models"
)

// MemberRepository defines member data access
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByMemberID(ctx context.Context, memberID string) (*models.Member, error)
	List(ctx context.Context, offset, limit int) ([]*models.Member, int64, error)
	Delete(ctx context.Context, memberID string) (int64, error)
	Exists(ctx context.Context, memberID string) (bool, error)
}

// SavingsRepository defines savings deposit data access
type SavingsRepository interface {
	Create(ctx context.Context, deposit *models.SavingsDeposit) error
	ListByMember(ctx context.Context, memberID string) ([]*models.SavingsDeposit, error)
	DeleteByTransactionID(ctx context.Context, transactionID string) (int64, error)
}

// LoanRepository defines loan data access
type LoanRepository interface {
	Create(ctx context.Context, loan *models.Loan) error
	GetByTransactionID(ctx context.Context, loanTransactionID string) (*models.Loan, error)
	ListByMember(ctx context.Context, memberID string) ([]*models.Loan, error)
	DeleteByTransactionID(ctx context.Context, loanTransactionID string) (int64, error)
}

// UserRepository defines user data access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]*models.User, error)
}

// SettingsRepository defines org settings data access. The settings table
// holds exactly one row.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.OrgSettings, error)
	Save(ctx context.Context, settings *models.OrgSettings) error
}

// PaymentRepository defines payment intent data access
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	ListByMember(ctx context.Context, memberID string) ([]*models.Payment, error)
}
