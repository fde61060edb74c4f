package repositories

import (
	"context"

	"sacco-ledger/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// loanRepository implements LoanRepository
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

// Create inserts a new loan
func (r *loanRepository) Create(ctx context.Context, loan *models.Loan) error {
	return r.db.WithContext(ctx).Create(loan).Error
}

// GetByTransactionID gets a loan by its transaction id
func (r *loanRepository) GetByTransactionID(ctx context.Context, loanTransactionID string) (*models.Loan, error) {
	var loan models.Loan
	err := r.db.WithContext(ctx).Where("loan_transaction_id = ?", loanTransactionID).First(&loan).Error
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// ListByMember lists a member's loans, newest first
func (r *loanRepository) ListByMember(ctx context.Context, memberID string) ([]*models.Loan, error) {
	var loans []*models.Loan
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("loan_date DESC").
		Find(&loans).Error
	return loans, err
}

// DeleteByTransactionID removes zero or one loan and returns the number of
// rows affected
func (r *loanRepository) DeleteByTransactionID(ctx context.Context, loanTransactionID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("loan_transaction_id = ?", loanTransactionID).Delete(&models.Loan{})
	return res.RowsAffected, res.Error
}
