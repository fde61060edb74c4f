package repositories

import (
	"context"

	"sacco-ledger/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// savingsRepository implements SavingsRepository
type savingsRepository struct {
	db *gorm.DB
}

// NewSavingsRepository creates a new savings repository
func NewSavingsRepository(db *gorm.DB) SavingsRepository {
	return &savingsRepository{db: db}
}

// Create inserts a new savings deposit
func (r *savingsRepository) Create(ctx context.Context, deposit *models.SavingsDeposit) error {
	return r.db.WithContext(ctx).Create(deposit).Error
}

// ListByMember lists a member's deposits, newest first
func (r *savingsRepository) ListByMember(ctx context.Context, memberID string) ([]*models.SavingsDeposit, error) {
	var deposits []*models.SavingsDeposit
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("date DESC").
		Find(&deposits).Error
	return deposits, err
}

// DeleteByTransactionID removes zero or one deposit and returns the number
// of rows affected. Callers distinguish "deleted" from "not found" by the
// count, not by an error.
func (r *savingsRepository) DeleteByTransactionID(ctx context.Context, transactionID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).Delete(&models.SavingsDeposit{})
	return res.RowsAffected, res.Error
}
