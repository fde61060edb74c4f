package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"sacco-ledger/internal/adapters/persistence/models"
	"sacco-ledger/internal/adapters/persistence/repositories"
	"sacco-ledger/internal/core/domain"
	"sacco-ledger/internal/core/interest"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsService handles savings deposit recording and accrual summaries
type SavingsService struct {
	savingsRepo repositories.SavingsRepository
	memberRepo  repositories.MemberRepository
	settings    *SettingsService
}

// NewSavingsService creates a new savings service
func NewSavingsService(
	savingsRepo repositories.SavingsRepository,
	memberRepo repositories.MemberRepository,
	settings *SettingsService,
) *SavingsService {
	return &SavingsService{
		savingsRepo: savingsRepo,
		memberRepo:  memberRepo,
		settings:    settings,
	}
}

// RecordDepositInput represents deposit recording input. A nil InterestRate
// falls back to the organization's default savings rate.
type RecordDepositInput struct {
	MemberID      string
	Amount        decimal.Decimal
	Date          time.Time
	TransactionID string
	InterestRate  *decimal.Decimal
}

// RecordDeposit validates and records a savings deposit. Deposits are never
// updated in place afterwards.
func (s *SavingsService) RecordDeposit(ctx context.Context, input *RecordDepositInput) (*models.SavingsDeposit, error) {
	memberID := strings.TrimSpace(input.MemberID)
	if memberID == "" {
		return nil, domain.NewValidationError("member_id", "is required")
	}
	if input.Amount.Sign() <= 0 {
		return nil, domain.NewValidationError("amount", "must be positive")
	}

	exists, err := s.memberRepo.Exists(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrMemberNotFound
	}

	transactionID := strings.TrimSpace(input.TransactionID)
	if transactionID == "" {
		transactionID = uuid.NewString()
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	rate := decimal.Zero
	if input.InterestRate != nil {
		if input.InterestRate.Sign() < 0 {
			return nil, domain.NewValidationError("interest_rate", "cannot be negative")
		}
		rate = *input.InterestRate
	} else if settings, err := s.settings.Get(ctx); err == nil {
		rate = settings.DefaultSavingsRate
	}

	deposit := &models.SavingsDeposit{
		TransactionID: transactionID,
		Amount:        input.Amount,
		Date:          truncateToDate(date),
		MemberID:      memberID,
		InterestRate:  rate,
	}

	if err := s.savingsRepo.Create(ctx, deposit); err != nil {
		if errors.Is(translateConstraint(err), domain.ErrDuplicateEntry) {
			return nil, domain.ErrDuplicateTransaction
		}
		return nil, translateConstraint(err)
	}

	return deposit, nil
}

// ListByMember lists a member's deposits
func (s *SavingsService) ListByMember(ctx context.Context, memberID string) ([]*models.SavingsDeposit, error) {
	return s.savingsRepo.ListByMember(ctx, memberID)
}

// Delete removes a deposit by transaction id. Returns false when nothing was
// deleted; that is a soft outcome, not an error.
func (s *SavingsService) Delete(ctx context.Context, transactionID string) (bool, error) {
	if strings.TrimSpace(transactionID) == "" {
		return false, domain.NewValidationError("transaction_id", "is required")
	}

	rows, err := s.savingsRepo.DeleteByTransactionID(ctx, transactionID)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// AccruedSummary is a member's savings position with compound accrual
type AccruedSummary struct {
	MemberID      string             `json:"member_id"`
	AsOf          time.Time          `json:"as_of"`
	Compounding   models.Compounding `json:"compounding"`
	TotalSavings  decimal.Decimal    `json:"total_savings"`
	TotalInterest decimal.Decimal    `json:"total_interest"`
	AccruedValue  decimal.Decimal    `json:"accrued_value"`
}

// Accrue compounds each of the member's deposits independently from its own
// date and sums the results. Deposits are never pooled before compounding.
func (s *SavingsService) Accrue(ctx context.Context, memberID string, asOf time.Time) (*AccruedSummary, error) {
	exists, err := s.memberRepo.Exists(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrMemberNotFound
	}

	deposits, err := s.savingsRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	compounding := models.CompoundMonthly
	if settings, err := s.settings.Get(ctx); err == nil {
		compounding = settings.DefaultCompounding
	}

	if asOf.IsZero() {
		asOf = time.Now()
	}
	asOf = truncateToDate(asOf)

	inputs := make([]interest.DepositAccrualInput, 0, len(deposits))
	for _, d := range deposits {
		inputs = append(inputs, interest.DepositAccrualInput{
			Principal:     d.Amount,
			AnnualRatePct: d.InterestRate,
			Date:          d.Date,
		})
	}

	total := interest.AccrueDeposits(inputs, asOf, interest.Frequency(compounding))

	return &AccruedSummary{
		MemberID:      memberID,
		AsOf:          asOf,
		Compounding:   compounding,
		TotalSavings:  total.Principal,
		TotalInterest: total.Interest,
		AccruedValue:  total.Principal.Add(total.Interest),
	}, nil
}
