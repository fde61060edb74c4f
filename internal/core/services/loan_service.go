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
	"gorm.io/gorm"
)

// LoanService handles loan applications, flat-rate totals and the
// amortization schedule view
type LoanService struct {
	loanRepo   repositories.LoanRepository
	memberRepo repositories.MemberRepository
}

// NewLoanService creates a new loan service
func NewLoanService(loanRepo repositories.LoanRepository, memberRepo repositories.MemberRepository) *LoanService {
	return &LoanService{loanRepo: loanRepo, memberRepo: memberRepo}
}

// ApplyLoanInput represents a loan application
type ApplyLoanInput struct {
	MemberID          string
	LoanAmount        decimal.Decimal
	LoanPeriod        int
	InterestRate      decimal.Decimal
	LoanDate          time.Time
	LoanTransactionID string
}

// Apply validates a loan application, computes the flat-rate repayment
// totals and persists the loan. The stored totals use the flat formula;
// Schedule below is the amortizing view and the two are never reconciled.
func (s *LoanService) Apply(ctx context.Context, input *ApplyLoanInput) (*models.Loan, error) {
	memberID := strings.TrimSpace(input.MemberID)
	if memberID == "" {
		return nil, domain.NewValidationError("member_id", "is required")
	}
	if input.LoanAmount.Sign() <= 0 {
		return nil, domain.NewValidationError("loan_amount", "must be positive")
	}
	if input.LoanPeriod < 1 {
		return nil, domain.NewValidationError("loan_period", "must be at least 1 month")
	}
	if input.InterestRate.Sign() < 0 {
		return nil, domain.NewValidationError("interest_rate", "cannot be negative")
	}

	exists, err := s.memberRepo.Exists(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrMemberNotFound
	}

	transactionID := strings.TrimSpace(input.LoanTransactionID)
	if transactionID == "" {
		transactionID = uuid.NewString()
	}

	loanDate := input.LoanDate
	if loanDate.IsZero() {
		loanDate = time.Now()
	}

	total, monthly := interest.FlatRateTotal(input.LoanAmount, input.InterestRate, input.LoanPeriod)

	loan := &models.Loan{
		LoanTransactionID:  transactionID,
		LoanAmount:         input.LoanAmount,
		LoanPeriod:         input.LoanPeriod,
		InterestRate:       input.InterestRate,
		TotalRepayment:     total,
		MonthlyInstallment: monthly,
		LoanDate:           truncateToDate(loanDate),
		MemberID:           memberID,
	}

	if err := s.loanRepo.Create(ctx, loan); err != nil {
		if errors.Is(translateConstraint(err), domain.ErrDuplicateEntry) {
			return nil, domain.ErrDuplicateTransaction
		}
		return nil, translateConstraint(err)
	}

	return loan, nil
}

// ListByMember lists a member's loans
func (s *LoanService) ListByMember(ctx context.Context, memberID string) ([]*models.Loan, error) {
	return s.loanRepo.ListByMember(ctx, memberID)
}

// Delete removes a loan by transaction id. Returns false when nothing was
// deleted.
func (s *LoanService) Delete(ctx context.Context, loanTransactionID string) (bool, error) {
	if strings.TrimSpace(loanTransactionID) == "" {
		return false, domain.NewValidationError("loan_transaction_id", "is required")
	}

	rows, err := s.loanRepo.DeleteByTransactionID(ctx, loanTransactionID)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// ScheduleView is the on-demand amortization view of a stored loan
type ScheduleView struct {
	Loan         *models.Loan           `json:"loan"`
	AsOf         time.Time              `json:"as_of"`
	Outstanding  decimal.Decimal        `json:"outstanding_balance"`
	Installments []interest.Installment `json:"installments"`
}

// Schedule computes the amortization schedule for a stored loan from its
// original terms and derives the outstanding balance as of a date.
func (s *LoanService) Schedule(ctx context.Context, loanTransactionID string, asOf time.Time) (*ScheduleView, error) {
	loan, err := s.loanRepo.GetByTransactionID(ctx, loanTransactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoanNotFound
		}
		return nil, err
	}

	if asOf.IsZero() {
		asOf = time.Now()
	}
	asOf = truncateToDate(asOf)

	installments := interest.Schedule(loan.LoanAmount, loan.InterestRate, loan.LoanPeriod, loan.LoanDate)

	return &ScheduleView{
		Loan:         loan,
		AsOf:         asOf,
		Outstanding:  interest.OutstandingBalance(loan.LoanAmount, installments, asOf),
		Installments: installments,
	}, nil
}
