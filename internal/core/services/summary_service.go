package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SummaryService builds the financial summary views: savings and loan
// transactions joined with member names, plus portfolio totals
type SummaryService struct {
	db *gorm.DB
}

// NewSummaryService creates a new summary service
func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db}
}

// SavingsRow is one savings transaction joined with its member's name
type SavingsRow struct {
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	MemberName    string          `json:"member_name"`
	Date          time.Time       `json:"date"`
	MemberID      string          `json:"member_id"`
	InterestRate  decimal.Decimal `json:"interest_rate"`
}

// LoanRow is one loan transaction joined with its member's name
type LoanRow struct {
	LoanTransactionID  string          `json:"loan_transaction_id"`
	LoanAmount         decimal.Decimal `json:"loan_amount"`
	MemberName         string          `json:"member_name"`
	LoanPeriod         int             `json:"loan_period"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	TotalRepayment     decimal.Decimal `json:"total_repayment"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
	LoanDate           time.Time       `json:"loan_date"`
	MemberID           string          `json:"member_id"`
}

// FinancialSummary is the full summary for one member or all members
type FinancialSummary struct {
	MemberID     string          `json:"member_id,omitempty"`
	Savings      []SavingsRow    `json:"savings"`
	Loans        []LoanRow       `json:"loans"`
	TotalSavings decimal.Decimal `json:"total_savings"`
	TotalLoans   decimal.Decimal `json:"total_loans"`
}

// Summary builds the financial summary. An empty memberID covers all
// members.
func (s *SummaryService) Summary(ctx context.Context, memberID string) (*FinancialSummary, error) {
	savings, err := s.savingsRows(ctx, memberID)
	if err != nil {
		return nil, err
	}

	loans, err := s.loanRows(ctx, memberID)
	if err != nil {
		return nil, err
	}

	summary := &FinancialSummary{
		MemberID: memberID,
		Savings:  savings,
		Loans:    loans,
	}
	for _, row := range savings {
		summary.TotalSavings = summary.TotalSavings.Add(row.Amount)
	}
	for _, row := range loans {
		summary.TotalLoans = summary.TotalLoans.Add(row.LoanAmount)
	}

	return summary, nil
}

// ManualInterest applies a caller-supplied flat rate to a savings total.
// This is the interactive "interest to date" figure on the summary view,
// independent of per-deposit compound accrual.
func (s *SummaryService) ManualInterest(totalSavings, ratePct decimal.Decimal) decimal.Decimal {
	if ratePct.Sign() <= 0 {
		return decimal.Zero
	}
	return totalSavings.Mul(ratePct.Div(decimal.NewFromInt(100))).Round(2)
}

func (s *SummaryService) savingsRows(ctx context.Context, memberID string) ([]SavingsRow, error) {
	q := s.db.WithContext(ctx).
		Table("savings_deposits").
		Select("savings_deposits.transaction_id, savings_deposits.amount, members.name AS member_name, savings_deposits.date, savings_deposits.member_id, savings_deposits.interest_rate").
		Joins("JOIN members ON members.member_id = savings_deposits.member_id").
		Order("savings_deposits.date DESC")
	if memberID != "" {
		q = q.Where("savings_deposits.member_id = ?", memberID)
	}

	var rows []SavingsRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *SummaryService) loanRows(ctx context.Context, memberID string) ([]LoanRow, error) {
	q := s.db.WithContext(ctx).
		Table("loans").
		Select("loans.loan_transaction_id, loans.loan_amount, members.name AS member_name, loans.loan_period, loans.interest_rate, loans.total_repayment, loans.monthly_installment, loans.loan_date, loans.member_id").
		Joins("JOIN members ON members.member_id = loans.member_id").
		Order("loans.loan_date DESC")
	if memberID != "" {
		q = q.Where("loans.member_id = ?", memberID)
	}

	var rows []LoanRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
