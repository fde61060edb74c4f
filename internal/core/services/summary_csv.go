package services

import (
	"bytes"
	"context"
	"strconv"

	"sacco-ledger/internal/pkg/export"
)

const dateFormat = "2006-01-02"

// SavingsCSV renders the savings summary rows as a CSV document
func (s *SummaryService) SavingsCSV(ctx context.Context, memberID string) ([]byte, error) {
	rows, err := s.savingsRows(ctx, memberID)
	if err != nil {
		return nil, err
	}

	header := []string{"transaction_id", "amount", "member_name", "date", "member_id", "interest_rate"}
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.TransactionID,
			row.Amount.StringFixed(2),
			row.MemberName,
			row.Date.Format(dateFormat),
			row.MemberID,
			row.InterestRate.StringFixed(2),
		})
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, header, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoansCSV renders the loan summary rows as a CSV document
func (s *SummaryService) LoansCSV(ctx context.Context, memberID string) ([]byte, error) {
	rows, err := s.loanRows(ctx, memberID)
	if err != nil {
		return nil, err
	}

	header := []string{
		"loan_transaction_id", "loan_amount", "member_name", "loan_period",
		"interest_rate", "total_repayment", "monthly_installment", "loan_date", "member_id",
	}
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.LoanTransactionID,
			row.LoanAmount.StringFixed(2),
			row.MemberName,
			strconv.Itoa(row.LoanPeriod),
			row.InterestRate.StringFixed(2),
			row.TotalRepayment.StringFixed(2),
			row.MonthlyInstallment.StringFixed(2),
			row.LoanDate.Format(dateFormat),
			row.MemberID,
		})
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, header, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
