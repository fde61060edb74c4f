package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSummaryData(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()

	f.registerMember(t, "M001", "Alice Auma")
	f.registerMember(t, "M002", "Bob Okello")

	_, err := f.savings.RecordDeposit(ctx, &RecordDepositInput{
		MemberID: "M001", Amount: dec("30000"), TransactionID: "SAV-1",
		Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = f.savings.RecordDeposit(ctx, &RecordDepositInput{
		MemberID: "M002", Amount: dec("20000"), TransactionID: "SAV-2",
		Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = f.loans.Apply(ctx, &ApplyLoanInput{
		MemberID: "M001", LoanAmount: dec("100000"), LoanPeriod: 12,
		InterestRate: dec("12"), LoanTransactionID: "LN-1",
		LoanDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
}

func TestSummaryAllMembers(t *testing.T) {
	f := newFixture(t)
	seedSummaryData(t, f)

	summary, err := f.summary.Summary(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, summary.Savings, 2)
	require.Len(t, summary.Loans, 1)
	assert.True(t, summary.TotalSavings.Equal(dec("50000")), "total savings = %s", summary.TotalSavings)
	assert.True(t, summary.TotalLoans.Equal(dec("100000")))

	// Rows carry the joined member names
	names := map[string]bool{}
	for _, row := range summary.Savings {
		names[row.MemberName] = true
	}
	assert.True(t, names["Alice Auma"])
	assert.True(t, names["Bob Okello"])
}

func TestSummarySingleMember(t *testing.T) {
	f := newFixture(t)
	seedSummaryData(t, f)

	summary, err := f.summary.Summary(context.Background(), "M001")
	require.NoError(t, err)

	require.Len(t, summary.Savings, 1)
	require.Len(t, summary.Loans, 1)
	assert.Equal(t, "Alice Auma", summary.Savings[0].MemberName)
	assert.True(t, summary.TotalSavings.Equal(dec("30000")))
}

func TestManualInterest(t *testing.T) {
	f := newFixture(t)

	total := f.summary.ManualInterest(dec("50000"), dec("5"))
	assert.True(t, total.Equal(dec("2500")))

	assert.True(t, f.summary.ManualInterest(dec("50000"), dec("0")).IsZero())
	assert.True(t, f.summary.ManualInterest(dec("50000"), dec("-2")).IsZero())
}

func TestSavingsCSV(t *testing.T) {
	f := newFixture(t)
	seedSummaryData(t, f)

	out, err := f.summary.SavingsCSV(context.Background(), "")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3, "header plus two rows")
	assert.Equal(t, "transaction_id,amount,member_name,date,member_id,interest_rate", lines[0])
	assert.Contains(t, string(out), "SAV-1,30000.00,Alice Auma,2024-02-01,M001")
}

func TestLoansCSV(t *testing.T) {
	f := newFixture(t)
	seedSummaryData(t, f)

	out, err := f.summary.LoansCSV(context.Background(), "M001")
	require.NoError(t, err)

	assert.Contains(t, string(out), "LN-1,100000.00,Alice Auma,12,12.00,112000.00,9333.33,2024-04-01,M001")
}
